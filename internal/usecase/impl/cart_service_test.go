package impl

import (
	"context"
	"testing"
	"time"

	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	"washapp/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCartService(t *testing.T) (*cartService, repoFixtures) {
	repos := newRepoFixtures(t)
	srv := NewCartService(CartServiceParams{
		CartRepo:    repos.cartRepo,
		CatalogRepo: repos.catalogRepo,
		Logger:      newDiscardLogger(),
	}).(*cartService)
	srv.now = func() time.Time { return fixedNow }

	return srv, repos
}

func TestCartService_Get_PricesLines(t *testing.T) {
	srv, fx := createTestCartService(t)
	userID := uuid.New()
	wash := &entity.Service{ID: uuid.New(), Price: decimal.RequireFromString("12.50")}
	wax := &entity.Service{ID: uuid.New(), Price: decimal.RequireFromString("7.25")}

	fx.cartRepo.EXPECT().List(mock.Anything, userID).Return([]*entity.CartItem{
		{ServiceID: wash.ID, Quantity: 2},
		{ServiceID: wax.ID, Quantity: 1},
	}, nil)
	fx.catalogRepo.EXPECT().FindServiceByID(mock.Anything, wash.ID).Return(wash, nil)
	fx.catalogRepo.EXPECT().FindServiceByID(mock.Anything, wax.ID).Return(wax, nil)

	cart, err := srv.Get(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, "25.00", cart.Lines[0].Subtotal.StringFixed(2))
	assert.Equal(t, "32.25", cart.Total.StringFixed(2))
}

func TestCartService_Add(t *testing.T) {
	srv, fx := createTestCartService(t)
	userID := uuid.New()
	svc := &entity.Service{ID: uuid.New(), IsActive: true}

	fx.catalogRepo.EXPECT().FindServiceByID(mock.Anything, svc.ID).Return(svc, nil)
	fx.cartRepo.EXPECT().
		Add(mock.Anything, mock.MatchedBy(func(item *entity.CartItem) bool {
			return item.Quantity == 1 && item.AddedAt.Equal(fixedNow)
		})).
		Run(func(_ context.Context, item *entity.CartItem) { item.Quantity = 3 }).
		Return(nil)

	item, err := srv.Add(context.Background(), userID, svc.ID, 0)

	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)

	_, err = srv.Add(context.Background(), userID, svc.ID, -2)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_Remove_Missing(t *testing.T) {
	srv, fx := createTestCartService(t)
	userID, serviceID := uuid.New(), uuid.New()

	fx.cartRepo.EXPECT().Remove(mock.Anything, userID, serviceID).Return(repository.ErrCartItemNotFound)

	err := srv.Remove(context.Background(), userID, serviceID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
