package impl

import (
	"context"
	"testing"

	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	"washapp/internal/domain/repository"
	"washapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProviderService(t *testing.T) (usecase.ProviderUsecase, repoFixtures) {
	repos := newRepoFixtures(t)

	return NewProviderService(ProviderServiceParams{
		TxManager:    repos.txManager,
		ProviderRepo: repos.providerRepo,
		Logger:       newDiscardLogger(),
	}), repos
}

func TestProviderService_Register(t *testing.T) {
	actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleServiceProvider}
	input := &usecase.RegisterProviderInput{CompanyName: "Sparkle Co", ServiceIDs: []uuid.UUID{uuid.New()}}

	t.Run("success", func(t *testing.T) {
		srv, fx := createTestProviderService(t)

		fx.providerRepo.EXPECT().FindByUserID(mock.Anything, actor.UserID).Return(nil, repository.ErrProviderNotFound)
		fx.providerRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(p *entity.ServiceProvider) bool {
				return p.UserID == actor.UserID && p.CompanyName == "Sparkle Co" && len(p.ServiceIDs) == 1
			})).
			Return(nil)

		provider, err := srv.Register(context.Background(), actor, input)

		require.NoError(t, err)
		assert.False(t, provider.IsVerified)
	})

	t.Run("only once", func(t *testing.T) {
		srv, fx := createTestProviderService(t)

		fx.providerRepo.EXPECT().FindByUserID(mock.Anything, actor.UserID).Return(&entity.ServiceProvider{}, nil)

		_, err := srv.Register(context.Background(), actor, input)
		assert.ErrorIs(t, err, domainerrors.ErrProviderAlreadyExists)
	})

	t.Run("customers cannot register", func(t *testing.T) {
		srv, _ := createTestProviderService(t)

		_, err := srv.Register(context.Background(), customer(), input)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("unknown service", func(t *testing.T) {
		srv, fx := createTestProviderService(t)

		fx.providerRepo.EXPECT().FindByUserID(mock.Anything, actor.UserID).Return(nil, repository.ErrProviderNotFound)
		fx.providerRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrServiceNotFound)

		_, err := srv.Register(context.Background(), actor, input)
		assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
	})
}

func TestProviderService_UpdateServices(t *testing.T) {
	srv, fx := createTestProviderService(t)
	actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleServiceProvider}
	provider := &entity.ServiceProvider{ID: uuid.New(), UserID: actor.UserID}
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	fx.providerRepo.EXPECT().FindByUserID(mock.Anything, actor.UserID).Return(provider, nil)
	fx.providerRepo.EXPECT().ReplaceServices(mock.Anything, provider.ID, ids).Return(nil)
	fx.providerRepo.EXPECT().FindByID(mock.Anything, provider.ID).Return(&entity.ServiceProvider{ID: provider.ID, ServiceIDs: ids}, nil)

	updated, err := srv.UpdateServices(context.Background(), actor, ids)

	require.NoError(t, err)
	assert.Equal(t, ids, updated.ServiceIDs)
}

func TestProviderService_SetVerified(t *testing.T) {
	srv, fx := createTestProviderService(t)
	id := uuid.New()

	_, err := srv.SetVerified(context.Background(), customer(), id, true)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	fx.providerRepo.EXPECT().SetVerified(mock.Anything, id, true).Return(nil)
	fx.providerRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.ServiceProvider{ID: id, IsVerified: true}, nil)

	provider, err := srv.SetVerified(context.Background(), admin, id, true)
	require.NoError(t, err)
	assert.True(t, provider.IsVerified)

	missing := uuid.New()
	fx.providerRepo.EXPECT().SetVerified(mock.Anything, missing, false).Return(repository.ErrProviderNotFound)

	_, err = srv.SetVerified(context.Background(), admin, missing, false)
	assert.ErrorIs(t, err, domainerrors.ErrProviderNotFound)
}
