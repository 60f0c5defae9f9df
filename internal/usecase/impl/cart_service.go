package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "washapp/internal/delivery/context"
	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	"washapp/internal/domain/repository"
	"washapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type cartService struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
	now         func() time.Time
}

type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		catalogRepo: params.CatalogRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get prices every line at the current catalog price.
func (srv *cartService) Get(ctx context.Context, userID uuid.UUID) (*usecase.Cart, error) {
	items, err := srv.cartRepo.List(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	cart := &usecase.Cart{Lines: make([]usecase.CartLine, 0, len(items)), Total: decimal.Zero}
	for _, item := range items {
		svc, err := srv.catalogRepo.FindServiceByID(ctx, item.ServiceID)
		if errors.Is(err, repository.ErrServiceNotFound) {
			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to price cart item")
		}

		subtotal := svc.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		cart.Lines = append(cart.Lines, usecase.CartLine{Item: item, Service: svc, Subtotal: subtotal})
		cart.Total = cart.Total.Add(subtotal)
	}

	return cart, nil
}

// Add puts quantity units of the service in the cart; zero means one.
func (srv *cartService) Add(ctx context.Context, userID uuid.UUID, serviceID uuid.UUID, quantity int) (*entity.CartItem, error) {
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	svc, err := findService(ctx, srv.catalogRepo, serviceID)
	if err != nil {
		return nil, err
	}
	if !svc.IsActive {
		return nil, domainerrors.ErrValidationFailed.WithDetails("service is not available")
	}

	item := &entity.CartItem{
		UserID:    userID,
		ServiceID: serviceID,
		Quantity:  quantity,
		AddedAt:   srv.now(),
	}
	if err := srv.cartRepo.Add(ctx, item); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to add cart item")
	}

	srv.log(ctx).Debug("Cart item added", slog.Any("userID", userID), slog.Any("serviceID", serviceID), slog.Int("quantity", item.Quantity))

	return item, nil
}

func (srv *cartService) Remove(ctx context.Context, userID uuid.UUID, serviceID uuid.UUID) error {
	if err := srv.cartRepo.Remove(ctx, userID, serviceID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrNotFound.WithDetails("service is not in the cart")
		}

		return errors.Wrap(err, "failed to remove cart item")
	}

	return nil
}
