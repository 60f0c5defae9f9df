package usecase

import (
	"context"

	"washapp/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartUsecase manages the services a user has staged before booking.
type CartUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (*Cart, error)
	Add(ctx context.Context, userID uuid.UUID, serviceID uuid.UUID, quantity int) (*entity.CartItem, error)
	Remove(ctx context.Context, userID uuid.UUID, serviceID uuid.UUID) error
}

// CartLine is a cart item priced at the current catalog price.
type CartLine struct {
	Item     *entity.CartItem `json:"item"`
	Service  *entity.Service  `json:"service"`
	Subtotal decimal.Decimal  `json:"subtotal"`
}

type Cart struct {
	Lines []CartLine      `json:"lines"`
	Total decimal.Decimal `json:"total"`
}
