package repository

import (
	"context"
	"errors"

	"washapp/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository persists per-user cart items.
type CartRepository interface {
	// Add stores the item, adding its quantity to an existing line for the same service.
	Add(ctx context.Context, item *entity.CartItem) error
	List(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)
	Remove(ctx context.Context, userID, serviceID uuid.UUID) error
}
