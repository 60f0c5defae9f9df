package repository

import (
	"context"

	"washapp/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentRepository is append-only.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error)
}
