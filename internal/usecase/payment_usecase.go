package usecase

import (
	"context"

	"washapp/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentUsecase records payments reported by an external gateway. Nothing is charged here.
type PaymentUsecase interface {
	Record(ctx context.Context, actor entity.Actor, bookingID uuid.UUID, input *RecordPaymentInput) (*entity.Payment, error)
	List(ctx context.Context, actor entity.Actor, bookingID uuid.UUID) ([]*entity.Payment, error)
}

// RecordPaymentInput; a zero Amount defaults to the booking total.
type RecordPaymentInput struct {
	Amount        decimal.Decimal
	Method        string
	TransactionID string
	Status        entity.PaymentStatus
}
