package postgres

import (
	"context"

	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	"washapp/internal/domain/repository"
	"washapp/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements repository.PaymentRepository.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := &model.PaymentModel{
		ID:            payment.ID,
		BookingID:     payment.BookingID,
		Amount:        payment.Amount,
		Method:        payment.Method,
		TransactionID: payment.TransactionID,
		Status:        string(payment.Status),
		PaymentDate:   payment.PaymentDate,
	}
	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBookingNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record payment")
	}

	payment.ID = paymentM.ID

	return nil
}

func (repo *paymentRepository) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	var paymentMs []model.PaymentModel
	if err := replica(ctx, repo.db).
		Where("booking_id = ?", bookingID).
		Order("payment_date ASC").
		Find(&paymentMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	payments := make([]*entity.Payment, 0, len(paymentMs))
	for i := range paymentMs {
		p := &paymentMs[i]
		payments = append(payments, &entity.Payment{
			ID:            p.ID,
			BookingID:     p.BookingID,
			Amount:        p.Amount,
			Method:        p.Method,
			TransactionID: p.TransactionID,
			Status:        entity.PaymentStatus(p.Status),
			PaymentDate:   p.PaymentDate,
		})
	}

	return payments, nil
}
