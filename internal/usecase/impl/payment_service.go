package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "washapp/internal/delivery/context"
	"washapp/internal/domain/booking"
	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	"washapp/internal/domain/repository"
	"washapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxPaymentMethodLength = 50

type paymentService struct {
	bookingRepo  repository.BookingRepository
	providerRepo repository.ProviderRepository
	paymentRepo  repository.PaymentRepository
	logger       *slog.Logger
	now          func() time.Time
}

type PaymentServiceParams struct {
	fx.In

	BookingRepo  repository.BookingRepository
	ProviderRepo repository.ProviderRepository
	PaymentRepo  repository.PaymentRepository
	Logger       *slog.Logger
}

func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		bookingRepo:  params.BookingRepo,
		providerRepo: params.ProviderRepo,
		paymentRepo:  params.PaymentRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Record appends a payment reported by the gateway. Only the booking's customer or an admin may.
func (srv *paymentService) Record(ctx context.Context, actor entity.Actor, bookingID uuid.UUID, input *usecase.RecordPaymentInput) (*entity.Payment, error) {
	paid, party, err := loadVisibleBooking(ctx, srv.bookingRepo, srv.providerRepo, actor, bookingID)
	if err != nil {
		return nil, err
	}
	if party != booking.PartyCustomer && party != booking.PartyAdmin {
		return nil, domainerrors.ErrForbidden.WithDetails("only the booking's customer or an administrator can record payments")
	}

	payment, err := buildPayment(paid, input)
	if err != nil {
		return nil, err
	}
	payment.PaymentDate = srv.now()

	if err := srv.paymentRepo.Create(ctx, payment); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, domainerrors.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to record payment")
	}

	srv.log(ctx).Info("Payment recorded",
		slog.Any("bookingID", bookingID),
		slog.String("amount", payment.Amount.StringFixed(2)),
		slog.Any("status", payment.Status),
	)

	return payment, nil
}

func buildPayment(paid *entity.Booking, input *usecase.RecordPaymentInput) (*entity.Payment, error) {
	method := strings.TrimSpace(input.Method)
	if method == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("payment_method is required")
	}
	if utf8.RuneCountInString(method) > maxPaymentMethodLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("payment_method is too long")
	}

	status := input.Status
	if status == "" {
		status = entity.PaymentStatusPending
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown payment status " + string(status))
	}

	amount := input.Amount
	if amount.IsZero() {
		amount = paid.TotalAmount
	}
	if amount.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must not be negative")
	}

	return &entity.Payment{
		BookingID:     paid.ID,
		Amount:        amount.Round(2),
		Method:        method,
		TransactionID: input.TransactionID,
		Status:        status,
	}, nil
}

func (srv *paymentService) List(ctx context.Context, actor entity.Actor, bookingID uuid.UUID) ([]*entity.Payment, error) {
	if _, _, err := loadVisibleBooking(ctx, srv.bookingRepo, srv.providerRepo, actor, bookingID); err != nil {
		return nil, err
	}

	payments, err := srv.paymentRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}
	if payments == nil {
		payments = []*entity.Payment{}
	}

	return payments, nil
}
