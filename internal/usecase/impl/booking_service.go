package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"washapp/config"
	deliverycontext "washapp/internal/delivery/context"
	"washapp/internal/domain/booking"
	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	"washapp/internal/domain/repository"
	"washapp/internal/domain/service"
	"washapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	txManager    repository.TransactionManager
	bookingRepo  repository.BookingRepository
	providerRepo repository.ProviderRepository
	idempotency  service.IdempotencyStore
	qrCode       service.QRCodeService
	metrics      service.BookingMetrics
	location     *time.Location
	logger       *slog.Logger
	now          func() time.Time
}

// BookingServiceParams holds dependencies for BookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	BookingRepo  repository.BookingRepository
	ProviderRepo repository.ProviderRepository
	Idempotency  service.IdempotencyStore
	QRCode       service.QRCodeService
	Metrics      service.BookingMetrics
	Config       *config.Config
	Logger       *slog.Logger
}

func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		txManager:    params.TxManager,
		bookingRepo:  params.BookingRepo,
		providerRepo: params.ProviderRepo,
		idempotency:  params.Idempotency,
		qrCode:       params.QRCode,
		metrics:      params.Metrics,
		location:     params.Config.Location(),
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create books the service with the earliest-registered provider offering it.
func (srv *bookingService) Create(ctx context.Context, actor entity.Actor, input *usecase.CreateBookingInput) (*entity.Booking, error) {
	if !actor.IsCustomer() {
		return nil, domainerrors.ErrForbidden.WithDetails("only customers can create bookings")
	}
	if err := srv.validateCreate(input); err != nil {
		return nil, err
	}

	scope := actor.UserID.String()
	reserved := false
	if input.IdempotencyKey != "" {
		existing, claimed, err := srv.reserve(ctx, actor, scope, input.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
		reserved = claimed
	}

	created := &entity.Booking{
		CustomerID:          actor.UserID,
		ServiceID:           input.ServiceID,
		BookingDate:         entity.DateOnly(input.BookingDate),
		BookingTime:         input.BookingTime,
		VehicleType:         strings.TrimSpace(input.VehicleType),
		VehicleNumber:       strings.TrimSpace(input.VehicleNumber),
		SpecialInstructions: input.SpecialInstructions,
		Status:              entity.BookingStatusPending,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		svc, err := findService(ctx, repoFactory.CatalogRepo(), input.ServiceID)
		if err != nil {
			return err
		}
		if !svc.IsActive {
			return domainerrors.ErrValidationFailed.WithDetails("service is not available for booking")
		}

		provider, err := repoFactory.ProviderRepo().FindFirstOffering(ctx, svc.ID)
		if err != nil {
			if errors.Is(err, repository.ErrProviderNotFound) {
				return domainerrors.ErrNoProviderAvailable
			}

			return errors.Wrap(err, "failed to select provider")
		}

		created.ProviderID = provider.ID
		created.TotalAmount = svc.Price

		if err := repoFactory.BookingRepo().Create(ctx, created); err != nil {
			switch {
			case errors.Is(err, repository.ErrUserNotFound):
				return domainerrors.ErrForbidden.WithDetails("customer account no longer exists")
			case errors.Is(err, repository.ErrServiceNotFound):
				return domainerrors.ErrServiceNotFound
			case errors.Is(err, repository.ErrProviderNotFound):
				return domainerrors.ErrNoProviderAvailable
			}

			return errors.Wrap(err, "failed to create booking")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Booking creation failed", slog.Any("customerID", actor.UserID), slog.Any("serviceID", input.ServiceID), slog.Any("error", err))

		if reserved {
			if relErr := srv.idempotency.Release(ctx, scope, input.IdempotencyKey); relErr != nil {
				srv.log(ctx).Warn("Failed to release idempotency key", slog.Any("error", relErr))
			}
		}

		return nil, errors.Wrap(err, "failed to create booking")
	}

	if reserved {
		if err := srv.idempotency.Complete(ctx, scope, input.IdempotencyKey, created.ID); err != nil {
			srv.log(ctx).Warn("Failed to record idempotency key", slog.Any("bookingID", created.ID), slog.Any("error", err))
		}
	}
	srv.metrics.BookingCreated()

	srv.log(ctx).Info("Booking created",
		slog.Any("bookingID", created.ID),
		slog.Any("providerID", created.ProviderID),
		slog.String("total", created.TotalAmount.StringFixed(2)),
	)

	return created, nil
}

func (srv *bookingService) validateCreate(input *usecase.CreateBookingInput) error {
	switch {
	case input.ServiceID == uuid.Nil:
		return domainerrors.ErrValidationFailed.WithDetails("service_id is required")
	case strings.TrimSpace(input.VehicleType) == "":
		return domainerrors.ErrValidationFailed.WithDetails("vehicle_type is required")
	case strings.TrimSpace(input.VehicleNumber) == "":
		return domainerrors.ErrValidationFailed.WithDetails("vehicle_number is required")
	case input.BookingDate.IsZero():
		return domainerrors.ErrValidationFailed.WithDetails("booking_date is required")
	case input.BookingTime < 0 || time.Duration(input.BookingTime) >= 24*time.Hour:
		return domainerrors.ErrValidationFailed.WithDetails("booking_time is out of range")
	}

	if entity.DateOnly(input.BookingDate).Before(calendarDay(srv.now(), srv.location)) {
		return domainerrors.ErrValidationFailed.WithDetails("booking_date is in the past")
	}

	return nil
}

// reserve claims the key for this request. When an earlier request holds it, the booking
// that request produced is returned, or ErrIdempotencyKeyInUse while it is still running.
// A store outage lets the request through unreserved.
func (srv *bookingService) reserve(ctx context.Context, actor entity.Actor, scope, key string) (*entity.Booking, bool, error) {
	claimed, bookingID, err := srv.idempotency.Reserve(ctx, scope, key)
	if err != nil {
		srv.log(ctx).Warn("Idempotency reservation failed", slog.Any("error", err))

		return nil, false, nil
	}
	if claimed {
		return nil, true, nil
	}
	if bookingID == uuid.Nil {
		return nil, false, domainerrors.ErrIdempotencyKeyInUse
	}

	existing, err := srv.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, false, domainerrors.ErrBookingNotFound
		}

		return nil, false, errors.Wrap(err, "failed to load replayed booking")
	}
	// Keys are scoped per customer, so a mismatch means the stored entry is stale.
	if existing.CustomerID != actor.UserID {
		return nil, false, domainerrors.ErrBookingNotFound
	}

	srv.log(ctx).Info("Replayed booking creation", slog.Any("bookingID", existing.ID))

	return existing, false, nil
}

func (srv *bookingService) Get(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.Booking, error) {
	found, _, err := loadVisibleBooking(ctx, srv.bookingRepo, srv.providerRepo, actor, id)
	if err != nil {
		return nil, err
	}

	return found, nil
}

// List returns the actor's bookings by appointment, latest first.
func (srv *bookingService) List(ctx context.Context, actor entity.Actor, statuses []entity.BookingStatus) ([]*entity.Booking, error) {
	for _, s := range statuses {
		if !s.IsValid() {
			return nil, domainerrors.ErrInvalidStatus.WithDetails(string(s))
		}
	}

	filter := repository.BookingFilter{Statuses: statuses}
	switch {
	case actor.IsCustomer():
		filter.CustomerID = &actor.UserID
	case actor.IsProvider():
		providerID, err := providerIDOf(ctx, srv.providerRepo, actor)
		if err != nil {
			return nil, err
		}
		if providerID == uuid.Nil {
			return []*entity.Booking{}, nil
		}
		filter.ProviderID = &providerID
	case actor.IsAdmin():
	default:
		return nil, domainerrors.ErrForbidden
	}

	bookings, err := srv.bookingRepo.List(ctx, repository.BookingQuery{
		Filter: filter,
		Order:  repository.OrderScheduleDesc,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return nonNilBookings(bookings), nil
}

// Transition validates the status change against the lifecycle and writes it with a compare-and-set.
func (srv *bookingService) Transition(ctx context.Context, actor entity.Actor, id uuid.UUID, to entity.BookingStatus) (*entity.Booking, error) {
	if !to.IsValid() {
		return nil, domainerrors.ErrInvalidStatus.WithDetails(string(to))
	}

	var (
		from    entity.BookingStatus
		updated entity.Booking
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookingRepo := repoFactory.BookingRepo()

		current, party, err := loadVisibleBooking(ctx, bookingRepo, repoFactory.ProviderRepo(), actor, id)
		if err != nil {
			return err
		}

		next, err := booking.Transition(*current, party, to, srv.now())
		if err != nil {
			return err
		}

		if err := bookingRepo.UpdateStatus(ctx, id, current.Status, next.Status, next.UpdatedAt); err != nil {
			switch {
			case errors.Is(err, repository.ErrBookingStatusConflict):
				return domainerrors.ErrInvalidTransition.WithDetails("booking status changed concurrently")
			case errors.Is(err, repository.ErrBookingNotFound):
				return domainerrors.ErrBookingNotFound
			}

			return errors.Wrap(err, "failed to update booking status")
		}

		from = current.Status
		updated = next

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Booking transition rejected",
			slog.Any("bookingID", id), slog.Any("to", to), slog.Any("role", actor.Role), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to transition booking")
	}

	srv.metrics.BookingTransitioned(from, updated.Status)
	srv.log(ctx).Info("Booking status changed", slog.Any("bookingID", id), slog.Any("from", from), slog.Any("to", updated.Status))

	return &updated, nil
}

func (srv *bookingService) Cancel(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.Booking, error) {
	return srv.Transition(ctx, actor, id, entity.BookingStatusCancelled)
}

func (srv *bookingService) CheckInQR(ctx context.Context, actor entity.Actor, id uuid.UUID) ([]byte, error) {
	found, _, err := loadVisibleBooking(ctx, srv.bookingRepo, srv.providerRepo, actor, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateBookingQR(found.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render check-in code")
	}

	return png, nil
}

// ResolveCheckIn maps a scanned payload to the booking, if the actor may see it.
func (srv *bookingService) ResolveCheckIn(ctx context.Context, actor entity.Actor, qrData string) (*entity.Booking, error) {
	bookingID, err := srv.qrCode.ParseBookingQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unreadable check-in code")
	}

	found, _, err := loadVisibleBooking(ctx, srv.bookingRepo, srv.providerRepo, actor, bookingID)
	if err != nil {
		return nil, err
	}

	return found, nil
}
