package postgres

import (
	"context"
	"time"

	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	"washapp/internal/domain/repository"
	"washapp/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// bookingRepository implements repository.BookingRepository.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// Create inserts the booking. The insert runs in a nested transaction (a savepoint inside a
// caller's transaction) so a foreign-key failure leaves the connection usable for the lookup
// that names the missing reference.
func (repo *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	bookingM := fromBookingDomain(booking)
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Review", "Payments").Create(bookingM).Error
	})
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repo.missingReference(ctx, bookingM)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
	}

	booking.ID = bookingM.ID
	booking.CreatedAt = bookingM.CreatedAt
	booking.UpdatedAt = bookingM.UpdatedAt

	return nil
}

// missingReference reports which row a rejected insert pointed at: the customer, then the
// service, then the provider.
func (repo *bookingRepository) missingReference(ctx context.Context, bookingM *model.BookingModel) error {
	refs := []struct {
		table   any
		id      uuid.UUID
		missing error
	}{
		{&model.UserModel{}, bookingM.CustomerID, repository.ErrUserNotFound},
		{&model.ServiceModel{}, bookingM.ServiceID, repository.ErrServiceNotFound},
		{&model.ServiceProviderModel{}, bookingM.ProviderID, repository.ErrProviderNotFound},
	}

	for _, ref := range refs {
		var count int64
		if err := primary(ctx, repo.db).Model(ref.table).Where("id = ?", ref.id).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to resolve booking reference")
		}
		if count == 0 {
			return ref.missing
		}
	}

	return errors.Wrap(gorm.ErrForeignKeyViolated, "booking reference rejected")
}

func (repo *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var bookingM model.BookingModel
	if err := primary(ctx, repo.db).Where("id = ?", id).Take(&bookingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking by ID")
	}

	return toBookingDomain(&bookingM), nil
}

func (repo *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Updates(map[string]any{
			"status":     to.String(),
			"updated_at": at,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update booking status")
	}
	if result.RowsAffected == 0 {
		var exists int64
		if err := repo.db.WithContext(ctx).Model(&model.BookingModel{}).Where("id = ?", id).Count(&exists).Error; err != nil {
			return errors.Wrap(err, "failed to check booking existence")
		}
		if exists == 0 {
			return repository.ErrBookingNotFound
		}

		return repository.ErrBookingStatusConflict
	}

	return nil
}

func (repo *bookingRepository) List(ctx context.Context, query repository.BookingQuery) ([]*entity.Booking, error) {
	tx := applyBookingFilter(replica(ctx, repo.db).Model(&model.BookingModel{}), query.Filter)

	switch query.Order {
	case repository.OrderScheduleAsc:
		tx = tx.Order("booking_date ASC").Order("booking_time ASC").Order("id ASC")
	case repository.OrderScheduleDesc:
		tx = tx.Order("booking_date DESC").Order("booking_time DESC").Order("id DESC")
	default:
		tx = tx.Order("created_at DESC").Order("id DESC")
	}
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}

	var bookingMs []model.BookingModel
	if err := tx.Find(&bookingMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	bookings := make([]*entity.Booking, 0, len(bookingMs))
	for i := range bookingMs {
		bookings = append(bookings, toBookingDomain(&bookingMs[i]))
	}

	return bookings, nil
}

func (repo *bookingRepository) Count(ctx context.Context, filter repository.BookingFilter) (int64, error) {
	var count int64
	if err := applyBookingFilter(replica(ctx, repo.db).Model(&model.BookingModel{}), filter).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count bookings")
	}

	return count, nil
}

func (repo *bookingRepository) SumTotalAmount(ctx context.Context, filter repository.BookingFilter) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := applyBookingFilter(replica(ctx, repo.db).Model(&model.BookingModel{}), filter).
		Select("COALESCE(SUM(total_amount), 0)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum booking amounts")
	}

	return sum, nil
}

func applyBookingFilter(tx *gorm.DB, filter repository.BookingFilter) *gorm.DB {
	if filter.CustomerID != nil {
		tx = tx.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.ProviderID != nil {
		tx = tx.Where("provider_id = ?", *filter.ProviderID)
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, s.String())
		}
		tx = tx.Where("status IN ?", statuses)
	}
	if filter.Date != nil {
		tx = tx.Where("booking_date = ?", datatypes.Date(entity.DateOnly(*filter.Date)))
	}
	if filter.FromDate != nil {
		tx = tx.Where("booking_date >= ?", datatypes.Date(entity.DateOnly(*filter.FromDate)))
	}

	return tx
}

func toBookingDomain(data *model.BookingModel) *entity.Booking {
	return &entity.Booking{
		ID:                  data.ID,
		CustomerID:          data.CustomerID,
		ServiceID:           data.ServiceID,
		ProviderID:          data.ProviderID,
		BookingDate:         entity.DateOnly(time.Time(data.BookingDate)),
		BookingTime:         entity.TimeOfDay(data.BookingTime),
		VehicleType:         data.VehicleType,
		VehicleNumber:       data.VehicleNumber,
		SpecialInstructions: data.SpecialInstructions,
		Status:              entity.BookingStatus(data.Status),
		TotalAmount:         data.TotalAmount,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromBookingDomain(data *entity.Booking) *model.BookingModel {
	return &model.BookingModel{
		ID:                  data.ID,
		CustomerID:          data.CustomerID,
		ServiceID:           data.ServiceID,
		ProviderID:          data.ProviderID,
		BookingDate:         datatypes.Date(entity.DateOnly(data.BookingDate)),
		BookingTime:         datatypes.Time(data.BookingTime),
		VehicleType:         data.VehicleType,
		VehicleNumber:       data.VehicleNumber,
		SpecialInstructions: data.SpecialInstructions,
		Status:              data.Status.String(),
		TotalAmount:         data.TotalAmount,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
