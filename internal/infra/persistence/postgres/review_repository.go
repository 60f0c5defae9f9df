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
	"gorm.io/gorm/clause"
)

// reviewRepository implements repository.ReviewRepository.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (repo *reviewRepository) Upsert(ctx context.Context, review *entity.Review) error {
	reviewM := &model.ReviewModel{
		ID:         review.ID,
		BookingID:  review.BookingID,
		CustomerID: review.CustomerID,
		Rating:     review.Rating,
		Comment:    review.Comment,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "booking_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "updated_at"}),
		}).
		Create(reviewM).Error
	if err != nil {
		switch {
		case isCheckConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
		case isForeignKeyConstraintViolation(err):
			return repository.ErrBookingNotFound
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to upsert review")
		}
	}

	stored, err := repo.FindByBookingID(ctx, review.BookingID)
	if err != nil {
		return err
	}
	*review = *stored

	return nil
}

func (repo *reviewRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel
	if err := primary(ctx, repo.db).Where("booking_id = ?", bookingID).Take(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by booking")
	}

	return toReviewDomain(&reviewM), nil
}

func (repo *reviewRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.Review, error) {
	var reviewMs []model.ReviewModel
	err := replica(ctx, repo.db).
		Joins("JOIN bookings ON bookings.id = reviews.booking_id").
		Where("bookings.provider_id = ?", providerID).
		Order("reviews.created_at DESC").
		Find(&reviewMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list provider reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewMs))
	for i := range reviewMs {
		reviews = append(reviews, toReviewDomain(&reviewMs[i]))
	}

	return reviews, nil
}

// AverageRatingForProvider reads from the primary: it runs right after an upsert in the same transaction.
func (repo *reviewRepository) AverageRatingForProvider(ctx context.Context, providerID uuid.UUID) (float64, error) {
	var avg float64
	err := primary(ctx, repo.db).
		Model(&model.ReviewModel{}).
		Joins("JOIN bookings ON bookings.id = reviews.booking_id").
		Where("bookings.provider_id = ?", providerID).
		Select("COALESCE(AVG(reviews.rating), 0)").
		Row().
		Scan(&avg)
	if err != nil {
		return 0, errors.Wrap(err, "failed to average provider ratings")
	}

	return avg, nil
}

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:         data.ID,
		BookingID:  data.BookingID,
		CustomerID: data.CustomerID,
		Rating:     data.Rating,
		Comment:    data.Comment,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
