package impl

import (
	"context"
	"log/slog"

	deliverycontext "washapp/internal/delivery/context"
	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	"washapp/internal/domain/repository"
	"washapp/internal/domain/service"
	"washapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ratingPlaces is the precision of the stored provider rating.
const ratingPlaces = 2

type reviewService struct {
	txManager    repository.TransactionManager
	reviewRepo   repository.ReviewRepository
	providerRepo repository.ProviderRepository
	metrics      service.BookingMetrics
	logger       *slog.Logger
}

type ReviewServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ReviewRepo   repository.ReviewRepository
	ProviderRepo repository.ProviderRepository
	Metrics      service.BookingMetrics
	Logger       *slog.Logger
}

func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:    params.TxManager,
		reviewRepo:   params.ReviewRepo,
		providerRepo: params.ProviderRepo,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit stores the customer's review of a completed booking and recomputes the
// provider's rating in the same transaction.
func (srv *reviewService) Submit(ctx context.Context, actor entity.Actor, bookingID uuid.UUID, input *usecase.SubmitReviewInput) (*entity.Review, error) {
	if input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
	}

	review := &entity.Review{
		BookingID:  bookingID,
		CustomerID: actor.UserID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}

	var rating decimal.Decimal
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewed, err := repoFactory.BookingRepo().FindByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, repository.ErrBookingNotFound) {
				return domainerrors.ErrBookingNotFound
			}

			return errors.Wrap(err, "failed to find booking")
		}
		if !actor.IsCustomer() || reviewed.CustomerID != actor.UserID {
			return domainerrors.ErrBookingNotFound
		}
		if reviewed.Status != entity.BookingStatusCompleted {
			return domainerrors.ErrBookingNotReviewable
		}

		// Recomputes for one provider run one at a time under its row lock.
		if err := repoFactory.ProviderRepo().LockByID(ctx, reviewed.ProviderID); err != nil {
			return errors.Wrap(err, "failed to lock provider")
		}

		if err := repoFactory.ReviewRepo().Upsert(ctx, review); err != nil {
			return errors.Wrap(err, "failed to upsert review")
		}

		avg, err := repoFactory.ReviewRepo().AverageRatingForProvider(ctx, reviewed.ProviderID)
		if err != nil {
			return errors.Wrap(err, "failed to average provider ratings")
		}
		rating = decimal.NewFromFloat(avg).Round(ratingPlaces)

		if err := repoFactory.ProviderRepo().UpdateRating(ctx, reviewed.ProviderID, rating); err != nil {
			return errors.Wrap(err, "failed to update provider rating")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Review submission failed", slog.Any("bookingID", bookingID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to submit review")
	}

	srv.metrics.ReviewSubmitted(review.Rating)
	srv.log(ctx).Info("Review stored",
		slog.Any("bookingID", bookingID),
		slog.Int("rating", review.Rating),
		slog.String("providerRating", rating.StringFixed(ratingPlaces)),
	)

	return review, nil
}

// ListForProvider returns the provider's reviews, newest first.
func (srv *reviewService) ListForProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.Review, error) {
	if _, err := srv.providerRepo.FindByID(ctx, providerID); err != nil {
		return nil, mapProviderReadError(err)
	}

	reviews, err := srv.reviewRepo.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}
	if reviews == nil {
		reviews = []*entity.Review{}
	}

	return reviews, nil
}
