package repository

import (
	"context"
	"errors"

	"washapp/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository persists reviews, one per booking.
type ReviewRepository interface {
	// Upsert inserts the review or replaces rating and comment of the booking's existing one.
	// The stored row's id and timestamps are copied back into review.
	Upsert(ctx context.Context, review *entity.Review) error

	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Review, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.Review, error)

	// AverageRatingForProvider is the mean rating over reviews of the provider's bookings, 0 with none.
	AverageRatingForProvider(ctx context.Context, providerID uuid.UUID) (float64, error)
}
