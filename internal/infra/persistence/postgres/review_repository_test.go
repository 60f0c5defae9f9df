package postgres

import (
	"context"
	"testing"

	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	"washapp/internal/domain/repository"
	"washapp/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepository_UpsertKeepsOneRowPerBooking(t *testing.T) {
	s := newSeed(t)
	repo := NewReviewRepository(s.db)
	ctx := context.Background()
	b := s.booking(t, day(2026, 5, 1), entity.NewTimeOfDay(9, 0), entity.BookingStatusCompleted, "25.00")

	first := &entity.Review{BookingID: b.ID, CustomerID: s.customer.ID, Rating: 2, Comment: "meh"}
	require.NoError(t, repo.Upsert(ctx, first))

	second := &entity.Review{BookingID: b.ID, CustomerID: s.customer.ID, Rating: 5, Comment: "great after all"}
	require.NoError(t, repo.Upsert(ctx, second))

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Rating)

	var rows int64
	require.NoError(t, s.db.Model(&model.ReviewModel{}).Where("booking_id = ?", b.ID).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)

	stored, err := repo.FindByBookingID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "great after all", stored.Comment)
}

func TestReviewRepository_RatingOutOfRangeRejected(t *testing.T) {
	s := newSeed(t)
	b := s.booking(t, day(2026, 5, 1), entity.NewTimeOfDay(9, 0), entity.BookingStatusCompleted, "25.00")

	err := NewReviewRepository(s.db).Upsert(context.Background(), &entity.Review{
		BookingID: b.ID, CustomerID: s.customer.ID, Rating: 6,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewRepository_AverageAndList(t *testing.T) {
	s := newSeed(t)
	repo := NewReviewRepository(s.db)
	ctx := context.Background()

	avg, err := repo.AverageRatingForProvider(ctx, s.provider.ID)
	require.NoError(t, err)
	assert.Zero(t, avg)

	for _, rating := range []int{5, 4, 4} {
		b := s.booking(t, day(2026, 5, 1), entity.NewTimeOfDay(9, 0), entity.BookingStatusCompleted, "25.00")
		require.NoError(t, repo.Upsert(ctx, &entity.Review{BookingID: b.ID, CustomerID: s.customer.ID, Rating: rating}))
	}

	avg, err = repo.AverageRatingForProvider(ctx, s.provider.ID)
	require.NoError(t, err)
	assert.InDelta(t, 13.0/3.0, avg, 1e-9)

	reviews, err := repo.ListByProvider(ctx, s.provider.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 3)

	_, err = repo.FindByBookingID(ctx, s.provider.ID)
	assert.ErrorIs(t, err, repository.ErrReviewNotFound)
}
