package impl

import (
	"context"
	"testing"

	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	"washapp/internal/domain/repository"
	mockSvc "washapp/internal/mocks/service"
	"washapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	repoFixtures
	service usecase.ReviewUsecase
	metrics *mockSvc.MockBookingMetrics
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	repos := newRepoFixtures(t)
	metrics := mockSvc.NewMockBookingMetrics(t)

	return reviewServiceFixtures{
		repoFixtures: repos,
		metrics:      metrics,
		service: NewReviewService(ReviewServiceParams{
			TxManager:    repos.txManager,
			ReviewRepo:   repos.reviewRepo,
			ProviderRepo: repos.providerRepo,
			Metrics:      metrics,
			Logger:       newDiscardLogger(),
		}),
	}
}

func TestReviewService_Submit_RecomputesRating(t *testing.T) {
	fx := createTestReviewService(t)
	actor := customer()
	b := &entity.Booking{ID: uuid.New(), CustomerID: actor.UserID, ProviderID: uuid.New(), Status: entity.BookingStatusCompleted}

	fx.bookingRepo.EXPECT().FindByID(mock.Anything, b.ID).Return(b, nil)
	lock := fx.providerRepo.EXPECT().LockByID(mock.Anything, b.ProviderID).Return(nil)
	fx.reviewRepo.EXPECT().
		Upsert(mock.Anything, mock.MatchedBy(func(r *entity.Review) bool {
			return r.BookingID == b.ID && r.CustomerID == actor.UserID && r.Rating == 4 && r.Comment == "spotless"
		})).
		Return(nil).
		NotBefore(lock.Call)
	fx.reviewRepo.EXPECT().AverageRatingForProvider(mock.Anything, b.ProviderID).Return(13.0/3.0, nil).NotBefore(lock.Call)
	fx.providerRepo.EXPECT().
		UpdateRating(mock.Anything, b.ProviderID, mock.MatchedBy(func(d decimal.Decimal) bool {
			return d.Equal(decimal.RequireFromString("4.33"))
		})).
		Return(nil)
	fx.metrics.EXPECT().ReviewSubmitted(4).Return()

	review, err := fx.service.Submit(context.Background(), actor, b.ID, &usecase.SubmitReviewInput{Rating: 4, Comment: "spotless"})

	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
}

func TestReviewService_Submit_LockFailureAborts(t *testing.T) {
	fx := createTestReviewService(t)
	actor := customer()
	b := &entity.Booking{ID: uuid.New(), CustomerID: actor.UserID, ProviderID: uuid.New(), Status: entity.BookingStatusCompleted}

	fx.bookingRepo.EXPECT().FindByID(mock.Anything, b.ID).Return(b, nil)
	fx.providerRepo.EXPECT().LockByID(mock.Anything, b.ProviderID).Return(repository.ErrProviderNotFound)

	_, err := fx.service.Submit(context.Background(), actor, b.ID, &usecase.SubmitReviewInput{Rating: 4})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrProviderNotFound)
}

func TestReviewService_Submit_RatingOutOfRange(t *testing.T) {
	fx := createTestReviewService(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := fx.service.Submit(context.Background(), customer(), uuid.New(), &usecase.SubmitReviewInput{Rating: rating})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, rating)
	}
}

func TestReviewService_Submit_NotOwned(t *testing.T) {
	fx := createTestReviewService(t)
	b := &entity.Booking{ID: uuid.New(), CustomerID: uuid.New(), Status: entity.BookingStatusCompleted}

	fx.bookingRepo.EXPECT().FindByID(mock.Anything, b.ID).Return(b, nil)

	_, err := fx.service.Submit(context.Background(), customer(), b.ID, &usecase.SubmitReviewInput{Rating: 5})
	assert.ErrorIs(t, err, domainerrors.ErrBookingNotFound)
}

func TestReviewService_Submit_NotCompleted(t *testing.T) {
	fx := createTestReviewService(t)
	actor := customer()
	b := &entity.Booking{ID: uuid.New(), CustomerID: actor.UserID, Status: entity.BookingStatusInProgress}

	fx.bookingRepo.EXPECT().FindByID(mock.Anything, b.ID).Return(b, nil)

	_, err := fx.service.Submit(context.Background(), actor, b.ID, &usecase.SubmitReviewInput{Rating: 5})
	assert.ErrorIs(t, err, domainerrors.ErrBookingNotReviewable)
}

func TestReviewService_ListForProvider(t *testing.T) {
	fx := createTestReviewService(t)
	providerID := uuid.New()

	fx.providerRepo.EXPECT().FindByID(mock.Anything, providerID).Return(&entity.ServiceProvider{ID: providerID}, nil)
	fx.reviewRepo.EXPECT().ListByProvider(mock.Anything, providerID).Return(nil, nil)

	reviews, err := fx.service.ListForProvider(context.Background(), providerID)
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)

	missing := uuid.New()
	fx.providerRepo.EXPECT().FindByID(mock.Anything, missing).Return(nil, repository.ErrProviderNotFound)

	_, err = fx.service.ListForProvider(context.Background(), missing)
	assert.ErrorIs(t, err, domainerrors.ErrProviderNotFound)
}
