package usecase

import (
	"context"

	"washapp/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewUsecase writes reviews and keeps provider ratings in step with them.
type ReviewUsecase interface {
	// Submit creates or replaces the review of a completed booking owned by the actor.
	Submit(ctx context.Context, actor entity.Actor, bookingID uuid.UUID, input *SubmitReviewInput) (*entity.Review, error)
	ListForProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.Review, error)
}

type SubmitReviewInput struct {
	Rating  int
	Comment string
}
