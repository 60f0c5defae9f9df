package usecase

import (
	"context"
	"io"

	"washapp/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase covers the signed-in user's own account.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	UploadPicture(ctx context.Context, userID uuid.UUID, input *UploadInput) (*entity.User, error)
	GetPicture(ctx context.Context, userID uuid.UUID) (*Download, error)
	// DeleteAccount removes the user and, through storage cascades, everything the account owns.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

// UpdateProfileInput holds optional replacements; nil fields are left unchanged.
type UpdateProfileInput struct {
	Email   *string
	Phone   *string
	Address *string
}

// UploadInput is an image upload.
type UploadInput struct {
	ContentType string
	Body        io.Reader
}

// Download is a stored image.
type Download struct {
	ContentType string
	Data        []byte
}
