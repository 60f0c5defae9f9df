package impl

import (
	"bytes"
	"context"
	"log/slog"

	"washapp/config"
	deliverycontext "washapp/internal/delivery/context"
	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	"washapp/internal/domain/repository"
	"washapp/internal/domain/service"
	"washapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	blobs         service.BlobStore
	maxUploadSize int64
	logger        *slog.Logger
}

type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Blobs     service.BlobStore
	Config    *config.Config
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		blobs:         params.Blobs,
		maxUploadSize: params.Config.Blob.MaxUploadSize,
		logger:        params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the user's account data.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile replaces the contact fields present in input.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating user profile", slog.Any("userID", userID))

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		if input.Email != nil {
			user.Email = *input.Email
		}
		if input.Phone != nil {
			user.Phone = *input.Phone
		}
		if input.Address != nil {
			user.Address = *input.Address
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	return updated, nil
}

// UploadPicture stores the image under profiles/<user id> and points the account at it.
func (srv *profileService) UploadPicture(ctx context.Context, userID uuid.UUID, input *usecase.UploadInput) (*entity.User, error) {
	data, ext, err := readImage(input, srv.maxUploadSize)
	if err != nil {
		return nil, err
	}

	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := "profiles/" + userID.String() + ext
	if err := srv.blobs.Upload(ctx, key, input.ContentType, bytes.NewReader(data)); err != nil {
		return nil, errors.Wrap(err, "failed to upload profile picture")
	}

	previous := user.ProfilePicture
	user.ProfilePicture = key
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to save profile picture")
	}

	if previous != "" && previous != key {
		srv.deleteBlob(ctx, previous)
	}

	srv.log(ctx).Info("Profile picture updated", slog.Any("userID", userID), slog.String("key", key))

	return user, nil
}

func (srv *profileService) GetPicture(ctx context.Context, userID uuid.UUID) (*usecase.Download, error) {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.ProfilePicture == "" {
		return nil, domainerrors.ErrNotFound.WithDetails("no profile picture")
	}

	return download(ctx, srv.blobs, user.ProfilePicture)
}

// DeleteAccount removes the user row; foreign keys cascade to everything the account owns.
func (srv *profileService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	if user.ProfilePicture != "" {
		srv.deleteBlob(ctx, user.ProfilePicture)
	}

	srv.log(ctx).Info("Account deleted", slog.Any("userID", userID), slog.Any("role", user.Role))

	return nil
}

// deleteBlob drops a no longer referenced object; failures only leave an orphan behind.
func (srv *profileService) deleteBlob(ctx context.Context, key string) {
	if err := srv.blobs.Delete(ctx, key); err != nil && !errors.Is(err, service.ErrBlobNotFound) {
		srv.log(ctx).Warn("Failed to delete blob", slog.String("key", key), slog.Any("error", err))
	}
}

func download(ctx context.Context, blobs service.BlobStore, key string) (*usecase.Download, error) {
	data, contentType, err := blobs.Download(ctx, key)
	if err != nil {
		if errors.Is(err, service.ErrBlobNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("image not found")
		}

		return nil, errors.Wrap(err, "failed to download image")
	}

	return &usecase.Download{ContentType: contentType, Data: data}, nil
}
