package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "washapp/internal/delivery/context"
	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	"washapp/internal/domain/repository"
	"washapp/internal/domain/service"
	"washapp/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	authRepo     repository.AuthRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	AuthRepo     repository.AuthRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		authRepo:     params.AuthRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register opens a customer or service_provider account with a password credential.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if !input.Role.IsSelfRegistrable() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be customer or service_provider")
	}

	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username), slog.Any("role", input.Role))

	user, err := srv.createAccount(ctx, &entity.User{
		Username: strings.TrimSpace(input.Username),
		Email:    strings.TrimSpace(input.Email),
		Role:     input.Role,
		Phone:    strings.TrimSpace(input.Phone),
		Address:  strings.TrimSpace(input.Address),
	}, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID), slog.Any("role", user.Role))

	return &usecase.RegisterOutput{User: user}, nil
}

// createAccount stores the user and its password credential in one transaction.
func (srv *userService) createAccount(ctx context.Context, user *entity.User, password string) (*entity.User, error) {
	hashedPassword, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypePassword, user.Username)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateUsername) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(err, "failed to create user")
		}

		credential := &entity.Authentication{
			UserID:         user.ID,
			Provider:       entity.ProviderTypePassword,
			ProviderUserID: user.Username,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, credential); err != nil {
			if errors.Is(err, repository.ErrDuplicateUsername) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(err, "failed to create authentication")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login checks the password and opens a session.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	credential, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypePassword, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown username", slog.String("username", input.Username))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.Any("userID", credential.UserID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.userRepo.FindByID(ctx, credential.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, []string{user.Role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	now := srv.now()
	session := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: now.Add(srv.tokenService.GetRefreshTokenDuration()),
		CreatedAt: now,
	}
	if err := srv.authRepo.CreateRefreshToken(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID), slog.Any("role", user.Role))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// RefreshToken issues a new access token for a live session.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil || claims.Type != service.TokenTypeRefresh {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	session, err := srv.authRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}
	if session.IsExpired(srv.now()) || session.UserID != claims.UserID {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(user.ID, []string{user.Role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout ends the session of the given refresh token. Unknown tokens are ignored.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if err := srv.authRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken)); err != nil {
		return errors.Wrap(err, "failed to delete refresh token")
	}

	return nil
}

func (srv *userService) EnsureAdmin(ctx context.Context, input *usecase.EnsureAdminInput) error {
	if input == nil || input.Username == "" || input.Password == "" {
		srv.log(ctx).Info("No bootstrap administrator configured")

		return nil
	}

	existing, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err == nil {
		if existing.Role != entity.RoleAdmin {
			srv.log(ctx).Warn("Bootstrap admin username is held by a non-admin account",
				slog.String("username", input.Username), slog.Any("role", existing.Role))
		}

		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to look up bootstrap admin")
	}

	admin, err := srv.createAccount(ctx, &entity.User{
		Username: input.Username,
		Email:    input.Email,
		Role:     entity.RoleAdmin,
	}, input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to create bootstrap admin")
	}

	srv.log(ctx).Info("Bootstrap administrator created", slog.Any("userID", admin.ID))

	return nil
}
