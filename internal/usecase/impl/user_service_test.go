package impl

import (
	"context"
	"testing"
	"time"

	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	"washapp/internal/domain/repository"
	"washapp/internal/domain/service"
	mockSvc "washapp/internal/mocks/service"
	"washapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	repoFixtures
	service      *userService
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	repos := newRepoFixtures(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	srv := NewUserService(UserServiceParams{
		TxManager:    repos.txManager,
		UserRepo:     repos.userRepo,
		AuthRepo:     repos.authRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	}).(*userService)
	srv.now = func() time.Time { return fixedNow }

	return userServiceFixtures{
		repoFixtures: repos,
		service:      srv,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Password123!",
		Role:     entity.RoleCustomer,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypePassword, "alice").Return(nil, repository.ErrAuthNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, u *entity.User) { u.ID = uuid.New() }).
		Return(nil)
	fx.authRepo.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(a *entity.Authentication) bool {
			return a.PasswordHash == "hashed" && a.ProviderUserID == "alice" && a.UserID != uuid.Nil
		})).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "alice", output.User.Username)
	assert.Equal(t, entity.RoleCustomer, output.User.Role)
}

func TestUserService_Register_AdminRoleRejected(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Username: "root", Password: "x", Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("pw").Return("hashed", nil)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypePassword, "bob").
		Return(&entity.Authentication{UserID: uuid.New()}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "bob", Password: "pw", Role: entity.RoleServiceProvider})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "alice", Role: entity.RoleCustomer}
	credential := &entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}

	t.Run("success stores the refresh token hash", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypePassword, "alice").Return(credential, nil)
		fx.hasher.EXPECT().Check("pw", "hashed").Return(true)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.tokenService.EXPECT().GenerateTokens(user.ID, []string{"customer"}).Return("access", "refresh", nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
		fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
		fx.authRepo.EXPECT().
			CreateRefreshToken(ctx, mock.MatchedBy(func(rt *entity.RefreshToken) bool {
				return rt.TokenHash == "refresh-hash" && rt.ExpiresAt.Equal(fixedNow.Add(time.Hour))
			})).
			Return(nil)

		output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "pw"})

		require.NoError(t, err)
		assert.Equal(t, "access", output.AccessToken)
		assert.Equal(t, "refresh", output.RefreshToken)
		assert.Equal(t, user, output.User)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypePassword, "alice").Return(credential, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Username: "alice", Password: "nope"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypePassword, "ghost").Return(nil, repository.ErrAuthNotFound)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Username: "ghost", Password: "pw"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestUserService_RefreshToken(t *testing.T) {
	userID := uuid.New()
	claims := &service.Claims{UserID: userID, Type: service.TokenTypeRefresh}

	t.Run("live session", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.tokenService.EXPECT().ValidateToken("refresh").Return(claims, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("h")
		fx.authRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, "h").
			Return(&entity.RefreshToken{UserID: userID, ExpiresAt: fixedNow.Add(time.Minute)}, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID, Role: entity.RoleAdmin}, nil)
		fx.tokenService.EXPECT().GenerateTokens(userID, []string{"admin"}).Return("access-2", "unused", nil)

		output, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "refresh"})

		require.NoError(t, err)
		assert.Equal(t, "access-2", output.AccessToken)
	})

	t.Run("access token presented", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.tokenService.EXPECT().ValidateToken("access").Return(&service.Claims{UserID: userID, Type: service.TokenTypeAccess}, nil)

		_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "access"})
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("revoked session", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.tokenService.EXPECT().ValidateToken("refresh").Return(claims, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("h")
		fx.authRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, "h").Return(nil, repository.ErrTokenNotFound)

		_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "refresh"})
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("expired session", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.tokenService.EXPECT().ValidateToken("refresh").Return(claims, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("h")
		fx.authRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, "h").
			Return(&entity.RefreshToken{UserID: userID, ExpiresAt: fixedNow}, nil)

		_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "refresh"})
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}

func TestUserService_Logout(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().HashToken("refresh").Return("h")
	fx.authRepo.EXPECT().DeleteRefreshTokenByHash(mock.Anything, "h").Return(nil)

	require.NoError(t, fx.service.Logout(context.Background(), &usecase.LogoutInput{RefreshToken: "refresh"}))
}

func TestUserService_EnsureAdmin(t *testing.T) {
	input := &usecase.EnsureAdminInput{Username: "admin", Email: "admin@example.com", Password: "secret"}

	t.Run("creates the admin once", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.userRepo.EXPECT().FindByUsername(mock.Anything, "admin").Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)
		fx.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypePassword, "admin").Return(nil, repository.ErrAuthNotFound)
		fx.userRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool { return u.Role == entity.RoleAdmin })).
			Return(nil)
		fx.authRepo.EXPECT().CreateAuthentication(mock.Anything, mock.Anything).Return(nil)

		require.NoError(t, fx.service.EnsureAdmin(context.Background(), input))
	})

	t.Run("existing account is left alone", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.userRepo.EXPECT().FindByUsername(mock.Anything, "admin").Return(&entity.User{Role: entity.RoleAdmin}, nil)

		require.NoError(t, fx.service.EnsureAdmin(context.Background(), input))
	})

	t.Run("not configured", func(t *testing.T) {
		fx := createTestUserService(t)

		require.NoError(t, fx.service.EnsureAdmin(context.Background(), &usecase.EnsureAdminInput{}))
	})

	t.Run("lookup failure", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.userRepo.EXPECT().FindByUsername(mock.Anything, "admin").Return(nil, errors.New("connection reset"))

		assert.Error(t, fx.service.EnsureAdmin(context.Background(), input))
	})
}
