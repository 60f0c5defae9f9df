package handler

import (
	"net/http"
	"testing"

	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	mockUC "washapp/internal/mocks/usecase"
	"washapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAuthTestServer(t *testing.T) (*mockUC.MockUserUsecase, func(method, target, body string) (int, envelope)) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{UserUC: userUC})

	e := newTestEcho(nil)
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/refresh", h.RefreshToken)

	return userUC, func(method, target, body string) (int, envelope) {
		rec, env := doJSON(t, e, method, target, body)

		return rec.Code, env
	}
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		userUC, do := newAuthTestServer(t)
		userUC.EXPECT().
			Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
				return in.Username == "alice" && in.Role == entity.RoleServiceProvider
			})).
			Return(&usecase.RegisterOutput{User: &entity.User{ID: uuid.New(), Username: "alice"}}, nil)

		code, env := do(http.MethodPost, "/auth/register",
			`{"username":"alice","email":"alice@example.com","password":"s3cret-pass","role":"service_provider"}`)

		assert.Equal(t, http.StatusCreated, code)
		assert.Contains(t, string(env.Data), `"username":"alice"`)
		assert.NotContains(t, string(env.Data), "password")
	})

	t.Run("admin role is not offered", func(t *testing.T) {
		_, do := newAuthTestServer(t)

		code, env := do(http.MethodPost, "/auth/register",
			`{"username":"mallory","email":"m@example.com","password":"s3cret-pass","role":"admin"}`)

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Contains(t, env.Error.Details, "role: oneof")
	})

	t.Run("username taken", func(t *testing.T) {
		userUC, do := newAuthTestServer(t)
		userUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

		code, env := do(http.MethodPost, "/auth/register",
			`{"username":"alice","email":"alice@example.com","password":"s3cret-pass","role":"customer"}`)

		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, "USER_ALREADY_EXISTS", env.Error.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	userUC, do := newAuthTestServer(t)
	userUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "wrong"}).
		Return(nil, domainerrors.ErrInvalidCredentials)

	code, env := do(http.MethodPost, "/auth/login", `{"username":"alice","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	userUC, do := newAuthTestServer(t)
	userUC.EXPECT().
		RefreshToken(mock.Anything, &usecase.RefreshTokenInput{RefreshToken: "r1"}).
		Return(&usecase.RefreshTokenOutput{AccessToken: "a2"}, nil)

	code, env := do(http.MethodPost, "/auth/refresh", `{"refresh_token":"r1"}`)

	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"access_token":"a2"}`, string(env.Data))
}
