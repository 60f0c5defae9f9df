// Package middleware contains the echo middleware specific to the JSON API.
package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"washapp/internal/delivery/api/response"
	deliverycontext "washapp/internal/delivery/context"
	"washapp/internal/domain/entity"
	"washapp/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const actorKey = "actor"

type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

// AuthMiddleware authenticates bearer access tokens and enforces roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenService, logger: params.Logger}
}

// Authenticate validates the access token and stores the caller as an entity.Actor.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
		if claims.Type != service.TokenTypeAccess {
			return response.Unauthorized(c, "INVALID_TOKEN", "Access token required")
		}

		roles := entity.RolesFromStrings(claims.Roles)
		if len(roles) == 0 {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token carries no role")
		}

		actor := entity.Actor{UserID: claims.UserID, Role: roles[0]}
		c.Set(actorKey, actor)

		ctx := c.Request().Context()
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", actor.UserID.String())))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// RequireRole admits actors holding one of roles. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok {
				return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
			}

			if !slices.Contains(roles, actor.Role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied for role "+actor.Role.String())
			}

			return next(c)
		}
	}
}

// GetActor returns the actor stored by Authenticate.
func GetActor(c echo.Context) (entity.Actor, bool) {
	actor, ok := c.Get(actorKey).(entity.Actor)

	return actor, ok
}

// SetActor stores actor the way Authenticate does.
func SetActor(c echo.Context, actor entity.Actor) {
	c.Set(actorKey, actor)
}
