// Package handler contains the HTTP handlers of the JSON API.
package handler

import (
	"net/http"

	"washapp/internal/delivery/api/middleware"
	"washapp/internal/delivery/api/response"
	"washapp/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// actorOrAbort returns the authenticated actor; ok is false once a 401 has been written.
func actorOrAbort(c echo.Context) (entity.Actor, bool, error) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return entity.Actor{}, false, response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	return actor, true, nil
}

// uuidParam parses the named path parameter; ok is false once a 400 has been written.
func uuidParam(c echo.Context, name string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false, response.BindingError(c, "Invalid "+name)
	}

	return id, true, nil
}

// bindAndValidate decodes the request into req and checks its validate tags.
// ok is false once an error response has been written.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, err)
	}

	return true, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
