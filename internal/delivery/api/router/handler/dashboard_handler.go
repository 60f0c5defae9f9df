package handler

import (
	"net/http"

	"washapp/internal/delivery/api/response"
	"washapp/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
}

type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
}

func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{dashboardUC: params.DashboardUC}
}

func (h *DashboardHandler) Get(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}

	dashboard, err := h.dashboardUC.Get(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dashboard)
}
