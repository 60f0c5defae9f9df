package handler

import (
	"net/http"

	"washapp/internal/delivery/api/response"
	"washapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
}

// CartHandler serves the signed-in user's cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
}

func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{cartUC: params.CartUC}
}

type AddCartItemRequest struct {
	ServiceID uuid.UUID `json:"service_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"min=0"`
}

func (h *CartHandler) Get(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}

	cart, err := h.cartUC.Get(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

func (h *CartHandler) Add(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}

	var req AddCartItemRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	item, err := h.cartUC.Add(c.Request().Context(), actor.UserID, req.ServiceID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item)
}

func (h *CartHandler) Remove(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}
	serviceID, ok, err := uuidParam(c, "serviceId")
	if !ok {
		return err
	}

	if err := h.cartUC.Remove(c.Request().Context(), actor.UserID, serviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
