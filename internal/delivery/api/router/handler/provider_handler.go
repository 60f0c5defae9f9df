package handler

import (
	"net/http"

	"washapp/internal/delivery/api/response"
	"washapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type ProviderHandlerParams struct {
	fx.In

	ProviderUC usecase.ProviderUsecase
	ReviewUC   usecase.ReviewUsecase
}

// ProviderHandler serves provider profiles and their reviews.
type ProviderHandler struct {
	providerUC usecase.ProviderUsecase
	reviewUC   usecase.ReviewUsecase
}

func NewProviderHandler(params ProviderHandlerParams) *ProviderHandler {
	return &ProviderHandler{providerUC: params.ProviderUC, reviewUC: params.ReviewUC}
}

type RegisterProviderRequest struct {
	CompanyName string      `json:"company_name" validate:"required,max=200"`
	Address     string      `json:"address"`
	Phone       string      `json:"phone" validate:"max=20"`
	Email       string      `json:"email" validate:"omitempty,email,max=254"`
	ServiceIDs  []uuid.UUID `json:"service_ids"`
}

type UpdateServicesRequest struct {
	ServiceIDs []uuid.UUID `json:"service_ids"`
}

type VerificationRequest struct {
	Verified *bool `json:"verified" validate:"required"`
}

func (h *ProviderHandler) Register(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}

	var req RegisterProviderRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	provider, err := h.providerUC.Register(c.Request().Context(), actor, &usecase.RegisterProviderInput{
		CompanyName: req.CompanyName,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		ServiceIDs:  req.ServiceIDs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, provider)
}

func (h *ProviderHandler) GetMine(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}

	provider, err := h.providerUC.GetMine(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, provider)
}

func (h *ProviderHandler) UpdateServices(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}

	var req UpdateServicesRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	provider, err := h.providerUC.UpdateServices(c.Request().Context(), actor, req.ServiceIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, provider)
}

func (h *ProviderHandler) Get(c echo.Context) error {
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	provider, err := h.providerUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, provider)
}

func (h *ProviderHandler) ListReviews(c echo.Context) error {
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	reviews, err := h.reviewUC.ListForProvider(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews)
}

func (h *ProviderHandler) SetVerified(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	var req VerificationRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	provider, err := h.providerUC.SetVerified(c.Request().Context(), actor, id, *req.Verified)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, provider)
}
