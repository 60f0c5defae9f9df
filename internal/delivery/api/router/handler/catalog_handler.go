package handler

import (
	"net/http"
	"strconv"

	"washapp/internal/delivery/api/response"
	"washapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// CatalogHandler serves categories and services.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{catalogUC: params.CatalogUC}
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

type ServiceRequest struct {
	CategoryID  uuid.UUID       `json:"category_id" validate:"required"`
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Duration    int             `json:"duration" validate:"min=0"`
	IsActive    *bool           `json:"is_active"`
}

func (r *ServiceRequest) toInput() *usecase.ServiceInput {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}

	return &usecase.ServiceInput{
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Duration:    r.Duration,
		IsActive:    active,
	}
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}

	var req CreateCategoryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	category, err := h.catalogUC.CreateCategory(c.Request().Context(), actor, &usecase.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, category)
}

// ListServices supports ?category_id= and, for admins, ?include_inactive=true.
func (h *CatalogHandler) ListServices(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}

	input := &usecase.ListServicesInput{Actor: actor}
	if raw := c.QueryParam("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return response.BindingError(c, "Invalid category_id")
		}
		input.CategoryID = &categoryID
	}
	if raw := c.QueryParam("include_inactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BindingError(c, "Invalid include_inactive")
		}
		input.IncludeInactive = includeInactive
	}

	services, err := h.catalogUC.ListServices(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, services)
}

func (h *CatalogHandler) GetService(c echo.Context) error {
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	svc, err := h.catalogUC.GetService(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, svc)
}

func (h *CatalogHandler) CreateService(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}

	var req ServiceRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	svc, err := h.catalogUC.CreateService(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, svc)
}

func (h *CatalogHandler) UpdateService(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	var req ServiceRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	svc, err := h.catalogUC.UpdateService(c.Request().Context(), actor, id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, svc)
}

func (h *CatalogHandler) UploadServiceImage(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	input, closer, err := readUpload(c)
	if err != nil {
		return response.BindingError(c, err.Error())
	}
	defer closer.Close()

	svc, err := h.catalogUC.UploadServiceImage(c.Request().Context(), actor, id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, svc)
}

func (h *CatalogHandler) GetServiceImage(c echo.Context) error {
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	image, err := h.catalogUC.GetServiceImage(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, image.ContentType, image.Data)
}
