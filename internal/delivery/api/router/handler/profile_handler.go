package handler

import (
	"net/http"

	"washapp/internal/delivery/api/response"
	"washapp/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

// ProfileHandler serves the signed-in user's own account.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{profileUC: params.ProfileUC}
}

// UpdateProfileRequest; omitted fields keep their current value.
type UpdateProfileRequest struct {
	Email   *string `json:"email" validate:"omitnil,email,max=254"`
	Phone   *string `json:"phone" validate:"omitnil,max=20"`
	Address *string `json:"address"`
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}

	var req UpdateProfileRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), actor.UserID, &usecase.UpdateProfileInput{
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *ProfileHandler) DeleteAccount(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}

	if err := h.profileUC.DeleteAccount(c.Request().Context(), actor.UserID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ProfileHandler) UploadPicture(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}

	input, closer, err := readUpload(c)
	if err != nil {
		return response.BindingError(c, err.Error())
	}
	defer closer.Close()

	user, err := h.profileUC.UploadPicture(c.Request().Context(), actor.UserID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *ProfileHandler) GetPicture(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}

	picture, err := h.profileUC.GetPicture(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, picture.ContentType, picture.Data)
}
