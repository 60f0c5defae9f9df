package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"washapp/internal/domain/entity"
	mockUC "washapp/internal/mocks/usecase"
	"washapp/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProfileTestEcho(t *testing.T, actor *entity.Actor) (*mockUC.MockProfileUsecase, *echo.Echo) {
	profileUC := mockUC.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC})

	e := newTestEcho(actor)
	e.PUT("/profile", h.UpdateProfile)
	e.GET("/profile/picture", h.GetPicture)
	e.PUT("/profile/picture", h.UploadPicture)

	return profileUC, e
}

func TestProfileHandler_UpdateProfile_PartialFields(t *testing.T) {
	actor := customerActor()
	profileUC, e := newProfileTestEcho(t, actor)

	profileUC.EXPECT().
		UpdateProfile(mock.Anything, actor.UserID, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
			return in.Email == nil && in.Address == nil && in.Phone != nil && *in.Phone == "555-0100"
		})).
		Return(&entity.User{ID: actor.UserID, Phone: "555-0100"}, nil)

	rec, _ := doJSON(t, e, http.MethodPut, "/profile", `{"phone":"555-0100"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := doJSON(t, e, http.MethodPut, "/profile", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestProfileHandler_UploadPicture_Multipart(t *testing.T) {
	actor := customerActor()
	profileUC, e := newProfileTestEcho(t, actor)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", `form-data; name="image"; filename="me.png"`)
	partHeader.Set("Content-Type", "image/png")
	part, err := form.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	profileUC.EXPECT().
		UploadPicture(mock.Anything, actor.UserID, mock.MatchedBy(func(in *usecase.UploadInput) bool {
			data, _ := io.ReadAll(in.Body)

			return in.ContentType == "image/png" && string(data) == "\x89PNG"
		})).
		Return(&entity.User{ID: actor.UserID, ProfilePicture: "profiles/x.png"}, nil)

	req := httptest.NewRequest(http.MethodPut, "/profile/picture", &body)
	req.Header.Set(echo.HeaderContentType, form.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileHandler_GetPicture(t *testing.T) {
	actor := customerActor()
	profileUC, e := newProfileTestEcho(t, actor)

	profileUC.EXPECT().GetPicture(mock.Anything, actor.UserID).
		Return(&usecase.Download{ContentType: "image/jpeg", Data: []byte("jpeg")}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile/picture", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "jpeg", rec.Body.String())
}
