package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"washapp/config"
	deliverycontext "washapp/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestEngine(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	e := newEngine(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	accept := func(c echo.Context) error {
		_, _ = io.Copy(io.Discard, c.Request().Body)

		return c.NoContent(http.StatusNoContent)
	}
	e.POST("/bookings", accept)
	e.PUT("/services/:id/image", accept)
	e.GET("/boom", func(echo.Context) error { panic("boom") })

	return e
}

func TestEngine_BodyLimit(t *testing.T) {
	e := newTestEngine(t)
	big := strings.Repeat("x", 4<<10)

	cases := []struct {
		method, path string
		want         int
	}{
		{http.MethodPost, "/bookings", http.StatusRequestEntityTooLarge},
		{http.MethodPut, "/services/42/image", http.StatusNoContent},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, strings.NewReader(big)))
		assert.Equal(t, tc.want, rec.Code, tc.path)
	}
}

func TestEngine_RecoversAndTagsRequest(t *testing.T) {
	e := newTestEngine(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestIsUploadRoute(t *testing.T) {
	e := echo.New()
	for path, want := range map[string]bool{
		"/profile/picture":   true,
		"/services/42/image": true,
		"/bookings":          false,
	} {
		c := e.NewContext(httptest.NewRequest(http.MethodPut, path, nil), httptest.NewRecorder())
		assert.Equal(t, want, isUploadRoute(c), path)
	}

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/profile/picture", nil), httptest.NewRecorder())
	assert.False(t, isUploadRoute(c))
}
