package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"washapp/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.BookingCreated()
	m.BookingCreated()
	m.BookingTransitioned(entity.BookingStatusPending, entity.BookingStatusConfirmed)
	m.ReviewSubmitted(5)

	assert.InDelta(t, 2, testutil.ToFloat64(m.bookingCreated), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.bookingTransitions.WithLabelValues("pending", "confirmed")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.bookingTransitions.WithLabelValues("confirmed", "pending")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.reviewSubmitted.WithLabelValues("5")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.BookingCreated()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "washapp_booking_created_total 1")
}
