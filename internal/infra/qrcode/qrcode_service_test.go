package qrcode

import (
	"encoding/json"
	"testing"

	"washapp/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: tt.level}})
			impl := svc.(*qrcodeService)
			assert.Equal(t, tt.want, impl.errorCorrectionLevel)
			assert.Equal(t, 128, impl.size)
		})
	}
}

func TestNewQRCodeService_DefaultSize(t *testing.T) {
	impl := NewQRCodeService(&config.Config{}).(*qrcodeService)
	assert.Equal(t, defaultSize, impl.size)
}

func TestQRCodeService_GenerateBookingQR(t *testing.T) {
	svc := newQRCodeService(256, "M")

	qrBytes, err := svc.GenerateBookingQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ParseBookingQR(t *testing.T) {
	svc := newQRCodeService(256, "M")
	bookingID := uuid.New()

	payload, err := json.Marshal(QRCodeData{BookingID: bookingID.String(), Type: "booking"})
	require.NoError(t, err)

	got, err := svc.ParseBookingQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, bookingID, got)
}

func TestQRCodeService_ParseBookingQR_Invalid(t *testing.T) {
	svc := newQRCodeService(256, "M")

	tests := []struct {
		name    string
		payload string
		errText string
	}{
		{"not json", "{", "failed to unmarshal"},
		{"wrong type", `{"booking_id":"` + uuid.NewString() + `","type":"subscription"}`, "invalid QR code type"},
		{"bad id", `{"booking_id":"nope","type":"booking"}`, "failed to parse booking ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseBookingQR(tt.payload)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}
