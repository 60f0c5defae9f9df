package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders and reads the check-in code shown at the wash bay.
type QRCodeService interface {
	// GenerateBookingQR returns a PNG encoding the booking id.
	GenerateBookingQR(bookingID uuid.UUID) ([]byte, error)

	// ParseBookingQR decodes the text payload of a scanned code.
	ParseBookingQR(qrData string) (uuid.UUID, error)
}
