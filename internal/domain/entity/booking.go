package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// BookingStatuses lists every status in lifecycle order.
var BookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusInProgress,
	BookingStatusCompleted,
	BookingStatusCancelled,
}

// UpcomingStatuses are the statuses of bookings that have not started yet.
var UpcomingStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

// String returns the string representation of the status.
func (s BookingStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the lifecycle states.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition leaves this status.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// ParseBookingStatuses parses a comma-separated status filter such as "pending,confirmed".
// Blank entries are skipped; an unknown entry is an error.
func ParseBookingStatuses(csv string) ([]BookingStatus, error) {
	var statuses []BookingStatus
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		status := BookingStatus(part)
		if !status.IsValid() {
			return nil, fmt.Errorf("unknown booking status %q", part)
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// TimeOfDay is a wall-clock time measured from midnight.
type TimeOfDay time.Duration

// NewTimeOfDay builds a TimeOfDay from hours and minutes.
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// ParseTimeOfDay parses "15:04" or "15:04:05".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimeOfDay(t.Hour(), t.Minute()) + TimeOfDay(time.Duration(t.Second())*time.Second), nil
		}
	}

	return 0, fmt.Errorf("invalid time of day %q", s)
}

// String formats the time as "15:04".
func (t TimeOfDay) String() string {
	d := time.Duration(t)

	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

// MarshalText implements encoding.TextMarshaler.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TimeOfDay) UnmarshalText(b []byte) error {
	parsed, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = parsed

	return nil
}

// Booking is a customer's reservation of a service with an assigned provider.
type Booking struct {
	ID                  uuid.UUID       `json:"id"`
	CustomerID          uuid.UUID       `json:"customer_id"`
	ServiceID           uuid.UUID       `json:"service_id"`
	ProviderID          uuid.UUID       `json:"service_provider_id"`
	BookingDate         time.Time       `json:"booking_date"` // Calendar day, midnight UTC.
	BookingTime         TimeOfDay       `json:"booking_time"`
	VehicleType         string          `json:"vehicle_type"`
	VehicleNumber       string          `json:"vehicle_number"`
	SpecialInstructions string          `json:"special_instructions"`
	Status              BookingStatus   `json:"status"`
	TotalAmount         decimal.Decimal `json:"total_amount"` // Service price when the booking was made.
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"` // Touched by every status change.
}

// DateOnly truncates t to its calendar day in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
