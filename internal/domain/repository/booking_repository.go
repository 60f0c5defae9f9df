package repository

import (
	"context"
	"errors"
	"time"

	"washapp/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	// ErrBookingStatusConflict is returned when the stored status no longer matches the expected one.
	ErrBookingStatusConflict = errors.New("booking status changed concurrently")
)

// BookingFilter narrows booking queries. Nil and empty fields do not filter.
type BookingFilter struct {
	CustomerID *uuid.UUID
	ProviderID *uuid.UUID
	Statuses   []entity.BookingStatus
	Date       *time.Time // exact calendar day
	FromDate   *time.Time // calendar day, inclusive
}

// BookingOrder selects the sort order of a booking listing.
type BookingOrder int

const (
	// OrderCreatedDesc sorts newest first.
	OrderCreatedDesc BookingOrder = iota
	// OrderScheduleAsc sorts by (date, time) ascending.
	OrderScheduleAsc
	// OrderScheduleDesc sorts by (date, time) descending.
	OrderScheduleDesc
)

// BookingQuery is a filtered, ordered and optionally limited listing.
type BookingQuery struct {
	Filter BookingFilter
	Order  BookingOrder
	Limit  int // 0 means unlimited
}

// BookingRepository persists bookings and answers the aggregate queries behind dashboards.
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// UpdateStatus moves the booking from one status to another only if it still holds from.
	// It returns ErrBookingStatusConflict otherwise.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus, at time.Time) error

	List(ctx context.Context, query BookingQuery) ([]*entity.Booking, error)
	Count(ctx context.Context, filter BookingFilter) (int64, error)

	// SumTotalAmount adds up total_amount over matching bookings; zero when none match.
	SumTotalAmount(ctx context.Context, filter BookingFilter) (decimal.Decimal, error)
}
