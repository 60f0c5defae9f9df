package usecase

import (
	"context"
	"time"

	"washapp/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingUsecase drives the booking lifecycle. Every call is scoped to the acting account.
type BookingUsecase interface {
	Create(ctx context.Context, actor entity.Actor, input *CreateBookingInput) (*entity.Booking, error)
	Get(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.Booking, error)
	// List returns the bookings visible to the actor, newest appointment first.
	List(ctx context.Context, actor entity.Actor, statuses []entity.BookingStatus) ([]*entity.Booking, error)
	Transition(ctx context.Context, actor entity.Actor, id uuid.UUID, to entity.BookingStatus) (*entity.Booking, error)
	Cancel(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.Booking, error)
	// CheckInQR renders the booking's check-in code as PNG.
	CheckInQR(ctx context.Context, actor entity.Actor, id uuid.UUID) ([]byte, error)
	// ResolveCheckIn reads a scanned check-in payload and returns the booking it names.
	ResolveCheckIn(ctx context.Context, actor entity.Actor, qrData string) (*entity.Booking, error)
}

// CreateBookingInput is a customer's booking request.
type CreateBookingInput struct {
	ServiceID           uuid.UUID
	BookingDate         time.Time
	BookingTime         entity.TimeOfDay
	VehicleType         string
	VehicleNumber       string
	SpecialInstructions string
	// IdempotencyKey makes retries of the same request return the first booking.
	IdempotencyKey string
}
