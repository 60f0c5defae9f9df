// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"io"
	"time"

	"washapp/internal/domain/booking"
	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	"washapp/internal/domain/repository"
	"washapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// imageExtensions lists the accepted upload content types.
var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// readImage buffers an upload, rejecting unknown content types and bodies over maxSize bytes.
func readImage(input *usecase.UploadInput, maxSize int64) ([]byte, string, error) {
	if input == nil || input.Body == nil {
		return nil, "", domainerrors.ErrValidationFailed.WithDetails("image body is required")
	}

	ext, ok := imageExtensions[input.ContentType]
	if !ok {
		return nil, "", domainerrors.ErrValidationFailed.WithDetails("unsupported image type " + input.ContentType)
	}

	data, err := io.ReadAll(io.LimitReader(input.Body, maxSize+1))
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to read upload")
	}
	if int64(len(data)) > maxSize {
		return nil, "", domainerrors.ErrValidationFailed.WithDetails("image exceeds the upload size limit")
	}
	if len(data) == 0 {
		return nil, "", domainerrors.ErrValidationFailed.WithDetails("image is empty")
	}

	return data, ext, nil
}

// providerIDOf returns the provider profile id of a provider actor, uuid.Nil for everyone else.
func providerIDOf(ctx context.Context, providers repository.ProviderRepository, actor entity.Actor) (uuid.UUID, error) {
	if !actor.IsProvider() {
		return uuid.Nil, nil
	}

	provider, err := providers.FindByUserID(ctx, actor.UserID)
	if errors.Is(err, repository.ErrProviderNotFound) {
		return uuid.Nil, nil
	}
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to find provider profile")
	}

	return provider.ID, nil
}

// loadVisibleBooking returns the booking together with the actor's relation to it.
// Bookings the actor may not see are reported as not found.
func loadVisibleBooking(
	ctx context.Context,
	bookings repository.BookingRepository,
	providers repository.ProviderRepository,
	actor entity.Actor,
	id uuid.UUID,
) (*entity.Booking, booking.Party, error) {
	found, err := bookings.FindByID(ctx, id)
	if errors.Is(err, repository.ErrBookingNotFound) {
		return nil, booking.PartyNone, domainerrors.ErrBookingNotFound
	}
	if err != nil {
		return nil, booking.PartyNone, errors.Wrap(err, "failed to find booking")
	}

	providerID, err := providerIDOf(ctx, providers, actor)
	if err != nil {
		return nil, booking.PartyNone, err
	}

	party := booking.PartyOf(found, actor, providerID)
	if party == booking.PartyNone {
		return nil, booking.PartyNone, domainerrors.ErrBookingNotFound
	}

	return found, party, nil
}

// calendarDay is the date of now in loc, as midnight UTC like stored booking dates.
func calendarDay(now time.Time, loc *time.Location) time.Time {
	y, m, d := now.In(loc).Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func nonNilBookings(list []*entity.Booking) []*entity.Booking {
	if list == nil {
		return []*entity.Booking{}
	}

	return list
}
