// Package booking holds the booking state machine and its authorization rules.
// Nothing here touches storage: callers load a booking, ask for the next state
// and persist it themselves.
package booking

import (
	"slices"
	"time"

	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"

	"github.com/google/uuid"
)

// transitions lists every legal edge of the lifecycle.
var transitions = map[entity.BookingStatus][]entity.BookingStatus{
	entity.BookingStatusPending:    {entity.BookingStatusConfirmed, entity.BookingStatusCancelled},
	entity.BookingStatusConfirmed:  {entity.BookingStatusPending, entity.BookingStatusInProgress, entity.BookingStatusCancelled},
	entity.BookingStatusInProgress: {entity.BookingStatusCompleted},
}

// providerTargets are the statuses an assigned provider may move a booking into.
var providerTargets = []entity.BookingStatus{
	entity.BookingStatusPending,
	entity.BookingStatusConfirmed,
	entity.BookingStatusInProgress,
	entity.BookingStatusCompleted,
}

// customerTargets are the statuses the owning customer may move a booking into.
var customerTargets = []entity.BookingStatus{entity.BookingStatusCancelled}

// CanTransition reports whether the lifecycle has an edge from -> to.
func CanTransition(from, to entity.BookingStatus) bool {
	return slices.Contains(transitions[from], to)
}

// Party is the relation between an actor and one booking.
type Party int

const (
	// PartyNone means the booking is invisible to the actor.
	PartyNone Party = iota
	PartyCustomer
	PartyProvider
	PartyAdmin
)

// PartyOf classifies actor against b. providerID is the actor's provider profile id,
// uuid.Nil when the actor has none.
func PartyOf(b *entity.Booking, actor entity.Actor, providerID uuid.UUID) Party {
	switch actor.Role {
	case entity.RoleCustomer:
		if b.CustomerID == actor.UserID {
			return PartyCustomer
		}
	case entity.RoleServiceProvider:
		if providerID != uuid.Nil && b.ProviderID == providerID {
			return PartyProvider
		}
	case entity.RoleAdmin:
		return PartyAdmin
	}

	return PartyNone
}

// Transition validates moving b into status to on behalf of party and returns the
// resulting booking. b itself is left untouched.
//
// Checks run in order: unknown status, visibility, actor permission, lifecycle edge.
func Transition(b entity.Booking, party Party, to entity.BookingStatus, now time.Time) (entity.Booking, error) {
	if !to.IsValid() {
		return b, domainerrors.ErrInvalidStatus.WithDetails(string(to))
	}

	if party == PartyNone {
		return b, domainerrors.ErrBookingNotFound
	}

	if !permits(party, to) {
		return b, domainerrors.ErrForbidden.WithDetails("not allowed to set status " + string(to))
	}

	if !CanTransition(b.Status, to) {
		return b, domainerrors.ErrInvalidTransition.WithDetails(string(b.Status) + " -> " + string(to))
	}

	b.Status = to
	b.UpdatedAt = now

	return b, nil
}

func permits(party Party, to entity.BookingStatus) bool {
	switch party {
	case PartyProvider:
		return slices.Contains(providerTargets, to)
	case PartyCustomer:
		return slices.Contains(customerTargets, to)
	default:
		return false
	}
}
