package service

import (
	"context"

	"github.com/google/uuid"
)

// IdempotencyStore guards booking creation against retried requests.
//
// A request first Reserves its key. The winner creates the booking and then
// Completes the key with the booking id, or Releases it when creation fails.
// Requests that lose the reservation get the recorded booking id, or uuid.Nil
// while the winner is still running.
type IdempotencyStore interface {
	Reserve(ctx context.Context, scope, key string) (claimed bool, bookingID uuid.UUID, err error)
	Complete(ctx context.Context, scope, key string, bookingID uuid.UUID) error
	Release(ctx context.Context, scope, key string) error
}
