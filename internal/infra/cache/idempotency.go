// Package cache keeps short-lived request state in Redis.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"washapp/config"
	"washapp/internal/domain/lifecycle"
	"washapp/internal/domain/service"
	"washapp/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// keyBookingCreate is idem:booking:create:{scope}:{client key} -> pendingMarker, then the booking id.
const keyBookingCreate = "idem:booking:create:%s:%s"

const pendingMarker = "pending"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewIdempotencyStore returns a Redis-backed store, or a no-op one when no Redis address is configured.
func NewIdempotencyStore(params Params) service.IdempotencyStore {
	if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
		params.Logger.Info("Redis not configured, idempotency keys are ignored")

		return noopStore{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	ttl := 24 * time.Hour
	if params.Config.Booking != nil && params.Config.Booking.IdempotencyTTL > 0 {
		ttl = params.Config.Booking.IdempotencyTTL
	}

	return NewRedisIdempotencyStore(client, ttl)
}

type redisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisIdempotencyStore stores entries for ttl.
func NewRedisIdempotencyStore(client redis.Cmdable, ttl time.Duration) service.IdempotencyStore {
	return &redisStore{client: client, ttl: ttl}
}

// Reserve writes the pending marker with SETNX. When the key exists it reports
// what is stored. A key that expires between the two calls is retried once.
func (s *redisStore) Reserve(ctx context.Context, scope, key string) (bool, uuid.UUID, error) {
	redisKey := bookingKey(scope, key)

	for range 2 {
		claimed, err := s.client.SetNX(ctx, redisKey, pendingMarker, s.ttl).Result()
		if err != nil {
			return false, uuid.Nil, errors.Wrap(err, "failed to reserve idempotency key")
		}
		if claimed {
			return true, uuid.Nil, nil
		}

		val, err := s.client.Get(ctx, redisKey).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return false, uuid.Nil, errors.Wrap(err, "failed to read idempotency key")
		}
		if val == pendingMarker {
			return false, uuid.Nil, nil
		}

		id, err := uuid.Parse(val)
		if err != nil {
			return false, uuid.Nil, errors.Wrap(err, "corrupt idempotency entry")
		}

		return false, id, nil
	}

	return false, uuid.Nil, errors.New("idempotency key expired while reserving")
}

func (s *redisStore) Complete(ctx context.Context, scope, key string, bookingID uuid.UUID) error {
	if err := s.client.Set(ctx, bookingKey(scope, key), bookingID.String(), s.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store idempotency key")
	}

	return nil
}

func (s *redisStore) Release(ctx context.Context, scope, key string) error {
	if err := s.client.Del(ctx, bookingKey(scope, key)).Err(); err != nil {
		return errors.Wrap(err, "failed to release idempotency key")
	}

	return nil
}

func bookingKey(scope, key string) string {
	return fmt.Sprintf(keyBookingCreate, scope, key)
}

// noopStore lets every request through.
type noopStore struct{}

func (noopStore) Reserve(context.Context, string, string) (bool, uuid.UUID, error) {
	return true, uuid.Nil, nil
}

func (noopStore) Complete(context.Context, string, string, uuid.UUID) error {
	return nil
}

func (noopStore) Release(context.Context, string, string) error {
	return nil
}
