package repository

import (
	"context"
	"errors"

	"washapp/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrProviderNotFound  = errors.New("service provider not found")
	ErrDuplicateProvider = errors.New("service provider already registered")
)

// ProviderRepository persists provider profiles and their offered services.
type ProviderRepository interface {
	// Create stores the profile together with its ServiceIDs links.
	Create(ctx context.Context, provider *entity.ServiceProvider) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceProvider, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ServiceProvider, error)

	// FindFirstOffering returns the earliest-registered provider offering the service,
	// ties broken by id. ErrProviderNotFound when nobody offers it.
	FindFirstOffering(ctx context.Context, serviceID uuid.UUID) (*entity.ServiceProvider, error)

	// LockByID takes a row lock on the profile until the surrounding transaction ends.
	// Rating recomputes hold it so concurrent reviews of one provider apply in turn.
	LockByID(ctx context.Context, id uuid.UUID) error

	ReplaceServices(ctx context.Context, providerID uuid.UUID, serviceIDs []uuid.UUID) error
	UpdateRating(ctx context.Context, providerID uuid.UUID, rating decimal.Decimal) error
	SetVerified(ctx context.Context, providerID uuid.UUID, verified bool) error
}
