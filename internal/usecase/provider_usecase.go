package usecase

import (
	"context"

	"washapp/internal/domain/entity"

	"github.com/google/uuid"
)

// ProviderUsecase manages provider profiles.
type ProviderUsecase interface {
	// Register creates the actor's provider profile. Only service_provider accounts may, once.
	Register(ctx context.Context, actor entity.Actor, input *RegisterProviderInput) (*entity.ServiceProvider, error)
	GetMine(ctx context.Context, actor entity.Actor) (*entity.ServiceProvider, error)
	UpdateServices(ctx context.Context, actor entity.Actor, serviceIDs []uuid.UUID) (*entity.ServiceProvider, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.ServiceProvider, error)
	SetVerified(ctx context.Context, actor entity.Actor, id uuid.UUID, verified bool) (*entity.ServiceProvider, error)
}

type RegisterProviderInput struct {
	CompanyName string
	Address     string
	Phone       string
	Email       string
	ServiceIDs  []uuid.UUID
}
