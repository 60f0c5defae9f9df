package usecase

import (
	"context"

	"washapp/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogUsecase manages service categories and services. Writes are admin-only.
type CatalogUsecase interface {
	CreateCategory(ctx context.Context, actor entity.Actor, input *CreateCategoryInput) (*entity.ServiceCategory, error)
	ListCategories(ctx context.Context) ([]*entity.ServiceCategory, error)
	CreateService(ctx context.Context, actor entity.Actor, input *ServiceInput) (*entity.Service, error)
	UpdateService(ctx context.Context, actor entity.Actor, id uuid.UUID, input *ServiceInput) (*entity.Service, error)
	UploadServiceImage(ctx context.Context, actor entity.Actor, id uuid.UUID, input *UploadInput) (*entity.Service, error)
	GetServiceImage(ctx context.Context, id uuid.UUID) (*Download, error)
	GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	ListServices(ctx context.Context, input *ListServicesInput) ([]*entity.Service, error)
}

type CreateCategoryInput struct {
	Name        string
	Description string
}

// ServiceInput describes a catalog service. Duration zero means the default length.
type ServiceInput struct {
	CategoryID  uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Duration    int
	IsActive    bool
}

// ListServicesInput filters the catalog; IncludeInactive is honoured for admins only.
type ListServicesInput struct {
	CategoryID      *uuid.UUID
	IncludeInactive bool
	Actor           entity.Actor
}
