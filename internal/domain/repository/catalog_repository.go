package repository

import (
	"context"
	"errors"

	"washapp/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound  = errors.New("service category not found")
	ErrDuplicateCategory = errors.New("service category already exists")
	ErrServiceNotFound   = errors.New("service not found")
)

// ServiceFilter narrows a catalog listing. Zero values select everything.
type ServiceFilter struct {
	CategoryID *uuid.UUID
	ActiveOnly bool
}

// CatalogRepository persists service categories and services.
type CatalogRepository interface {
	CreateCategory(ctx context.Context, category *entity.ServiceCategory) error
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.ServiceCategory, error)
	ListCategories(ctx context.Context) ([]*entity.ServiceCategory, error)

	CreateService(ctx context.Context, svc *entity.Service) error
	UpdateService(ctx context.Context, svc *entity.Service) error
	FindServiceByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	ListServices(ctx context.Context, filter ServiceFilter) ([]*entity.Service, error)
}
