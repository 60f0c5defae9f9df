package postgres

import (
	"context"

	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	"washapp/internal/domain/repository"
	"washapp/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements repository.CatalogRepository.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

func (repo *catalogRepository) CreateCategory(ctx context.Context, category *entity.ServiceCategory) error {
	categoryM := &model.ServiceCategoryModel{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCategory
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt

	return nil
}

func (repo *catalogRepository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.ServiceCategory, error) {
	var categoryM model.ServiceCategoryModel
	if err := primary(ctx, repo.db).Where("id = ?", id).Take(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find service category")
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *catalogRepository) ListCategories(ctx context.Context) ([]*entity.ServiceCategory, error) {
	var categoryModels []*model.ServiceCategoryModel
	if err := replica(ctx, repo.db).Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list service categories")
	}

	categories := make([]*entity.ServiceCategory, len(categoryModels))
	for i, categoryM := range categoryModels {
		categories[i] = toCategoryDomain(categoryM)
	}

	return categories, nil
}

func (repo *catalogRepository) CreateService(ctx context.Context, svc *entity.Service) error {
	serviceM := fromServiceDomain(svc)
	if err := repo.db.WithContext(ctx).Create(serviceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	svc.ID = serviceM.ID
	svc.CreatedAt = serviceM.CreatedAt
	svc.UpdatedAt = serviceM.UpdatedAt

	return nil
}

func (repo *catalogRepository) UpdateService(ctx context.Context, svc *entity.Service) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id = ?", svc.ID).
		Updates(map[string]any{
			"category_id": svc.CategoryID,
			"name":        svc.Name,
			"description": svc.Description,
			"image":       svc.Image,
			"price":       svc.Price,
			"duration":    svc.Duration,
			"is_active":   svc.IsActive,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

func (repo *catalogRepository) FindServiceByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	var serviceM model.ServiceModel
	if err := primary(ctx, repo.db).Where("id = ?", id).Take(&serviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service")
	}

	return toServiceDomain(&serviceM), nil
}

func (repo *catalogRepository) ListServices(ctx context.Context, filter repository.ServiceFilter) ([]*entity.Service, error) {
	query := replica(ctx, repo.db).Model(&model.ServiceModel{})
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var serviceModels []*model.ServiceModel
	if err := query.Order("name ASC").Find(&serviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	services := make([]*entity.Service, len(serviceModels))
	for i, serviceM := range serviceModels {
		services[i] = toServiceDomain(serviceM)
	}

	return services, nil
}

func toCategoryDomain(data *model.ServiceCategoryModel) *entity.ServiceCategory {
	return &entity.ServiceCategory{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}

func toServiceDomain(data *model.ServiceModel) *entity.Service {
	return &entity.Service{
		ID:          data.ID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description,
		Image:       data.Image,
		Price:       data.Price,
		Duration:    data.Duration,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromServiceDomain(data *entity.Service) *model.ServiceModel {
	return &model.ServiceModel{
		ID:          data.ID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description,
		Image:       data.Image,
		Price:       data.Price,
		Duration:    data.Duration,
		IsActive:    data.IsActive,
	}
}
