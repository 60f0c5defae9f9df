package postgres

import (
	"context"

	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	"washapp/internal/domain/repository"
	"washapp/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const providerServicesTable = "provider_services"

// providerRepository implements repository.ProviderRepository.
type providerRepository struct {
	db *gorm.DB
}

// NewProviderRepository is the constructor for providerRepository.
func NewProviderRepository(db *gorm.DB) repository.ProviderRepository {
	return &providerRepository{db: db}
}

func (repo *providerRepository) Create(ctx context.Context, provider *entity.ServiceProvider) error {
	providerM := &model.ServiceProviderModel{
		ID:          provider.ID,
		UserID:      provider.UserID,
		CompanyName: provider.CompanyName,
		Address:     provider.Address,
		Phone:       provider.Phone,
		Email:       provider.Email,
		IsVerified:  provider.IsVerified,
		Rating:      provider.Rating,
		CreatedAt:   provider.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(providerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProvider
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service provider")
	}

	if err := repo.insertServiceLinks(ctx, providerM.ID, provider.ServiceIDs); err != nil {
		return err
	}

	provider.ID = providerM.ID
	provider.CreatedAt = providerM.CreatedAt
	provider.UpdatedAt = providerM.UpdatedAt

	return nil
}

func (repo *providerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceProvider, error) {
	return repo.findOne(ctx, primary(ctx, repo.db).Where("id = ?", id))
}

func (repo *providerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ServiceProvider, error) {
	return repo.findOne(ctx, primary(ctx, repo.db).Where("user_id = ?", userID))
}

func (repo *providerRepository) FindFirstOffering(ctx context.Context, serviceID uuid.UUID) (*entity.ServiceProvider, error) {
	query := primary(ctx, repo.db).
		Joins("JOIN "+providerServicesTable+" ON "+providerServicesTable+".provider_id = service_providers.id").
		Where(providerServicesTable+".service_id = ?", serviceID).
		Order("service_providers.created_at ASC").
		Order("service_providers.id ASC")

	return repo.findOne(ctx, query)
}

// LockByID issues SELECT ... FOR UPDATE. Dialects without row locks (SQLite) drop the clause.
func (repo *providerRepository) LockByID(ctx context.Context, id uuid.UUID) error {
	var providerM model.ServiceProviderModel
	err := primary(ctx, repo.db).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Select("id").
		Where("id = ?", id).
		Take(&providerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrProviderNotFound
		}

		return errors.Wrap(err, "failed to lock service provider")
	}

	return nil
}

func (repo *providerRepository) findOne(ctx context.Context, query *gorm.DB) (*entity.ServiceProvider, error) {
	var providerM model.ServiceProviderModel
	if err := query.Take(&providerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProviderNotFound
		}

		return nil, errors.Wrap(err, "failed to find service provider")
	}

	serviceIDs, err := repo.serviceIDs(ctx, providerM.ID)
	if err != nil {
		return nil, err
	}

	return toProviderDomain(&providerM, serviceIDs), nil
}

func (repo *providerRepository) ReplaceServices(ctx context.Context, providerID uuid.UUID, serviceIDs []uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Table(providerServicesTable).
		Where("provider_id = ?", providerID).
		Delete(nil).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear provider services")
	}

	return repo.insertServiceLinks(ctx, providerID, serviceIDs)
}

func (repo *providerRepository) UpdateRating(ctx context.Context, providerID uuid.UUID, rating decimal.Decimal) error {
	return repo.updateColumn(ctx, providerID, "rating", rating)
}

func (repo *providerRepository) SetVerified(ctx context.Context, providerID uuid.UUID, verified bool) error {
	return repo.updateColumn(ctx, providerID, "is_verified", verified)
}

func (repo *providerRepository) updateColumn(ctx context.Context, providerID uuid.UUID, column string, value any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ServiceProviderModel{}).
		Where("id = ?", providerID).
		Update(column, value)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update service provider "+column)
	}
	if result.RowsAffected == 0 {
		return repository.ErrProviderNotFound
	}

	return nil
}

func (repo *providerRepository) insertServiceLinks(ctx context.Context, providerID uuid.UUID, serviceIDs []uuid.UUID) error {
	if len(serviceIDs) == 0 {
		return nil
	}

	rows := make([]map[string]any, 0, len(serviceIDs))
	seen := make(map[uuid.UUID]struct{}, len(serviceIDs))
	for _, serviceID := range serviceIDs {
		if _, dup := seen[serviceID]; dup {
			continue
		}
		seen[serviceID] = struct{}{}
		rows = append(rows, map[string]any{"provider_id": providerID, "service_id": serviceID})
	}

	if err := repo.db.WithContext(ctx).Table(providerServicesTable).Create(rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrServiceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to link provider services")
	}

	return nil
}

func (repo *providerRepository) serviceIDs(ctx context.Context, providerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Table(providerServicesTable).
		Where("provider_id = ?", providerID).
		Order("service_id ASC").
		Pluck("service_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load provider services")
	}

	return ids, nil
}

func toProviderDomain(data *model.ServiceProviderModel, serviceIDs []uuid.UUID) *entity.ServiceProvider {
	return &entity.ServiceProvider{
		ID:          data.ID,
		UserID:      data.UserID,
		CompanyName: data.CompanyName,
		Address:     data.Address,
		Phone:       data.Phone,
		Email:       data.Email,
		IsVerified:  data.IsVerified,
		Rating:      data.Rating,
		ServiceIDs:  serviceIDs,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
