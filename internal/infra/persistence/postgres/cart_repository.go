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
	"gorm.io/gorm/clause"
)

// cartRepository implements repository.CartRepository.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (repo *cartRepository) Add(ctx context.Context, item *entity.CartItem) error {
	itemM := &model.CartItemModel{
		ID:        item.ID,
		UserID:    item.UserID,
		ServiceID: item.ServiceID,
		Quantity:  item.Quantity,
		AddedAt:   item.AddedAt,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "service_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
			}),
		}).
		Create(itemM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrServiceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
	}

	var stored model.CartItemModel
	if err := primary(ctx, repo.db).
		Where("user_id = ? AND service_id = ?", item.UserID, item.ServiceID).
		Take(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to reload cart item")
	}
	*item = *toCartItemDomain(&stored)

	return nil
}

func (repo *cartRepository) List(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	var itemMs []model.CartItemModel
	if err := replica(ctx, repo.db).
		Where("user_id = ?", userID).
		Order("added_at ASC").
		Find(&itemMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	items := make([]*entity.CartItem, 0, len(itemMs))
	for i := range itemMs {
		items = append(items, toCartItemDomain(&itemMs[i]))
	}

	return items, nil
}

func (repo *cartRepository) Remove(ctx context.Context, userID, serviceID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND service_id = ?", userID, serviceID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	return &entity.CartItem{
		ID:        data.ID,
		UserID:    data.UserID,
		ServiceID: data.ServiceID,
		Quantity:  data.Quantity,
		AddedAt:   data.AddedAt,
	}
}
