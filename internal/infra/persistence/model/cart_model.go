package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItemModel mirrors the 'cart_items' table, one row per (user, service).
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_service"`
	ServiceID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_service"`
	Quantity  int       `gorm:"not null"`
	AddedAt   time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

func (m *CartItemModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}
