package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ServiceCategoryModel mirrors the 'service_categories' table.
type ServiceCategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time

	Services []ServiceModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ServiceCategoryModel) TableName() string {
	return "service_categories"
}

func (m *ServiceCategoryModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}

// ServiceModel mirrors the 'services' table.
type ServiceModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Image       string          `gorm:"type:varchar(255)"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Duration    int             `gorm:"not null"`
	IsActive    bool            `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Bookings  []BookingModel  `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	CartItems []CartItemModel `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}

func (m *ServiceModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}
