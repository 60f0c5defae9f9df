package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ServiceProviderModel mirrors the 'service_providers' table. Offered services live in
// the 'provider_services' join table.
type ServiceProviderModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	CompanyName string          `gorm:"type:varchar(255);not null"`
	Address     string          `gorm:"type:text"`
	Phone       string          `gorm:"type:varchar(20)"`
	Email       string          `gorm:"type:varchar(254)"`
	IsVerified  bool            `gorm:"not null"`
	Rating      decimal.Decimal `gorm:"type:decimal(3,2);not null"`
	CreatedAt   time.Time       `gorm:"index"`
	UpdatedAt   time.Time

	Services []ServiceModel `gorm:"many2many:provider_services;joinForeignKey:ProviderID;joinReferences:ServiceID;constraint:OnDelete:CASCADE"`
	Bookings []BookingModel `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ServiceProviderModel) TableName() string {
	return "service_providers"
}

func (m *ServiceProviderModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}
