package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. Child tables reference it with ON DELETE CASCADE.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username       string    `gorm:"type:varchar(150);uniqueIndex;not null"`
	Email          string    `gorm:"type:varchar(254)"`
	Role           string    `gorm:"type:varchar(20);not null;index"`
	Phone          string    `gorm:"type:varchar(20)"`
	Address        string    `gorm:"type:text"`
	ProfilePicture string    `gorm:"type:varchar(255)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Authentications []AuthenticationModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Provider        *ServiceProviderModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Bookings        []BookingModel        `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Reviews         []ReviewModel         `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	CartItems       []CartItemModel       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}
