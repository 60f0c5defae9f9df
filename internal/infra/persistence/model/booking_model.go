package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BookingModel mirrors the 'bookings' table.
type BookingModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	ServiceID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProviderID          uuid.UUID       `gorm:"type:uuid;not null;index:idx_bookings_provider_date"`
	BookingDate         datatypes.Date  `gorm:"type:date;not null;index:idx_bookings_provider_date"`
	BookingTime         datatypes.Time  `gorm:"type:time;not null"`
	VehicleType         string          `gorm:"type:varchar(100);not null"`
	VehicleNumber       string          `gorm:"type:varchar(50);not null"`
	SpecialInstructions string          `gorm:"type:text"`
	Status              string          `gorm:"type:varchar(20);not null;index"`
	TotalAmount         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt           time.Time       `gorm:"index"`
	UpdatedAt           time.Time

	Review   *ReviewModel   `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	Payments []PaymentModel `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}

func (m *BookingModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}

// ReviewModel mirrors the 'reviews' table. booking_id is unique: one review per booking.
type ReviewModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating     int       `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5"`
	Comment    string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

func (m *ReviewModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}

// PaymentModel mirrors the 'payments' table. Rows are never updated.
type PaymentModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BookingID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Method        string          `gorm:"type:varchar(50);not null"`
	TransactionID string          `gorm:"type:varchar(100)"`
	Status        string          `gorm:"type:varchar(20);not null"`
	PaymentDate   time.Time       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}

func (m *PaymentModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}
