package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultServiceDuration is applied when a service is created without a duration.
const DefaultServiceDuration = 30

// ServiceCategory groups catalog services, e.g. "Exterior" or "Detailing".
type ServiceCategory struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Service is a bookable wash offered by one or more providers.
type Service struct {
	ID          uuid.UUID       `json:"id"`
	CategoryID  uuid.UUID       `json:"category_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"`    // Blob key, empty when none.
	Price       decimal.Decimal `json:"price"`    // Current list price; bookings keep their own snapshot.
	Duration    int             `json:"duration"` // Minutes.
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
