package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceProvider is the business profile of a service_provider user.
type ServiceProvider struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"` // One profile per provider account.
	CompanyName string          `json:"company_name"`
	Address     string          `json:"address"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	IsVerified  bool            `json:"is_verified"`
	Rating      decimal.Decimal `json:"rating"` // Mean review rating, recomputed on every review write.
	ServiceIDs  []uuid.UUID     `json:"service_ids"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Offers reports whether the provider lists the given service.
func (p *ServiceProvider) Offers(serviceID uuid.UUID) bool {
	return slices.Contains(p.ServiceIDs, serviceID)
}
