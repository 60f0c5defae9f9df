package usecase

import (
	"context"

	"washapp/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// DashboardUsecase builds the landing projection for the actor's role.
type DashboardUsecase interface {
	Get(ctx context.Context, actor entity.Actor) (*Dashboard, error)
}

// Dashboard carries exactly one role projection, matching Role.
type Dashboard struct {
	Role     entity.Role        `json:"role"`
	Customer *CustomerDashboard `json:"customer,omitempty"`
	Provider *ProviderDashboard `json:"provider,omitempty"`
	Admin    *AdminDashboard    `json:"admin,omitempty"`
}

type CustomerDashboard struct {
	RecentBookings    []*entity.Booking `json:"recent_bookings"`
	TotalBookings     int64             `json:"total_bookings"`
	UpcomingBookings  int64             `json:"upcoming_bookings"`
	CompletedBookings int64             `json:"completed_bookings"`
	TotalSpent        decimal.Decimal   `json:"total_spent"`
	NextBooking       *entity.Booking   `json:"next_booking"`
}

// ProviderDashboard; ProfileComplete is false, with zero counts, until the provider profile exists.
type ProviderDashboard struct {
	ProfileComplete   bool                    `json:"profile_complete"`
	Provider          *entity.ServiceProvider `json:"provider"`
	TotalBookings     int64                   `json:"total_bookings"`
	TodayBookings     int64                   `json:"today_bookings"`
	PendingBookings   int64                   `json:"pending_bookings"`
	CompletedBookings int64                   `json:"completed_bookings"`
	AverageRating     decimal.Decimal         `json:"average_rating"`
	TodaySchedule     []*entity.Booking       `json:"today_schedule"`
}

type AdminDashboard struct {
	TotalUsers      int64             `json:"total_users"`
	TotalCustomers  int64             `json:"total_customers"`
	TotalProviders  int64             `json:"total_providers"`
	TotalBookings   int64             `json:"total_bookings"`
	PendingBookings int64             `json:"pending_bookings"`
	TotalRevenue    decimal.Decimal   `json:"total_revenue"`
	RecentBookings  []*entity.Booking `json:"recent_bookings"`
}
