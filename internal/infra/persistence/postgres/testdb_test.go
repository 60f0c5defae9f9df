package postgres

import (
	"context"
	"testing"
	"time"

	"washapp/internal/domain/entity"
	"washapp/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every statement on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, model.AutoMigrate(db))

	return db
}

type seed struct {
	db       *gorm.DB
	customer *entity.User
	owner    *entity.User
	service  *entity.Service
	provider *entity.ServiceProvider
}

// newSeed creates a customer, a provider account with a profile, and one service it offers.
func newSeed(t *testing.T) *seed {
	t.Helper()
	ctx := context.Background()
	db := newTestDB(t)

	s := &seed{db: db}
	s.customer = createUser(t, db, "alice", entity.RoleCustomer)
	s.owner = createUser(t, db, "shinywash", entity.RoleServiceProvider)

	category := &entity.ServiceCategory{Name: "Exterior"}
	require.NoError(t, NewCatalogRepository(db).CreateCategory(ctx, category))

	s.service = &entity.Service{
		CategoryID: category.ID,
		Name:       "Basic wash",
		Price:      decimal.RequireFromString("25.00"),
		Duration:   entity.DefaultServiceDuration,
		IsActive:   true,
	}
	require.NoError(t, NewCatalogRepository(db).CreateService(ctx, s.service))

	s.provider = &entity.ServiceProvider{
		UserID:      s.owner.ID,
		CompanyName: "Shiny Wash",
		ServiceIDs:  []uuid.UUID{s.service.ID},
		Rating:      decimal.Zero,
	}
	require.NoError(t, NewProviderRepository(db).Create(ctx, s.provider))

	return s
}

func createUser(t *testing.T, db *gorm.DB, username string, role entity.Role) *entity.User {
	t.Helper()

	user := &entity.User{Username: username, Email: username + "@example.com", Role: role}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func (s *seed) booking(t *testing.T, date time.Time, tod entity.TimeOfDay, status entity.BookingStatus, amount string) *entity.Booking {
	t.Helper()

	b := &entity.Booking{
		CustomerID:    s.customer.ID,
		ServiceID:     s.service.ID,
		ProviderID:    s.provider.ID,
		BookingDate:   date,
		BookingTime:   tod,
		VehicleType:   "sedan",
		VehicleNumber: "AB-123",
		Status:        status,
		TotalAmount:   decimal.RequireFromString(amount),
	}
	require.NoError(t, NewBookingRepository(s.db).Create(context.Background(), b))

	return b
}
