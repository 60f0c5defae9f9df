package impl

import (
	"context"
	"testing"
	"time"

	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	"washapp/internal/infra/metrics"
	"washapp/internal/infra/persistence/model"
	"washapp/internal/infra/persistence/postgres"
	"washapp/internal/infra/qrcode"
	mockSvc "washapp/internal/mocks/service"
	"washapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newScenarioDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, model.AutoMigrate(db))

	return db
}

// TestScenario_BookingLifecycle walks one booking from request to review on a real schema.
func TestScenario_BookingLifecycle(t *testing.T) {
	ctx := context.Background()
	db := newScenarioDB(t)
	cfg := newTestConfig()
	log := newDiscardLogger()

	userRepo := postgres.NewUserRepository(db)
	catalogRepo := postgres.NewCatalogRepository(db)
	providerRepo := postgres.NewProviderRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	txManager := postgres.NewTransactionManager(db)
	counters := metrics.New()

	alice := &entity.User{Username: "alice", Email: "alice@example.com", Role: entity.RoleCustomer}
	owner := &entity.User{Username: "shinywash", Email: "owner@example.com", Role: entity.RoleServiceProvider}
	root := &entity.User{Username: "root", Email: "root@example.com", Role: entity.RoleAdmin}
	for _, u := range []*entity.User{alice, owner, root} {
		require.NoError(t, userRepo.Create(ctx, u))
	}
	customerActor := entity.Actor{UserID: alice.ID, Role: entity.RoleCustomer}
	providerActor := entity.Actor{UserID: owner.ID, Role: entity.RoleServiceProvider}
	adminActor := entity.Actor{UserID: root.ID, Role: entity.RoleAdmin}

	catalog := NewCatalogService(CatalogServiceParams{
		TxManager: txManager, CatalogRepo: catalogRepo, Blobs: mockSvc.NewMockBlobStore(t), Config: cfg, Logger: log,
	})
	providers := NewProviderService(ProviderServiceParams{TxManager: txManager, ProviderRepo: providerRepo, Logger: log})
	bookings := NewBookingService(BookingServiceParams{
		TxManager:    txManager,
		BookingRepo:  bookingRepo,
		ProviderRepo: providerRepo,
		Idempotency:  mockSvc.NewMockIdempotencyStore(t),
		QRCode:       qrcode.NewQRCodeService(cfg),
		Metrics:      counters,
		Config:       cfg,
		Logger:       log,
	}).(*bookingService)
	bookings.now = func() time.Time { return fixedNow }
	reviews := NewReviewService(ReviewServiceParams{
		TxManager: txManager, ReviewRepo: reviewRepo, ProviderRepo: providerRepo, Metrics: counters, Logger: log,
	})
	dashboards := NewDashboardService(DashboardServiceParams{
		UserRepo: userRepo, BookingRepo: bookingRepo, ProviderRepo: providerRepo, Config: cfg, Logger: log,
	}).(*dashboardService)
	dashboards.now = func() time.Time { return fixedNow }

	category, err := catalog.CreateCategory(ctx, adminActor, &usecase.CreateCategoryInput{Name: "Exterior"})
	require.NoError(t, err)
	wash, err := catalog.CreateService(ctx, adminActor, &usecase.ServiceInput{
		CategoryID: category.ID,
		Name:       "Basic wash",
		Price:      decimal.RequireFromString("25.00"),
		IsActive:   true,
	})
	require.NoError(t, err)

	_, err = bookings.Create(ctx, customerActor, &usecase.CreateBookingInput{
		ServiceID:     wash.ID,
		BookingDate:   fixedNow,
		BookingTime:   entity.NewTimeOfDay(14, 0),
		VehicleType:   "sedan",
		VehicleNumber: "AB-123",
	})
	require.ErrorIs(t, err, domainerrors.ErrNoProviderAvailable)

	profile, err := providers.Register(ctx, providerActor, &usecase.RegisterProviderInput{
		CompanyName: "Shiny Wash",
		ServiceIDs:  []uuid.UUID{wash.ID},
	})
	require.NoError(t, err)

	booked, err := bookings.Create(ctx, customerActor, &usecase.CreateBookingInput{
		ServiceID:     wash.ID,
		BookingDate:   fixedNow.AddDate(0, 0, 1),
		BookingTime:   entity.NewTimeOfDay(14, 0),
		VehicleType:   "sedan",
		VehicleNumber: "AB-123",
	})
	require.NoError(t, err)
	assert.Equal(t, profile.ID, booked.ProviderID)
	assert.Equal(t, entity.BookingStatusPending, booked.Status)

	_, err = reviews.Submit(ctx, customerActor, booked.ID, &usecase.SubmitReviewInput{Rating: 5})
	require.ErrorIs(t, err, domainerrors.ErrBookingNotReviewable)

	_, err = bookings.Transition(ctx, customerActor, booked.ID, entity.BookingStatusConfirmed)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	for _, to := range []entity.BookingStatus{
		entity.BookingStatusConfirmed,
		entity.BookingStatusInProgress,
		entity.BookingStatusCompleted,
	} {
		updated, err := bookings.Transition(ctx, providerActor, booked.ID, to)
		require.NoError(t, err, "transition to %s", to)
		assert.Equal(t, to, updated.Status)
	}

	_, err = bookings.Cancel(ctx, customerActor, booked.ID)
	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)

	_, err = reviews.Submit(ctx, customerActor, booked.ID, &usecase.SubmitReviewInput{Rating: 2, Comment: "streaky"})
	require.NoError(t, err)
	_, err = reviews.Submit(ctx, customerActor, booked.ID, &usecase.SubmitReviewInput{Rating: 4, Comment: "fixed it"})
	require.NoError(t, err)

	listed, err := reviews.ListForProvider(ctx, profile.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 4, listed[0].Rating)

	rated, err := providers.Get(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "4.00", rated.Rating.StringFixed(2))

	board, err := dashboards.Get(ctx, adminActor)
	require.NoError(t, err)
	require.NotNil(t, board.Admin)
	assert.Equal(t, int64(3), board.Admin.TotalUsers)
	assert.Equal(t, int64(1), board.Admin.TotalBookings)
	assert.Equal(t, int64(0), board.Admin.PendingBookings)
	assert.Equal(t, "25.00", board.Admin.TotalRevenue.StringFixed(2))

	board, err = dashboards.Get(ctx, customerActor)
	require.NoError(t, err)
	assert.Equal(t, int64(1), board.Customer.CompletedBookings)
	assert.Equal(t, "25.00", board.Customer.TotalSpent.StringFixed(2))
	assert.Nil(t, board.Customer.NextBooking)
}
