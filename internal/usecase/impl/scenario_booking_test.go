package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	"washapp/internal/domain/service"
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
	"gorm.io/gorm"
)

// memIdempotencyStore keeps reservations in a map with SETNX semantics.
type memIdempotencyStore struct {
	mu      sync.Mutex
	entries map[string]uuid.UUID
}

func newMemIdempotencyStore() *memIdempotencyStore {
	return &memIdempotencyStore{entries: map[string]uuid.UUID{}}
}

func (s *memIdempotencyStore) Reserve(_ context.Context, scope, key string) (bool, uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.entries[scope+":"+key]; ok {
		return false, id, nil
	}
	s.entries[scope+":"+key] = uuid.Nil

	return true, uuid.Nil, nil
}

func (s *memIdempotencyStore) Complete(_ context.Context, scope, key string, bookingID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[scope+":"+key] = bookingID

	return nil
}

func (s *memIdempotencyStore) Release(_ context.Context, scope, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, scope+":"+key)

	return nil
}

// bookingScenario wires the booking services over a migrated SQLite schema with one
// customer, one admin, and one provider offering a single wash.
type bookingScenario struct {
	db         *gorm.DB
	catalog    usecase.CatalogUsecase
	bookings   *bookingService
	dashboards *dashboardService
	customer   entity.Actor
	provider   entity.Actor
	admin      entity.Actor
	wash       *entity.Service
}

func newBookingScenario(t *testing.T, idempotency service.IdempotencyStore, price string) *bookingScenario {
	t.Helper()

	ctx := context.Background()
	db := newScenarioDB(t)
	cfg := newTestConfig()
	log := newDiscardLogger()

	userRepo := postgres.NewUserRepository(db)
	providerRepo := postgres.NewProviderRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	txManager := postgres.NewTransactionManager(db)

	alice := &entity.User{Username: "alice", Email: "alice@example.com", Role: entity.RoleCustomer}
	owner := &entity.User{Username: "shinywash", Email: "owner@example.com", Role: entity.RoleServiceProvider}
	root := &entity.User{Username: "root", Email: "root@example.com", Role: entity.RoleAdmin}
	for _, u := range []*entity.User{alice, owner, root} {
		require.NoError(t, userRepo.Create(ctx, u))
	}

	s := &bookingScenario{
		db:       db,
		customer: entity.Actor{UserID: alice.ID, Role: entity.RoleCustomer},
		provider: entity.Actor{UserID: owner.ID, Role: entity.RoleServiceProvider},
		admin:    entity.Actor{UserID: root.ID, Role: entity.RoleAdmin},
	}

	s.catalog = NewCatalogService(CatalogServiceParams{
		TxManager: txManager, CatalogRepo: postgres.NewCatalogRepository(db), Blobs: mockSvc.NewMockBlobStore(t), Config: cfg, Logger: log,
	})
	providers := NewProviderService(ProviderServiceParams{TxManager: txManager, ProviderRepo: providerRepo, Logger: log})
	s.bookings = NewBookingService(BookingServiceParams{
		TxManager:    txManager,
		BookingRepo:  bookingRepo,
		ProviderRepo: providerRepo,
		Idempotency:  idempotency,
		QRCode:       qrcode.NewQRCodeService(cfg),
		Metrics:      metrics.New(),
		Config:       cfg,
		Logger:       log,
	}).(*bookingService)
	s.bookings.now = func() time.Time { return fixedNow }
	s.dashboards = NewDashboardService(DashboardServiceParams{
		UserRepo: userRepo, BookingRepo: bookingRepo, ProviderRepo: providerRepo, Config: cfg, Logger: log,
	}).(*dashboardService)
	s.dashboards.now = func() time.Time { return fixedNow }

	category, err := s.catalog.CreateCategory(ctx, s.admin, &usecase.CreateCategoryInput{Name: "Exterior"})
	require.NoError(t, err)
	s.wash, err = s.catalog.CreateService(ctx, s.admin, &usecase.ServiceInput{
		CategoryID: category.ID,
		Name:       "Basic wash",
		Price:      decimal.RequireFromString(price),
		IsActive:   true,
	})
	require.NoError(t, err)

	_, err = providers.Register(ctx, s.provider, &usecase.RegisterProviderInput{
		CompanyName: "Shiny Wash",
		ServiceIDs:  []uuid.UUID{s.wash.ID},
	})
	require.NoError(t, err)

	return s
}

func (s *bookingScenario) input(key string) *usecase.CreateBookingInput {
	return &usecase.CreateBookingInput{
		ServiceID:      s.wash.ID,
		BookingDate:    fixedNow.AddDate(0, 0, 1),
		BookingTime:    entity.NewTimeOfDay(14, 0),
		VehicleType:    "sedan",
		VehicleNumber:  "AB-123",
		IdempotencyKey: key,
	}
}

func TestScenario_ConcurrentRetriesCreateOneBooking(t *testing.T) {
	s := newBookingScenario(t, newMemIdempotencyStore(), "25.00")
	ctx := context.Background()

	const attempts = 8
	var (
		wg      sync.WaitGroup
		start   = make(chan struct{})
		results = make([]*entity.Booking, attempts)
		errs    = make([]error, attempts)
	)
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i], errs[i] = s.bookings.Create(ctx, s.customer, s.input("double-tap"))
		}()
	}
	close(start)
	wg.Wait()

	var created uuid.UUID
	for i := range attempts {
		if errs[i] != nil {
			assert.ErrorIs(t, errs[i], domainerrors.ErrIdempotencyKeyInUse)

			continue
		}
		if created == uuid.Nil {
			created = results[i].ID
		}
		assert.Equal(t, created, results[i].ID)
	}
	assert.NotEqual(t, uuid.Nil, created)

	var rows int64
	require.NoError(t, s.db.Model(&model.BookingModel{}).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)

	replayed, err := s.bookings.Create(ctx, s.customer, s.input("double-tap"))
	require.NoError(t, err)
	assert.Equal(t, created, replayed.ID)
}

func TestScenario_FailedCreateFreesIdempotencyKey(t *testing.T) {
	s := newBookingScenario(t, newMemIdempotencyStore(), "25.00")
	ctx := context.Background()

	_, err := s.catalog.UpdateService(ctx, s.admin, s.wash.ID, &usecase.ServiceInput{
		CategoryID: s.wash.CategoryID,
		Name:       s.wash.Name,
		Price:      s.wash.Price,
		IsActive:   false,
	})
	require.NoError(t, err)

	_, err = s.bookings.Create(ctx, s.customer, s.input("retry"))
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = s.catalog.UpdateService(ctx, s.admin, s.wash.ID, &usecase.ServiceInput{
		CategoryID: s.wash.CategoryID,
		Name:       s.wash.Name,
		Price:      s.wash.Price,
		IsActive:   true,
	})
	require.NoError(t, err)

	booked, err := s.bookings.Create(ctx, s.customer, s.input("retry"))
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, booked.Status)
}

// A booking keeps the price it was made at; later catalog edits do not touch it.
func TestScenario_PriceChangeKeepsBookedAmount(t *testing.T) {
	s := newBookingScenario(t, mockSvc.NewMockIdempotencyStore(t), "50.00")
	ctx := context.Background()

	booked, err := s.bookings.Create(ctx, s.customer, s.input(""))
	require.NoError(t, err)
	require.Equal(t, "50.00", booked.TotalAmount.StringFixed(2))

	repriced, err := s.catalog.UpdateService(ctx, s.admin, s.wash.ID, &usecase.ServiceInput{
		CategoryID: s.wash.CategoryID,
		Name:       s.wash.Name,
		Price:      decimal.RequireFromString("80.00"),
		IsActive:   true,
	})
	require.NoError(t, err)
	require.Equal(t, "80.00", repriced.Price.StringFixed(2))

	reread, err := s.bookings.Get(ctx, s.customer, booked.ID)
	require.NoError(t, err)
	assert.Equal(t, "50.00", reread.TotalAmount.StringFixed(2))

	for _, to := range []entity.BookingStatus{
		entity.BookingStatusConfirmed,
		entity.BookingStatusInProgress,
		entity.BookingStatusCompleted,
	} {
		_, err := s.bookings.Transition(ctx, s.provider, booked.ID, to)
		require.NoError(t, err, "transition to %s", to)
	}

	board, err := s.dashboards.Get(ctx, s.admin)
	require.NoError(t, err)
	assert.Equal(t, "50.00", board.Admin.TotalRevenue.StringFixed(2))

	board, err = s.dashboards.Get(ctx, s.customer)
	require.NoError(t, err)
	assert.Equal(t, "50.00", board.Customer.TotalSpent.StringFixed(2))

	next, err := s.bookings.Create(ctx, s.customer, s.input(""))
	require.NoError(t, err)
	assert.Equal(t, "80.00", next.TotalAmount.StringFixed(2))
}
