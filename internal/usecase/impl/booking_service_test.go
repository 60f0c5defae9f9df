package impl

import (
	"context"
	"testing"
	"time"

	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	"washapp/internal/domain/repository"
	mockSvc "washapp/internal/mocks/service"
	"washapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingServiceFixtures struct {
	repoFixtures
	service     *bookingService
	idempotency *mockSvc.MockIdempotencyStore
	qrCode      *mockSvc.MockQRCodeService
	metrics     *mockSvc.MockBookingMetrics
}

func createTestBookingService(t *testing.T) bookingServiceFixtures {
	repos := newRepoFixtures(t)
	idempotency := mockSvc.NewMockIdempotencyStore(t)
	qrCode := mockSvc.NewMockQRCodeService(t)
	metrics := mockSvc.NewMockBookingMetrics(t)

	srv := NewBookingService(BookingServiceParams{
		TxManager:    repos.txManager,
		BookingRepo:  repos.bookingRepo,
		ProviderRepo: repos.providerRepo,
		Idempotency:  idempotency,
		QRCode:       qrCode,
		Metrics:      metrics,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}).(*bookingService)
	srv.now = func() time.Time { return fixedNow }

	return bookingServiceFixtures{
		repoFixtures: repos,
		service:      srv,
		idempotency:  idempotency,
		qrCode:       qrCode,
		metrics:      metrics,
	}
}

func validBookingInput(serviceID uuid.UUID) *usecase.CreateBookingInput {
	return &usecase.CreateBookingInput{
		ServiceID:     serviceID,
		BookingDate:   fixedNow.AddDate(0, 0, 2),
		BookingTime:   entity.NewTimeOfDay(10, 30),
		VehicleType:   "sedan",
		VehicleNumber: "ABC-123",
	}
}

func customer() entity.Actor {
	return entity.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}
}

func TestBookingService_Create_Success(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	actor := customer()
	svc := &entity.Service{ID: uuid.New(), Price: decimal.RequireFromString("25.00"), IsActive: true}
	provider := &entity.ServiceProvider{ID: uuid.New()}

	fx.catalogRepo.EXPECT().FindServiceByID(ctx, svc.ID).Return(svc, nil)
	fx.providerRepo.EXPECT().FindFirstOffering(ctx, svc.ID).Return(provider, nil)
	fx.bookingRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Booking")).
		Run(func(_ context.Context, b *entity.Booking) { b.ID = uuid.New() }).
		Return(nil)
	fx.metrics.EXPECT().BookingCreated().Return()

	created, err := fx.service.Create(ctx, actor, validBookingInput(svc.ID))

	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, created.Status)
	assert.Equal(t, actor.UserID, created.CustomerID)
	assert.Equal(t, provider.ID, created.ProviderID)
	assert.True(t, svc.Price.Equal(created.TotalAmount))
	assert.Equal(t, time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC), created.BookingDate)
}

func TestBookingService_Create_OnlyCustomers(t *testing.T) {
	fx := createTestBookingService(t)

	for _, role := range []entity.Role{entity.RoleServiceProvider, entity.RoleAdmin} {
		_, err := fx.service.Create(context.Background(), entity.Actor{UserID: uuid.New(), Role: role}, validBookingInput(uuid.New()))
		assert.ErrorIs(t, err, domainerrors.ErrForbidden, role)
	}
}

func TestBookingService_Create_Validation(t *testing.T) {
	fx := createTestBookingService(t)

	cases := map[string]func(in *usecase.CreateBookingInput){
		"missing vehicle type":   func(in *usecase.CreateBookingInput) { in.VehicleType = "  " },
		"missing vehicle number": func(in *usecase.CreateBookingInput) { in.VehicleNumber = "" },
		"missing date":           func(in *usecase.CreateBookingInput) { in.BookingDate = time.Time{} },
		"date in the past":       func(in *usecase.CreateBookingInput) { in.BookingDate = fixedNow.AddDate(0, 0, -1) },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			input := validBookingInput(uuid.New())
			mutate(input)

			_, err := fx.service.Create(context.Background(), customer(), input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestBookingService_Create_TodayIsAllowed(t *testing.T) {
	fx := createTestBookingService(t)
	input := validBookingInput(uuid.New())
	input.BookingDate = fixedNow

	fx.catalogRepo.EXPECT().FindServiceByID(mock.Anything, input.ServiceID).Return(nil, repository.ErrServiceNotFound)

	_, err := fx.service.Create(context.Background(), customer(), input)
	assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
}

func TestBookingService_Create_InactiveService(t *testing.T) {
	fx := createTestBookingService(t)
	svc := &entity.Service{ID: uuid.New(), IsActive: false}

	fx.catalogRepo.EXPECT().FindServiceByID(mock.Anything, svc.ID).Return(svc, nil)

	_, err := fx.service.Create(context.Background(), customer(), validBookingInput(svc.ID))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBookingService_Create_NoProviderAvailable(t *testing.T) {
	fx := createTestBookingService(t)
	svc := &entity.Service{ID: uuid.New(), IsActive: true}

	fx.catalogRepo.EXPECT().FindServiceByID(mock.Anything, svc.ID).Return(svc, nil)
	fx.providerRepo.EXPECT().FindFirstOffering(mock.Anything, svc.ID).Return(nil, repository.ErrProviderNotFound)

	_, err := fx.service.Create(context.Background(), customer(), validBookingInput(svc.ID))
	assert.ErrorIs(t, err, domainerrors.ErrNoProviderAvailable)
}

func TestBookingService_Create_MapsMissingReferences(t *testing.T) {
	cases := map[string]struct {
		repoErr error
		want    error
	}{
		"customer gone": {repository.ErrUserNotFound, domainerrors.ErrForbidden},
		"service gone":  {repository.ErrServiceNotFound, domainerrors.ErrServiceNotFound},
		"provider gone": {repository.ErrProviderNotFound, domainerrors.ErrNoProviderAvailable},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			fx := createTestBookingService(t)
			svc := &entity.Service{ID: uuid.New(), IsActive: true}

			fx.catalogRepo.EXPECT().FindServiceByID(mock.Anything, svc.ID).Return(svc, nil)
			fx.providerRepo.EXPECT().FindFirstOffering(mock.Anything, svc.ID).Return(&entity.ServiceProvider{ID: uuid.New()}, nil)
			fx.bookingRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Booking")).Return(tc.repoErr)

			_, err := fx.service.Create(context.Background(), customer(), validBookingInput(svc.ID))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBookingService_Create_IdempotentReplay(t *testing.T) {
	fx := createTestBookingService(t)
	actor := customer()
	existing := &entity.Booking{ID: uuid.New(), CustomerID: actor.UserID, Status: entity.BookingStatusPending}
	input := validBookingInput(uuid.New())
	input.IdempotencyKey = "retry-1"

	fx.idempotency.EXPECT().Reserve(mock.Anything, actor.UserID.String(), "retry-1").Return(false, existing.ID, nil)
	fx.bookingRepo.EXPECT().FindByID(mock.Anything, existing.ID).Return(existing, nil)

	got, err := fx.service.Create(context.Background(), actor, input)

	require.NoError(t, err)
	assert.Same(t, existing, got)
}

func TestBookingService_Create_KeyStillPending(t *testing.T) {
	fx := createTestBookingService(t)
	actor := customer()
	input := validBookingInput(uuid.New())
	input.IdempotencyKey = "retry-1"

	fx.idempotency.EXPECT().Reserve(mock.Anything, actor.UserID.String(), "retry-1").Return(false, uuid.Nil, nil)

	_, err := fx.service.Create(context.Background(), actor, input)
	assert.ErrorIs(t, err, domainerrors.ErrIdempotencyKeyInUse)
}

func TestBookingService_Create_CompletesIdempotencyKey(t *testing.T) {
	fx := createTestBookingService(t)
	actor := customer()
	svc := &entity.Service{ID: uuid.New(), Price: decimal.NewFromInt(10), IsActive: true}
	input := validBookingInput(svc.ID)
	input.IdempotencyKey = "first"
	bookingID := uuid.New()

	reserve := fx.idempotency.EXPECT().Reserve(mock.Anything, actor.UserID.String(), "first").Return(true, uuid.Nil, nil)
	fx.catalogRepo.EXPECT().FindServiceByID(mock.Anything, svc.ID).Return(svc, nil).NotBefore(reserve.Call)
	fx.providerRepo.EXPECT().FindFirstOffering(mock.Anything, svc.ID).Return(&entity.ServiceProvider{ID: uuid.New()}, nil)
	create := fx.bookingRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Booking")).
		Run(func(_ context.Context, b *entity.Booking) { b.ID = bookingID }).
		Return(nil)
	fx.idempotency.EXPECT().Complete(mock.Anything, actor.UserID.String(), "first", bookingID).Return(nil).NotBefore(create.Call)
	fx.metrics.EXPECT().BookingCreated().Return()

	created, err := fx.service.Create(context.Background(), actor, input)

	require.NoError(t, err)
	assert.Equal(t, bookingID, created.ID)
}

func TestBookingService_Create_ReleasesKeyOnFailure(t *testing.T) {
	fx := createTestBookingService(t)
	actor := customer()
	svc := &entity.Service{ID: uuid.New(), IsActive: true}
	input := validBookingInput(svc.ID)
	input.IdempotencyKey = "first"

	fx.idempotency.EXPECT().Reserve(mock.Anything, actor.UserID.String(), "first").Return(true, uuid.Nil, nil)
	fx.catalogRepo.EXPECT().FindServiceByID(mock.Anything, svc.ID).Return(svc, nil)
	fx.providerRepo.EXPECT().FindFirstOffering(mock.Anything, svc.ID).Return(nil, repository.ErrProviderNotFound)
	fx.idempotency.EXPECT().Release(mock.Anything, actor.UserID.String(), "first").Return(nil)

	_, err := fx.service.Create(context.Background(), actor, input)
	assert.ErrorIs(t, err, domainerrors.ErrNoProviderAvailable)
}

func TestBookingService_Create_StoreOutageStillBooks(t *testing.T) {
	fx := createTestBookingService(t)
	actor := customer()
	svc := &entity.Service{ID: uuid.New(), Price: decimal.NewFromInt(10), IsActive: true}
	input := validBookingInput(svc.ID)
	input.IdempotencyKey = "first"

	fx.idempotency.EXPECT().Reserve(mock.Anything, actor.UserID.String(), "first").Return(false, uuid.Nil, errors.New("connection refused"))
	fx.catalogRepo.EXPECT().FindServiceByID(mock.Anything, svc.ID).Return(svc, nil)
	fx.providerRepo.EXPECT().FindFirstOffering(mock.Anything, svc.ID).Return(&entity.ServiceProvider{ID: uuid.New()}, nil)
	fx.bookingRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Booking")).Return(nil)
	fx.metrics.EXPECT().BookingCreated().Return()

	_, err := fx.service.Create(context.Background(), actor, input)
	require.NoError(t, err)
}

func TestBookingService_Transition(t *testing.T) {
	providerUser := uuid.New()
	providerID := uuid.New()
	providerActor := entity.Actor{UserID: providerUser, Role: entity.RoleServiceProvider}

	newBooking := func(status entity.BookingStatus) *entity.Booking {
		return &entity.Booking{ID: uuid.New(), CustomerID: uuid.New(), ProviderID: providerID, Status: status}
	}

	t.Run("provider confirms a pending booking", func(t *testing.T) {
		fx := createTestBookingService(t)
		b := newBooking(entity.BookingStatusPending)

		fx.bookingRepo.EXPECT().FindByID(mock.Anything, b.ID).Return(b, nil)
		fx.providerRepo.EXPECT().FindByUserID(mock.Anything, providerUser).Return(&entity.ServiceProvider{ID: providerID}, nil)
		fx.bookingRepo.EXPECT().
			UpdateStatus(mock.Anything, b.ID, entity.BookingStatusPending, entity.BookingStatusConfirmed, fixedNow).
			Return(nil)
		fx.metrics.EXPECT().BookingTransitioned(entity.BookingStatusPending, entity.BookingStatusConfirmed).Return()

		updated, err := fx.service.Transition(context.Background(), providerActor, b.ID, entity.BookingStatusConfirmed)

		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusConfirmed, updated.Status)
		assert.Equal(t, fixedNow, updated.UpdatedAt)
		assert.Equal(t, entity.BookingStatusPending, b.Status, "loaded booking is not mutated")
	})

	t.Run("unknown status is rejected before lookup", func(t *testing.T) {
		fx := createTestBookingService(t)

		_, err := fx.service.Transition(context.Background(), providerActor, uuid.New(), "archived")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})

	t.Run("missing booking", func(t *testing.T) {
		fx := createTestBookingService(t)
		id := uuid.New()

		fx.bookingRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrBookingNotFound)

		_, err := fx.service.Transition(context.Background(), providerActor, id, entity.BookingStatusConfirmed)
		assert.ErrorIs(t, err, domainerrors.ErrBookingNotFound)
	})

	t.Run("other customer's booking is not found", func(t *testing.T) {
		fx := createTestBookingService(t)
		b := newBooking(entity.BookingStatusPending)

		fx.bookingRepo.EXPECT().FindByID(mock.Anything, b.ID).Return(b, nil)

		_, err := fx.service.Cancel(context.Background(), customer(), b.ID)
		assert.ErrorIs(t, err, domainerrors.ErrBookingNotFound)
	})

	t.Run("provider cannot cancel", func(t *testing.T) {
		fx := createTestBookingService(t)
		b := newBooking(entity.BookingStatusPending)

		fx.bookingRepo.EXPECT().FindByID(mock.Anything, b.ID).Return(b, nil)
		fx.providerRepo.EXPECT().FindByUserID(mock.Anything, providerUser).Return(&entity.ServiceProvider{ID: providerID}, nil)

		_, err := fx.service.Cancel(context.Background(), providerActor, b.ID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("customer cannot cancel in progress", func(t *testing.T) {
		fx := createTestBookingService(t)
		b := newBooking(entity.BookingStatusInProgress)
		owner := entity.Actor{UserID: b.CustomerID, Role: entity.RoleCustomer}

		fx.bookingRepo.EXPECT().FindByID(mock.Anything, b.ID).Return(b, nil)

		_, err := fx.service.Cancel(context.Background(), owner, b.ID)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	})

	t.Run("lost race surfaces as invalid transition", func(t *testing.T) {
		fx := createTestBookingService(t)
		b := newBooking(entity.BookingStatusPending)
		owner := entity.Actor{UserID: b.CustomerID, Role: entity.RoleCustomer}

		fx.bookingRepo.EXPECT().FindByID(mock.Anything, b.ID).Return(b, nil)
		fx.bookingRepo.EXPECT().
			UpdateStatus(mock.Anything, b.ID, entity.BookingStatusPending, entity.BookingStatusCancelled, fixedNow).
			Return(repository.ErrBookingStatusConflict)

		_, err := fx.service.Cancel(context.Background(), owner, b.ID)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	})

	t.Run("admin sees but may not transition", func(t *testing.T) {
		fx := createTestBookingService(t)
		b := newBooking(entity.BookingStatusPending)

		fx.bookingRepo.EXPECT().FindByID(mock.Anything, b.ID).Return(b, nil)

		_, err := fx.service.Transition(context.Background(), entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}, b.ID, entity.BookingStatusConfirmed)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestBookingService_List(t *testing.T) {
	t.Run("customer sees own bookings by schedule", func(t *testing.T) {
		fx := createTestBookingService(t)
		actor := customer()
		want := []*entity.Booking{{ID: uuid.New()}}

		fx.bookingRepo.EXPECT().
			List(mock.Anything, mock.MatchedBy(func(q repository.BookingQuery) bool {
				return q.Filter.CustomerID != nil && *q.Filter.CustomerID == actor.UserID &&
					q.Filter.ProviderID == nil &&
					q.Order == repository.OrderScheduleDesc &&
					assert.ObjectsAreEqual([]entity.BookingStatus{entity.BookingStatusPending}, q.Filter.Statuses)
			})).
			Return(want, nil)

		got, err := fx.service.List(context.Background(), actor, []entity.BookingStatus{entity.BookingStatusPending})

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("provider without profile gets an empty list", func(t *testing.T) {
		fx := createTestBookingService(t)
		actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleServiceProvider}

		fx.providerRepo.EXPECT().FindByUserID(mock.Anything, actor.UserID).Return(nil, repository.ErrProviderNotFound)

		got, err := fx.service.List(context.Background(), actor, nil)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		fx := createTestBookingService(t)

		_, err := fx.service.List(context.Background(), customer(), []entity.BookingStatus{"done"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})
}

func TestBookingService_CheckIn(t *testing.T) {
	fx := createTestBookingService(t)
	actor := customer()
	b := &entity.Booking{ID: uuid.New(), CustomerID: actor.UserID}

	fx.bookingRepo.EXPECT().FindByID(mock.Anything, b.ID).Return(b, nil).Times(2)
	fx.qrCode.EXPECT().GenerateBookingQR(b.ID).Return([]byte("png"), nil)
	fx.qrCode.EXPECT().ParseBookingQR("payload").Return(b.ID, nil)
	fx.qrCode.EXPECT().ParseBookingQR("garbage").Return(uuid.Nil, errors.New("bad payload"))

	png, err := fx.service.CheckInQR(context.Background(), actor, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	resolved, err := fx.service.ResolveCheckIn(context.Background(), actor, "payload")
	require.NoError(t, err)
	assert.Equal(t, b.ID, resolved.ID)

	_, err = fx.service.ResolveCheckIn(context.Background(), actor, "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
