package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	"washapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPaymentService(t *testing.T) (*paymentService, repoFixtures) {
	repos := newRepoFixtures(t)
	srv := NewPaymentService(PaymentServiceParams{
		BookingRepo:  repos.bookingRepo,
		ProviderRepo: repos.providerRepo,
		PaymentRepo:  repos.paymentRepo,
		Logger:       newDiscardLogger(),
	}).(*paymentService)
	srv.now = func() time.Time { return fixedNow }

	return srv, repos
}

func TestPaymentService_Record_DefaultsToBookingTotal(t *testing.T) {
	srv, fx := createTestPaymentService(t)
	actor := customer()
	b := &entity.Booking{ID: uuid.New(), CustomerID: actor.UserID, TotalAmount: decimal.RequireFromString("30.00")}

	fx.bookingRepo.EXPECT().FindByID(mock.Anything, b.ID).Return(b, nil)
	fx.paymentRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Payment")).Return(nil)

	payment, err := srv.Record(context.Background(), actor, b.ID, &usecase.RecordPaymentInput{Method: "card"})

	require.NoError(t, err)
	assert.Equal(t, "30.00", payment.Amount.StringFixed(2))
	assert.Equal(t, entity.PaymentStatusPending, payment.Status)
	assert.Equal(t, fixedNow, payment.PaymentDate)
}

func TestPaymentService_Record_ProviderForbidden(t *testing.T) {
	srv, fx := createTestPaymentService(t)
	providerActor := entity.Actor{UserID: uuid.New(), Role: entity.RoleServiceProvider}
	providerID := uuid.New()
	b := &entity.Booking{ID: uuid.New(), ProviderID: providerID}

	fx.bookingRepo.EXPECT().FindByID(mock.Anything, b.ID).Return(b, nil)
	fx.providerRepo.EXPECT().FindByUserID(mock.Anything, providerActor.UserID).Return(&entity.ServiceProvider{ID: providerID}, nil)

	_, err := srv.Record(context.Background(), providerActor, b.ID, &usecase.RecordPaymentInput{Method: "cash"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPaymentService_Record_Validation(t *testing.T) {
	actor := customer()
	b := &entity.Booking{ID: uuid.New(), CustomerID: actor.UserID}

	for name, input := range map[string]*usecase.RecordPaymentInput{
		"missing method":  {Method: " "},
		"method too long": {Method: strings.Repeat("x", 51)},
		"unknown status":  {Method: "cash", Status: "settled"},
		"negative amount": {Method: "cash", Amount: decimal.NewFromInt(-5)},
	} {
		t.Run(name, func(t *testing.T) {
			srv, fx := createTestPaymentService(t)
			fx.bookingRepo.EXPECT().FindByID(mock.Anything, b.ID).Return(b, nil)

			_, err := srv.Record(context.Background(), actor, b.ID, input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestPaymentService_List_VisibleOnly(t *testing.T) {
	srv, fx := createTestPaymentService(t)
	b := &entity.Booking{ID: uuid.New(), CustomerID: uuid.New()}

	fx.bookingRepo.EXPECT().FindByID(mock.Anything, b.ID).Return(b, nil)

	_, err := srv.List(context.Background(), customer(), b.ID)
	assert.ErrorIs(t, err, domainerrors.ErrBookingNotFound)
}
