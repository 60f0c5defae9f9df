package postgres

import (
	"context"
	"testing"
	"time"

	"washapp/internal/domain/entity"
	"washapp/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBookingRepository_CreateAndFind(t *testing.T) {
	s := newSeed(t)
	repo := NewBookingRepository(s.db)

	created := s.booking(t, day(2026, 5, 1), entity.NewTimeOfDay(10, 30), entity.BookingStatusPending, "25.00")
	require.NotEqual(t, uuid.Nil, created.ID)

	found, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, s.customer.ID, found.CustomerID)
	assert.Equal(t, s.provider.ID, found.ProviderID)
	assert.True(t, day(2026, 5, 1).Equal(found.BookingDate))
	assert.Equal(t, "10:30", found.BookingTime.String())
	assert.Equal(t, entity.BookingStatusPending, found.Status)
	assert.True(t, decimal.RequireFromString("25").Equal(found.TotalAmount))
}

func TestBookingRepository_FindByID_NotFound(t *testing.T) {
	s := newSeed(t)

	_, err := NewBookingRepository(s.db).FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrBookingNotFound)
}

func TestBookingRepository_Create_NamesMissingReference(t *testing.T) {
	cases := map[string]struct {
		mutate func(b *entity.Booking)
		want   error
	}{
		"customer": {func(b *entity.Booking) { b.CustomerID = uuid.New() }, repository.ErrUserNotFound},
		"service":  {func(b *entity.Booking) { b.ServiceID = uuid.New() }, repository.ErrServiceNotFound},
		"provider": {func(b *entity.Booking) { b.ProviderID = uuid.New() }, repository.ErrProviderNotFound},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			s := newSeed(t)
			ctx := context.Background()
			b := &entity.Booking{
				CustomerID:    s.customer.ID,
				ServiceID:     s.service.ID,
				ProviderID:    s.provider.ID,
				BookingDate:   day(2026, 5, 1),
				BookingTime:   entity.NewTimeOfDay(9, 0),
				VehicleType:   "sedan",
				VehicleNumber: "AB-123",
				Status:        entity.BookingStatusPending,
				TotalAmount:   decimal.RequireFromString("25.00"),
			}
			tc.mutate(b)

			err := NewBookingRepository(s.db).Create(ctx, b)
			assert.ErrorIs(t, err, tc.want)

			// Inside a caller's transaction the failed insert must not poison later statements.
			err = NewTransactionManager(s.db).Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
				if err := repoFactory.BookingRepo().Create(ctx, b); !errors.Is(err, tc.want) {
					return errors.Errorf("unexpected create error: %v", err)
				}
				_, err := repoFactory.ProviderRepo().FindByID(ctx, s.provider.ID)

				return err
			})
			require.NoError(t, err)
		})
	}
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	s := newSeed(t)
	repo := NewBookingRepository(s.db)
	ctx := context.Background()
	b := s.booking(t, day(2026, 5, 1), entity.NewTimeOfDay(9, 0), entity.BookingStatusPending, "25.00")
	at := time.Date(2026, 4, 30, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.UpdateStatus(ctx, b.ID, entity.BookingStatusPending, entity.BookingStatusConfirmed, at))

	found, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, found.Status)
	assert.True(t, at.Equal(found.UpdatedAt))

	t.Run("stale expected status", func(t *testing.T) {
		err := repo.UpdateStatus(ctx, b.ID, entity.BookingStatusPending, entity.BookingStatusCancelled, at)
		assert.ErrorIs(t, err, repository.ErrBookingStatusConflict)
	})

	t.Run("unknown booking", func(t *testing.T) {
		err := repo.UpdateStatus(ctx, uuid.New(), entity.BookingStatusPending, entity.BookingStatusCancelled, at)
		assert.ErrorIs(t, err, repository.ErrBookingNotFound)
	})
}

func TestBookingRepository_ListCountSum(t *testing.T) {
	s := newSeed(t)
	repo := NewBookingRepository(s.db)
	ctx := context.Background()

	late := s.booking(t, day(2026, 5, 3), entity.NewTimeOfDay(8, 0), entity.BookingStatusPending, "25.00")
	early := s.booking(t, day(2026, 5, 1), entity.NewTimeOfDay(14, 0), entity.BookingStatusConfirmed, "30.50")
	sameDayEarlier := s.booking(t, day(2026, 5, 1), entity.NewTimeOfDay(9, 15), entity.BookingStatusCompleted, "40.00")
	s.booking(t, day(2026, 4, 20), entity.NewTimeOfDay(9, 0), entity.BookingStatusCompleted, "10.00")

	t.Run("schedule ascending from a date with status filter", func(t *testing.T) {
		from := day(2026, 5, 1)
		got, err := repo.List(ctx, repository.BookingQuery{
			Filter: repository.BookingFilter{
				ProviderID: &s.provider.ID,
				Statuses:   entity.UpcomingStatuses,
				FromDate:   &from,
			},
			Order: repository.OrderScheduleAsc,
		})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, early.ID, got[0].ID)
		assert.Equal(t, late.ID, got[1].ID)
	})

	t.Run("schedule descending orders by time within a day", func(t *testing.T) {
		date := day(2026, 5, 1)
		got, err := repo.List(ctx, repository.BookingQuery{
			Filter: repository.BookingFilter{Date: &date},
			Order:  repository.OrderScheduleDesc,
		})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, early.ID, got[0].ID)
		assert.Equal(t, sameDayEarlier.ID, got[1].ID)
	})

	t.Run("limit", func(t *testing.T) {
		got, err := repo.List(ctx, repository.BookingQuery{
			Filter: repository.BookingFilter{CustomerID: &s.customer.ID},
			Limit:  3,
		})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("count", func(t *testing.T) {
		n, err := repo.Count(ctx, repository.BookingFilter{
			ProviderID: &s.provider.ID,
			Statuses:   []entity.BookingStatus{entity.BookingStatusCompleted},
		})
		require.NoError(t, err)
		assert.EqualValues(t, 2, n)
	})

	t.Run("revenue over completed bookings", func(t *testing.T) {
		sum, err := repo.SumTotalAmount(ctx, repository.BookingFilter{
			ProviderID: &s.provider.ID,
			Statuses:   []entity.BookingStatus{entity.BookingStatusCompleted},
		})
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("50.00").Equal(sum), sum.String())
	})

	t.Run("revenue with no match is zero", func(t *testing.T) {
		other := uuid.New()
		sum, err := repo.SumTotalAmount(ctx, repository.BookingFilter{ProviderID: &other})
		require.NoError(t, err)
		assert.True(t, sum.IsZero())
	})
}

func TestUserRepository_DeleteCascadesToBookings(t *testing.T) {
	s := newSeed(t)
	ctx := context.Background()
	b := s.booking(t, day(2026, 5, 1), entity.NewTimeOfDay(9, 0), entity.BookingStatusPending, "25.00")

	require.NoError(t, NewUserRepository(s.db).Delete(ctx, s.customer.ID))

	_, err := NewBookingRepository(s.db).FindByID(ctx, b.ID)
	assert.ErrorIs(t, err, repository.ErrBookingNotFound)

	_, err = NewUserRepository(s.db).FindByID(ctx, s.customer.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
