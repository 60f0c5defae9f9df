package impl

import (
	"context"
	"log/slog"
	"time"

	"washapp/config"
	deliverycontext "washapp/internal/delivery/context"
	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	"washapp/internal/domain/repository"
	"washapp/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// dashboardStrategy builds the projection of one role.
type dashboardStrategy interface {
	build(ctx context.Context, actor entity.Actor, today time.Time) (*usecase.Dashboard, error)
}

type dashboardService struct {
	strategies map[entity.Role]dashboardStrategy
	location   *time.Location
	logger     *slog.Logger
	now        func() time.Time
}

type DashboardServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	BookingRepo  repository.BookingRepository
	ProviderRepo repository.ProviderRepository
	Config       *config.Config
	Logger       *slog.Logger
}

func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		strategies: map[entity.Role]dashboardStrategy{
			entity.RoleCustomer: &customerDashboard{
				bookings: params.BookingRepo,
				recent:   params.Config.Dashboard.CustomerRecent,
			},
			entity.RoleServiceProvider: &providerDashboard{
				bookings:  params.BookingRepo,
				providers: params.ProviderRepo,
			},
			entity.RoleAdmin: &adminDashboard{
				users:    params.UserRepo,
				bookings: params.BookingRepo,
				recent:   params.Config.Dashboard.AdminRecent,
			},
		},
		location: params.Config.Location(),
		logger:   params.Logger,
		now:      time.Now,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get reads the dashboard of the actor's role at request time.
func (srv *dashboardService) Get(ctx context.Context, actor entity.Actor) (*usecase.Dashboard, error) {
	strategy, ok := srv.strategies[actor.Role]
	if !ok {
		return nil, domainerrors.ErrForbidden.WithDetails("no dashboard for role " + actor.Role.String())
	}

	dashboard, err := strategy.build(ctx, actor, calendarDay(srv.now(), srv.location))
	if err != nil {
		srv.log(ctx).Error("Failed to build dashboard", slog.Any("role", actor.Role), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to build dashboard")
	}

	return dashboard, nil
}

type customerDashboard struct {
	bookings repository.BookingRepository
	recent   int
}

func (d *customerDashboard) build(ctx context.Context, actor entity.Actor, today time.Time) (*usecase.Dashboard, error) {
	own := repository.BookingFilter{CustomerID: &actor.UserID}
	upcoming := withStatuses(own, entity.UpcomingStatuses...)
	completed := withStatuses(own, entity.BookingStatusCompleted)

	recent, err := d.bookings.List(ctx, repository.BookingQuery{Filter: own, Order: repository.OrderCreatedDesc, Limit: d.recent})
	if err != nil {
		return nil, errors.Wrap(err, "recent bookings")
	}

	view := &usecase.CustomerDashboard{RecentBookings: nonNilBookings(recent)}
	if view.TotalBookings, err = d.bookings.Count(ctx, own); err != nil {
		return nil, errors.Wrap(err, "total bookings")
	}
	if view.UpcomingBookings, err = d.bookings.Count(ctx, upcoming); err != nil {
		return nil, errors.Wrap(err, "upcoming bookings")
	}
	if view.CompletedBookings, err = d.bookings.Count(ctx, completed); err != nil {
		return nil, errors.Wrap(err, "completed bookings")
	}
	if view.TotalSpent, err = d.bookings.SumTotalAmount(ctx, completed); err != nil {
		return nil, errors.Wrap(err, "total spent")
	}

	upcoming.FromDate = &today
	next, err := d.bookings.List(ctx, repository.BookingQuery{Filter: upcoming, Order: repository.OrderScheduleAsc, Limit: 1})
	if err != nil {
		return nil, errors.Wrap(err, "next booking")
	}
	if len(next) > 0 {
		view.NextBooking = next[0]
	}

	return &usecase.Dashboard{Role: entity.RoleCustomer, Customer: view}, nil
}

type providerDashboard struct {
	bookings  repository.BookingRepository
	providers repository.ProviderRepository
}

func (d *providerDashboard) build(ctx context.Context, actor entity.Actor, today time.Time) (*usecase.Dashboard, error) {
	provider, err := d.providers.FindByUserID(ctx, actor.UserID)
	if errors.Is(err, repository.ErrProviderNotFound) {
		return &usecase.Dashboard{
			Role: entity.RoleServiceProvider,
			Provider: &usecase.ProviderDashboard{
				AverageRating: decimal.Zero,
				TodaySchedule: []*entity.Booking{},
			},
		}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "provider profile")
	}

	assigned := repository.BookingFilter{ProviderID: &provider.ID}
	todays := assigned
	todays.Date = &today

	view := &usecase.ProviderDashboard{
		ProfileComplete: true,
		Provider:        provider,
		AverageRating:   provider.Rating,
	}
	if view.TotalBookings, err = d.bookings.Count(ctx, assigned); err != nil {
		return nil, errors.Wrap(err, "total bookings")
	}
	if view.TodayBookings, err = d.bookings.Count(ctx, todays); err != nil {
		return nil, errors.Wrap(err, "today's bookings")
	}
	if view.PendingBookings, err = d.bookings.Count(ctx, withStatuses(assigned, entity.BookingStatusPending)); err != nil {
		return nil, errors.Wrap(err, "pending bookings")
	}
	if view.CompletedBookings, err = d.bookings.Count(ctx, withStatuses(assigned, entity.BookingStatusCompleted)); err != nil {
		return nil, errors.Wrap(err, "completed bookings")
	}

	schedule, err := d.bookings.List(ctx, repository.BookingQuery{
		Filter: withStatuses(todays, entity.UpcomingStatuses...),
		Order:  repository.OrderScheduleAsc,
	})
	if err != nil {
		return nil, errors.Wrap(err, "today's schedule")
	}
	view.TodaySchedule = nonNilBookings(schedule)

	return &usecase.Dashboard{Role: entity.RoleServiceProvider, Provider: view}, nil
}

type adminDashboard struct {
	users    repository.UserRepository
	bookings repository.BookingRepository
	recent   int
}

func (d *adminDashboard) build(ctx context.Context, _ entity.Actor, _ time.Time) (*usecase.Dashboard, error) {
	var (
		view = &usecase.AdminDashboard{}
		all  = repository.BookingFilter{}
		err  error
	)

	if view.TotalUsers, err = d.users.Count(ctx, ""); err != nil {
		return nil, errors.Wrap(err, "total users")
	}
	if view.TotalCustomers, err = d.users.Count(ctx, entity.RoleCustomer); err != nil {
		return nil, errors.Wrap(err, "total customers")
	}
	if view.TotalProviders, err = d.users.Count(ctx, entity.RoleServiceProvider); err != nil {
		return nil, errors.Wrap(err, "total providers")
	}
	if view.TotalBookings, err = d.bookings.Count(ctx, all); err != nil {
		return nil, errors.Wrap(err, "total bookings")
	}
	if view.PendingBookings, err = d.bookings.Count(ctx, withStatuses(all, entity.BookingStatusPending)); err != nil {
		return nil, errors.Wrap(err, "pending bookings")
	}
	if view.TotalRevenue, err = d.bookings.SumTotalAmount(ctx, withStatuses(all, entity.BookingStatusCompleted)); err != nil {
		return nil, errors.Wrap(err, "total revenue")
	}

	recent, err := d.bookings.List(ctx, repository.BookingQuery{Filter: all, Order: repository.OrderCreatedDesc, Limit: d.recent})
	if err != nil {
		return nil, errors.Wrap(err, "recent bookings")
	}
	view.RecentBookings = nonNilBookings(recent)

	return &usecase.Dashboard{Role: entity.RoleAdmin, Admin: view}, nil
}

func withStatuses(filter repository.BookingFilter, statuses ...entity.BookingStatus) repository.BookingFilter {
	filter.Statuses = statuses

	return filter
}
