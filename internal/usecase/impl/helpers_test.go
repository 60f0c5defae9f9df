package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"washapp/config"
	"washapp/internal/domain/repository"
	mockRepo "washapp/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Dashboard: &config.DashboardConfig{CustomerRecent: 5, AdminRecent: 10},
		Blob:      &config.BlobConfig{URL: "mem://", MaxUploadSize: 1024},
		Booking:   &config.BookingConfig{IdempotencyTTL: time.Hour},
	}
	cfg.Env.TimeZone = "UTC"

	return cfg
}

// repoFixtures holds one mock per repository. The same mocks back both the
// transaction factory and the services' direct reads.
type repoFixtures struct {
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	userRepo     *mockRepo.MockUserRepository
	authRepo     *mockRepo.MockAuthRepository
	catalogRepo  *mockRepo.MockCatalogRepository
	providerRepo *mockRepo.MockProviderRepository
	bookingRepo  *mockRepo.MockBookingRepository
	reviewRepo   *mockRepo.MockReviewRepository
	paymentRepo  *mockRepo.MockPaymentRepository
	cartRepo     *mockRepo.MockCartRepository
}

func newRepoFixtures(t *testing.T) repoFixtures {
	f := repoFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		authRepo:     mockRepo.NewMockAuthRepository(t),
		catalogRepo:  mockRepo.NewMockCatalogRepository(t),
		providerRepo: mockRepo.NewMockProviderRepository(t),
		bookingRepo:  mockRepo.NewMockBookingRepository(t),
		reviewRepo:   mockRepo.NewMockReviewRepository(t),
		paymentRepo:  mockRepo.NewMockPaymentRepository(t),
		cartRepo:     mockRepo.NewMockCartRepository(t),
	}

	f.factory.EXPECT().UserRepo().Return(f.userRepo).Maybe()
	f.factory.EXPECT().AuthRepo().Return(f.authRepo).Maybe()
	f.factory.EXPECT().CatalogRepo().Return(f.catalogRepo).Maybe()
	f.factory.EXPECT().ProviderRepo().Return(f.providerRepo).Maybe()
	f.factory.EXPECT().BookingRepo().Return(f.bookingRepo).Maybe()
	f.factory.EXPECT().ReviewRepo().Return(f.reviewRepo).Maybe()
	f.factory.EXPECT().PaymentRepo().Return(f.paymentRepo).Maybe()
	f.factory.EXPECT().CartRepo().Return(f.cartRepo).Maybe()

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).
		Maybe()

	return f
}
