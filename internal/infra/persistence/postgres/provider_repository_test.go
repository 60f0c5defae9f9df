package postgres

import (
	"context"
	"testing"
	"time"

	"washapp/internal/domain/entity"
	"washapp/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestProviderRepository_FindFirstOffering(t *testing.T) {
	s := newSeed(t)
	repo := NewProviderRepository(s.db)
	ctx := context.Background()

	// A second provider registered earlier than the seeded one but without the service,
	// and a third registered later with it.
	early := createUser(t, s.db, "earlybird", entity.RoleServiceProvider)
	require.NoError(t, repo.Create(ctx, &entity.ServiceProvider{
		UserID:      early.ID,
		CompanyName: "Early Bird",
		CreatedAt:   s.provider.CreatedAt.Add(-time.Hour),
	}))
	late := createUser(t, s.db, "latecomer", entity.RoleServiceProvider)
	require.NoError(t, repo.Create(ctx, &entity.ServiceProvider{
		UserID:      late.ID,
		CompanyName: "Latecomer",
		ServiceIDs:  []uuid.UUID{s.service.ID},
		CreatedAt:   s.provider.CreatedAt.Add(time.Hour),
	}))

	got, err := repo.FindFirstOffering(ctx, s.service.ID)
	require.NoError(t, err)
	assert.Equal(t, s.provider.ID, got.ID)
	assert.True(t, got.Offers(s.service.ID))

	_, err = repo.FindFirstOffering(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrProviderNotFound)
}

func TestProviderRepository_LockByID(t *testing.T) {
	s := newSeed(t)
	ctx := context.Background()

	err := NewTransactionManager(s.db).Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ProviderRepo().LockByID(ctx, s.provider.ID)
	})
	require.NoError(t, err)

	err = NewProviderRepository(s.db).LockByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrProviderNotFound)
}

func TestProviderRepository_LockByIDRendersForUpdate(t *testing.T) {
	db, err := gorm.Open(pgdriver.New(pgdriver.Config{DSN: "host=localhost user=washapp dbname=washapp sslmode=disable"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)

	var rendered string
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture_sql", func(tx *gorm.DB) {
		rendered = tx.Statement.SQL.String()
	}))

	require.NoError(t, NewProviderRepository(db).LockByID(context.Background(), uuid.New()))
	assert.Contains(t, rendered, "FOR UPDATE")
	assert.Contains(t, rendered, `FROM "service_providers"`)
}

func TestProviderRepository_DuplicateProfile(t *testing.T) {
	s := newSeed(t)

	err := NewProviderRepository(s.db).Create(context.Background(), &entity.ServiceProvider{
		UserID:      s.owner.ID,
		CompanyName: "Second profile",
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateProvider)
}

func TestProviderRepository_ReplaceServicesAndRating(t *testing.T) {
	s := newSeed(t)
	repo := NewProviderRepository(s.db)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceServices(ctx, s.provider.ID, nil))
	got, err := repo.FindByUserID(ctx, s.owner.ID)
	require.NoError(t, err)
	assert.Empty(t, got.ServiceIDs)

	err = repo.ReplaceServices(ctx, s.provider.ID, []uuid.UUID{uuid.New()})
	assert.ErrorIs(t, err, repository.ErrServiceNotFound)

	require.NoError(t, repo.UpdateRating(ctx, s.provider.ID, decimal.RequireFromString("4.33")))
	require.NoError(t, repo.SetVerified(ctx, s.provider.ID, true))

	got, err = repo.FindByID(ctx, s.provider.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("4.33").Equal(got.Rating))
	assert.True(t, got.IsVerified)

	assert.ErrorIs(t, repo.SetVerified(ctx, uuid.New(), true), repository.ErrProviderNotFound)
}
