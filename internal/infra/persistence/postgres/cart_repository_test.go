package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"washapp/internal/domain/entity"
	"washapp/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_AddMergesQuantity(t *testing.T) {
	s := newSeed(t)
	repo := NewCartRepository(s.db)
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	first := &entity.CartItem{UserID: s.customer.ID, ServiceID: s.service.ID, Quantity: 1, AddedAt: now}
	require.NoError(t, repo.Add(ctx, first))
	second := &entity.CartItem{UserID: s.customer.ID, ServiceID: s.service.ID, Quantity: 2, AddedAt: now}
	require.NoError(t, repo.Add(ctx, second))

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 3, second.Quantity)

	items, err := repo.List(ctx, s.customer.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)

	require.NoError(t, repo.Remove(ctx, s.customer.ID, s.service.ID))
	assert.ErrorIs(t, repo.Remove(ctx, s.customer.ID, s.service.ID), repository.ErrCartItemNotFound)
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	s := newSeed(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := NewTransactionManager(s.db).Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.CartRepo().Add(ctx, &entity.CartItem{
			UserID: s.customer.ID, ServiceID: s.service.ID, Quantity: 1, AddedAt: time.Now(),
		}); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	items, err := NewCartRepository(s.db).List(ctx, s.customer.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
