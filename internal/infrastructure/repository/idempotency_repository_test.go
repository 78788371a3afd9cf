package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sangkips/smartpos-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyRepository_ReserveCompleteReplay(t *testing.T) {
	repo := NewIdempotencyRepository()
	ctx := context.Background()

	existing, reserved, err := repo.Reserve(ctx, "k1", "10.0.0.1", time.Hour)
	require.NoError(t, err)
	assert.True(t, reserved)
	assert.Nil(t, existing)

	existing, reserved, err = repo.Reserve(ctx, "k1", "10.0.0.1", time.Hour)
	require.NoError(t, err)
	assert.False(t, reserved)
	require.NotNil(t, existing)
	assert.True(t, existing.InFlight)

	require.NoError(t, repo.Complete(ctx, &entity.IdempotencyKey{
		Key: "k1", Scope: "10.0.0.1", ResponseCode: 201, ResponseBody: `{"success":true}`,
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	existing, reserved, err = repo.Reserve(ctx, "k1", "10.0.0.1", time.Hour)
	require.NoError(t, err)
	assert.False(t, reserved)
	require.NotNil(t, existing)
	assert.False(t, existing.InFlight)
	assert.Equal(t, 201, existing.ResponseCode)
	assert.False(t, existing.CreatedAt.IsZero())

	// keys are scoped per client
	_, reserved, err = repo.Reserve(ctx, "k1", "10.0.0.2", time.Hour)
	require.NoError(t, err)
	assert.True(t, reserved)
}

func TestIdempotencyRepository_Release(t *testing.T) {
	repo := NewIdempotencyRepository()
	ctx := context.Background()

	_, reserved, err := repo.Reserve(ctx, "k1", "s", time.Hour)
	require.NoError(t, err)
	require.True(t, reserved)

	require.NoError(t, repo.Release(ctx, "k1", "s"))

	_, reserved, err = repo.Reserve(ctx, "k1", "s", time.Hour)
	require.NoError(t, err)
	assert.True(t, reserved)

	// a completed key is not released
	require.NoError(t, repo.Complete(ctx, &entity.IdempotencyKey{Key: "k1", Scope: "s", ResponseCode: 201, ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, repo.Release(ctx, "k1", "s"))
	existing, reserved, err := repo.Reserve(ctx, "k1", "s", time.Hour)
	require.NoError(t, err)
	assert.False(t, reserved)
	assert.Equal(t, 201, existing.ResponseCode)
}

func TestIdempotencyRepository_ExpiredKeys(t *testing.T) {
	repo := NewIdempotencyRepository()
	ctx := context.Background()

	require.NoError(t, repo.Complete(ctx, &entity.IdempotencyKey{
		Key: "old", Scope: "s", ResponseCode: 201, ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, reserved, err := repo.Reserve(ctx, "old", "s", time.Hour)
	require.NoError(t, err)
	assert.True(t, reserved)

	require.NoError(t, repo.Complete(ctx, &entity.IdempotencyKey{
		Key: "gone", Scope: "s", ExpiresAt: time.Now().Add(-time.Minute),
	}))
	require.NoError(t, repo.DeleteExpired(ctx))
	_, reserved, err = repo.Reserve(ctx, "gone", "s", time.Hour)
	require.NoError(t, err)
	assert.True(t, reserved)
}

func TestIdempotencyRepository_ConcurrentReserve(t *testing.T) {
	repo := NewIdempotencyRepository()
	ctx := context.Background()

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		wins  int
		start = make(chan struct{})
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, reserved, err := repo.Reserve(ctx, "same", "s", time.Hour)
			assert.NoError(t, err)
			if reserved {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, wins)
}

func TestIdempotencyRepository_CancelledContext(t *testing.T) {
	repo := NewIdempotencyRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := repo.Reserve(ctx, "k", "s", time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
}
