package repository

import (
	"context"
	"time"

	"github.com/sangkips/smartpos-api/internal/domain/entity"
)

// IdempotencyRepository defines the interface for idempotency key operations
type IdempotencyRepository interface {
	// Reserve claims key for scope until ttl passes. When the key is already
	// held (in flight or completed) and not expired, it returns that entry
	// and reserved=false. Check and claim happen atomically.
	Reserve(ctx context.Context, key, scope string, ttl time.Duration) (existing *entity.IdempotencyKey, reserved bool, err error)
	// Complete stores the response for a reserved key
	Complete(ctx context.Context, ikey *entity.IdempotencyKey) error
	// Release drops a reservation that was never completed
	Release(ctx context.Context, key, scope string) error
	// DeleteExpired removes expired idempotency keys (for cleanup)
	DeleteExpired(ctx context.Context) error
}
