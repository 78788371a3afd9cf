package repository

import (
	"context"
	"sync"
	"time"

	"github.com/sangkips/smartpos-api/internal/domain/entity"
	domainRepo "github.com/sangkips/smartpos-api/internal/domain/repository"
)

type idempotencyRepository struct {
	mu   sync.Mutex
	keys map[string]*entity.IdempotencyKey
}

// NewIdempotencyRepository creates an in-memory idempotency repository.
// Keys do not survive a restart.
func NewIdempotencyRepository() domainRepo.IdempotencyRepository {
	return &idempotencyRepository{keys: make(map[string]*entity.IdempotencyKey)}
}

func idempotencyID(key, scope string) string {
	return scope + "\x00" + key
}

func (r *idempotencyRepository) Reserve(ctx context.Context, key, scope string, ttl time.Duration) (*entity.IdempotencyKey, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := idempotencyID(key, scope)
	if ikey, ok := r.keys[id]; ok && !ikey.IsExpired() {
		cp := *ikey
		return &cp, false, nil
	}

	now := time.Now()
	r.keys[id] = &entity.IdempotencyKey{
		Key:       key,
		Scope:     scope,
		InFlight:  true,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	return nil, true, nil
}

func (r *idempotencyRepository) Complete(ctx context.Context, ikey *entity.IdempotencyKey) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cp := *ikey
	cp.InFlight = false
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys[idempotencyID(ikey.Key, ikey.Scope)] = &cp
	return nil
}

func (r *idempotencyRepository) Release(ctx context.Context, key, scope string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := idempotencyID(key, scope)
	if ikey, ok := r.keys[id]; ok && ikey.InFlight {
		delete(r.keys, id)
	}
	return nil
}

func (r *idempotencyRepository) DeleteExpired(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for id, ikey := range r.keys {
		if ikey.IsExpired() {
			delete(r.keys, id)
		}
	}
	return nil
}
