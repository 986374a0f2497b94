package guard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// MemoryGuard is the in-process fallback for single-instance
// deployments and tests.
type MemoryGuard struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{
		cache: cache.New(25*time.Hour, time.Hour),
	}
}

func (g *MemoryGuard) TryAcquire(_ context.Context, agreementID uuid.UUID, day time.Time) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	k := key(agreementID, day)
	if _, found := g.cache.Get(k); found {
		return false, nil
	}
	g.cache.Set(k, struct{}{}, cache.DefaultExpiration)
	return true, nil
}

func (g *MemoryGuard) Release(_ context.Context, agreementID uuid.UUID, day time.Time) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.cache.Delete(key(agreementID, day))
	return nil
}
