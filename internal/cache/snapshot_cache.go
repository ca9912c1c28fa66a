// Package cache provides the read-through snapshot cache in front of the
// snapshot store, with an in-process and a Redis implementation.
package cache

import (
	"context"
	"sync"

	"github.com/mkovalev/gain-planner/internal/domain"
)

// SnapshotCache caches calculation snapshots per user. Misses are never
// errors; the orchestrator falls through to the store.
type SnapshotCache interface {
	Get(ctx context.Context, userID string) (*domain.CalculationSnapshot, bool)
	Set(ctx context.Context, userID string, snapshot *domain.CalculationSnapshot)
	Invalidate(ctx context.Context, userID string)
	Close() error
}

// MemoryCache is the in-process implementation, used when Redis is disabled
// and in tests.
type MemoryCache struct {
	mu        sync.RWMutex
	snapshots map[string]domain.CalculationSnapshot
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{snapshots: make(map[string]domain.CalculationSnapshot)}
}

func (c *MemoryCache) Get(_ context.Context, userID string) (*domain.CalculationSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snapshot, ok := c.snapshots[userID]
	if !ok {
		return nil, false
	}
	return &snapshot, true
}

func (c *MemoryCache) Set(_ context.Context, userID string, snapshot *domain.CalculationSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshots[userID] = *snapshot
}

func (c *MemoryCache) Invalidate(_ context.Context, userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.snapshots, userID)
}

func (c *MemoryCache) Close() error {
	return nil
}
