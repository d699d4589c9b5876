package cache

import (
	"context"
	"sync"

	"parcelverge/internal/metrics"
	"parcelverge/internal/repository"
)

type UserLookup interface {
	ListByRole(ctx context.Context, role string) ([]*repository.User, error)
}

// ProfileCache keeps delivery-person profiles in memory so ranking
// aggregations don't hit the users table once per entry. Values are copied in
// and out; callers never share a pointer with the cache.
type ProfileCache struct {
	mu    sync.RWMutex
	cache map[string]*repository.User
}

func NewProfileCache() *ProfileCache {
	return &ProfileCache{cache: make(map[string]*repository.User)}
}

// Warm preloads every delivery-person profile at startup.
func (c *ProfileCache) Warm(ctx context.Context, lookup UserLookup, role string) error {
	users, err := lookup.ListByRole(ctx, role)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, user := range users {
		userCopy := *user
		c.cache[user.ID] = &userCopy
	}
	metrics.ProfileCacheItems.Set(float64(len(c.cache)))
	return nil
}

func (c *ProfileCache) Get(id string) (*repository.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	user, found := c.cache[id]
	if !found {
		return nil, false
	}
	userCopy := *user
	return &userCopy, true
}

func (c *ProfileCache) Set(user *repository.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	userCopy := *user
	c.cache[user.ID] = &userCopy
	metrics.ProfileCacheItems.Set(float64(len(c.cache)))
}

func (c *ProfileCache) Delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[id]; found {
		delete(c.cache, id)
		metrics.ProfileCacheItems.Set(float64(len(c.cache)))
	}
}
