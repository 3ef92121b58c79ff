package item

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/IdleMiner_Go/internal/domain"
	"github.com/osse101/IdleMiner_Go/internal/logger"
	"github.com/osse101/IdleMiner_Go/internal/repository"
)

// CachedResolver fronts the item repository with two TTL caches, one per key.
// Misses are not cached so items added to the catalog show up on the next lookup.
type CachedResolver struct {
	repo   repository.Item
	byName *expirable.LRU[string, *domain.Item]
	byID   *expirable.LRU[int, *domain.Item]
}

// NewCachedResolver creates a CachedResolver holding up to size items per index.
func NewCachedResolver(repo repository.Item, size int, ttl time.Duration) *CachedResolver {
	return &CachedResolver{
		repo:   repo,
		byName: expirable.NewLRU[string, *domain.Item](size, nil, ttl),
		byID:   expirable.NewLRU[int, *domain.Item](size, nil, ttl),
	}
}

// ResolveItem implements Resolver.
func (c *CachedResolver) ResolveItem(ctx context.Context, name string) (*domain.Item, error) {
	if it, ok := c.byName.Get(name); ok {
		cp := *it
		return &cp, nil
	}

	it, err := c.repo.GetItemByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return c.store(ctx, it)
}

// ItemByID implements Resolver.
func (c *CachedResolver) ItemByID(ctx context.Context, id int) (*domain.Item, error) {
	if it, ok := c.byID.Get(id); ok {
		cp := *it
		return &cp, nil
	}

	it, err := c.repo.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.store(ctx, it)
}

// Warm loads the whole catalog into the cache and returns how many items
// were accepted.
func (c *CachedResolver) Warm(ctx context.Context) (int, error) {
	items, err := c.repo.ListItems(ctx)
	if err != nil {
		return 0, err
	}
	stored := 0
	for i := range items {
		if _, err := c.store(ctx, &items[i]); err == nil {
			stored++
		}
	}
	return stored, nil
}

// Purge drops every cached entry.
func (c *CachedResolver) Purge() {
	c.byName.Purge()
	c.byID.Purge()
}

// store caches a copy of it. Items that fail validation are reported as
// missing so callers treat them as unavailable.
func (c *CachedResolver) store(ctx context.Context, it *domain.Item) (*domain.Item, error) {
	stored := *it
	if err := load(&stored); err != nil {
		logger.FromContext(ctx).Warn("Skipping invalid item", "item", it.InternalName, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrItemNotFound, err)
	}
	c.byName.Add(stored.InternalName, &stored)
	c.byID.Add(stored.ID, &stored)
	cp := stored
	return &cp, nil
}
