package item

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleMiner_Go/internal/domain"
	"github.com/osse101/IdleMiner_Go/internal/repository/memory"
)

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"copper_ore":       "Copper Ore",
		"low_spirit_stone": "Low Spirit Stone",
		"diamond":          "Diamond",
		"":                 "",
	}
	for in, want := range tests {
		assert.Equal(t, want, DisplayName(in), in)
	}
}

func TestMemoryResolver(t *testing.T) {
	r := NewMemoryResolver(DefaultItems())
	ctx := context.Background()

	it, err := r.ResolveItem(ctx, "copper_ore")
	require.NoError(t, err)
	assert.Equal(t, 1, it.ID)
	assert.Equal(t, "Copper Ore", it.DisplayName)
	assert.True(t, it.Stackable)

	byID, err := r.ItemByID(ctx, 104)
	require.NoError(t, err)
	assert.Equal(t, "lucky_charm", byID.InternalName)
	assert.False(t, byID.Stackable)

	_, err = r.ResolveItem(ctx, "mithril")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.True(t, domain.IsNotFound(err))

	_, err = r.ItemByID(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	// Returned items are copies.
	it.DisplayName = "changed"
	again, _ := r.ResolveItem(ctx, "copper_ore")
	assert.Equal(t, "Copper Ore", again.DisplayName)
}

func TestDefaultItems_StatsAreValid(t *testing.T) {
	seen := map[int]bool{}
	for _, it := range DefaultItems() {
		assert.False(t, seen[it.ID], "duplicate id %d", it.ID)
		seen[it.ID] = true
		assert.NoError(t, domain.ValidateStats(it.Category, it.Stats), it.InternalName)
	}
}

// countingRepo counts lookups that reach the backing store.
type countingRepo struct {
	*memory.ItemRepository

	mu      sync.Mutex
	byName  int
	byID    int
	listErr error
}

func (c *countingRepo) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	c.mu.Lock()
	c.byName++
	c.mu.Unlock()
	return c.ItemRepository.GetItemByName(ctx, name)
}

func (c *countingRepo) GetItemByID(ctx context.Context, id int) (*domain.Item, error) {
	c.mu.Lock()
	c.byID++
	c.mu.Unlock()
	return c.ItemRepository.GetItemByID(ctx, id)
}

func (c *countingRepo) ListItems(ctx context.Context) ([]domain.Item, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}
	return c.ItemRepository.ListItems(ctx)
}

func newCountingRepo(extra ...domain.Item) *countingRepo {
	items := append([]domain.Item{
		{ID: 4, InternalName: "coal", Stackable: true},
		{ID: 13, InternalName: "diamond", DisplayName: "Shiny Diamond", Stackable: true},
	}, extra...)
	return &countingRepo{ItemRepository: memory.NewItemRepository(items)}
}

// cursedOre carries a stat materials may not have.
var cursedOre = domain.Item{
	ID:           66,
	InternalName: "cursed_ore",
	Category:     domain.CategoryMaterial,
	Stackable:    true,
	Stats:        domain.ItemStats{domain.StatLuck: 5},
}

func TestCachedResolver_HitsRepositoryOnce(t *testing.T) {
	repo := newCountingRepo()
	c := NewCachedResolver(repo, 16, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		it, err := c.ResolveItem(ctx, "coal")
		require.NoError(t, err)
		assert.Equal(t, "Coal", it.DisplayName)
	}
	assert.Equal(t, 1, repo.byName)

	// Lookups by name also populate the id index.
	it, err := c.ItemByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "coal", it.InternalName)
	assert.Equal(t, 0, repo.byID)
}

func TestCachedResolver_MissesAreNotCached(t *testing.T) {
	repo := newCountingRepo()
	c := NewCachedResolver(repo, 16, time.Minute)
	ctx := context.Background()

	_, err := c.ResolveItem(ctx, "mithril")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	_, err = c.ResolveItem(ctx, "mithril")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Equal(t, 2, repo.byName)
}

func TestCachedResolver_WarmAndPurge(t *testing.T) {
	repo := newCountingRepo()
	c := NewCachedResolver(repo, 16, time.Minute)
	ctx := context.Background()

	n, err := c.Warm(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	it, err := c.ResolveItem(ctx, "diamond")
	require.NoError(t, err)
	assert.Equal(t, "Shiny Diamond", it.DisplayName)
	assert.Equal(t, 0, repo.byName)

	c.Purge()
	_, err = c.ResolveItem(ctx, "diamond")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.byName)

	repo.listErr = errors.New("db down")
	_, err = c.Warm(ctx)
	assert.Error(t, err)
}

func TestCachedResolver_RejectsInvalidStats(t *testing.T) {
	repo := newCountingRepo(cursedOre)
	c := NewCachedResolver(repo, 16, time.Minute)
	ctx := context.Background()

	n, err := c.Warm(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "invalid item is skipped")

	_, err = c.ResolveItem(ctx, "cursed_ore")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Contains(t, err.Error(), "luck")
	assert.Equal(t, 1, repo.byName, "warm did not cache it")

	_, err = c.ItemByID(ctx, cursedOre.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = c.ResolveItem(ctx, "coal")
	assert.NoError(t, err)
}

func TestMemoryResolver_RejectsInvalidStats(t *testing.T) {
	r := NewMemoryResolver(append(DefaultItems(), cursedOre))

	_, err := r.ResolveItem(context.Background(), "cursed_ore")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	_, err = r.ItemByID(context.Background(), cursedOre.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}
