// Package item resolves item catalog entries by internal name or ID.
package item

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/IdleMiner_Go/internal/domain"
)

// Resolver is the read-only item catalog.
type Resolver interface {
	ResolveItem(ctx context.Context, name string) (*domain.Item, error)
	ItemByID(ctx context.Context, id int) (*domain.Item, error)
}

// MemoryResolver serves a fixed item list. Safe for concurrent reads.
type MemoryResolver struct {
	byName map[string]*domain.Item
	byID   map[int]*domain.Item
}

// NewMemoryResolver indexes items. Later duplicates replace earlier ones;
// items whose stats their category does not allow are left out.
func NewMemoryResolver(items []domain.Item) *MemoryResolver {
	r := &MemoryResolver{
		byName: make(map[string]*domain.Item, len(items)),
		byID:   make(map[int]*domain.Item, len(items)),
	}
	for i := range items {
		it := items[i]
		if err := load(&it); err != nil {
			slog.Warn("Skipping invalid item", "item", it.InternalName, "error", err)
			continue
		}
		r.byName[it.InternalName] = &it
		r.byID[it.ID] = &it
	}
	return r
}

// ResolveItem implements Resolver.
func (r *MemoryResolver) ResolveItem(_ context.Context, name string) (*domain.Item, error) {
	it, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrItemNotFound, name)
	}
	cp := *it
	return &cp, nil
}

// ItemByID implements Resolver.
func (r *MemoryResolver) ItemByID(_ context.Context, id int) (*domain.Item, error) {
	it, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrItemNotFound, id)
	}
	cp := *it
	return &cp, nil
}

// DisplayName turns an internal name like "low_spirit_stone" into "Low Spirit Stone".
func DisplayName(internalName string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(internalName, "_", " "))
}

// load fills defaults and enforces the category's allowed stats.
func load(it *domain.Item) error {
	normalize(it)
	if err := domain.ValidateStats(it.Category, it.Stats); err != nil {
		return fmt.Errorf("item %q: %w", it.InternalName, err)
	}
	return nil
}

func normalize(it *domain.Item) {
	if it.DisplayName == "" {
		it.DisplayName = DisplayName(it.InternalName)
	}
	if it.Category == "" {
		it.Category = domain.CategoryMaterial
	}
	if it.Rarity == "" {
		it.Rarity = domain.RarityCommon
	}
}
