package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/osse101/IdleMiner_Go/internal/domain"
)

// ItemRepository serves a fixed item list.
type ItemRepository struct {
	items map[string]domain.Item
}

// NewItemRepository indexes items by internal name.
func NewItemRepository(items []domain.Item) *ItemRepository {
	r := &ItemRepository{items: make(map[string]domain.Item, len(items))}
	for _, it := range items {
		r.items[it.InternalName] = it
	}
	return r
}

// GetItemByName implements repository.Item.
func (r *ItemRepository) GetItemByName(_ context.Context, internalName string) (*domain.Item, error) {
	it, ok := r.items[internalName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrItemNotFound, internalName)
	}
	return &it, nil
}

// GetItemByID implements repository.Item.
func (r *ItemRepository) GetItemByID(_ context.Context, id int) (*domain.Item, error) {
	for _, it := range r.items {
		if it.ID == id {
			return &it, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", domain.ErrItemNotFound, id)
}

// ListItems implements repository.Item.
func (r *ItemRepository) ListItems(_ context.Context) ([]domain.Item, error) {
	out := make([]domain.Item, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
