package repository

import (
	"context"

	"github.com/osse101/IdleMiner_Go/internal/domain"
)

// Item defines the interface for item catalog persistence
type Item interface {
	GetItemByName(ctx context.Context, internalName string) (*domain.Item, error)
	GetItemByID(ctx context.Context, id int) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
}
