package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/IdleMiner_Go/internal/domain"
	"github.com/osse101/IdleMiner_Go/internal/repository"
)

const itemColumns = `item_id, internal_name, display_name, item_description, category,
	rarity, stackable, required_level, base_value, stats`

// ItemRepository implements repository.Item for PostgreSQL
type ItemRepository struct {
	pool *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

// GetItemByName retrieves an item by internal name
func (r *ItemRepository) GetItemByName(ctx context.Context, internalName string) (*domain.Item, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE internal_name = $1`, internalName)
	it, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", domain.ErrItemNotFound, internalName)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItemByName, err)
	}
	return it, nil
}

// GetItemByID retrieves an item by ID
func (r *ItemRepository) GetItemByID(ctx context.Context, id int) (*domain.Item, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE item_id = $1`, id)
	it, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrItemNotFound, id)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItemByID, err)
	}
	return it, nil
}

// ListItems returns the whole catalog ordered by ID
func (r *ItemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+itemColumns+` FROM items ORDER BY item_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
		}
		items = append(items, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
	}
	return items, nil
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var it domain.Item
	var stats []byte
	if err := row.Scan(
		&it.ID, &it.InternalName, &it.DisplayName, &it.Description, &it.Category,
		&it.Rarity, &it.Stackable, &it.RequiredLevel, &it.BaseValue, &stats,
	); err != nil {
		return nil, err
	}
	if len(stats) > 0 {
		if err := json.Unmarshal(stats, &it.Stats); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeStats, err)
		}
	}
	if len(it.Stats) == 0 {
		it.Stats = nil
	}
	return &it, nil
}

var _ repository.Item = (*ItemRepository)(nil)
