package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/IdleMiner_Go/internal/domain"
	"github.com/osse101/IdleMiner_Go/internal/repository"
)

const playerColumns = `player_id, username, level, mining_level, max_inventory_size,
	mining, inventory, temp_inventory, equipment, created_at, updated_at`

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PlayerRepository implements repository.Player for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// CreatePlayer inserts a new player row.
func (r *PlayerRepository) CreatePlayer(ctx context.Context, p *domain.Player) error {
	cols, err := encodePlayer(p)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO players (` + playerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = r.db.Exec(ctx, query,
		p.ID, p.Username, p.Level, p.MiningLevel, p.MaxInventorySize,
		cols.mining, cols.inventory, cols.temp, cols.equipment, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, p.Username)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPlayer, err)
	}
	return nil
}

func (r *PlayerRepository) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	return getPlayer(ctx, r.db, `SELECT `+playerColumns+` FROM players WHERE player_id = $1`, playerID)
}

func (r *PlayerRepository) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	return getPlayer(ctx, r.db, `SELECT `+playerColumns+` FROM players WHERE username = $1`, username)
}

// BeginTx starts a transaction for read-modify-write cycles on one player.
func (r *PlayerRepository) BeginTx(ctx context.Context) (repository.PlayerTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &PlayerTx{tx: tx}, nil
}

// PlayerTx wraps a pgx transaction
type PlayerTx struct {
	tx pgx.Tx
}

func (t *PlayerTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *PlayerTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetPlayerForUpdate loads the player row with SELECT ... FOR UPDATE.
func (t *PlayerTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	p, err := getPlayer(ctx, t.tx, `SELECT `+playerColumns+` FROM players WHERE player_id = $1 FOR UPDATE`, playerID)
	if err != nil && !domain.IsNotFound(err) {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockPlayer, err)
	}
	return p, err
}

// UpdatePlayer writes every mutable column of the player.
func (t *PlayerTx) UpdatePlayer(ctx context.Context, p *domain.Player) error {
	cols, err := encodePlayer(p)
	if err != nil {
		return err
	}

	query := `
		UPDATE players
		SET level = $2, mining_level = $3, max_inventory_size = $4,
			mining = $5, inventory = $6, temp_inventory = $7, equipment = $8, updated_at = $9
		WHERE player_id = $1
	`
	tag, err := t.tx.Exec(ctx, query,
		p.ID, p.Level, p.MiningLevel, p.MaxInventorySize,
		cols.mining, cols.inventory, cols.temp, cols.equipment, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdatePlayer, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, p.ID)
	}
	return nil
}

type playerJSON struct {
	mining    []byte
	inventory []byte
	temp      []byte
	equipment []byte
}

func encodePlayer(p *domain.Player) (playerJSON, error) {
	var out playerJSON
	var err error
	if out.mining, err = json.Marshal(p.Mining); err != nil {
		return out, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalPlayer, err)
	}
	if out.inventory, err = json.Marshal(nonNilSlots(p.Inventory)); err != nil {
		return out, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalPlayer, err)
	}
	if out.temp, err = json.Marshal(nonNilSlots(p.TempInventory)); err != nil {
		return out, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalPlayer, err)
	}
	equipment := p.Equipment
	if equipment == nil {
		equipment = domain.Equipment{}
	}
	if out.equipment, err = json.Marshal(equipment); err != nil {
		return out, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalPlayer, err)
	}
	return out, nil
}

func nonNilSlots(inv domain.Inventory) domain.Inventory {
	if inv.Slots == nil {
		inv.Slots = []domain.InventorySlot{}
	}
	return inv
}

func getPlayer(ctx context.Context, q querier, query string, arg string) (*domain.Player, error) {
	var p domain.Player
	var cols playerJSON
	err := q.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.Username, &p.Level, &p.MiningLevel, &p.MaxInventorySize,
		&cols.mining, &cols.inventory, &cols.temp, &cols.equipment, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, arg)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayer, err)
	}

	if err := json.Unmarshal(cols.mining, &p.Mining); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalPlayer, err)
	}
	if err := json.Unmarshal(cols.inventory, &p.Inventory); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalPlayer, err)
	}
	if err := json.Unmarshal(cols.temp, &p.TempInventory); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalPlayer, err)
	}
	if err := json.Unmarshal(cols.equipment, &p.Equipment); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalPlayer, err)
	}
	p.Inventory = nonNilSlots(p.Inventory)
	p.TempInventory = nonNilSlots(p.TempInventory)
	if p.Equipment == nil {
		p.Equipment = domain.Equipment{}
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return &p, nil
}

var _ repository.Player = (*PlayerRepository)(nil)
