// Package memory provides in-process repository implementations for tests,
// benchmarks and local runs without Postgres.
package memory

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"

	"github.com/osse101/IdleMiner_Go/internal/domain"
	"github.com/osse101/IdleMiner_Go/internal/repository"
)

var errTxClosed = errors.New(domain.ErrMsgTxClosed)

// PlayerRepository stores players in a map. Transactions take a per-player
// row lock, mirroring SELECT ... FOR UPDATE.
type PlayerRepository struct {
	mu      sync.RWMutex
	players map[string]*domain.Player
	rows    sync.Map // player ID -> *sync.Mutex

	// UpdateErr, when set, is returned by every UpdatePlayer call.
	UpdateErr error
}

// NewPlayerRepository creates an empty repository.
func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{players: make(map[string]*domain.Player)}
}

// CreatePlayer implements repository.Player.
func (r *PlayerRepository) CreatePlayer(_ context.Context, p *domain.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[p.ID]; ok {
		return fmt.Errorf("player %s already exists", p.ID)
	}
	for _, existing := range r.players {
		if existing.Username == p.Username {
			return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, p.Username)
		}
	}
	r.players[p.ID] = ClonePlayer(p)
	return nil
}

// GetPlayer implements repository.Player.
func (r *PlayerRepository) GetPlayer(_ context.Context, playerID string) (*domain.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.players[playerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	return ClonePlayer(p), nil
}

// GetPlayerByUsername implements repository.Player.
func (r *PlayerRepository) GetPlayerByUsername(_ context.Context, username string) (*domain.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.players {
		if p.Username == username {
			return ClonePlayer(p), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, username)
}

// BeginTx implements repository.Player.
func (r *PlayerRepository) BeginTx(_ context.Context) (repository.PlayerTx, error) {
	return &playerTx{repo: r, pending: make(map[string]*domain.Player)}, nil
}

func (r *PlayerRepository) rowLock(playerID string) *sync.Mutex {
	l, _ := r.rows.LoadOrStore(playerID, &sync.Mutex{})
	return l.(*sync.Mutex)
}

type playerTx struct {
	repo    *PlayerRepository
	locked  []*sync.Mutex
	pending map[string]*domain.Player
	closed  bool
}

func (t *playerTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	if t.closed {
		return nil, errTxClosed
	}
	if p, ok := t.pending[playerID]; ok {
		return ClonePlayer(p), nil
	}

	lock := t.repo.rowLock(playerID)
	lock.Lock()
	t.locked = append(t.locked, lock)

	return t.repo.GetPlayer(ctx, playerID)
}

func (t *playerTx) UpdatePlayer(_ context.Context, p *domain.Player) error {
	if t.closed {
		return errTxClosed
	}
	if t.repo.UpdateErr != nil {
		return t.repo.UpdateErr
	}
	t.pending[p.ID] = ClonePlayer(p)
	return nil
}

func (t *playerTx) Commit(_ context.Context) error {
	if t.closed {
		return errTxClosed
	}
	t.repo.mu.Lock()
	for id, p := range t.pending {
		t.repo.players[id] = p
	}
	t.repo.mu.Unlock()
	t.release()
	return nil
}

func (t *playerTx) Rollback(_ context.Context) error {
	if t.closed {
		return errTxClosed
	}
	t.release()
	return nil
}

func (t *playerTx) release() {
	t.closed = true
	for _, l := range t.locked {
		l.Unlock()
	}
	t.locked = nil
}

// ClonePlayer deep-copies a player so callers cannot alias stored state.
func ClonePlayer(p *domain.Player) *domain.Player {
	cp := *p
	cp.Inventory.Slots = append([]domain.InventorySlot{}, p.Inventory.Slots...)
	cp.TempInventory.Slots = append([]domain.InventorySlot{}, p.TempInventory.Slots...)
	cp.Equipment = maps.Clone(p.Equipment)
	if cp.Equipment == nil {
		cp.Equipment = domain.Equipment{}
	}
	return &cp
}
