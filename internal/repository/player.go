package repository

import (
	"context"

	"github.com/osse101/IdleMiner_Go/internal/domain"
)

// Player defines the interface for player persistence
type Player interface {
	// CreatePlayer inserts a new player. A duplicate username returns domain.ErrUsernameTaken.
	CreatePlayer(ctx context.Context, player *domain.Player) error
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error)

	BeginTx(ctx context.Context) (PlayerTx, error)
}

// PlayerTx defines the interface for player transactions
type PlayerTx interface {
	Tx
	// GetPlayerForUpdate loads a player and holds a row lock until the transaction ends.
	GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, player *domain.Player) error
}
