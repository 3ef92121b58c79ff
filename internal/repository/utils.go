package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/IdleMiner_Go/internal/domain"
	"github.com/osse101/IdleMiner_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		// Rolling back after Commit is expected on the success path
		if errors.Is(err, pgx.ErrTxClosed) || err.Error() == domain.ErrMsgTxClosed {
			return
		}
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}
