package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/IdleMiner_Go/internal/database"
)

// stoppable is satisfied by *server.Server.
type stoppable interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds everything that needs an orderly stop.
type ShutdownComponents struct {
	Server stoppable
	DBPool database.Pool
}

// GracefulShutdown stops the HTTP server first so in-flight mining writes
// can commit, then closes the database pool. Errors are logged and the
// sequence continues.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
