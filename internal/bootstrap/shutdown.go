package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is an HTTP server that can drain in-flight requests
type Stopper interface {
	Stop(ctx context.Context) error
}

// Closer releases a resource without reporting errors, like pgxpool.Pool
type Closer interface {
	Close()
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server Stopper
	DB     Closer
}

// GracefulShutdown stops the HTTP server first so no new transaction starts,
// then closes the database pool once in-flight requests have drained.
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.DB != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DB.Close()
	}

	slog.Info(LogMsgServerStopped)
}
