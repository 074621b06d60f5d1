package repository

import (
	"context"
	"errors"

	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/logger"
)

// Rollbacker is the part of every transaction SafeRollback needs
type Rollbacker interface {
	Rollback(ctx context.Context) error
}

// SafeRollback is deferred right after Begin. After a successful Commit the
// rollback reports domain.ErrTxClosed, which is expected and not logged.
func SafeRollback(ctx context.Context, tx Rollbacker) {
	err := tx.Rollback(ctx)
	if err == nil || errors.Is(err, domain.ErrTxClosed) {
		return
	}
	logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", err)
}
