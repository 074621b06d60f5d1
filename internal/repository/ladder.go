package repository

import (
	"context"

	"github.com/osse101/MinesBot_Go/internal/domain"
)

// LadderTx extends Tx with ladder session storage.
// GetLadderSession returns (nil, nil) when the player has no session.
type LadderTx interface {
	Tx
	GetLadderSession(ctx context.Context, playerID int64) (*domain.LadderSession, error)
	CreateLadderSession(ctx context.Context, session *domain.LadderSession) error
	UpdateLadderSession(ctx context.Context, session *domain.LadderSession) error
	DeleteLadderSession(ctx context.Context, playerID int64) error
}

// Ladder defines the repository for ladder sessions
type Ladder interface {
	BeginLadderTx(ctx context.Context) (LadderTx, error)
	GetLadderSession(ctx context.Context, playerID int64) (*domain.LadderSession, error)
}
