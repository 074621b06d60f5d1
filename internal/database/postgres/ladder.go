package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/MinesBot_Go/internal/database/generated"
	"github.com/osse101/MinesBot_Go/internal/domain"
)

func getLadderSession(ctx context.Context, q *generated.Queries, playerID int64) (*domain.LadderSession, error) {
	row, err := q.GetLadderSession(ctx, playerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLadderSession, err)
	}

	s := &domain.LadderSession{
		PlayerID:      row.PlayerID,
		Stake:         row.Stake,
		CurrentLevel:  int(row.CurrentLevel),
		ClearedLevels: int(row.ClearedLevels),
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
	if err := json.Unmarshal(row.BrokenMap, &s.BrokenMap); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeBrokenMap, err)
	}
	return s, nil
}

// GetLadderSession reads the session inside the transaction. The caller
// already holds the player row lock, which guards the session as well.
func (t *pgTx) GetLadderSession(ctx context.Context, playerID int64) (*domain.LadderSession, error) {
	return getLadderSession(ctx, t.q, playerID)
}

// CreateLadderSession stores a new session. The primary key rejects a
// second session for the same player.
func (t *pgTx) CreateLadderSession(ctx context.Context, session *domain.LadderSession) error {
	broken, err := json.Marshal(session.BrokenMap)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeBrokenMap, err)
	}

	row, err := t.q.CreateLadderSession(ctx, generated.CreateLadderSessionParams{
		PlayerID:      session.PlayerID,
		Stake:         session.Stake,
		CurrentLevel:  int32(session.CurrentLevel),
		ClearedLevels: int32(session.ClearedLevels),
		BrokenMap:     broken,
	})
	if err != nil {
		if isPgError(err, PgErrorCodeUniqueViolation) {
			return fmt.Errorf("%s: %w", ErrMsgFailedToCreateLadderSession, domain.ErrSessionActive)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateLadderSession, err)
	}
	session.CreatedAt = row.CreatedAt.Time
	session.UpdatedAt = row.UpdatedAt.Time
	return nil
}

// UpdateLadderSession stores progress
func (t *pgTx) UpdateLadderSession(ctx context.Context, session *domain.LadderSession) error {
	updatedAt, err := t.q.UpdateLadderSession(ctx, generated.UpdateLadderSessionParams{
		PlayerID:      session.PlayerID,
		CurrentLevel:  int32(session.CurrentLevel),
		ClearedLevels: int32(session.ClearedLevels),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateLadderSession, domain.ErrNoSession)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateLadderSession, err)
	}
	session.UpdatedAt = updatedAt.Time
	return nil
}

// DeleteLadderSession ends the player's session
func (t *pgTx) DeleteLadderSession(ctx context.Context, playerID int64) error {
	affected, err := t.q.DeleteLadderSession(ctx, playerID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteLadderSession, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteLadderSession, domain.ErrNoSession)
	}
	return nil
}
