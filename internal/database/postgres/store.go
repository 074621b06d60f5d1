package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MinesBot_Go/internal/database/generated"
	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/repository"
)

// Store implements every game repository on one PostgreSQL pool
type Store struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

var (
	_ repository.Player  = (*Store)(nil)
	_ repository.Mining  = (*Store)(nil)
	_ repository.Economy = (*Store)(nil)
	_ repository.Ladder  = (*Store)(nil)
	_ repository.Cases   = (*Store)(nil)
)

// NewStore creates a new Store
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db, q: generated.New(db)}
}

func (s *Store) begin(ctx context.Context) (*pgTx, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &pgTx{tx: tx, q: s.q.WithTx(tx)}, nil
}

// BeginTx starts a transaction for mining and economy actions
func (s *Store) BeginTx(ctx context.Context) (repository.Tx, error) {
	return s.begin(ctx)
}

// BeginLadderTx starts a transaction that can also read and write ladder sessions
func (s *Store) BeginLadderTx(ctx context.Context) (repository.LadderTx, error) {
	return s.begin(ctx)
}

// BeginCasesTx starts a transaction that can also reserve pool collectibles
func (s *Store) BeginCasesTx(ctx context.Context) (repository.CasesTx, error) {
	return s.begin(ctx)
}

// GetPlayer reads a player without locking
func (s *Store) GetPlayer(ctx context.Context, playerID int64) (*domain.Player, error) {
	p, err := playerResult(s.q.GetPlayer(ctx, playerID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayer, err)
	}
	return p, nil
}

// GetPlayerByTelegramID reads a player by their Telegram user id
func (s *Store) GetPlayerByTelegramID(ctx context.Context, telegramID int64) (*domain.Player, error) {
	p, err := playerResult(s.q.GetPlayerByTelegramID(ctx, telegramID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayer, err)
	}
	return p, nil
}

// UpsertPlayer registers identity on first sight and refreshes its display
// fields afterwards
func (s *Store) UpsertPlayer(ctx context.Context, identity domain.Identity) (*domain.Player, error) {
	row, err := s.q.UpsertPlayer(ctx, generated.UpsertPlayerParams{
		TelegramID: identity.TelegramID,
		Username:   identity.Username,
		FirstName:  identity.FirstName,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertPlayer, err)
	}
	return playerFromRow(row), nil
}

// HasLadderSession reports whether the player has an unfinished ladder session
func (s *Store) HasLadderSession(ctx context.Context, playerID int64) (bool, error) {
	exists, err := s.q.HasLadderSession(ctx, playerID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToGetLadderSession, err)
	}
	return exists, nil
}

// GetLadderSession reads a session outside any transaction.
// Returns (nil, nil) when the player has none.
func (s *Store) GetLadderSession(ctx context.Context, playerID int64) (*domain.LadderSession, error) {
	return getLadderSession(ctx, s.q, playerID)
}
