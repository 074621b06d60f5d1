package ladder

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/event"
	"github.com/osse101/MinesBot_Go/internal/logger"
	"github.com/osse101/MinesBot_Go/internal/repository"
	"github.com/osse101/MinesBot_Go/internal/tables"
	"github.com/osse101/MinesBot_Go/internal/utils"
)

// Service defines the ladder wager operations
type Service interface {
	Start(ctx context.Context, playerID, stake int64) (*domain.LadderSnapshot, error)
	Pick(ctx context.Context, playerID int64, column int) (*domain.LadderPickResult, error)
	Cashout(ctx context.Context, playerID int64) (*domain.LadderCashoutResult, error)
	GetSession(ctx context.Context, playerID int64) (*domain.LadderSnapshot, error)
}

type service struct {
	repo   repository.Ladder
	tables *tables.Tables
	engine *Engine
	bus    event.Bus
	now    func() time.Time
}

// NewService creates a new ladder service
func NewService(repo repository.Ladder, tb *tables.Tables, rng utils.RandomSource, bus event.Bus) Service {
	return &service{
		repo:   repo,
		tables: tb,
		engine: NewEngine(tb.Ladder, rng),
		bus:    bus,
		now:    time.Now,
	}
}

// begin opens a transaction, locks the player row and loads the session (nil if none)
func (s *service) begin(ctx context.Context, playerID int64) (repository.LadderTx, *domain.Player, *domain.LadderSession, error) {
	tx, err := s.repo.BeginLadderTx(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		repository.SafeRollback(ctx, tx)
		return nil, nil, nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	session, err := tx.GetLadderSession(ctx, playerID)
	if err != nil {
		repository.SafeRollback(ctx, tx)
		return nil, nil, nil, fmt.Errorf(ErrMsgGetSessionFailed, err)
	}
	return tx, player, session, nil
}

// Start deducts the stake and stores a new session with its full broken map
func (s *service) Start(ctx context.Context, playerID, stake int64) (*domain.LadderSnapshot, error) {
	log := logger.FromContext(ctx)

	if !s.tables.IsAllowedStake(stake) {
		return nil, fmt.Errorf("%w: %d", domain.ErrBadStake, stake)
	}

	tx, player, existing, err := s.begin(ctx, playerID)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	if existing != nil {
		return nil, domain.ErrSessionActive
	}
	if player.HardCurrency < stake {
		return nil, domain.ErrNotEnoughHardCurrency
	}

	now := s.now()
	session := s.engine.NewSession(playerID, stake, now)

	if err := tx.ApplyDelta(ctx, playerID, domain.Delta{Hard: -stake}); err != nil {
		return nil, fmt.Errorf(ErrMsgApplyDeltaFailed, err)
	}
	if err := tx.CreateLadderSession(ctx, session); err != nil {
		return nil, fmt.Errorf(ErrMsgCreateSessionFailed, err)
	}
	if err := tx.InsertLedgerEntry(ctx, &domain.LedgerEntry{
		PlayerID:  playerID,
		Kind:      domain.LedgerLadderStart,
		HardDelta: -stake,
		Meta:      map[string]interface{}{"stake": stake},
		CreatedAt: now,
	}); err != nil {
		return nil, fmt.Errorf(ErrMsgInsertLedgerFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	event.Emit(ctx, s.bus, event.New(event.LadderStarted, domain.LadderStartedPayload{
		PlayerID:  playerID,
		Stake:     stake,
		Timestamp: now.Unix(),
	}, now))

	log.Info(LogMsgLadderStarted, "player_id", playerID, "stake", stake)
	snap := s.engine.Snapshot(session)
	snap.HardCurrency = player.HardCurrency - stake
	return snap, nil
}

// Pick resolves a column on the current level
func (s *service) Pick(ctx context.Context, playerID int64, column int) (*domain.LadderPickResult, error) {
	log := logger.FromContext(ctx)

	if !s.engine.ValidColumn(column) {
		return nil, fmt.Errorf("%w: %d", domain.ErrBadColumn, column)
	}

	tx, player, session, err := s.begin(ctx, playerID)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	if session == nil {
		return nil, domain.ErrNoSession
	}

	level := session.CurrentLevel
	outcome, payout, err := s.engine.Pick(session, column)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result := &domain.LadderPickResult{
		Outcome:      outcome,
		Level:        level,
		Column:       column,
		HardCurrency: player.HardCurrency,
	}

	switch outcome {
	case domain.PickAdvanced:
		session.UpdatedAt = now
		if err := tx.UpdateLadderSession(ctx, session); err != nil {
			return nil, fmt.Errorf(ErrMsgUpdateSessionFailed, err)
		}
		result.Session = s.engine.Snapshot(session)
	case domain.PickLost:
		if err := s.settle(ctx, tx, session, domain.LedgerLadderLoss, 0, now); err != nil {
			return nil, err
		}
		result.BrokenMap = session.BrokenMap
	case domain.PickFinished:
		if err := s.settle(ctx, tx, session, domain.LedgerLadderPayout, payout, now); err != nil {
			return nil, err
		}
		result.Payout = payout
		result.Multiplier = s.engine.Multiplier(session.ClearedLevels)
		result.BrokenMap = session.BrokenMap
		result.HardCurrency += payout
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Info(LogMsgLadderPick, "player_id", playerID, "level", level, "column", column, "outcome", outcome)
	if outcome != domain.PickAdvanced {
		s.emitFinished(ctx, session, outcome, payout, now)
	}
	return result, nil
}

// Cashout banks the cleared levels and ends the session
func (s *service) Cashout(ctx context.Context, playerID int64) (*domain.LadderCashoutResult, error) {
	log := logger.FromContext(ctx)

	tx, player, session, err := s.begin(ctx, playerID)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	if session == nil {
		return nil, domain.ErrNoSession
	}
	payout, err := s.engine.Cashout(session)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.settle(ctx, tx, session, domain.LedgerLadderPayout, payout, now); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Info(LogMsgLadderCashout, "player_id", playerID, "cleared", session.ClearedLevels, "payout", payout)
	s.emitFinished(ctx, session, domain.LadderCashedOut, payout, now)
	return &domain.LadderCashoutResult{
		Payout:        payout,
		Multiplier:    s.engine.Multiplier(session.ClearedLevels),
		ClearedLevels: session.ClearedLevels,
		BrokenMap:     session.BrokenMap,
		HardCurrency:  player.HardCurrency + payout,
	}, nil
}

// GetSession returns the caller's active session without its broken slots
func (s *service) GetSession(ctx context.Context, playerID int64) (*domain.LadderSnapshot, error) {
	session, err := s.repo.GetLadderSession(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetSessionFailed, err)
	}
	if session == nil {
		return nil, domain.ErrNoSession
	}
	return s.engine.Snapshot(session), nil
}

// settle credits payout (if any), deletes the session and writes the ledger entry
func (s *service) settle(ctx context.Context, tx repository.LadderTx, session *domain.LadderSession, kind domain.LedgerKind, payout int64, now time.Time) error {
	if payout > 0 {
		if err := tx.ApplyDelta(ctx, session.PlayerID, domain.Delta{Hard: payout}); err != nil {
			return fmt.Errorf(ErrMsgApplyDeltaFailed, err)
		}
	}
	if err := tx.DeleteLadderSession(ctx, session.PlayerID); err != nil {
		return fmt.Errorf(ErrMsgDeleteSessionFailed, err)
	}
	if err := tx.InsertLedgerEntry(ctx, &domain.LedgerEntry{
		PlayerID:  session.PlayerID,
		Kind:      kind,
		HardDelta: payout,
		Meta: map[string]interface{}{
			"stake":   session.Stake,
			"level":   session.CurrentLevel,
			"cleared": session.ClearedLevels,
		},
		CreatedAt: now,
	}); err != nil {
		return fmt.Errorf(ErrMsgInsertLedgerFailed, err)
	}
	return nil
}

func (s *service) emitFinished(ctx context.Context, session *domain.LadderSession, outcome domain.PickOutcome, payout int64, now time.Time) {
	logger.FromContext(ctx).Debug(LogMsgLadderFinished, "player_id", session.PlayerID, "outcome", outcome, "payout", payout)
	event.Emit(ctx, s.bus, event.New(event.LadderFinished, domain.LadderFinishedPayload{
		PlayerID:      session.PlayerID,
		Outcome:       outcome,
		Stake:         session.Stake,
		ClearedLevels: session.ClearedLevels,
		Payout:        payout,
		Timestamp:     now.Unix(),
	}, now))
}
