package ladder

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/repository"
)

// MockRepository implements repository.Ladder
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) BeginLadderTx(ctx context.Context) (repository.LadderTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.LadderTx), args.Error(1)
}

func (m *MockRepository) GetLadderSession(ctx context.Context, playerID int64) (*domain.LadderSession, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LadderSession), args.Error(1)
}

// MockLadderTx implements repository.LadderTx
type MockLadderTx struct {
	mock.Mock
}

func (m *MockLadderTx) GetPlayerForUpdate(ctx context.Context, playerID int64) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockLadderTx) ApplyDelta(ctx context.Context, playerID int64, delta domain.Delta) error {
	args := m.Called(ctx, playerID, delta)
	return args.Error(0)
}

func (m *MockLadderTx) SetLastMineAt(ctx context.Context, playerID int64, at time.Time) error {
	args := m.Called(ctx, playerID, at)
	return args.Error(0)
}

func (m *MockLadderTx) SetEquipmentTier(ctx context.Context, playerID int64, tier int) error {
	args := m.Called(ctx, playerID, tier)
	return args.Error(0)
}

func (m *MockLadderTx) InsertLedgerEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLadderTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLadderTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLadderTx) GetLadderSession(ctx context.Context, playerID int64) (*domain.LadderSession, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LadderSession), args.Error(1)
}

func (m *MockLadderTx) CreateLadderSession(ctx context.Context, session *domain.LadderSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockLadderTx) UpdateLadderSession(ctx context.Context, session *domain.LadderSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockLadderTx) DeleteLadderSession(ctx context.Context, playerID int64) error {
	args := m.Called(ctx, playerID)
	return args.Error(0)
}
