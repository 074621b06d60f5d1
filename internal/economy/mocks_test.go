package economy

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/repository"
)

// MockRepository implements repository.Economy
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.Tx), args.Error(1)
}

// MockTx implements repository.Tx
type MockTx struct {
	mock.Mock
}

func (m *MockTx) GetPlayerForUpdate(ctx context.Context, playerID int64) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockTx) ApplyDelta(ctx context.Context, playerID int64, delta domain.Delta) error {
	args := m.Called(ctx, playerID, delta)
	return args.Error(0)
}

func (m *MockTx) SetLastMineAt(ctx context.Context, playerID int64, at time.Time) error {
	args := m.Called(ctx, playerID, at)
	return args.Error(0)
}

func (m *MockTx) SetEquipmentTier(ctx context.Context, playerID int64, tier int) error {
	args := m.Called(ctx, playerID, tier)
	return args.Error(0)
}

func (m *MockTx) InsertLedgerEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
