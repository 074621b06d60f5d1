package cases

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/repository"
)

// MockRepository implements repository.Cases
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) BeginCasesTx(ctx context.Context) (repository.CasesTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.CasesTx), args.Error(1)
}

func (m *MockRepository) ListCollectibles(ctx context.Context, playerID int64) ([]domain.Collectible, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Collectible), args.Error(1)
}

func (m *MockRepository) GetPoolStock(ctx context.Context) ([]domain.PoolStock, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PoolStock), args.Error(1)
}

// MockCasesTx implements repository.CasesTx
type MockCasesTx struct {
	mock.Mock
}

func (m *MockCasesTx) GetPlayerForUpdate(ctx context.Context, playerID int64) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockCasesTx) ApplyDelta(ctx context.Context, playerID int64, delta domain.Delta) error {
	args := m.Called(ctx, playerID, delta)
	return args.Error(0)
}

func (m *MockCasesTx) SetLastMineAt(ctx context.Context, playerID int64, at time.Time) error {
	args := m.Called(ctx, playerID, at)
	return args.Error(0)
}

func (m *MockCasesTx) SetEquipmentTier(ctx context.Context, playerID int64, tier int) error {
	args := m.Called(ctx, playerID, tier)
	return args.Error(0)
}

func (m *MockCasesTx) InsertLedgerEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockCasesTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCasesTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCasesTx) ReserveCollectible(ctx context.Context, kind string, playerID int64, at time.Time) (*domain.Collectible, error) {
	args := m.Called(ctx, kind, playerID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Collectible), args.Error(1)
}

// fixedRNG always returns the same draw
type fixedRNG float64

func (f fixedRNG) Float64() float64 { return float64(f) }
func (f fixedRNG) IntN(n int) int   { return int(float64(f) * float64(n)) }
