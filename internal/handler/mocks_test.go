package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/player"
)

type MockMiningService struct {
	mock.Mock
}

func (m *MockMiningService) Mine(ctx context.Context, playerID int64) (*domain.MineResult, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MineResult), args.Error(1)
}

type MockEconomyService struct {
	mock.Mock
}

func (m *MockEconomyService) Sell(ctx context.Context, playerID int64, resource string, quantity int64, all bool) (*domain.SellResult, error) {
	args := m.Called(ctx, playerID, resource, quantity, all)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SellResult), args.Error(1)
}

func (m *MockEconomyService) Exchange(ctx context.Context, playerID int64, direction string, amount int64) (*domain.ExchangeResult, error) {
	args := m.Called(ctx, playerID, direction, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeResult), args.Error(1)
}

func (m *MockEconomyService) QuoteUpgrade(ctx context.Context, p *domain.Player) (*domain.UpgradeQuote, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UpgradeQuote), args.Error(1)
}

func (m *MockEconomyService) UpgradeEquipment(ctx context.Context, playerID int64, method string) (*domain.UpgradeResult, error) {
	args := m.Called(ctx, playerID, method)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UpgradeResult), args.Error(1)
}

type MockLadderService struct {
	mock.Mock
}

func (m *MockLadderService) Start(ctx context.Context, playerID, stake int64) (*domain.LadderSnapshot, error) {
	args := m.Called(ctx, playerID, stake)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LadderSnapshot), args.Error(1)
}

func (m *MockLadderService) Pick(ctx context.Context, playerID int64, column int) (*domain.LadderPickResult, error) {
	args := m.Called(ctx, playerID, column)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LadderPickResult), args.Error(1)
}

func (m *MockLadderService) Cashout(ctx context.Context, playerID int64) (*domain.LadderCashoutResult, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LadderCashoutResult), args.Error(1)
}

func (m *MockLadderService) GetSession(ctx context.Context, playerID int64) (*domain.LadderSnapshot, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LadderSnapshot), args.Error(1)
}

type MockCasesService struct {
	mock.Mock
}

func (m *MockCasesService) Open(ctx context.Context, playerID int64, kind string) (*domain.CaseResult, error) {
	args := m.Called(ctx, playerID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaseResult), args.Error(1)
}

func (m *MockCasesService) ListCollectibles(ctx context.Context, playerID int64) ([]domain.Collectible, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Collectible), args.Error(1)
}

func (m *MockCasesService) PoolStock(ctx context.Context) ([]domain.PoolStock, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PoolStock), args.Error(1)
}

type MockPlayerService struct {
	mock.Mock
}

func (m *MockPlayerService) EnsurePlayer(ctx context.Context, identity domain.Identity) (int64, error) {
	args := m.Called(ctx, identity)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlayerService) GetProfile(ctx context.Context, playerID int64) (*domain.Profile, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockPlayerService) GetPlayer(ctx context.Context, playerID int64) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerService) CacheStats() player.CacheStats {
	args := m.Called()
	return args.Get(0).(player.CacheStats)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
