package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MinesBot_Go/internal/cooldown"
	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/tables"
)

const testPlayerID int64 = 42

// playerRequest builds a request as if the identity middleware had resolved testPlayerID
func playerRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	return req.WithContext(WithPlayerID(req.Context(), testPlayerID))
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	assert.Equal(t, status, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, code, body["error"])
}

func TestStatusForCode(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{domain.CodeInternal, http.StatusInternalServerError},
		{CodeUnauthorized, http.StatusUnauthorized},
		{domain.CodeNoUser, http.StatusForbidden},
		{domain.CodeCooldown, http.StatusTooManyRequests},
		{domain.CodeNoSession, http.StatusNotFound},
		{domain.CodeSessionActive, http.StatusConflict},
		{domain.CodeNFTUnavailable, http.StatusConflict},
		{domain.CodeNotEnoughStars, http.StatusBadRequest},
		{"insufficient_coal", http.StatusBadRequest},
		{domain.CodeBadColumn, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, StatusForCode(tt.code))
		})
	}
}

func TestRequirePlayer_MissingContext(t *testing.T) {
	svc := &MockMiningService{}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/mine/dig", nil)
	w := httptest.NewRecorder()

	HandleDig(svc).ServeHTTP(w, req)

	assertErrorCode(t, w, http.StatusForbidden, domain.CodeNoUser)
	svc.AssertNotCalled(t, "Mine", mock.Anything, mock.Anything)
}

func TestIdentityFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		wantOK bool
		wantID int64
	}{
		{"valid", "12345", true, 12345},
		{"whitespace trimmed", " 777 ", true, 777},
		{"missing", "", false, 0},
		{"not a number", "abc", false, 0},
		{"zero", "0", false, 0},
		{"negative", "-5", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.userID != "" {
				req.Header.Set(HeaderTelegramUserID, tt.userID)
			}
			req.Header.Set(HeaderTelegramUsername, "miner")

			id, ok := IdentityFromRequest(req)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id.TelegramID)
			if ok {
				assert.Equal(t, "miner", id.Username)
			}
		})
	}
}

func TestPlayerIDContext(t *testing.T) {
	req := playerRequest(http.MethodGet, "/", "")
	id, ok := PlayerIDFromContext(req.Context())
	assert.True(t, ok)
	assert.Equal(t, testPlayerID, id)

	_, ok = PlayerIDFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}

func TestHandleDig(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockMiningService{}
		svc.On("Mine", mock.Anything, testPlayerID).Return(&domain.MineResult{
			Tier:       3,
			Drop:       domain.Drop{domain.ResourceCoal: 300},
			TotalValue: 300,
			ValueCap:   700,
		}, nil)

		w := httptest.NewRecorder()
		HandleDig(svc).ServeHTTP(w, playerRequest(http.MethodPost, "/api/v1/mine/dig", ""))

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["ok"])
		data := body["data"].(map[string]interface{})
		assert.Equal(t, float64(300), data["total_value"])
		assert.Equal(t, float64(700), data["value_cap"])
		svc.AssertExpectations(t)
	})

	t.Run("Cooldown reports remaining ms", func(t *testing.T) {
		svc := &MockMiningService{}
		svc.On("Mine", mock.Anything, testPlayerID).
			Return(nil, fmt.Errorf("mine: %w", cooldown.ErrOnCooldown{Action: domain.ActionMine, Remaining: 90 * time.Minute}))

		w := httptest.NewRecorder()
		HandleDig(svc).ServeHTTP(w, playerRequest(http.MethodPost, "/api/v1/mine/dig", ""))

		assertErrorCode(t, w, http.StatusTooManyRequests, domain.CodeCooldown)
		body := decodeBody(t, w)
		assert.Equal(t, float64(90*60*1000), body["remain_ms"])
	})

	t.Run("No pickaxe", func(t *testing.T) {
		svc := &MockMiningService{}
		svc.On("Mine", mock.Anything, testPlayerID).Return(nil, domain.ErrNoPickaxe)

		w := httptest.NewRecorder()
		HandleDig(svc).ServeHTTP(w, playerRequest(http.MethodPost, "/api/v1/mine/dig", ""))

		assertErrorCode(t, w, http.StatusBadRequest, domain.CodeNoPickaxe)
		assert.NotContains(t, w.Body.String(), "remain_ms")
	})

	t.Run("Internal error hides details", func(t *testing.T) {
		svc := &MockMiningService{}
		svc.On("Mine", mock.Anything, testPlayerID).Return(nil, fmt.Errorf("commit: %w", assert.AnError))

		w := httptest.NewRecorder()
		HandleDig(svc).ServeHTTP(w, playerRequest(http.MethodPost, "/api/v1/mine/dig", ""))

		assertErrorCode(t, w, http.StatusInternalServerError, domain.CodeInternal)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})
}

func TestSellAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want SellAmount
	}{
		{"integer", `5`, SellAmount{Quantity: 5}},
		{"fraction floored", `2.9`, SellAmount{Quantity: 2}},
		{"all", `"all"`, SellAmount{All: true}},
		{"other string", `"lots"`, SellAmount{}},
		{"null", `null`, SellAmount{}},
		{"negative", `-3`, SellAmount{Quantity: -3}},
		{"huge float", `1e30`, SellAmount{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got SellAmount
			require.NoError(t, json.Unmarshal([]byte(tt.json), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandleSell(t *testing.T) {
	t.Run("Sell all", func(t *testing.T) {
		svc := &MockEconomyService{}
		svc.On("Sell", mock.Anything, testPlayerID, "coal", int64(0), true).Return(&domain.SellResult{
			Resource:     domain.ResourceCoal,
			Quantity:     40,
			SoftGained:   40,
			SoftCurrency: 140,
		}, nil)

		w := httptest.NewRecorder()
		HandleSell(svc).ServeHTTP(w, playerRequest(http.MethodPost, "/api/v1/mine/sell", `{"resource":"coal","amount":"all"}`))

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.Equal(t, float64(40), data["mcoin_gained"])
		svc.AssertExpectations(t)
	})

	t.Run("Insufficient resource code", func(t *testing.T) {
		svc := &MockEconomyService{}
		svc.On("Sell", mock.Anything, testPlayerID, "gold", int64(10), false).
			Return(nil, domain.InsufficientResourceError{Resource: domain.ResourceGold, Have: 2, Requested: 10})

		w := httptest.NewRecorder()
		HandleSell(svc).ServeHTTP(w, playerRequest(http.MethodPost, "/api/v1/mine/sell", `{"resource":"gold","amount":10}`))

		assertErrorCode(t, w, http.StatusBadRequest, "insufficient_gold")
	})

	t.Run("Malformed body", func(t *testing.T) {
		svc := &MockEconomyService{}

		w := httptest.NewRecorder()
		HandleSell(svc).ServeHTTP(w, playerRequest(http.MethodPost, "/api/v1/mine/sell", `{"resource":`))

		assertErrorCode(t, w, http.StatusBadRequest, domain.CodeInvalidInput)
		svc.AssertNotCalled(t, "Sell", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Oversized resource name", func(t *testing.T) {
		svc := &MockEconomyService{}
		body := fmt.Sprintf(`{"resource":%q,"amount":1}`, strings.Repeat("x", 64))

		w := httptest.NewRecorder()
		HandleSell(svc).ServeHTTP(w, playerRequest(http.MethodPost, "/api/v1/mine/sell", body))

		assertErrorCode(t, w, http.StatusBadRequest, domain.CodeInvalidInput)
		fields := decodeBody(t, w)["fields"].(map[string]interface{})
		assert.Contains(t, fields, "resource")
	})
}

func TestHandleExchange(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(*MockEconomyService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "Success",
			body: `{"direction":"soft_to_hard","amount":2}`,
			setup: func(m *MockEconomyService) {
				m.On("Exchange", mock.Anything, testPlayerID, "soft_to_hard", int64(2)).Return(&domain.ExchangeResult{
					Direction: domain.ExchangeSoftToHard, Stars: 2, Mcoin: 400, SoftCurrency: 100, HardCurrency: 2,
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Not enough mcoin",
			body: `{"direction":"soft_to_hard","amount":100}`,
			setup: func(m *MockEconomyService) {
				m.On("Exchange", mock.Anything, testPlayerID, "soft_to_hard", int64(100)).Return(nil, domain.ErrNotEnoughSoftCurrency)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   domain.CodeNotEnoughMcoin,
		},
		{
			name: "Empty body reaches service",
			body: ``,
			setup: func(m *MockEconomyService) {
				m.On("Exchange", mock.Anything, testPlayerID, "", int64(0)).Return(nil, domain.ErrInvalidDirection)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   domain.CodeInvalidDirection,
		},
		{
			name:       "Amount is not an integer",
			body:       `{"direction":"hard_to_soft","amount":"ten"}`,
			setup:      func(m *MockEconomyService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   domain.CodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockEconomyService{}
			tt.setup(svc)

			w := httptest.NewRecorder()
			HandleExchange(svc).ServeHTTP(w, playerRequest(http.MethodPost, "/api/v1/shop/exchange", tt.body))

			if tt.wantCode != "" {
				assertErrorCode(t, w, tt.wantStatus, tt.wantCode)
			} else {
				assert.Equal(t, tt.wantStatus, w.Code)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleUpgradeQuote(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		players := &MockPlayerService{}
		econ := &MockEconomyService{}
		p := &domain.Player{ID: testPlayerID, EquipmentTier: 1}
		players.On("GetPlayer", mock.Anything, testPlayerID).Return(p, nil)
		econ.On("QuoteUpgrade", mock.Anything, p).Return(&domain.UpgradeQuote{
			CurrentTier: 1, NextTier: 2, MoneyCost: 50000, StarsCost: 250,
		}, nil)

		w := httptest.NewRecorder()
		HandleUpgradeQuote(players, econ).ServeHTTP(w, playerRequest(http.MethodGet, "/api/v1/shop/upgrade", ""))

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.Equal(t, float64(2), data["next_tier"])
		assert.Equal(t, float64(250), data["stars_cost"])
	})

	t.Run("Max level", func(t *testing.T) {
		players := &MockPlayerService{}
		econ := &MockEconomyService{}
		p := &domain.Player{ID: testPlayerID, EquipmentTier: domain.MaxEquipmentTier}
		players.On("GetPlayer", mock.Anything, testPlayerID).Return(p, nil)
		econ.On("QuoteUpgrade", mock.Anything, p).Return(nil, domain.ErrMaxLevel)

		w := httptest.NewRecorder()
		HandleUpgradeQuote(players, econ).ServeHTTP(w, playerRequest(http.MethodGet, "/api/v1/shop/upgrade", ""))

		assertErrorCode(t, w, http.StatusBadRequest, domain.CodeMaxLevel)
	})

	t.Run("Player lookup fails", func(t *testing.T) {
		players := &MockPlayerService{}
		econ := &MockEconomyService{}
		players.On("GetPlayer", mock.Anything, testPlayerID).Return(nil, domain.ErrPlayerNotFound)

		w := httptest.NewRecorder()
		HandleUpgradeQuote(players, econ).ServeHTTP(w, playerRequest(http.MethodGet, "/api/v1/shop/upgrade", ""))

		assertErrorCode(t, w, http.StatusForbidden, domain.CodeNoUser)
		econ.AssertNotCalled(t, "QuoteUpgrade", mock.Anything, mock.Anything)
	})
}

func TestHandleUpgrade(t *testing.T) {
	svc := &MockEconomyService{}
	svc.On("UpgradeEquipment", mock.Anything, testPlayerID, "stars").Return(&domain.UpgradeResult{
		NewTier: 2, Method: domain.PaymentHard, Cost: 250, HardCurrency: 50,
	}, nil)

	w := httptest.NewRecorder()
	HandleUpgrade(svc).ServeHTTP(w, playerRequest(http.MethodPost, "/api/v1/shop/upgrade", `{"method":"stars"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["new_tier"])
	assert.Equal(t, "stars", data["method"])
	svc.AssertExpectations(t)
}

func TestHandleOpenCase(t *testing.T) {
	t.Run("Collectible prize", func(t *testing.T) {
		svc := &MockCasesService{}
		svc.On("Open", mock.Anything, testPlayerID, domain.CasePremium).Return(&domain.CaseResult{
			Case:        domain.CasePremium,
			Cost:        700,
			PrizeKey:    "snoop_dogg",
			PrizeName:   "Snoop Dogg",
			Collectible: &domain.Collectible{ID: 9, Kind: "snoop_dogg", Serial: "abc"},
		}, nil)

		w := httptest.NewRecorder()
		HandleOpenCase(svc).ServeHTTP(w, playerRequest(http.MethodPost, "/api/v1/cases/open", `{"case":"premium"}`))

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.Equal(t, "snoop_dogg", data["prize"])
		assert.NotNil(t, data["collectible"])
	})

	t.Run("Pool exhausted", func(t *testing.T) {
		svc := &MockCasesService{}
		svc.On("Open", mock.Anything, testPlayerID, domain.CasePremium).Return(nil, domain.ErrCollectibleUnavailable)

		w := httptest.NewRecorder()
		HandleOpenCase(svc).ServeHTTP(w, playerRequest(http.MethodPost, "/api/v1/cases/open", `{"case":"premium"}`))

		assertErrorCode(t, w, http.StatusConflict, domain.CodeNFTUnavailable)
	})

	t.Run("Unknown case", func(t *testing.T) {
		svc := &MockCasesService{}
		svc.On("Open", mock.Anything, testPlayerID, "golden").Return(nil, domain.ErrInvalidCase)

		w := httptest.NewRecorder()
		HandleOpenCase(svc).ServeHTTP(w, playerRequest(http.MethodPost, "/api/v1/cases/open", `{"case":"golden"}`))

		assertErrorCode(t, w, http.StatusBadRequest, domain.CodeInvalidCase)
	})
}

func TestHandleListCollectibles(t *testing.T) {
	t.Run("Empty lists are arrays", func(t *testing.T) {
		svc := &MockCasesService{}
		svc.On("ListCollectibles", mock.Anything, testPlayerID).Return(nil, nil)
		svc.On("PoolStock", mock.Anything).Return(nil, nil)

		w := httptest.NewRecorder()
		HandleListCollectibles(svc).ServeHTTP(w, playerRequest(http.MethodGet, "/api/v1/cases/collectibles", ""))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true,"data":{"collectibles":[],"pool":[]}}`, w.Body.String())
	})

	t.Run("Stock failure", func(t *testing.T) {
		svc := &MockCasesService{}
		svc.On("ListCollectibles", mock.Anything, testPlayerID).Return([]domain.Collectible{}, nil)
		svc.On("PoolStock", mock.Anything).Return(nil, assert.AnError)

		w := httptest.NewRecorder()
		HandleListCollectibles(svc).ServeHTTP(w, playerRequest(http.MethodGet, "/api/v1/cases/collectibles", ""))

		assertErrorCode(t, w, http.StatusInternalServerError, domain.CodeInternal)
	})
}

func TestHandleLadder(t *testing.T) {
	t.Run("Start", func(t *testing.T) {
		svc := &MockLadderService{}
		svc.On("Start", mock.Anything, testPlayerID, int64(50)).Return(&domain.LadderSnapshot{
			Stake: 50, Level: 1, NextMultiplier: 1.14, HardCurrency: 50,
		}, nil)

		w := httptest.NewRecorder()
		HandleLadderStart(svc).ServeHTTP(w, playerRequest(http.MethodPost, "/api/v1/ladder/start", `{"stake":50}`))

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Start with active session", func(t *testing.T) {
		svc := &MockLadderService{}
		svc.On("Start", mock.Anything, testPlayerID, int64(50)).Return(nil, domain.ErrSessionActive)

		w := httptest.NewRecorder()
		HandleLadderStart(svc).ServeHTTP(w, playerRequest(http.MethodPost, "/api/v1/ladder/start", `{"stake":50}`))

		assertErrorCode(t, w, http.StatusConflict, domain.CodeSessionActive)
	})

	t.Run("Pick column zero", func(t *testing.T) {
		svc := &MockLadderService{}
		svc.On("Pick", mock.Anything, testPlayerID, 0).Return(&domain.LadderPickResult{
			Outcome: domain.PickLost, Level: 1, Column: 0, BrokenMap: map[int][]int{1: {0}},
		}, nil)

		w := httptest.NewRecorder()
		HandleLadderPick(svc).ServeHTTP(w, playerRequest(http.MethodPost, "/api/v1/ladder/pick", `{"column":0}`))

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.Equal(t, "lost", data["outcome"])
		svc.AssertExpectations(t)
	})

	t.Run("Pick without column", func(t *testing.T) {
		svc := &MockLadderService{}

		w := httptest.NewRecorder()
		HandleLadderPick(svc).ServeHTTP(w, playerRequest(http.MethodPost, "/api/v1/ladder/pick", `{}`))

		assertErrorCode(t, w, http.StatusBadRequest, domain.CodeInvalidInput)
		fields := decodeBody(t, w)["fields"].(map[string]interface{})
		assert.Equal(t, "This field is required", fields["column"])
		svc.AssertNotCalled(t, "Pick", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Pick bad column", func(t *testing.T) {
		svc := &MockLadderService{}
		svc.On("Pick", mock.Anything, testPlayerID, 8).Return(nil, domain.ErrBadColumn)

		w := httptest.NewRecorder()
		HandleLadderPick(svc).ServeHTTP(w, playerRequest(http.MethodPost, "/api/v1/ladder/pick", `{"column":8}`))

		assertErrorCode(t, w, http.StatusBadRequest, domain.CodeBadColumn)
	})

	t.Run("Cashout", func(t *testing.T) {
		svc := &MockLadderService{}
		svc.On("Cashout", mock.Anything, testPlayerID).Return(&domain.LadderCashoutResult{
			Payout: 142, Multiplier: 1.42, ClearedLevels: 3, HardCurrency: 192,
		}, nil)

		w := httptest.NewRecorder()
		HandleLadderCashout(svc).ServeHTTP(w, playerRequest(http.MethodPost, "/api/v1/ladder/cashout", ""))

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.Equal(t, float64(142), data["payout"])
	})

	t.Run("Cashout with nothing cleared", func(t *testing.T) {
		svc := &MockLadderService{}
		svc.On("Cashout", mock.Anything, testPlayerID).Return(nil, domain.ErrNothingToCashout)

		w := httptest.NewRecorder()
		HandleLadderCashout(svc).ServeHTTP(w, playerRequest(http.MethodPost, "/api/v1/ladder/cashout", ""))

		assertErrorCode(t, w, http.StatusBadRequest, domain.CodeNothingToCashout)
	})

	t.Run("Session missing", func(t *testing.T) {
		svc := &MockLadderService{}
		svc.On("GetSession", mock.Anything, testPlayerID).Return(nil, domain.ErrNoSession)

		w := httptest.NewRecorder()
		HandleLadderSession(svc).ServeHTTP(w, playerRequest(http.MethodGet, "/api/v1/ladder/session", ""))

		assertErrorCode(t, w, http.StatusNotFound, domain.CodeNoSession)
	})
}

func TestHandleGetProfile(t *testing.T) {
	svc := &MockPlayerService{}
	cost := int64(10000)
	svc.On("GetProfile", mock.Anything, testPlayerID).Return(&domain.Profile{
		Player:          &domain.Player{ID: testPlayerID, TelegramID: 1, SoftCurrency: 500},
		NextUpgradeCost: &cost,
	}, nil)

	w := httptest.NewRecorder()
	HandleGetProfile(svc).ServeHTTP(w, playerRequest(http.MethodGet, "/api/v1/profile", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(10000), data["next_upgrade_cost"])
	assert.Equal(t, float64(500), data["player"].(map[string]interface{})["mcoin"])
}

func TestHandleEconomyConfig(t *testing.T) {
	tb := tables.Default()

	w := httptest.NewRecorder()
	HandleEconomyConfig(tb).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/config/economy", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(200), data["exchange_rate"])
	assert.Len(t, data["value_caps"], 10)
	assert.Contains(t, data["cases"], domain.CasePremium)
}
