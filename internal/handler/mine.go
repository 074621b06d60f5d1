package handler

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"

	"github.com/osse101/MinesBot_Go/internal/economy"
	"github.com/osse101/MinesBot_Go/internal/logger"
	"github.com/osse101/MinesBot_Go/internal/mining"
)

// SellAmount is either a unit count or the literal "all". Anything that is
// neither decodes to a zero count, which the economy service rejects as
// invalid_amount.
type SellAmount struct {
	All      bool
	Quantity int64
}

// UnmarshalJSON accepts numbers (fractions are floored) and "all"
func (a *SellAmount) UnmarshalJSON(data []byte) error {
	*a = SellAmount{}

	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		a.All = s == SellAll
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		// null, booleans and objects are simply not an amount
		return nil
	}
	if i, err := n.Int64(); err == nil {
		a.Quantity = i
		return nil
	}
	if f, err := n.Float64(); err == nil && f < math.MaxInt64 && f > math.MinInt64 {
		a.Quantity = int64(math.Floor(f))
	}
	return nil
}

// SellRequest is the body of POST /mine/sell
type SellRequest struct {
	Resource string     `json:"resource" validate:"max=32"`
	Amount   SellAmount `json:"amount" swaggertype:"string" example:"all"`
}

// HandleDig runs one mining action for the caller
// @Summary Mine once
// @Description Rolls a value-capped drop for the caller's pickaxe tier and starts the mining cooldown
// @Tags mining
// @Produce json
// @Security ApiKeyAuth
// @Param X-Telegram-User-ID header int true "Telegram user id"
// @Success 200 {object} Response{data=domain.MineResult}
// @Failure 400 {object} ErrorResponse "no_pickaxe"
// @Failure 429 {object} ErrorResponse "cooldown, remain_ms set"
// @Failure 500 {object} ErrorResponse "internal"
// @Router /mine/dig [post]
func HandleDig(svc mining.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := requirePlayer(w, r)
		if !ok {
			return
		}

		result, err := svc.Mine(r.Context(), playerID)
		if err != nil {
			RespondError(w, r, "mine", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgMineCompleted,
			"tier", result.Tier, "value", result.TotalValue, "cap", result.ValueCap)
		respondOK(w, result)
	}
}

// HandleSell converts held resources into mcoin
// @Summary Sell resources
// @Description Sells a quantity of one resource, or all of it, for mcoin
// @Tags mining
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Telegram-User-ID header int true "Telegram user id"
// @Param request body SellRequest true "Request"
// @Success 200 {object} Response{data=domain.SellResult}
// @Failure 400 {object} ErrorResponse "invalid_resource, invalid_amount, nothing_to_sell or insufficient_<resource>"
// @Failure 500 {object} ErrorResponse "internal"
// @Router /mine/sell [post]
func HandleSell(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := requirePlayer(w, r)
		if !ok {
			return
		}

		var req SellRequest
		if err := DecodeAndValidateRequest(r, w, &req, "sell"); err != nil {
			return
		}

		result, err := svc.Sell(r.Context(), playerID, req.Resource, req.Amount.Quantity, req.Amount.All)
		if err != nil {
			RespondError(w, r, "sell", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgResourceSold,
			"resource", result.Resource, "quantity", result.Quantity, "gained", result.SoftGained)
		respondOK(w, result)
	}
}
