package handler

import (
	"net/http"

	"github.com/osse101/MinesBot_Go/internal/economy"
	"github.com/osse101/MinesBot_Go/internal/logger"
	"github.com/osse101/MinesBot_Go/internal/player"
)

// ExchangeRequest is the body of POST /shop/exchange. Amount is always in
// stars: bought for soft_to_hard, sold for hard_to_soft.
type ExchangeRequest struct {
	Direction string `json:"direction" validate:"max=32"`
	Amount    int64  `json:"amount"`
}

// UpgradeRequest is the body of POST /shop/upgrade
type UpgradeRequest struct {
	Method string `json:"method" validate:"max=16"`
}

// HandleExchange converts between mcoin and stars
// @Summary Exchange currency
// @Description Buys stars with mcoin (soft_to_hard) or sells stars for mcoin (hard_to_soft). Amount is in stars.
// @Tags shop
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Telegram-User-ID header int true "Telegram user id"
// @Param request body ExchangeRequest true "Request"
// @Success 200 {object} Response{data=domain.ExchangeResult}
// @Failure 400 {object} ErrorResponse "invalid_direction, invalid_amount, not_enough_mcoin or not_enough_stars"
// @Failure 500 {object} ErrorResponse "internal"
// @Router /shop/exchange [post]
func HandleExchange(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := requirePlayer(w, r)
		if !ok {
			return
		}

		var req ExchangeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "exchange"); err != nil {
			return
		}

		result, err := svc.Exchange(r.Context(), playerID, req.Direction, req.Amount)
		if err != nil {
			RespondError(w, r, "exchange", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgCurrencyExchanged,
			"direction", result.Direction, "stars", result.Stars, "mcoin", result.Mcoin)
		respondOK(w, result)
	}
}

// HandleUpgradeQuote returns the next pickaxe tier and its price in both currencies
// @Summary Quote pickaxe upgrade
// @Description Returns the next pickaxe tier and its price in mcoin and stars
// @Tags shop
// @Produce json
// @Security ApiKeyAuth
// @Param X-Telegram-User-ID header int true "Telegram user id"
// @Success 200 {object} Response{data=domain.UpgradeQuote}
// @Failure 400 {object} ErrorResponse "max_level"
// @Failure 500 {object} ErrorResponse "internal"
// @Router /shop/upgrade [get]
func HandleUpgradeQuote(players player.Service, svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := requirePlayer(w, r)
		if !ok {
			return
		}

		p, err := players.GetPlayer(r.Context(), playerID)
		if err != nil {
			RespondError(w, r, "upgrade quote", err)
			return
		}

		quote, err := svc.QuoteUpgrade(r.Context(), p)
		if err != nil {
			RespondError(w, r, "upgrade quote", err)
			return
		}

		respondOK(w, quote)
	}
}

// HandleUpgrade buys the next pickaxe tier
// @Summary Upgrade pickaxe
// @Description Buys the next pickaxe tier with mcoin (default) or stars
// @Tags shop
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Telegram-User-ID header int true "Telegram user id"
// @Param request body UpgradeRequest true "Request"
// @Success 200 {object} Response{data=domain.UpgradeResult}
// @Failure 400 {object} ErrorResponse "max_level, not_enough_mcoin or not_enough_stars"
// @Failure 500 {object} ErrorResponse "internal"
// @Router /shop/upgrade [post]
func HandleUpgrade(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := requirePlayer(w, r)
		if !ok {
			return
		}

		var req UpgradeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "upgrade"); err != nil {
			return
		}

		result, err := svc.UpgradeEquipment(r.Context(), playerID, req.Method)
		if err != nil {
			RespondError(w, r, "upgrade", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgEquipmentUpgraded,
			"tier", result.NewTier, "method", result.Method, "cost", result.Cost)
		respondOK(w, result)
	}
}
