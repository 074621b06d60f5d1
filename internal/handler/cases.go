package handler

import (
	"net/http"

	"github.com/osse101/MinesBot_Go/internal/cases"
	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/logger"
)

// OpenCaseRequest is the body of POST /cases/open
type OpenCaseRequest struct {
	Case string `json:"case" validate:"max=32"`
}

// CollectiblesResponse lists what the caller owns and what is left to win
type CollectiblesResponse struct {
	Collectibles []domain.Collectible `json:"collectibles"`
	Pool         []domain.PoolStock   `json:"pool"`
}

// HandleOpenCase opens one loot box
// @Summary Open case
// @Description Opens a cheap or premium case
// @Tags cases
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Telegram-User-ID header int true "Telegram user id"
// @Param request body OpenCaseRequest true "Request"
// @Success 200 {object} Response{data=domain.CaseResult}
// @Failure 400 {object} ErrorResponse "invalid_case or not_enough_stars"
// @Failure 409 {object} ErrorResponse "nft_unavailable"
// @Failure 500 {object} ErrorResponse "internal"
// @Router /cases/open [post]
func HandleOpenCase(svc cases.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := requirePlayer(w, r)
		if !ok {
			return
		}

		var req OpenCaseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "open case"); err != nil {
			return
		}

		result, err := svc.Open(r.Context(), playerID, req.Case)
		if err != nil {
			RespondError(w, r, "open case", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgCaseOpened,
			"case", result.Case, "prize", result.PrizeKey)
		respondOK(w, result)
	}
}

// HandleListCollectibles returns the caller's collectibles and the pool stock
// @Summary List collectibles
// @Description Returns the caller's collectibles and the free pool stock per kind
// @Tags cases
// @Produce json
// @Security ApiKeyAuth
// @Param X-Telegram-User-ID header int true "Telegram user id"
// @Success 200 {object} Response{data=CollectiblesResponse}
// @Failure 500 {object} ErrorResponse "internal"
// @Router /cases/collectibles [get]
func HandleListCollectibles(svc cases.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := requirePlayer(w, r)
		if !ok {
			return
		}

		owned, err := svc.ListCollectibles(r.Context(), playerID)
		if err != nil {
			RespondError(w, r, "list collectibles", err)
			return
		}

		stock, err := svc.PoolStock(r.Context())
		if err != nil {
			RespondError(w, r, "pool stock", err)
			return
		}

		if owned == nil {
			owned = []domain.Collectible{}
		}
		if stock == nil {
			stock = []domain.PoolStock{}
		}
		respondOK(w, CollectiblesResponse{Collectibles: owned, Pool: stock})
	}
}
