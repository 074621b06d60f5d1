package handler

import (
	"net/http"

	"github.com/osse101/MinesBot_Go/internal/ladder"
	"github.com/osse101/MinesBot_Go/internal/logger"
)

// LadderStartRequest is the body of POST /ladder/start
type LadderStartRequest struct {
	Stake int64 `json:"stake"`
}

// LadderPickRequest is the body of POST /ladder/pick. Column is a pointer so
// that a missing column is told apart from column 0.
type LadderPickRequest struct {
	Column *int `json:"column" validate:"required"`
}

// HandleLadderStart stakes stars on a new ladder session
// @Summary Start ladder
// @Description Stakes stars on a new ladder session
// @Tags ladder
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Telegram-User-ID header int true "Telegram user id"
// @Param request body LadderStartRequest true "Request"
// @Success 200 {object} Response{data=domain.LadderSnapshot}
// @Failure 400 {object} ErrorResponse "bad_stake or not_enough_stars"
// @Failure 409 {object} ErrorResponse "session_active"
// @Failure 500 {object} ErrorResponse "internal"
// @Router /ladder/start [post]
func HandleLadderStart(svc ladder.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := requirePlayer(w, r)
		if !ok {
			return
		}

		var req LadderStartRequest
		if err := DecodeAndValidateRequest(r, w, &req, "ladder start"); err != nil {
			return
		}

		snapshot, err := svc.Start(r.Context(), playerID, req.Stake)
		if err != nil {
			RespondError(w, r, "ladder start", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgLadderStarted, "stake", req.Stake)
		respondOK(w, snapshot)
	}
}

// HandleLadderPick chooses a column on the current level
// @Summary Pick ladder column
// @Description Chooses a column on the current level. A broken slot loses the stake.
// @Tags ladder
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Telegram-User-ID header int true "Telegram user id"
// @Param request body LadderPickRequest true "Request"
// @Success 200 {object} Response{data=domain.LadderPickResult}
// @Failure 400 {object} ErrorResponse "bad_column"
// @Failure 404 {object} ErrorResponse "no_session"
// @Failure 500 {object} ErrorResponse "internal"
// @Router /ladder/pick [post]
func HandleLadderPick(svc ladder.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := requirePlayer(w, r)
		if !ok {
			return
		}

		var req LadderPickRequest
		if err := DecodeAndValidateRequest(r, w, &req, "ladder pick"); err != nil {
			return
		}

		result, err := svc.Pick(r.Context(), playerID, *req.Column)
		if err != nil {
			RespondError(w, r, "ladder pick", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgLadderPicked,
			"outcome", result.Outcome, "level", result.Level, "payout", result.Payout)
		respondOK(w, result)
	}
}

// HandleLadderCashout settles the session at the cleared multiplier
// @Summary Cash out ladder
// @Description Settles the session at the multiplier of the cleared levels
// @Tags ladder
// @Produce json
// @Security ApiKeyAuth
// @Param X-Telegram-User-ID header int true "Telegram user id"
// @Success 200 {object} Response{data=domain.LadderCashoutResult}
// @Failure 400 {object} ErrorResponse "nothing_to_cashout"
// @Failure 404 {object} ErrorResponse "no_session"
// @Failure 500 {object} ErrorResponse "internal"
// @Router /ladder/cashout [post]
func HandleLadderCashout(svc ladder.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := requirePlayer(w, r)
		if !ok {
			return
		}

		result, err := svc.Cashout(r.Context(), playerID)
		if err != nil {
			RespondError(w, r, "ladder cashout", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgLadderCashedOut,
			"cleared", result.ClearedLevels, "payout", result.Payout)
		respondOK(w, result)
	}
}

// HandleLadderSession returns the active session without its broken slots
// @Summary Get ladder session
// @Description Returns the active session without its broken slots
// @Tags ladder
// @Produce json
// @Security ApiKeyAuth
// @Param X-Telegram-User-ID header int true "Telegram user id"
// @Success 200 {object} Response{data=domain.LadderSnapshot}
// @Failure 404 {object} ErrorResponse "no_session"
// @Failure 500 {object} ErrorResponse "internal"
// @Router /ladder/session [get]
func HandleLadderSession(svc ladder.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := requirePlayer(w, r)
		if !ok {
			return
		}

		snapshot, err := svc.GetSession(r.Context(), playerID)
		if err != nil {
			RespondError(w, r, "ladder session", err)
			return
		}

		respondOK(w, snapshot)
	}
}
