package handler

import (
	"net/http"

	"github.com/osse101/MinesBot_Go/internal/player"
	"github.com/osse101/MinesBot_Go/internal/tables"
)

// HandleGetProfile returns the caller's balances, resources and timers
// @Summary Get profile
// @Description Returns balances, resources, pickaxe tier and the mining cooldown
// @Tags player
// @Produce json
// @Security ApiKeyAuth
// @Param X-Telegram-User-ID header int true "Telegram user id"
// @Success 200 {object} Response{data=domain.Profile}
// @Failure 500 {object} ErrorResponse "internal"
// @Router /profile [get]
func HandleGetProfile(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := requirePlayer(w, r)
		if !ok {
			return
		}

		profile, err := svc.GetProfile(r.Context(), playerID)
		if err != nil {
			RespondError(w, r, "profile", err)
			return
		}

		respondOK(w, profile)
	}
}

// HandleEconomyConfig publishes the static economy tables to the client
// @Summary Get economy tables
// @Description Returns the static drop, upgrade, ladder and case tables
// @Tags config
// @Produce json
// @Success 200 {object} Response{data=tables.Tables}
// @Failure 500 {object} ErrorResponse "internal"
// @Router /config/economy [get]
func HandleEconomyConfig(tb *tables.Tables) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondOK(w, tb)
	}
}
