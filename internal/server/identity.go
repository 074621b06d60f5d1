package server

import (
	"net/http"

	"github.com/osse101/MinesBot_Go/internal/handler"
	"github.com/osse101/MinesBot_Go/internal/logger"
	"github.com/osse101/MinesBot_Go/internal/player"
)

// IdentityMiddleware resolves the gateway-asserted Telegram identity into a
// player id, registering first-time callers.
func IdentityMiddleware(players player.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := handler.IdentityFromRequest(r)
			if !ok {
				logger.FromContext(r.Context()).Warn(LogMsgIdentityMissing, "path", r.URL.Path)
				handler.RespondCode(w, handler.CodeUnauthorized)
				return
			}

			playerID, err := players.EnsurePlayer(r.Context(), identity)
			if err != nil {
				logger.FromContext(r.Context()).Error(LogMsgIdentityResolveErr,
					"telegram_id", identity.TelegramID, "error", err)
				handler.RespondError(w, r, "identity", err)
				return
			}

			next.ServeHTTP(w, r.WithContext(handler.WithPlayerID(r.Context(), playerID)))
		})
	}
}
