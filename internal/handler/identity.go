package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/logger"
)

type contextKey string

const playerIDKey contextKey = "player_id"

// IdentityFromRequest reads the caller identity forwarded by the gateway.
// ok is false when the user id header is missing or not a positive integer.
func IdentityFromRequest(r *http.Request) (domain.Identity, bool) {
	raw := strings.TrimSpace(r.Header.Get(HeaderTelegramUserID))
	if raw == "" {
		return domain.Identity{}, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return domain.Identity{}, false
	}
	return domain.Identity{
		TelegramID: id,
		Username:   strings.TrimSpace(r.Header.Get(HeaderTelegramUsername)),
		FirstName:  strings.TrimSpace(r.Header.Get(HeaderTelegramFirstName)),
	}, true
}

// WithPlayerID stores the resolved player id for handlers and tags the logger
func WithPlayerID(ctx context.Context, playerID int64) context.Context {
	ctx = logger.WithPlayerID(ctx, playerID)
	return context.WithValue(ctx, playerIDKey, playerID)
}

// PlayerIDFromContext returns the player id resolved by the identity middleware
func PlayerIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(playerIDKey).(int64)
	return id, ok
}

// requirePlayer returns the caller's player id, writing no_user when the
// route was reached without the identity middleware.
func requirePlayer(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := PlayerIDFromContext(r.Context())
	if !ok {
		logger.FromContext(r.Context()).Error(LogMsgMissingPlayer, "path", r.URL.Path)
		RespondCode(w, domain.CodeNoUser)
		return 0, false
	}
	return id, true
}
