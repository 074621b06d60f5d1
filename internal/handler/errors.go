package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/MinesBot_Go/internal/cooldown"
	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/logger"
)

// StatusForCode maps a client error code to its HTTP status.
// Business rejections are 400 unless listed here.
func StatusForCode(code string) int {
	switch code {
	case domain.CodeInternal:
		return http.StatusInternalServerError
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case domain.CodeNoUser:
		return http.StatusForbidden
	case domain.CodeCooldown, CodeRateLimited:
		return http.StatusTooManyRequests
	case domain.CodeNoSession:
		return http.StatusNotFound
	case domain.CodeSessionActive, domain.CodeNFTUnavailable:
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

// RespondError converts a service error into the error envelope.
// Internal failures are logged at error level; expected rejections at debug.
func RespondError(w http.ResponseWriter, r *http.Request, op string, err error) {
	log := logger.FromContext(r.Context())
	code := domain.ErrorCode(err)

	if code == domain.CodeInternal {
		log.Error(LogMsgServiceFailed, "op", op, "error", err)
	} else {
		log.Debug(LogMsgServiceRejected, "op", op, "code", code, "error", err)
	}

	resp := ErrorResponse{Error: code}

	var cd cooldown.ErrOnCooldown
	if errors.As(err, &cd) {
		remain := cd.RemainingMS()
		resp.RemainMS = &remain
	}

	respondJSON(w, StatusForCode(code), resp)
}
