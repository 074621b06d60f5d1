package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates its tags.
// An empty body decodes to the zero value so that the service can report the
// precise rejection code.
//
// If this function returns an error, the response has already been written
// and the handler should return.
//
// Example usage:
//
//	var req LadderPickRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "ladder pick"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
		log.Warn(LogMsgRequestDecodeFailed, "action", actionName, "error", err)
		RespondCode(w, domain.CodeInvalidInput)
		return err
	}

	if err := validateRequest(req); err != nil {
		log.Debug(LogMsgRequestInvalid, "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  domain.CodeInvalidInput,
			Fields: fieldErrors(err),
		})
		return err
	}

	return nil
}
