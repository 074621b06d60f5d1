package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
)

// Response is the envelope of every game endpoint
type Response struct {
	OK   bool        `json:"ok"`
	Data interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope of a rejected request
type ErrorResponse struct {
	OK       bool              `json:"ok"`
	Error    string            `json:"error"`
	RemainMS *int64            `json:"remain_ms,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
}

// bufferPool reduces allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON encodes payload into a pooled buffer, then writes it with status
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeResponseFailed, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteResponseFailed, "error", err)
	}
}

// respondOK writes {"ok":true,"data":...}
func respondOK(w http.ResponseWriter, data interface{}) {
	respondJSON(w, http.StatusOK, Response{OK: true, Data: data})
}

// RespondCode writes {"ok":false,"error":code} with the status mapped from code
func RespondCode(w http.ResponseWriter, code string) {
	respondJSON(w, StatusForCode(code), ErrorResponse{Error: code})
}
