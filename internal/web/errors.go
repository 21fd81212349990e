package web

// errors.go provides unified error response handling for the web layer.
//
// The error flow:
//  1. Handler encounters an error from the core
//  2. Calls respondError(w, r, err)
//  3. Error is mapped via core.MapError to get a coded user message
//  4. Technical error + context is logged with the request ID
//  5. The user message is written as a JSON envelope with the HTTP status
//     that matches the error kind

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/aswanig/labportal/internal/core"
)

// ErrorResponse is the JSON envelope for API errors. Reasons carries the
// per-parameter breakdown for rejected submissions.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code"`
	Action  string   `json:"action,omitempty"`
	Reasons []string `json:"reasons,omitempty"`
}

// respondError logs the technical error and writes the mapped user message.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	userMsg := core.MapError(err)
	status := statusForError(err)

	slog.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
		"code", userMsg.Code,
		"request_id", middleware.GetReqID(r.Context()),
	)

	resp := ErrorResponse{
		Error:  userMsg.Message,
		Code:   userMsg.Code,
		Action: userMsg.Action,
	}
	var rejected *core.ValidationRejectedError
	if errors.As(err, &rejected) {
		resp.Reasons = rejected.Reasons
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// statusForError maps core error kinds to HTTP status codes.
func statusForError(err error) int {
	var incomplete *core.IncompleteInputError
	var rejected *core.ValidationRejectedError

	switch {
	case errors.Is(err, core.ErrUnknownIdentity):
		return http.StatusUnauthorized
	case errors.Is(err, core.ErrRoleDenied), errors.Is(err, core.ErrUnauthorizedCustomer):
		return http.StatusForbidden
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrInvalidTransition):
		return http.StatusConflict
	case errors.As(err, &incomplete), errors.As(err, &rejected),
		errors.Is(err, core.ErrUnknownTestType), errors.Is(err, core.ErrUnknownParameter):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON encodes v as JSON with the given status code.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
