package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/qrkeeper/qrkeeper/internal/common"
)

// panicError carries the stack captured while the panic was still
// unwinding, so the dev-mode error body points at the panic site instead
// of the response writer.
type panicError struct {
	stack []byte
}

func (e *panicError) Error() string { return common.ErrorInternal.Error() }
func (e *panicError) Unwrap() error { return common.ErrorInternal }

// errorResponse is the single error body shape. Stack is populated only
// outside production.
type errorResponse struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

func (s *HTTPServer) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err onto the HTTP error taxonomy and renders the JSON
// error body.
func (s *HTTPServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		s.logger.Error(r.Context(), err.Error(), "path", r.URL.Path)
	}

	body := errorResponse{Message: err.Error()}
	if !s.production {
		var pe *panicError
		if errors.As(err, &pe) {
			body.Stack = string(pe.stack)
		} else {
			// Sentinel errors carry no trace of their own; the
			// response-path stack is the closest available.
			body.Stack = string(debug.Stack())
		}
	}

	s.writeJSON(w, status, body)
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorInvalidCredentials),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorForbidden):
		return http.StatusForbidden
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorEmailAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// recoverer keeps a handler panic from killing the process; panics surface
// as the generic internal error through the usual boundary.
func (s *HTTPServer) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				s.logger.Error(r.Context(), "panic in handler", "panic", p, "path", r.URL.Path)
				s.writeError(w, r, &panicError{stack: debug.Stack()})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
