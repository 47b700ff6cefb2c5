package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/qrkeeper/qrkeeper/internal/common"
	"github.com/qrkeeper/qrkeeper/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// requireAuth validates the bearer token and resolves it to an existing
// user before letting the request through. Missing, malformed, or expired
// tokens and vanished users all map to 401.
func (s *HTTPServer) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			s.writeError(w, r, common.ErrInvalidToken)
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		if _, err := s.users.GetByID(r.Context(), userID); err != nil {
			s.writeError(w, r, common.ErrInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}
