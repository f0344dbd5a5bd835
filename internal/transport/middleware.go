package transport

import (
	"context"
	"net/http"
)

type userKey struct{}

// UserHeader carries the caller's identity, established by the upstream
// gateway. This service makes no authorization decisions of its own.
const UserHeader = "X-User-ID"

// UserFromContext returns the user ID from context, if present.
func UserFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userKey{}).(string)
	return userID, ok
}

// UserMiddleware extracts the caller's identity header into the request context.
func UserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(UserHeader)
		if userID == "" {
			http.Error(w, "missing "+UserHeader+" header", http.StatusBadRequest)
			return
		}
		ctx := context.WithValue(r.Context(), userKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
