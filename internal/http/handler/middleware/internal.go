package middleware

import (
	"crypto/subtle"
	"net/http"
)

const InternalTokenHeader = "X-Internal-Token"

// InternalToken guards service-to-service routes with a shared secret.
func InternalToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(InternalTokenHeader)
			if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				writeError(w, http.StatusUnauthorized, "Authentication failed", "internal token is invalid")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
