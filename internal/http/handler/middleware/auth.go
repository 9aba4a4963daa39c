package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	tokenIssuer "unifarm/pkg/jwt"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenValidator . TokenValidator
type TokenValidator interface {
	Validate(token string) (jwt.MapClaims, error)
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func writeError(w http.ResponseWriter, code int, message, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorBody{Message: message, Error: detail})
}

// Auth requires "Authorization: Bearer <token>" and stores the token subject as the user id.
func Auth(logger *zap.SugaredLogger, tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestId := RequestIDFromContext(r.Context())

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				writeError(w, http.StatusUnauthorized, "Authentication failed", "bearer token is required")
				return
			}

			claims, err := tokens.Validate(strings.TrimSpace(token))
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Authentication failed", "invalid or expired token")
				logger.Warnw("token rejected",
					"error", err,
					"request_id", requestId)
				return
			}

			userID, err := tokenIssuer.UserID(claims)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Authentication failed", "invalid token subject")
				logger.Warnw("token subject rejected",
					"error", err,
					"request_id", requestId)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
