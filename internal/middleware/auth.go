package middleware

import (
	"net/http"
	"strings"
	"time"

	"skyward/airport-api/internal/auth"
	"skyward/airport-api/internal/constants"
)

// AuthMiddleware requires a valid bearer token on every request and places
// the caller claims in the request context. Identity lives in the token;
// no store lookup happens here.
func AuthMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			initTime := time.Now()

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeError(w, initTime, http.StatusUnauthorized, constants.MsgUnauthenticated)
				return
			}

			claims, err := auth.ParseToken(secret, strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				writeError(w, initTime, http.StatusUnauthorized, constants.MsgUnauthenticated)
				return
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
