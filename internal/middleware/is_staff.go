package middleware

import (
	"net/http"
	"time"

	"skyward/airport-api/internal/auth"
	"skyward/airport-api/internal/constants"
)

// IsStaffMiddleware gates write operations: any authenticated caller may
// read, only staff may mutate. Evaluated before any query runs.
func IsStaffMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			initTime := time.Now()

			claims := auth.GetUserClaims(r.Context())
			if claims == nil {
				writeError(w, initTime, http.StatusUnauthorized, constants.MsgUnauthenticated)
				return
			}
			if !claims.IsStaff {
				writeError(w, initTime, http.StatusForbidden, constants.MsgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
