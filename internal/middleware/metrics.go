package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"skyward/airport-api/internal/auth"
	"skyward/airport-api/internal/logging"
	"skyward/airport-api/internal/metrics"
)

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

// MetricsMiddleware records HTTP metrics for each request and writes the
// access log entry on completion.
func MetricsMiddleware(metricsReg *metrics.MetricsRegistry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			routePattern := chi.RouteContext(r.Context()).RoutePattern()
			if routePattern == "" {
				routePattern = "unknown"
			}

			metricsReg.HTTPRequestsInFlight.WithLabelValues(routePattern).Inc()
			defer metricsReg.HTTPRequestsInFlight.WithLabelValues(routePattern).Dec()

			start := time.Now()
			wrapped := &statusRecorder{ResponseWriter: w, statusCode: 200}
			next.ServeHTTP(wrapped, r)

			duration := time.Since(start).Seconds()
			statusCode := strconv.Itoa(wrapped.statusCode)

			metricsReg.HTTPRequestsTotal.WithLabelValues(
				routePattern,
				r.Method,
				statusCode,
			).Inc()

			metricsReg.HTTPRequestDuration.WithLabelValues(
				routePattern,
				r.Method,
			).Observe(duration)

			var userID int64
			if claims := auth.GetUserClaims(r.Context()); claims != nil {
				userID = claims.UserID
			}

			logging.Info("HTTP request completed",
				"request_id", RequestIDFromContext(r.Context()),
				"method", r.Method,
				"endpoint", routePattern,
				"status_code", wrapped.statusCode,
				"duration_ms", int(duration*1000),
				"user_id", userID,
			)
		})
	}
}
