package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

var (
	limiters      = make(map[string]*rate.Limiter)
	limitersMutex sync.Mutex
)

func getLimiter(ip string) *rate.Limiter {
	limitersMutex.Lock()
	defer limitersMutex.Unlock()

	if limiter, exists := limiters[ip]; exists {
		return limiter
	}
	limiter := rate.NewLimiter(10, 30) // 10 requests/sec, burst up to 30
	limiters[ip] = limiter
	return limiter
}

func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, _ := net.SplitHostPort(r.RemoteAddr)

		limiter := getLimiter(ip)
		if !limiter.Allow() {
			writeError(w, time.Now(), http.StatusTooManyRequests, "Too many requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}
