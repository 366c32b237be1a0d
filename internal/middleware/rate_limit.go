package middleware

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"newskoop/newsroom/internal/common"
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

// RateLimitMiddleware throttles clients per source IP.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !getLimiter(ip).Allow() {
			common.RespondError(w, "too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
