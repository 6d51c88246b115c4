package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/flexxoo/website/internal/config"
	"github.com/flexxoo/website/pkg/apperror"
)

// NewSubmitLimiter bounds lead submissions for the whole process.
// SUBMIT_RATE_PER_MINUTE=0 disables limiting.
func NewSubmitLimiter(cfg *config.Config) *rate.Limiter {
	rl := cfg.RateLimit
	if rl.PerMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := rl.Burst
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(rl.PerMinute)), burst)
}

// RateLimit rejects requests with 429 once limiter runs dry.
func RateLimit(limiter *rate.Limiter, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Warn("submission rate limited", slog.String("path", r.URL.Path))
				w.Header().Set("Retry-After", "60")
				apperror.WriteJSON(w, r, log, apperror.ErrTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
