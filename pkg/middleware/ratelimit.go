package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/vfg2006/meta-ads-mcp/pkg/log"
)

// RateLimitMiddleware limita a vazão de requisições do processo inteiro.
// O limite é global e não por cliente: o consumidor esperado é um único
// cliente MCP.
func RateLimitMiddleware(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.L.WithFields(log.Fields{
					"remote_addr": r.RemoteAddr,
					"path":        r.URL.Path,
				}).Warn("Requisição recusada por rate limit")

				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
