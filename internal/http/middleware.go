package http

import (
	"net"
	"net/http"

	"github.com/rogerio-castellano/cart-tracker/internal/cart"
	rl "github.com/rogerio-castellano/cart-tracker/internal/http/rate_limiter"
)

// CartScope installs the cart store handle into the request context. It is
// the provider scope: handlers resolve the store with cart.FromContext and
// fail fast when mounted outside this middleware.
func CartScope(store *cart.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := cart.WithStore(r.Context(), store)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RateLimitMiddleware throttles each client address with a token bucket.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !rl.GetVisitor(ip).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
