// internal/middleware/ratelimit.go
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimit builds a per-IP limiter from a formatted rate such as "20-M".
// The counters live in process memory.
func RateLimit(formatted string) (func(http.Handler) http.Handler, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("parsing rate %q: %w", formatted, err)
	}

	store := memory.NewStore()
	mw := stdlib.NewMiddleware(
		limiter.New(store, rate),
		stdlib.WithLimitReachedHandler(func(w http.ResponseWriter, r *http.Request) {
			slog.WarnContext(r.Context(), "Rate limit reached", "path", r.URL.Path, "requestID", chimw.GetReqID(r.Context()))
			respondWithError(w, http.StatusTooManyRequests, "Too many requests")
		}),
	)

	return mw.Handler, nil
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	fmt.Fprintf(w, `{"error":%q}`, message)
}
