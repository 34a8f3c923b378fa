package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"amortizer/logger"
	"amortizer/metrics"
)

// NewRouter wires the loan endpoints. Calculation routes share the rate limiter.
func NewRouter(loanHandler *LoanHandler, limiter *RateLimiter) http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/loan", func(r chi.Router) {
		r.Get("/recent", loanHandler.Recent)

		r.Group(func(r chi.Router) {
			r.Use(RateLimitMiddleware(limiter))
			r.Post("/payment", loanHandler.CalculatePayment)
			r.Post("/principal", loanHandler.CalculatePrincipal)
			r.Post("/months", loanHandler.CalculateMonths)
			r.Post("/rate", loanHandler.CalculateRate)
			r.Post("/schedule", loanHandler.GenerateSchedule)
		})
	})

	return r
}

// requestID tags the request context and response with an ID, reusing the
// caller's X-Request-ID when present.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = logger.GenerateRequestID()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), id)))
	})
}
