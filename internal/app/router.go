// Package app assembles configuration, middleware and routes into the HTTP
// handler served by cmd/server.
package app

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpserver "github.com/fairyhunter13/ai-interview-coach/internal/adapter/httpserver"
	"github.com/fairyhunter13/ai-interview-coach/internal/adapter/observability"
	"github.com/fairyhunter13/ai-interview-coach/internal/config"
	"github.com/fairyhunter13/ai-interview-coach/internal/service/ratelimiter"
)

// ParseOrigins splits a comma-separated origin list into a slice, trimming spaces.
// If the input is empty, returns ["*"].
func ParseOrigins(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return []string{"*"}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// BuildRouter constructs the HTTP handler with all middlewares and routes.
// limiter may be nil; the strict generation limit then falls back to the
// in-process httprate guard only.
func BuildRouter(cfg config.Config, srv *httpserver.Server, limiter ratelimiter.Limiter) http.Handler {
	r := chi.NewRouter()
	r.Use(httpserver.Recoverer())
	r.Use(httpserver.RequestID())
	r.Use(httpserver.AccessLog())
	r.Use(observability.HTTPMetricsMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ParseOrigins(cfg.CORSAllowOrigins),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-Id", "X-Content-Quality", "X-Content-Warnings", "X-Content-Compatibility", "X-Resume-Analysis"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// General limit across all API routes, then stricter per-route buckets.
	r.Group(func(api chi.Router) {
		api.Use(httprate.LimitByIP(cfg.RateLimitRequests, cfg.RateLimitWindow))

		api.Group(func(vr chi.Router) {
			vr.Use(httprate.LimitByIP(cfg.ValidateRatePerMin, time.Minute))
			vr.Use(httpserver.TimeoutMiddleware(cfg.ValidateTimeout))
			vr.Post("/v1/validate/job", srv.ValidateJobHandler())
			vr.Post("/v1/validate/resume", srv.ValidateResumeHandler())
		})

		api.Group(func(gr chi.Router) {
			gr.Use(httprate.LimitByIP(cfg.GenerateRatePerMin, time.Minute))
			gr.Use(httpserver.RateLimit(limiter, "generate"))
			gr.Use(httpserver.TimeoutMiddleware(cfg.GenerateTimeout))
			gr.Post("/v1/generate", srv.GenerateHandler())
		})
	})

	r.Get("/healthz", httpserver.HealthzHandler())
	r.Get("/readyz", srv.ReadyzHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) { promhttp.Handler().ServeHTTP(w, r) })

	return httpserver.SecurityHeaders(r)
}
