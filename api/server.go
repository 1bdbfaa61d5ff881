// ABOUTME: HTTP router construction and middleware wiring
// ABOUTME: Routes are plain net/http handlers behind CORS, logging and rate limiting

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/cors"

	"briefing-api/api/handlers"
	"briefing-api/api/middleware"
	"briefing-api/core/interfaces"
)

// Config holds router-level configuration
type Config struct {
	Logger interfaces.Logger

	// RateLimit is requests per RateWindow per client IP; zero disables
	RateLimit  int
	RateWindow time.Duration

	// StaticDir is served under StaticPrefix; empty disables static serving
	StaticDir    string
	StaticPrefix string
}

// NewRouter builds the full HTTP handler chain for the service
func NewRouter(briefing *handlers.BriefingHandler, status *handlers.StatusHandler, cfg Config) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /generate-briefing", briefing.Generate)
	mux.HandleFunc("GET /health", status.Health)
	mux.HandleFunc("GET /info", status.Info)

	if cfg.StaticDir != "" && cfg.StaticPrefix != "" {
		prefix := strings.TrimRight(cfg.StaticPrefix, "/") + "/"
		mux.Handle("GET "+prefix, http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.StaticDir))))
	}

	var handler http.Handler = mux

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		handler = middleware.RateLimitMiddleware(limiter)(handler)
	}

	if cfg.Logger != nil {
		handler = middleware.RequestLoggingMiddleware(cfg.Logger)(handler)
	}

	// CORS sits outermost so preflight requests skip logging and limits
	handler = cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler(handler)

	return handler
}
