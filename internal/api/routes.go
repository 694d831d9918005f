package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/taodash/subnet-indexer/internal/config"
	"github.com/taodash/subnet-indexer/internal/observability/tracing"
	"github.com/taodash/subnet-indexer/internal/services"
)

const requestIDHeader = "X-Request-Id"

func newRouter(cfg *config.ServerConfig, service *services.Service) http.Handler {
	h := &handler{service: service}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(traceMiddleware)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}).Handler)

	r.Get("/health", h.health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/price", h.getPrice)
		r.Route("/subnets", func(r chi.Router) {
			r.Get("/", h.listSubnets)
			r.Post("/refresh", h.refreshSubnets)
			r.Get("/{netuid}", h.getSubnet)
		})
	})

	if cfg.StaticDir != "" {
		r.NotFound(staticHandler(cfg.StaticDir))
	}

	return r
}

// traceMiddleware tags every request log line with the caller's request id
// or a generated one, and echoes it back.
func traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := tracing.WithTraceID(r.Context(), r.Header.Get(requestIDHeader))
		if id := r.Header.Get(requestIDHeader); id != "" {
			w.Header().Set(requestIDHeader, id)
		}

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r.WithContext(ctx))

		log.Ctx(ctx).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("Handled request")
	})
}

// staticHandler serves a built single page app from dir. Unknown paths fall
// back to index.html so client side routing keeps working.
func staticHandler(dir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api") || strings.HasPrefix(r.URL.Path, "/health") {
			writeError(w, http.StatusNotFound, "not found")
			return
		}

		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			http.ServeFile(w, r, index)
			return
		}
		fileServer.ServeHTTP(w, r)
	}
}
