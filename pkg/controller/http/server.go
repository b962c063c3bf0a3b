package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/forage-labs/stitch/pkg/usecase"
	"github.com/forage-labs/stitch/pkg/utils/logging"
)

type Server struct {
	router       *chi.Mux
	uc           *usecase.UseCases
	webhookToken string
}

type Options func(*Server)

// WithWebhookToken requires the shared token on webhook POSTs, passed
// either as a Bearer token or an X-Webhook-Token header. Health GETs
// stay open.
func WithWebhookToken(token string) Options {
	return func(s *Server) {
		s.webhookToken = token
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api/generate", func(r chi.Router) {
		r.Get("/", healthHandler("generate"))
		r.Post("/", generateHandler(uc))
	})

	r.Route("/api/reply", func(r chi.Router) {
		r.Get("/", healthHandler("reply"))
		r.Post("/", replyHandler(uc))
	})

	r.Route("/api/feedback", func(r chi.Router) {
		r.Get("/", healthHandler("feedback"))
		r.Post("/", feedbackHandler(uc))
	})

	r.Route("/hooks/zendesk", func(r chi.Router) {
		r.Get("/", healthHandler("zendesk-webhook"))
		r.With(webhookAuth(s.webhookToken)).Post("/", webhookHandler(uc))
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// healthHandler serves the per-route liveness response. GETs on the
// API paths are side-effect free.
func healthHandler(service string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":    "ok",
			"service":   service,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Default().Error("failed to write response", "error", err.Error())
	}
}
