package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/service/porter"
	"github.com/secmon-lab/atelier/pkg/usecase"
	"github.com/secmon-lab/atelier/pkg/utils/errutil"
	"github.com/secmon-lab/atelier/pkg/utils/logging"
)

// Server exposes the store, the projections and import/export over JSON
// REST for the external renderer.
type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
	labels model.Labels
}

// Option configures the server
type Option func(*Server)

// WithLabels replaces the display labels served to the renderer
func WithLabels(labels model.Labels) Option {
	return func(s *Server) {
		s.labels = labels
	}
}

func New(uc *usecase.UseCases, opts ...Option) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
		labels: model.DefaultLabels(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/analyses", func(r chi.Router) {
			r.Get("/", s.listAnalyses)
			r.Post("/", s.createAnalysis)
			r.Get("/selected", s.currentAnalysis)

			r.Route("/{analysisID}", func(r chi.Router) {
				r.Get("/", s.getAnalysis)
				r.Patch("/", s.renameAnalysis)
				r.Delete("/", s.deleteAnalysis)
				r.Post("/select", s.selectAnalysis)
				r.Get("/export", s.exportAnalysis)

				s.mountCollections(r)
				s.mountPlan(r)

				r.Get("/viewmodels/{view}", s.viewModel)
			})
		})

		r.Get("/export", s.exportAll)
		r.Post("/import", s.importDocument)
		r.Get("/labels", s.labelsHandler)

		r.Route("/catalogue", func(r chi.Router) {
			r.Get("/", s.catalogue)
			r.Post("/load", s.loadCatalogue)
		})
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

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logging.Default().Warn("failed to encode response", "error", err)
		}
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return goerr.Wrap(err, "invalid request body")
	}
	return nil
}

// respondErr maps domain errors to status codes and writes the response
// through errutil.
func respondErr(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, usecase.ErrAnalysisNotFound),
		errors.Is(err, usecase.ErrEntityNotFound),
		errors.Is(err, usecase.ErrNoSelection):
		status = http.StatusNotFound
	case errors.Is(err, porter.ErrMalformedDocument):
		status = http.StatusBadRequest
	}
	errutil.HandleHTTP(r.Context(), w, err, status)
}
