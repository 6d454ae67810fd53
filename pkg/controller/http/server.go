package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/secmon-lab/argus/pkg/usecase"
	"github.com/secmon-lab/argus/pkg/utils/logging"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

type Options func(*Server)

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

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/domains", domainsHandler)
		r.Get("/catalog/{domain}", catalogHandler(s.uc))

		r.Route("/assessments", func(r chi.Router) {
			r.Get("/", listAssessmentsHandler(s.uc))
			r.Post("/", createAssessmentHandler(s.uc))

			r.Route("/{assessmentID}", func(r chi.Router) {
				r.Get("/", getAssessmentHandler(s.uc))
				r.Put("/", updateAssessmentHandler(s.uc))
				r.Delete("/", deleteAssessmentHandler(s.uc))

				r.Put("/responses", putResponsesHandler(s.uc))
				r.Get("/responses", getResponsesHandler(s.uc))
				r.Put("/controls", putControlsHandler(s.uc))
				r.Get("/controls", getControlsHandler(s.uc))

				r.Post("/calculate", calculateHandler(s.uc))
				r.Get("/results", resultsHandler(s.uc))
				r.Get("/shrinkage", shrinkageHandler(s.uc))
			})
		})

		r.Post("/tcor", tcorHandler(s.uc))
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`)) //nolint:errcheck // header already committed
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
