package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"wonderlens/generator"
	"wonderlens/models"
	"wonderlens/store"
)

// APIName is reported by the root endpoint.
const APIName = "WonderLens Chronicles API"

// requestTimeout bounds every handler, generation included.
const requestTimeout = 60 * time.Second

// Options carries the optional collaborators of a Server.
type Options struct {
	Logger *zap.Logger
	// Registry backs /metrics; nil disables the endpoint.
	Registry *prometheus.Registry
	// DatabaseURLSet is reported by the diagnostics endpoint.
	DatabaseURLSet bool
	Now            func() time.Time
}

type Server struct {
	gen      *generator.Generator
	store    store.Store
	logger   *zap.Logger
	registry *prometheus.Registry
	dbURLSet bool
	now      func() time.Time
	lessons  []models.Lesson
}

// New builds the API server. st may be nil, in which case persistence
// endpoints answer 500 "Database not configured".
func New(gen *generator.Generator, st store.Store, opts Options) (*Server, error) {
	if gen == nil {
		return nil, errors.New("content generator required")
	}
	lessons, err := renderLessons(seedLessons)
	if err != nil {
		return nil, err
	}

	s := &Server{
		gen:      gen,
		store:    st,
		logger:   opts.Logger,
		registry: opts.Registry,
		dbURLSet: opts.DatabaseURLSet,
		now:      opts.Now,
		lessons:  lessons,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s, nil
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(logMiddleware(s.logger))
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc:  func(*http.Request, string) bool { return true },
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(chimiddleware.Timeout(requestTimeout))

	r.Get("/", s.handleRoot)
	r.Get("/test", s.handleDiagnostics)
	if s.registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/users/upsert", s.handleUserUpsert)
		r.Post("/users/stage", s.handleStageUpdate)

		r.Post("/mantra/generate", s.handleMantraGenerate)
		r.Post("/oracle", s.handleOracle)

		r.Post("/journal", s.handleJournalCreate)
		r.Get("/journal/{userID}", s.handleJournalList)

		r.Post("/meditation/start", s.handleMeditationStart)
		r.Get("/lessons", s.handleLessons)
		r.Post("/payments/intent", s.handlePaymentIntent)
	})
	return r
}

// --- Helpers ---

// requireStore writes the error response itself when no store is configured.
func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.store == nil {
		writeError(w, http.StatusInternalServerError, "Database not configured")
		return false
	}
	return true
}

// decodeBody decodes and validates a JSON request body, answering 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := decodeJSON(r, v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := models.Validate(v); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return false
	}
	return true
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResp struct {
	Detail string `json:"detail"`
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResp{Detail: detail})
}
