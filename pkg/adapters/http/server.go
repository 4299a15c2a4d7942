// Package http exposes the machine catalog over a JSON HTTP API: CRUD on
// stored definitions plus a process endpoint that runs input sequences.
package http

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/automat/pkg/definition"
	"github.com/aretw0/automat/pkg/dfa"
	"github.com/aretw0/automat/pkg/observability"
	"github.com/aretw0/automat/pkg/ports"
)

//go:embed openapi.yaml
var openAPISpec []byte

// Server handles the HTTP surface over a DefinitionStore.
type Server struct {
	store   ports.DefinitionStore
	metrics *observability.Metrics
	logger  *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets a structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics attaches a metrics bundle and enables /metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// NewHandler creates the HTTP handler for the machine catalog.
func NewHandler(store ports.DefinitionStore, opts ...Option) http.Handler {
	s := &Server{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		_, _ = w.Write(openAPISpec)
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.Route("/machines", func(r chi.Router) {
		r.Get("/", s.list)
		r.Put("/{name}", s.upsert)
		r.Get("/{name}", s.get)
		r.Delete("/{name}", s.delete)
		r.Post("/{name}/process", s.process)
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type listResponse struct {
	Machines []string `json:"machines"`
}

type processRequest struct {
	// Input is run as a sequence of one-character symbols.
	Input string `json:"input,omitempty"`
	// Symbols, when present, takes precedence over Input and carries the
	// sequence as explicit tokens.
	Symbols []dfa.Symbol `json:"symbols,omitempty"`
}

type processResponse struct {
	Accepted   bool   `json:"accepted"`
	FinalState string `json:"final_state"`
	Symbols    int    `json:"symbols"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List(r.Context())
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err, "List failed")
		return
	}
	if names == nil {
		names = []string{}
	}
	s.respond(w, http.StatusOK, listResponse{Machines: names})
}

func (s *Server) upsert(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.fail(w, http.StatusBadRequest, err, "Upsert: invalid request body")
		return
	}

	def, err := definition.FromMap(raw)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err, "Upsert: malformed definition")
		return
	}
	def.Name = name

	// Compile before saving so the catalog only ever holds definitions
	// that satisfy the DFA invariants.
	_, err = def.Compile()
	if s.metrics != nil {
		s.metrics.ObserveCompile(err)
	}
	if err != nil {
		s.fail(w, http.StatusUnprocessableEntity, err, "Upsert: definition does not compile")
		return
	}

	if err := s.store.Save(r.Context(), def); err != nil {
		s.fail(w, http.StatusInternalServerError, err, "Upsert: save failed")
		return
	}
	s.logger.Info("machine stored", "machine", name)
	s.respond(w, http.StatusOK, def)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	def, err := s.store.Load(r.Context(), name)
	if err != nil {
		if errors.Is(err, definition.ErrNotFound) {
			s.fail(w, http.StatusNotFound, err, "")
			return
		}
		s.fail(w, http.StatusInternalServerError, err, "Get: load failed")
		return
	}
	s.respond(w, http.StatusOK, def)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := s.store.Delete(r.Context(), name); err != nil {
		s.fail(w, http.StatusInternalServerError, err, "Delete failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) process(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var body processRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.fail(w, http.StatusBadRequest, err, "Process: invalid request body")
		return
	}

	def, err := s.store.Load(r.Context(), name)
	if err != nil {
		if errors.Is(err, definition.ErrNotFound) {
			s.fail(w, http.StatusNotFound, err, "")
			return
		}
		s.fail(w, http.StatusInternalServerError, err, "Process: load failed")
		return
	}

	m, err := def.Compile()
	if s.metrics != nil {
		s.metrics.ObserveCompile(err)
	}
	if err != nil {
		// A stored definition that stops compiling means the catalog was
		// tampered with out of band.
		s.fail(w, http.StatusInternalServerError, err, "Process: stored definition does not compile")
		return
	}

	seq := body.Symbols
	if seq == nil {
		seq = dfa.Symbols(body.Input)
	}

	accepted, err := m.Process(seq)
	if s.metrics != nil {
		s.metrics.ObserveProcess(name, len(seq), accepted, err)
	}
	if err != nil {
		var trErr *dfa.TransitionError
		if errors.As(err, &trErr) {
			s.fail(w, http.StatusBadRequest, err, "")
			return
		}
		s.fail(w, http.StatusInternalServerError, err, "Process failed")
		return
	}

	s.respond(w, http.StatusOK, processResponse{
		Accepted:   accepted,
		FinalState: m.CurrentState().Name,
		Symbols:    len(seq),
	})
}

func (s *Server) respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, status int, err error, logMsg string) {
	if logMsg != "" {
		s.logger.Warn(logMsg, "error", err, "status", status)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: fmt.Sprintf("%v", err)})
}
