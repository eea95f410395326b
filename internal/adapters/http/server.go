// Package http exposes the automaton registry and both engines over a JSON
// API. Routing is hand-written on chi; state lives in a ports.AutomatonStore
// so the server itself stays stateless.
package http

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aretw0/weft/internal/dto"
	"github.com/aretw0/weft/internal/logging"
	"github.com/aretw0/weft/internal/presentation/graph"
	"github.com/aretw0/weft/pkg/domain"
	"github.com/aretw0/weft/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Engine defines the operations the server needs from the core.
type Engine interface {
	Process(a *domain.Automaton, words []string) domain.Results
	Convert(a *domain.Automaton) (*domain.Automaton, error)
}

// Server wires the engine and the automaton registry to HTTP.
type Server struct {
	engine  Engine
	store   ports.AutomatonStore
	metrics *Metrics
	logger  *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets a structured logger for request handling.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for the engine and store.
func NewHandler(engine Engine, store ports.AutomatonStore, opts ...Option) http.Handler {
	s := &Server{
		engine:  engine,
		store:   store,
		metrics: NewMetrics(),
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/health", s.getHealth)
	r.Get("/info", s.getInfo)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	r.Route("/automata", func(r chi.Router) {
		r.Post("/", s.createAutomaton)
		r.Get("/", s.listAutomata)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getAutomaton)
			r.Delete("/", s.deleteAutomaton)
			r.Post("/run", s.runWords)
			r.Post("/convert", s.convertAutomaton)
			r.Get("/graph", s.getGraph)
		})
	})

	return r
}

func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "weft-http",
		"api_version": "0.1.0",
	})
}

// createRequest registers a new automaton. The definition arrives as a
// generic document and goes through the shared DTO decoding path.
type createRequest struct {
	ID         string         `json:"id"`
	Definition map[string]any `json:"definition"`
}

func (s *Server) createAutomaton(w http.ResponseWriter, r *http.Request) {
	var body createRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	def, err := dto.Decode(body.Definition)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	automaton, err := def.ToAutomaton()
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	id := body.ID
	if id == "" {
		id = newID()
	}

	if err := s.store.Save(r.Context(), id, automaton); err != nil {
		s.logger.Error("failed to save automaton", "error", err, "id", id)
		http.Error(w, "Failed to save automaton", http.StatusInternalServerError)
		return
	}

	s.logger.Info("automaton registered", "id", id, "states", len(automaton.States))
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) listAutomata(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("List error: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"ids": ids})
}

func (s *Server) getAutomaton(w http.ResponseWriter, r *http.Request) {
	automaton, ok := s.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, dto.FromAutomaton(automaton))
}

func (s *Server) deleteAutomaton(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		http.Error(w, fmt.Sprintf("Delete error: %v", err), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type runRequest struct {
	Words []string `json:"words"`
}

func (s *Server) runWords(w http.ResponseWriter, r *http.Request) {
	automaton, ok := s.load(w, r)
	if !ok {
		return
	}

	var body runRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	results := s.engine.Process(automaton, body.Words)
	for _, res := range results {
		s.metrics.simulationsTotal.WithLabelValues(string(res.Verdict)).Inc()
	}

	writeJSON(w, http.StatusOK, map[string]domain.Results{"results": results})
}

type convertRequest struct {
	StoreAs string `json:"store_as"`
}

func (s *Server) convertAutomaton(w http.ResponseWriter, r *http.Request) {
	automaton, ok := s.load(w, r)
	if !ok {
		return
	}

	// Body is optional; an empty request just returns the DFA.
	var body convertRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	dfa, err := s.engine.Convert(automaton)
	if err != nil {
		http.Error(w, fmt.Sprintf("Convert error: %v", err), http.StatusInternalServerError)
		return
	}

	s.metrics.conversionsTotal.Inc()
	s.metrics.conversionStates.Observe(float64(len(dfa.States)))

	if body.StoreAs != "" {
		if err := s.store.Save(r.Context(), body.StoreAs, dfa); err != nil {
			http.Error(w, fmt.Sprintf("Save error: %v", err), http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, http.StatusOK, dto.FromAutomaton(dfa))
}

func (s *Server) getGraph(w http.ResponseWriter, r *http.Request) {
	automaton, ok := s.load(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(graph.GenerateMermaid(automaton)))
}

// load fetches the automaton named in the URL, writing the error response
// itself when the lookup fails.
func (s *Server) load(w http.ResponseWriter, r *http.Request) (*domain.Automaton, bool) {
	id := chi.URLParam(r, "id")
	automaton, err := s.store.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAutomatonNotFound) {
			http.Error(w, "Automaton not found", http.StatusNotFound)
		} else {
			s.logger.Error("failed to load automaton", "error", err, "id", id)
			http.Error(w, "Failed to load automaton", http.StatusInternalServerError)
		}
		return nil, false
	}
	return automaton, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
