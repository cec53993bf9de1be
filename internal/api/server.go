// Package api serves generated scenarios over HTTP: creation, the designer
// view, per-player views that hide everyone else's unshared rules, and a
// websocket feed of share events.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/MJE43/decorum-scenario-go/internal/scenario"
	"github.com/MJE43/decorum-scenario-go/internal/session"
)

// Server handles HTTP requests.
type Server struct {
	store     *session.Store
	hub       *Hub
	logger    *log.Logger
	upgrader  websocket.Upgrader
	startTime time.Time
}

// NewServer creates a server around a session store.
func NewServer(store *session.Store) *Server {
	return &Server{
		store:     store,
		hub:       NewHub(),
		logger:    log.New(os.Stdout, "[API] ", log.LstdFlags|log.Lshortfile),
		upgrader:  websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		startTime: time.Now(),
	}
}

// Routes sets up the HTTP routes with middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/scenarios", s.handleCreateScenario)
		r.Route("/scenarios/{token}", func(r chi.Router) {
			r.Get("/", s.handleGetScenario)
			r.Get("/watch", s.handleWatch)
			r.Route("/players/{playerID}", func(r chi.Router) {
				r.Get("/", s.handlePlayerView)
				r.Post("/share", s.handleShare)
			})
		})
	})

	return r
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Printf("encode response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, errType, message string) {
	s.writeJSON(w, status, APIError{
		Type:      errType,
		Message:   message,
		RequestID: middleware.GetReqID(r.Context()),
	})
}

// handleCreateScenario generates a scenario and stores it under a fresh
// token. Out-of-range player counts and unknown difficulties are clamped
// here; the generator's domain is the clamped one.
func (s *Server) handleCreateScenario(w http.ResponseWriter, r *http.Request) {
	var req CreateScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeValidation, "invalid JSON body: "+err.Error())
		return
	}

	cfg := scenario.GenerateConfig{
		NumPlayers:   clampPlayers(req.NumPlayers),
		Difficulty:   clampDifficulty(req.Difficulty),
		Seed:         req.Seed,
		WarmCoolBias: req.WarmCoolBias,
		Perturbation: perturbOverrides(req.Perturbation),
	}

	sc := scenario.GenerateScenario(cfg)
	sess := s.store.Create(sc)
	s.logger.Printf("created scenario %s (%d players, %s)", sess.Token, sc.NumPlayers, sc.Difficulty)

	s.writeJSON(w, http.StatusCreated, sess)
}

func (s *Server) handleGetScenario(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(chi.URLParam(r, "token"))
	if err != nil {
		s.writeError(w, r, http.StatusNotFound, ErrTypeNotFound, "unknown or expired scenario token")
		return
	}
	s.writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handlePlayerView(w http.ResponseWriter, r *http.Request) {
	playerID, err := strconv.Atoi(chi.URLParam(r, "playerID"))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeValidation, "player id must be an integer")
		return
	}

	view, err := s.store.PlayerView(chi.URLParam(r, "token"), playerID)
	if errors.Is(err, session.ErrNotFound) {
		s.writeError(w, r, http.StatusNotFound, ErrTypeNotFound, "unknown or expired scenario token")
		return
	}
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeValidation, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	playerID, err := strconv.Atoi(chi.URLParam(r, "playerID"))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeValidation, "player id must be an integer")
		return
	}
	var req ShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeValidation, "invalid JSON body: "+err.Error())
		return
	}

	token := chi.URLParam(r, "token")
	shared, err := s.store.Share(token, playerID, req.RuleIndex)
	if errors.Is(err, session.ErrNotFound) {
		s.writeError(w, r, http.StatusNotFound, ErrTypeNotFound, "unknown or expired scenario token")
		return
	}
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeValidation, err.Error())
		return
	}

	s.hub.Broadcast(token, ShareEvent{
		Type:      "share",
		PlayerID:  shared.PlayerID,
		RuleIndex: shared.RuleIndex,
		Text:      shared.Text,
	})
	s.writeJSON(w, http.StatusOK, shared)
}

func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if _, err := s.store.Get(token); err != nil {
		s.writeError(w, r, http.StatusNotFound, ErrTypeNotFound, "unknown or expired scenario token")
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("websocket upgrade: %v", err)
		return
	}
	s.hub.Register(token, conn)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Sessions: s.store.Len(),
		Uptime:   time.Since(s.startTime).Round(time.Second).String(),
	})
}

func clampPlayers(n int) int {
	if n < 2 {
		return 2
	}
	if n > 4 {
		return 4
	}
	return n
}

func clampDifficulty(d string) scenario.Difficulty {
	switch scenario.Difficulty(d) {
	case scenario.Easy, scenario.Medium, scenario.Hard:
		return scenario.Difficulty(d)
	}
	return scenario.Medium
}

func perturbOverrides(req *PerturbationRequest) *scenario.PerturbOverrides {
	if req == nil {
		return nil
	}
	o := &scenario.PerturbOverrides{
		NumPerturbations:       req.NumPerturbations,
		MinViolationsPerPlayer: req.MinViolationsPerPlayer,
		MaxAttempts:            req.MaxAttempts,
	}
	for _, a := range req.AllowedTypes {
		o.AllowedActions = append(o.AllowedActions, scenario.Action(a))
	}
	if len(req.TypeWeights) > 0 {
		o.ActionWeights = make(map[scenario.Action]float64, len(req.TypeWeights))
		for a, wt := range req.TypeWeights {
			o.ActionWeights[scenario.Action(a)] = wt
		}
	}
	return o
}
