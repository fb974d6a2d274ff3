// JSON-over-HTTP adapter for the session action API. This is the stand-in
// for the excluded presentation layer: it holds no simulation logic, only
// session bookkeeping and envelope translation.

package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/baggage-sim/baggage-sim/sim"
)

// Config holds the adapter's listen, rate-limit and session settings.
type Config struct {
	ListenAddr string // e.g. ":8080"

	// Requests per minute per client IP; 0 disables rate limiting.
	RateLimitPerMinute int

	// Session is the seed layout applied to every new session.
	// The zero value means the canonical default layout.
	Session sim.SessionConfig
}

// Server exposes the action API over HTTP. One Server hosts many
// isolated sessions; it guarantees only that no session instance is
// shared across session ids.
type Server struct {
	cfg      Config
	sessions *registry
}

// NewServer creates a Server with an empty session registry.
func NewServer(cfg Config) *Server {
	if cfg.Session.CountMax == 0 && cfg.Session.Passengers == nil {
		cfg.Session = sim.DefaultSessionConfig()
	}
	return &Server{cfg: cfg, sessions: newRegistry()}
}

// Router builds the chi router with the full middleware stack.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if s.cfg.RateLimitPerMinute > 0 {
		r.Use(httprate.LimitByIP(s.cfg.RateLimitPerMinute, time.Minute))
	}

	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreateSession)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/state", s.handleState)
			r.Post("/actions", s.handleAction)
			r.Delete("/", s.handleDeleteSession)
		})
	})
	return r
}

// ListenAndServe blocks serving the router on the configured address.
func (s *Server) ListenAndServe() error {
	logrus.Infof("baggage-sim API listening on %s", s.cfg.ListenAddr)
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

// SessionCount returns the number of live sessions, for tests and logs.
func (s *Server) SessionCount() int {
	return s.sessions.len()
}

// === Request/response bodies ===

type createSessionRequest struct {
	// Seed makes the session fully deterministic. Absent seed means an
	// entropy-backed session, the way an interactive frontend starts one.
	Seed *int64 `json:"seed,omitempty"`
}

type createSessionResponse struct {
	SessionID string            `json:"session_id"`
	State     sim.StateSnapshot `json:"state"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// === Handlers ===

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed JSON body"})
			return
		}
	}

	var (
		sess *sim.Session
		err  error
	)
	if req.Seed != nil {
		sess, err = sim.NewSession(s.cfg.Session, sim.NewSessionKey(*req.Seed))
	} else {
		sess, err = sim.NewEntropySession(s.cfg.Session)
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	id := s.sessions.add(sess)
	SessionsCreatedTotal.Inc()
	logrus.WithField("session_id", id).Debug("session created")
	writeJSON(w, http.StatusCreated, createSessionResponse{
		SessionID: id,
		State:     sess.StateSnapshot(),
	})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	entry := s.sessions.get(chi.URLParam(r, "sessionID"))
	if entry == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown session"})
		return
	}
	var snap sim.StateSnapshot
	entry.withSession(func(sess *sim.Session) {
		snap = sess.StateSnapshot()
	})
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	entry := s.sessions.get(chi.URLParam(r, "sessionID"))
	if entry == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown session"})
		return
	}

	var action sim.Action
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed JSON body"})
		return
	}

	var res sim.Result
	entry.withSession(func(sess *sim.Session) {
		res = sess.Dispatch(action)
	})
	ActionsTotal.WithLabelValues(action.Kind, outcomeLabel(res.OK, res.ErrorKind)).Inc()

	// Domain errors (empty container, missing key) are expected,
	// recoverable outcomes: still HTTP 200, ok=false in the envelope.
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if !s.sessions.remove(id) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown session"})
		return
	}
	logrus.WithField("session_id", id).Debug("session ended")
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Warn("writing response body")
	}
}
