// internal/httpserver/server.go
//
// HTTP server wiring for the poker hand service.
// Responsibilities:
//   - Router + middleware (request IDs, logging, CORS, timeouts, panic recovery).
//   - Public endpoints: "/", "/health", "/metrics".
//   - Hand endpoints (optional auth): GET /result, POST /showdown, POST /evaluate.
//   - History endpoints: GET /showdowns, /showdowns/{id}, /showdowns/mine (auth).
//   - Account endpoints: /auth/* (only when a user store is configured).
//
// Notes:
//   - Optional auth decorates requests with the player when a valid token is
//     present; guests can still compare hands.
//   - Persisting a showdown is best effort: a storage failure is logged and
//     the comparison is still returned.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/robalobadob/pokerhands/internal/auth"
	"github.com/robalobadob/pokerhands/internal/metrics"
	"github.com/robalobadob/pokerhands/internal/store"
)

var endpoints = []string{
	"/health", "GET /result", "POST /showdown", "POST /evaluate",
	"GET /showdowns", "/auth/*", "/metrics",
}

// Options bundles the server's collaborators.
type Options struct {
	Store   store.Store
	Users   *auth.Users // nil disables /auth/* and /showdowns/mine
	Tokens  *auth.Tokens
	Cookie  auth.CookieConfig
	Metrics *metrics.Metrics

	ClientOrigin   string
	RequestTimeout time.Duration
}

// Server bundles router and dependencies.
type Server struct {
	r       *chi.Mux
	store   store.Store
	users   *auth.Users
	tokens  *auth.Tokens
	cookie  auth.CookieConfig
	metrics *metrics.Metrics
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	s := &Server{
		r:       chi.NewRouter(),
		store:   opts.Store,
		users:   opts.Users,
		tokens:  opts.Tokens,
		cookie:  opts.Cookie,
		metrics: opts.Metrics,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                    // add X-Request-ID
	s.r.Use(chimw.RealIP)                       // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                      // one zerolog line per request
	s.r.Use(chimw.Recoverer)                    // recover from panics
	s.r.Use(chimw.Timeout(opts.RequestTimeout)) // bound handler time
	s.r.Use(jsonContentType)                    // default JSON responses
	s.r.Use(corsFor(opts.ClientOrigin))         // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"service": "poker-hands", "endpoints": endpoints})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	// Hand endpoints: optional auth, guests can play
	s.r.Group(func(r chi.Router) {
		r.Use(s.withOptionalAuth)
		r.Get("/result", s.handleResult)
		r.Post("/showdown", s.handleShowdown)
		r.Post("/evaluate", s.handleEvaluate)
	})

	// History
	s.r.Route("/showdowns", func(r chi.Router) {
		r.Get("/", s.handleRecent)
		if s.users != nil {
			r.With(s.requireAuth).Get("/mine", s.handleMine)
		}
		r.Get("/{id}", s.handleGet)
	})

	if s.users != nil {
		s.mountAuthRoutes()
	}

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Handler exposes the router (used by main and tests).
func (s *Server) Handler() http.Handler { return s.r }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------- helpers -----------------------------------

// errorBody is the shape of every error response.
type errorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	writeJSON(w, status, errorBody{Error: code, Detail: detail})
}
