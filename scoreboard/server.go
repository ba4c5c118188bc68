// Package scoreboard serves the persisted high score over HTTP.
//
// Endpoints:
//   - GET /health    -> {"ok":true}
//   - GET /highscore -> {"highScore":N}
//
// The server only reads the store; the game writes it.
package scoreboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"snake-arcade/game/types"
	"snake-arcade/store"
)

// Server bundles the router and the store it reads from.
type Server struct {
	r     *chi.Mux
	store store.Store
	srv   *http.Server
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store) *Server {
	s := &Server{r: chi.NewRouter(), store: st}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(5 * time.Second))
	s.r.Use(jsonContentType)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/highscore", s.handleHighScore)
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.r
}

func (s *Server) handleHighScore(w http.ResponseWriter, r *http.Request) {
	v, _, err := s.store.Get(r.Context(), types.HighScoreKey)
	if err != nil {
		log.Error().Err(err).Str("request_id", chimw.GetReqID(r.Context())).Msg("read high score")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "store unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"highScore": v})
}

// Start listens on addr in the background. Errors other than a clean shutdown are logged.
func (s *Server) Start(addr string) {
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info().Str("addr", addr).Msg("scoreboard listening")
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("scoreboard exited")
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
