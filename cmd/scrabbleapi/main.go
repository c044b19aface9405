// Command scrabbleapi exposes the skrafl engine over HTTP, the way
// the original program's external interfaces were once exposed to a
// Python runtime through a C extension module: one handler per
// operation, each taking and returning plain JSON.
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	skrafl "github.com/playskrafl/engine"
)

// server bundles a single Engine with the logger and auth token used
// by its handlers. A production multi-game host would keep one
// Engine per game behind some session lookup; this demo serves a
// single, shared game, which is adequate for exercising the API
// shape end to end. Since an Engine is not safe for concurrent use,
// mu serializes every authorized request's access to it.
type server struct {
	mu     sync.Mutex
	engine *skrafl.Engine
	log    zerolog.Logger
	token  string
}

type findRequest struct {
	Rack string `json:"rack"`
}

type moveRequest struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Orientation string `json:"orientation"`
	Word        string `json:"word"`
}

type playResponse struct {
	Word  string `json:"word"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Ori   string `json:"orientation"`
	Score int    `json:"score"`
}

type scoreResponse struct {
	Score int `json:"score"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func main() {
	cfg, err := skrafl.LoadConfig(pflag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}
	if cfg.DictPath == "" {
		fmt.Fprintln(os.Stderr, "usage: scrabbleapi --dict=<path to packed dictionary>")
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	f, err := os.Open(cfg.DictPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open dictionary")
	}
	defer f.Close()

	engine := skrafl.NewEngine(log)
	if err := engine.Init(f); err != nil {
		log.Fatal().Err(err).Msg("cannot initialize engine")
	}
	engine.SetGoodEnough(cfg.GoodEnough)

	srv := &server{engine: engine, log: log, token: cfg.AuthToken}

	mux := http.NewServeMux()
	mux.HandleFunc("/find", srv.withAuth(srv.handleFind))
	mux.HandleFunc("/score", srv.withAuth(srv.handleScore))
	mux.HandleFunc("/move", srv.withAuth(srv.handleMove))
	mux.HandleFunc("/board", srv.withAuth(srv.handleBoard))
	mux.HandleFunc("/reset", srv.withAuth(srv.handleReset))

	addr := ":" + cfg.HTTPPort
	log.Info().Str("addr", addr).Msg("listening")
	if err := http.ListenAndServe(addr, srv.withRequestID(mux)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// withRequestID stamps every request with a correlation ID, logged
// alongside each handler's own log lines, the way a host serving
// many concurrent players would want to trace one player's request
// through the logs.
func (s *server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		s.log.Debug().Str("request_id", id).Str("path", r.URL.Path).Msg("request")
		next.ServeHTTP(w, r)
	})
}

func (s *server) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.token != "" && r.Header.Get("Authorization") != "Bearer "+s.token {
			writeError(w, http.StatusUnauthorized, fmt.Errorf("missing or invalid bearer token"))
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		next(w, r)
	}
}

func (s *server) handleFind(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("use POST"))
		return
	}
	var req findRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	play, err := s.engine.FindMove(req.Rack)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, playToResponse(play))
}

func (s *server) handleScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("use POST"))
		return
	}
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(req.Orientation) != 1 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("orientation must be 'h' or 'v'"))
		return
	}
	sc, err := s.engine.ScoreMove(req.X, req.Y, req.Orientation[0], req.Word)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, scoreResponse{Score: sc})
}

func (s *server) handleMove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("use POST"))
		return
	}
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(req.Orientation) != 1 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("orientation must be 'h' or 'v'"))
		return
	}
	if err := s.engine.MakeMove(req.X, req.Y, req.Orientation[0], req.Word); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleBoard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, s.engine.PrintBoard())
}

func (s *server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("use POST"))
		return
	}
	s.engine.Reset()
	w.WriteHeader(http.StatusNoContent)
}

func playToResponse(p skrafl.Play) playResponse {
	oc := "h"
	if p.Ori == skrafl.UD {
		oc = "v"
	}
	return playResponse{
		Word:  p.Word.String(),
		X:     p.Pos.X,
		Y:     p.Pos.Y,
		Ori:   oc,
		Score: p.Score,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
