// apps/go-server/internal/httpserver/server.go
//
// HTTP server wiring for the Turdle backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health".
//   - Tile codec, corpus and keyboard-gating endpoints (routes_tiles.go).
//   - Free-play game endpoints: POST /game/new, POST /game/guess.
//   - Daily puzzle endpoints mounted under /daily (routes_daily.go).
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so the player cookie works).
//   - Players are anonymous; their id lives in a signed cookie (player.go).

package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/turdle/apps/go-server/internal/config"
	"github.com/robalobadob/turdle/apps/go-server/internal/corpus"
	"github.com/robalobadob/turdle/apps/go-server/internal/game"
	"github.com/robalobadob/turdle/apps/go-server/internal/store"
	"github.com/robalobadob/turdle/apps/go-server/internal/words"
)

// Options carries the dependencies New wires together.
type Options struct {
	Config *config.Config
	Corpus *corpus.Corpus
	Store  store.Store
	DB     *sql.DB
	// Now overrides the clock (tests); defaults to time.Now.
	Now func() time.Time
}

// Server bundles router, session store, corpus and DB handle.
type Server struct {
	r      *chi.Mux
	cfg    *config.Config
	corpus *corpus.Corpus
	store  store.Store
	db     *sql.DB
	now    func() time.Time
	gameMu sync.Mutex // serialises free-play guesses on stored games
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	s := &Server{
		r:      chi.NewRouter(),
		cfg:    opts.Config,
		corpus: opts.Corpus,
		store:  opts.Store,
		db:     opts.DB,
		now:    opts.Now,
	}
	if s.cfg == nil {
		s.cfg = config.DefaultConfig()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.corpus == nil {
		c, err := corpus.Default()
		if err != nil {
			log.Error().Err(err).Msg("corpus unavailable")
		}
		s.corpus = c
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                     // add X-Request-ID
	s.r.Use(chimw.RealIP)                        // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                           // one zerolog line per request
	s.r.Use(chimw.Recoverer)                     // recover from panics
	s.r.Use(chimw.Timeout(s.cfg.RequestTimeout)) // bound handler time
	s.r.Use(jsonContentType)                     // default JSON responses
	s.r.Use(s.cors)                              // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": "turdle-go",
			"endpoints": []string{
				"/health", "/tiles", "/corpus", "POST /input/check", "POST /input/keys",
				"POST /game/new", "POST /game/guess", "/daily/*",
			},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := words.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"answers": a, "allowed": g, "sessions": s.store.Len()})
	})

	s.mountTiles(s.r)

	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)

	if s.db != nil {
		s.mountDaily(s.r)
	}

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.cfg.ClientOrigin
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// accessLog writes one debug line per request with status and latency.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("reqId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Answer string `json:"answer"` // optional fixed answer (testing)
}
type newGameRes struct {
	GameID string `json:"gameId"`
	Rows   int    `json:"rows"`
	Cols   int    `json:"cols"`
}

// handleNewGame creates a new in-memory game.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	pid := s.playerID(w, r)

	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.Answer != "" && !words.IsAnswer(req.Answer) {
		writeError(w, http.StatusBadRequest, "invalid_answer")
		return
	}
	g := game.New(req.Answer)
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Debug().Str("gameId", g.ID).Str("player", pid).Msg("new game")
	writeJSON(w, http.StatusOK, newGameRes{GameID: g.ID, Rows: g.Rows, Cols: g.Cols})
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Marks  []game.Mark `json:"marks"`
	State  string      `json:"state"` // "playing" | "won" | "lost"
	Tiles  []string    `json:"tiles"` // every guess so far as tile ids
	Answer string      `json:"answer,omitempty"`
}

// handleGuess applies a guess to an in-memory game.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	s.gameMu.Lock()
	defer s.gameMu.Unlock()

	g, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	marks, state, err := g.ApplyGuess(req.Guess)
	if err != nil {
		writeError(w, http.StatusBadRequest, gameErrorCode(err))
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	res := guessRes{Marks: marks, State: state, Tiles: g.TileRows()}
	if state == game.StateLost {
		res.Answer = g.Answer
	}
	writeJSON(w, http.StatusOK, res)
}

// gameErrorCode maps engine errors to stable API codes.
func gameErrorCode(err error) string {
	switch {
	case errors.Is(err, game.ErrFinished):
		return "game_finished"
	case errors.Is(err, game.ErrNotInCorpus):
		return "not_in_word_list"
	default:
		return "invalid_guess"
	}
}

// ------------------------------- small util --------------------------------

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

// writeError sends {"error": code}.
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
