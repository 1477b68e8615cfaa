// apps/go-server/internal/httpserver/routes_daily.go
//
// HTTP routes for the daily puzzle.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start today's game (creates or reuses session)
//   - POST /daily/guess       → submit a guess for today's game
//   - GET  /daily/leaderboard → top 20 results for today (or ?date=YYYY-MM-DD)
//
// Each player can play once per day (enforced by DB + in-memory session).
// Sessions are held in memory for active play and persisted to DB on win.
// The answer is picked from the shuffled corpus by daily.Index.

package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/turdle/apps/go-server/internal/daily"
	"github.com/robalobadob/turdle/apps/go-server/internal/game"
	"github.com/robalobadob/turdle/apps/go-server/internal/words"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	salt     string
	epoch    time.Time
	sessions map[string]*dailySession // active sessions keyed by playerID|date
	mu       sync.Mutex               // guards sessions and their games
}

// dailySession holds transient in-memory state for an in-progress daily game.
type dailySession struct {
	Game      *game.Game
	PlayerID  string
	Date      string
	WordIndex int
	Start     time.Time
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	epoch, err := s.cfg.EpochTime()
	if err != nil {
		log.Warn().Err(err).Msg("daily epoch; using 2022-01-01")
		epoch = time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		salt:     s.cfg.Daily.Salt,
		epoch:    epoch,
		sessions: make(map[string]*dailySession),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/guess", dd.handleGuess)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// today returns today's date key, puzzle number, answer index and answer.
func (d *dailyServer) today() (date string, number, idx int, answer string) {
	now := d.srv.now().UTC()
	date = daily.DateKey(now)
	number = daily.GameNumber(now, d.epoch)
	_, n := words.Stats()
	idx = daily.Index(now, d.epoch, d.salt, n)
	return date, number, idx, words.AnswerAt(idx)
}

// -----------------------------------------------------------------------------
// /daily/new

// newRes is returned by /daily/new.
type newRes struct {
	GameID string `json:"gameId"`
	Date   string `json:"date"`
	Number int    `json:"number"`
	Played bool   `json:"played"`
}

// handleNew creates or reuses a daily session for the current date.
// - If the player already has a DB row for today → Played=true.
// - Otherwise create/reuse an in-memory session and return GameID.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	pid := d.srv.playerID(w, r)
	date, number, idx, answer := d.today()
	if answer == "" {
		writeError(w, http.StatusServiceUnavailable, "corpus_unavailable")
		return
	}

	played, err := d.store.AlreadyPlayed(r.Context(), pid, date)
	if err != nil {
		log.Error().Err(err).Str("player", pid).Msg("daily already played")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	if played {
		writeJSON(w, http.StatusOK, newRes{Date: date, Number: number, Played: true})
		return
	}

	key := pid + "|" + date
	d.mu.Lock()
	sess, ok := d.sessions[key]
	if !ok {
		sess = &dailySession{
			Game:      game.New(answer),
			PlayerID:  pid,
			Date:      date,
			WordIndex: idx,
			Start:     d.srv.now(),
		}
		d.sessions[key] = sess
	}
	d.mu.Unlock()

	writeJSON(w, http.StatusOK, newRes{GameID: sess.Game.ID, Date: date, Number: number})
}

// -----------------------------------------------------------------------------
// /daily/guess

// dailyGuessReq is the request payload for /daily/guess.
type dailyGuessReq struct {
	GameID string `json:"gameId"`
	Word   string `json:"word"`
}

// dailyGuessRes is the response payload for /daily/guess.
type dailyGuessRes struct {
	Marks   []game.Mark `json:"marks"`
	State   string      `json:"state"` // playing | won | lost | locked
	Guesses int         `json:"guesses"`
	Tiles   []string    `json:"tiles"`
}

// handleGuess validates and applies a guess for today's daily session and
// persists the result on a win.
func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	pid := d.srv.playerID(w, r)

	var p dailyGuessReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if p.GameID == "" {
		writeError(w, http.StatusBadRequest, "invalid")
		return
	}

	date, _, _, _ := d.today()
	key := pid + "|" + date

	d.mu.Lock()
	sess, ok := d.sessions[key]
	if !ok || sess.Game.ID != p.GameID {
		d.mu.Unlock()
		writeError(w, http.StatusConflict, "no_session")
		return
	}
	g := sess.Game
	if g.Finished {
		res := dailyGuessRes{Marks: []game.Mark{}, State: "locked", Guesses: len(g.Guesses), Tiles: g.TileRows()}
		d.mu.Unlock()
		writeJSON(w, http.StatusOK, res)
		return
	}
	marks, state, err := g.ApplyGuess(p.Word)
	res := dailyGuessRes{Marks: marks, State: state, Guesses: len(g.Guesses), Tiles: g.TileRows()}
	d.mu.Unlock()

	if err != nil {
		writeError(w, http.StatusBadRequest, gameErrorCode(err))
		return
	}

	if state == game.StateWon {
		elapsed := int(d.srv.now().Sub(sess.Start).Milliseconds())
		if err := d.store.InsertResult(r.Context(), daily.Result{
			UserID: pid, Date: date, WordIndex: sess.WordIndex, Guesses: res.Guesses, ElapsedMs: elapsed,
		}); err != nil {
			log.Warn().Err(err).Str("player", pid).Msg("insert daily result")
		}
	}
	writeJSON(w, http.StatusOK, res)
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date, _, _, _ = d.today()
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_date")
		return
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		log.Error().Err(err).Msg("daily leaderboard")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, lbRes{Date: date, Top: rows})
}
