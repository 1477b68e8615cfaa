// apps/go-server/internal/game/types.go
//
// Core type definitions for the Turdle game engine.
// Defines:
//   - Mark: per-symbol result of a guess (hit/present/miss).
//   - Game: state for a single in-progress or finished game.

package game

import "errors"

// Mark represents the evaluation result for a single symbol in a guess.
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// Coarse game states reported by ApplyGuess.
const (
	StatePlaying = "playing"
	StateWon     = "won"
	StateLost    = "lost"
)

var (
	ErrFinished     = errors.New("game finished")
	ErrInvalidGuess = errors.New("invalid guess")
	ErrNotInCorpus  = errors.New("not in word list")
)

// Game holds the state of a single Turdle game session.
type Game struct {
	ID       string   // Unique game identifier (random hex string).
	Answer   string   // The solution (upper-case symbols).
	Rows     int      // Maximum number of guesses allowed (typically 6).
	Cols     int      // Number of symbols per guess (always 5).
	Guesses  []string // Guesses made so far (upper-cased).
	Finished bool     // True once the game is over (won or lost).
	Won      bool     // True if the game was finished with a win.
}
