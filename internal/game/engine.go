// apps/go-server/internal/game/engine.go
//
// Core game engine for a single Turdle session.
// Responsibilities:
//   - Create new games with fixed dimensions (6x5).
//   - Validate guesses: alphabet symbols, frame rule, corpus membership.
//   - Score guesses with the two-pass algorithm from the words package.
//   - Track state transitions: playing → won/lost.
//   - Render guesses as tile ids for clients that draw tiles.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/robalobadob/turdle/apps/go-server/internal/tiles"
	"github.com/robalobadob/turdle/apps/go-server/internal/words"
)

const (
	defaultRows = 6
	defaultCols = tiles.GuessLength
)

// New constructs a new game instance.
// If withAnswer is empty, a random answer is drawn from the corpus.
func New(withAnswer string) *Game {
	ans := withAnswer
	if ans == "" {
		ans = words.RandomAnswer()
	}
	return &Game{
		ID:      randomID(),
		Answer:  strings.ToUpper(ans),
		Rows:    defaultRows,
		Cols:    defaultCols,
		Guesses: []string{},
	}
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns the per-symbol marks, the new state and an error wrapping one of
// ErrFinished, ErrInvalidGuess or ErrNotInCorpus.
func (g *Game) ApplyGuess(guess string) ([]Mark, string, error) {
	if g.Finished {
		return nil, g.State(), ErrFinished
	}
	guess = strings.ToUpper(strings.TrimSpace(guess))
	if err := tiles.CheckGuess(guess); err != nil {
		return nil, g.State(), fmt.Errorf("%w: %v", ErrInvalidGuess, err)
	}
	if !words.IsAllowed(guess) {
		return nil, g.State(), ErrNotInCorpus
	}

	scores := words.Score(guess, g.Answer)
	marks := toMarks(scores)
	g.Guesses = append(g.Guesses, guess)

	if words.AllHit(scores) {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return marks, g.State(), nil
}

// State reports a coarse string representation of the current game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// TileRows renders every guess so far as space separated tile ids.
func (g *Game) TileRows() []string {
	out := make([]string, 0, len(g.Guesses))
	for _, guess := range g.Guesses {
		row, err := tiles.RenderGuess(guess)
		if err != nil {
			continue
		}
		out = append(out, row)
	}
	return out
}

// toMarks converts numeric scores (0 miss, 1 present, 2 hit) to Marks.
func toMarks(scores []int) []Mark {
	out := make([]Mark, len(scores))
	for i, s := range scores {
		switch s {
		case words.Hit:
			out[i] = MarkHit
		case words.Present:
			out[i] = MarkPresent
		default:
			out[i] = MarkMiss
		}
	}
	return out
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
