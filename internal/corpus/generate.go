// apps/go-server/internal/corpus/generate.go
//
// Builds every structurally valid guess directly from the frame rule:
//   - outer loop: starting frame s = 1..5 (frames then run s, s+1, ... wrapping at 5);
//   - inner loop: a base-5 counter 0..3124, one digit per position, picking the color.
//
// Position 0 is the most significant digit, so the canonical order is
// start frame first, then colors lexicographically. 5 x 5^5 = 15625 guesses.
package corpus

import (
	"fmt"

	"github.com/robalobadob/turdle/apps/go-server/internal/tiles"
)

// Size is the number of structurally valid guesses.
const Size = tiles.NumFrames * colorAssignments

// colorAssignments = 5^5, one color per position.
const colorAssignments = tiles.NumColors * tiles.NumColors * tiles.NumColors * tiles.NumColors * tiles.NumColors

// Generate returns all valid guesses in canonical order. A duplicate or an
// invalid emitted guess is reported as ErrInvariantViolation.
func Generate() ([]string, error) {
	out := make([]string, 0, Size)
	seen := make(map[string]struct{}, Size)
	for start := 1; start <= tiles.NumFrames; start++ {
		for n := 0; n < colorAssignments; n++ {
			word, err := buildGuess(start, n)
			if err != nil {
				return nil, err
			}
			if !tiles.IsValidGuess(word) {
				return nil, fmt.Errorf("%w: generated %q breaks the frame rule", ErrInvariantViolation, word)
			}
			if _, dup := seen[word]; dup {
				return nil, fmt.Errorf("%w: duplicate guess %q", ErrInvariantViolation, word)
			}
			seen[word] = struct{}{}
			out = append(out, word)
		}
	}
	return out, nil
}

// buildGuess decodes the n-th color assignment for a run starting at start.
func buildGuess(start, n int) (string, error) {
	var b [tiles.GuessLength]byte
	for pos := tiles.GuessLength - 1; pos >= 0; pos-- {
		color := n%tiles.NumColors + 1
		n /= tiles.NumColors
		frame := (start-1+pos)%tiles.NumFrames + 1
		sym, err := tiles.SymbolAt(frame, color)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvariantViolation, err)
		}
		b[pos] = byte(sym)
	}
	return string(b[:]), nil
}

// VerifyCodec checks the symbol <-> tile id bijection in both directions.
func VerifyCodec() error {
	ids := make(map[string]struct{}, len(tiles.Alphabet))
	for _, sym := range tiles.Alphabet {
		id, err := tiles.TileID(sym)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvariantViolation, err)
		}
		back, err := tiles.Symbol(id)
		if err != nil || back != sym {
			return fmt.Errorf("%w: %q -> %s -> %q", ErrInvariantViolation, sym, id, back)
		}
		ids[id] = struct{}{}
	}
	if len(ids) != tiles.NumFrames*tiles.NumColors {
		return fmt.Errorf("%w: %d distinct tile ids", ErrInvariantViolation, len(ids))
	}
	return nil
}
