// apps/go-server/internal/tiles/validator.go
//
// Keyboard gating while a guess is typed. Given the symbols already accepted
// and a candidate key, decide whether the key must be disabled because no
// structurally valid guess can start with partial+candidate.
//
// Decision order:
//   1. Guess already full → disabled.
//   2. Another symbol with the candidate's frame already placed → disabled.
//   3. Non-empty guess and candidate frame is not the next frame in the run → disabled.
//   4. Empty guess → enabled, any frame may start the run.
package tiles

import (
	"fmt"
	"unicode/utf8"
)

// IsNextSymbolDisabled reports whether candidate may not be typed after partial.
// partial must itself be a valid prefix (ErrInvalidPartialGuess otherwise).
func IsNextSymbolDisabled(partial string, candidate rune) (bool, error) {
	frame, err := Frame(candidate)
	if err != nil {
		return false, err
	}
	frames, err := prefixFrames(partial)
	if err != nil {
		return false, err
	}
	return disabled(partial, frames, Normalize(candidate), frame), nil
}

// DisabledKeys evaluates every alphabet symbol against partial.
func DisabledKeys(partial string) (map[string]bool, error) {
	frames, err := prefixFrames(partial)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(Alphabet))
	for i, r := range Alphabet {
		out[string(r)] = disabled(partial, frames, r, i%NumFrames+1)
	}
	return out, nil
}

func prefixFrames(partial string) ([]int, error) {
	if utf8.RuneCountInString(partial) > GuessLength {
		return nil, fmt.Errorf("%w: %q is longer than %d", ErrInvalidPartialGuess, partial, GuessLength)
	}
	frames, err := FrameSequence(partial)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPartialGuess, err)
	}
	if !isCyclicRun(frames) {
		return nil, fmt.Errorf("%w: %q frames %v are not a cyclic run", ErrInvalidPartialGuess, partial, frames)
	}
	return frames, nil
}

func disabled(partial string, frames []int, candidate rune, frame int) bool {
	if len(frames) == GuessLength {
		return true
	}
	i := 0
	for _, r := range partial {
		if frames[i] == frame && Normalize(r) != candidate {
			return true
		}
		i++
	}
	if len(frames) > 0 {
		return frame != NextFrame(frames[len(frames)-1])
	}
	return false
}
