package tiles

import "fmt"

// NextFrame returns the frame following f in the cycle 1..5.
func NextFrame(f int) int { return f%NumFrames + 1 }

// FrameSequence returns the frame of each symbol in position order.
func FrameSequence(guess string) ([]int, error) {
	out := make([]int, 0, len(guess))
	for _, r := range guess {
		f, err := Frame(r)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// ColorSequence returns the color code of each symbol in position order.
func ColorSequence(guess string) ([]byte, error) {
	out := make([]byte, 0, len(guess))
	for _, r := range guess {
		c, err := ColorCode(r)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// IsValidGuess reports whether guess is exactly five alphabet symbols whose
// frames read as a cyclic ascending run (e.g. 3 4 5 1 2). Colors are free.
func IsValidGuess(guess string) bool {
	frames, err := FrameSequence(guess)
	return err == nil && len(frames) == GuessLength && isCyclicRun(frames)
}

// IsValidPrefix reports whether partial can still be completed to a valid
// guess: at most five symbols forming the start of a cyclic run.
func IsValidPrefix(partial string) bool {
	frames, err := FrameSequence(partial)
	return err == nil && len(frames) <= GuessLength && isCyclicRun(frames)
}

func isCyclicRun(frames []int) bool {
	for i := 1; i < len(frames); i++ {
		if frames[i] != NextFrame(frames[i-1]) {
			return false
		}
	}
	return true
}

// CheckGuess is IsValidGuess with an error explaining the failure.
func CheckGuess(guess string) error {
	frames, err := FrameSequence(guess)
	if err != nil {
		return err
	}
	if len(frames) != GuessLength {
		return fmt.Errorf("guess %q has %d symbols, want %d", guess, len(frames), GuessLength)
	}
	if !isCyclicRun(frames) {
		return fmt.Errorf("guess %q frames %v are not a cyclic run", guess, frames)
	}
	return nil
}
