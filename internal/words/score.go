package words

import "strings"

// Mark values returned by Score.
const (
	Miss    = 0
	Present = 1
	Hit     = 2
)

// Score compares guess vs. answer symbol by symbol:
//   0 = miss (symbol not in answer)
//   1 = present (symbol in answer, wrong position)
//   2 = hit (symbol in correct position)
//
// Two passes so repeated symbols are only credited as often as the answer
// holds them. Inputs are compared case-insensitively.
func Score(guess, answer string) []int {
	guess, answer = strings.ToUpper(guess), strings.ToUpper(answer)
	n := len(answer)
	out := make([]int, n)
	if len(guess) != n {
		return out
	}

	freq := make(map[byte]int, n)
	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			out[i] = Hit
		} else {
			freq[answer[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if out[i] == Hit {
			continue
		}
		if c := guess[i]; freq[c] > 0 {
			out[i] = Present
			freq[c]--
		}
	}
	return out
}

// AllHit reports whether every mark is a hit.
func AllHit(marks []int) bool {
	for _, m := range marks {
		if m != Hit {
			return false
		}
	}
	return len(marks) > 0
}
