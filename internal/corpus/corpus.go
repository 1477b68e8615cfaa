// apps/go-server/internal/corpus/corpus.go
//
// The guess corpus: every valid guess, shuffled once with a seeded xorshift
// so the exposed order is stable across runs but reveals no pattern.
//
// Notes:
//   • Default() builds the process-wide corpus once (sync.Once); every caller
//     gets the same value or the same error.
//   • A Corpus is immutable after Build; share it freely without locking.
package corpus

import (
	"fmt"
	"strings"
	"sync"
)

// Corpus is the shuffled, read-only list of valid guesses.
type Corpus struct {
	seed  int32
	words []string
	index map[string]int
}

var (
	defaultOnce   sync.Once
	defaultCorpus *Corpus
	defaultErr    error
)

// Default returns the corpus for DefaultSeed, building it on first use.
func Default() (*Corpus, error) {
	defaultOnce.Do(func() {
		defaultCorpus, defaultErr = Build(DefaultSeed)
	})
	return defaultCorpus, defaultErr
}

// Build verifies the codec, generates the canonical list and shuffles it.
func Build(seed int32) (*Corpus, error) {
	if err := VerifyCodec(); err != nil {
		return nil, err
	}
	words, err := Generate()
	if err != nil {
		return nil, err
	}
	Shuffle(words, NewXorShift(seed))

	index := make(map[string]int, len(words))
	for i, w := range words {
		index[w] = i
	}
	if len(index) != Size {
		return nil, fmt.Errorf("%w: corpus has %d distinct guesses, want %d", ErrInvariantViolation, len(index), Size)
	}
	return &Corpus{seed: seed, words: words, index: index}, nil
}

// Seed returns the seed the corpus was shuffled with.
func (c *Corpus) Seed() int32 { return c.seed }

// Len returns the number of guesses (always Size).
func (c *Corpus) Len() int { return len(c.words) }

// At returns the i-th guess in corpus order.
func (c *Corpus) At(i int) string { return c.words[i] }

// Words returns a copy of the corpus in order.
func (c *Corpus) Words() []string {
	out := make([]string, len(c.words))
	copy(out, c.words)
	return out
}

// Slice returns up to limit guesses starting at offset, clamped to bounds.
func (c *Corpus) Slice(offset, limit int) []string {
	if offset < 0 {
		offset = 0
	}
	if offset > len(c.words) {
		offset = len(c.words)
	}
	end := offset + limit
	if limit < 0 || end > len(c.words) {
		end = len(c.words)
	}
	out := make([]string, end-offset)
	copy(out, c.words[offset:end])
	return out
}

// Index returns the position of guess (case-insensitive).
func (c *Corpus) Index(guess string) (int, bool) {
	i, ok := c.index[strings.ToUpper(guess)]
	return i, ok
}

// Contains reports whether guess is in the corpus (case-insensitive).
func (c *Corpus) Contains(guess string) bool {
	_, ok := c.Index(guess)
	return ok
}
