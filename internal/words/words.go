// apps/go-server/internal/words/words.go
//
// Guess vocabulary for the game engine, backed by the tile corpus.
//
// Responsibilities:
//   - Build the corpus once at startup (Init) and fail loudly if the codec or
//     generator is broken.
//   - Answer lookups for the engine and HTTP layer: IsAllowed, IsAnswer,
//     RandomAnswer, Answers, Stats.
//
// Word Lists:
//   - "allowed": every structurally valid guess (15625).
//   - "answers": the same list in shuffled corpus order; the daily puzzle
//     indexes into it so consecutive days do not reveal the pattern.
//
// Constraints:
//   • Words are 5 upper-case alphabet symbols.
//   • Initialization is run once (sync.Once).

package words

import (
	"crypto/rand"
	"math/big"
	"strings"
	"sync"

	"github.com/robalobadob/turdle/apps/go-server/internal/corpus"
)

var (
	initOnce   sync.Once
	vocab      *corpus.Corpus
	initialErr error
)

// Init builds the corpus exactly once.
// Returns corpus.ErrInvariantViolation (wrapped) if generation is inconsistent.
func Init() error {
	initOnce.Do(func() {
		vocab, initialErr = corpus.Default()
	})
	return initialErr
}

// Answers returns the answer list in corpus order.
func Answers() []string {
	if Init() != nil {
		return nil
	}
	return vocab.Words()
}

// AnswerAt returns the i-th answer, wrapping around the list.
func AnswerAt(i int) string {
	if Init() != nil || vocab.Len() == 0 {
		return ""
	}
	n := vocab.Len()
	return vocab.At(((i % n) + n) % n)
}

// RandomAnswer returns a cryptographically random answer.
// If the corpus failed to build, falls back to "QWERT".
func RandomAnswer() string {
	if Init() != nil || vocab.Len() == 0 {
		return "QWERT"
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(vocab.Len())))
	return vocab.At(int(nBig.Int64()))
}

// IsAllowed reports whether w is a valid guess.
func IsAllowed(w string) bool {
	return Init() == nil && vocab.Contains(w)
}

// IsAnswer reports whether w can be a solution. Every allowed guess can.
func IsAnswer(w string) bool {
	return IsAllowed(strings.TrimSpace(w))
}

// Stats returns counts of loaded words: (answers, allowed).
func Stats() (answersCount int, allowedCount int) {
	if Init() != nil {
		return 0, 0
	}
	return vocab.Len(), vocab.Len()
}
