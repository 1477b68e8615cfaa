// apps/go-server/internal/daily/daily.go
//
// Daily puzzle selection.
//   - DateKey: the UTC calendar day a result belongs to.
//   - GameNumber: days since the launch epoch (the puzzle number players share).
//   - WordIndex: keyed blake2b(salt, YYYY-MM-DD) mod len, so answers cannot be
//     predicted from the public corpus order.
//   - Index: WordIndex when a salt is configured, otherwise GameNumber, which
//     walks the shuffled corpus one entry per day.
package daily

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// GameNumber returns the number of whole UTC days between epoch and t.
// Days before the epoch are negative.
func GameNumber(t, epoch time.Time) int {
	day := func(x time.Time) time.Time {
		x = x.UTC()
		return time.Date(x.Year(), x.Month(), x.Day(), 0, 0, 0, 0, time.UTC)
	}
	return int(day(t).Sub(day(epoch)).Hours() / 24)
}

// WordIndex returns a deterministic index for a date from a salted blake2b
// hash of its date key.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h, err := blake2b.New256(macKey(salt))
	if err != nil {
		return 0
	}
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Index picks the answer index for date. An empty salt selects the
// sequential schedule.
func Index(date, epoch time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	if salt == "" {
		n := GameNumber(date, epoch) % answersLen
		if n < 0 {
			n += answersLen
		}
		return n
	}
	return WordIndex(date, salt, answersLen)
}

// macKey fits salt into a blake2b key, hashing salts longer than 64 bytes.
func macKey(salt string) []byte {
	if len(salt) > blake2b.Size {
		k := blake2b.Sum512([]byte(salt))
		return k[:]
	}
	return []byte(salt)
}
