package tiles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/turdle/apps/go-server/internal/tiles"
)

func TestIsNextSymbolDisabled_EmptyPartial(t *testing.T) {
	for _, sym := range tiles.Alphabet {
		d, err := tiles.IsNextSymbolDisabled("", sym)
		require.NoError(t, err)
		assert.False(t, d, "symbol %q", sym)
	}
}

func TestIsNextSymbolDisabled_AfterFrameThree(t *testing.T) {
	// E has frame 3.
	for _, sym := range tiles.Alphabet {
		f, _ := tiles.Frame(sym)
		d, err := tiles.IsNextSymbolDisabled("E", sym)
		require.NoError(t, err)
		if f == 4 {
			assert.False(t, d, "frame 4 symbol %q should be enabled", sym)
		} else {
			assert.True(t, d, "frame %d symbol %q should be disabled", f, sym)
		}
	}
}

func TestIsNextSymbolDisabled_LastSlotColorIsFree(t *testing.T) {
	// W E R T = frames 2 3 4 5, so any frame 1 symbol completes the guess.
	for _, sym := range tiles.Alphabet {
		f, _ := tiles.Frame(sym)
		d, err := tiles.IsNextSymbolDisabled("WERT", sym)
		require.NoError(t, err)
		assert.Equal(t, f != 1, d, "symbol %q frame %d", sym, f)
	}
}

func TestIsNextSymbolDisabled_FullGuess(t *testing.T) {
	for _, sym := range tiles.Alphabet {
		d, err := tiles.IsNextSymbolDisabled("QWERT", sym)
		require.NoError(t, err)
		assert.True(t, d)
	}
}

func TestIsNextSymbolDisabled_Errors(t *testing.T) {
	_, err := tiles.IsNextSymbolDisabled("Q", 'M')
	assert.ErrorIs(t, err, tiles.ErrInvalidSymbol)

	for _, p := range []string{"QWERTY", "QQ", "QE", "QM"} {
		_, err := tiles.IsNextSymbolDisabled(p, 'Q')
		assert.ErrorIs(t, err, tiles.ErrInvalidPartialGuess, "partial %q", p)
	}
}

func TestIsNextSymbolDisabled_LowerCase(t *testing.T) {
	d, err := tiles.IsNextSymbolDisabled("q", 'w')
	require.NoError(t, err)
	assert.False(t, d)
}

// Every reachable prefix and every key: a key is enabled exactly when the
// extended prefix is still a valid prefix.
func TestIsNextSymbolDisabled_MatchesPrefixRule(t *testing.T) {
	prefixes := []string{""}
	checked := 0
	for len(prefixes) > 0 {
		p := prefixes[0]
		prefixes = prefixes[1:]
		if len(p) == tiles.GuessLength {
			continue
		}
		for _, sym := range tiles.Alphabet {
			next := p + string(sym)
			d, err := tiles.IsNextSymbolDisabled(p, sym)
			require.NoError(t, err)
			require.Equal(t, !tiles.IsValidPrefix(next), d, "prefix %q key %q", p, sym)
			if !d {
				prefixes = append(prefixes, next)
			}
			checked++
		}
	}
	// 1 + 25 + 125 + 625 + 3125 prefixes of length < 5, 25 keys each.
	assert.Equal(t, 3901*25, checked)
}

func TestDisabledKeys(t *testing.T) {
	keys, err := tiles.DisabledKeys("TY")
	require.NoError(t, err)
	require.Len(t, keys, 25)
	for sym, d := range keys {
		f, _ := tiles.Frame(rune(sym[0]))
		assert.Equal(t, f != 2, d, "symbol %s", sym)
	}

	_, err = tiles.DisabledKeys("YT")
	assert.ErrorIs(t, err, tiles.ErrInvalidPartialGuess)
}
