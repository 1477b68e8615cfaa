package tiles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/turdle/apps/go-server/internal/tiles"
)

func TestNextFrame(t *testing.T) {
	assert.Equal(t, 2, tiles.NextFrame(1))
	assert.Equal(t, 5, tiles.NextFrame(4))
	assert.Equal(t, 1, tiles.NextFrame(5))
}

func TestIsValidGuess(t *testing.T) {
	valid := []string{
		"QWERT", // 1 2 3 4 5
		"ERTQW", // 3 4 5 1 2
		"TYUIO", // 5 1 2 3 4
		"qwert",
		"NQCVB", // 5 1 2 3 4
	}
	for _, g := range valid {
		assert.True(t, tiles.IsValidGuess(g), g)
		assert.NoError(t, tiles.CheckGuess(g), g)
	}

	invalid := []string{
		"",
		"QWER",   // too short
		"QWERTY", // too long
		"TREWQ",  // descending
		"QQQQQ",  // repeated frame
		"QWETR",  // 1 2 3 5 4
		"QWERM",  // M is not in the alphabet
	}
	for _, g := range invalid {
		assert.False(t, tiles.IsValidGuess(g), g)
		assert.Error(t, tiles.CheckGuess(g), g)
	}
}

func TestIsValidPrefix(t *testing.T) {
	for _, p := range []string{"", "Q", "TY", "RTQ", "QWERT"} {
		assert.True(t, tiles.IsValidPrefix(p), p)
	}
	for _, p := range []string{"QQ", "QE", "QWERTY", "M"} {
		assert.False(t, tiles.IsValidPrefix(p), p)
	}
}

func TestSequences(t *testing.T) {
	frames, err := tiles.FrameSequence("ERTQW")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5, 1, 2}, frames)

	colors, err := tiles.ColorSequence("QSBGN")
	require.NoError(t, err)
	assert.Equal(t, []byte("WPGPG"), colors)

	_, err = tiles.FrameSequence("QM")
	assert.ErrorIs(t, err, tiles.ErrInvalidSymbol)
}
