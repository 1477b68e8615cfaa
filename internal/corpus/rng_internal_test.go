package corpus

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.4, 0},
		{0.5, 1},
		{2.5, 3},
		{-0.5, 0},
		{-1.5, -1},
		{-2.6, -3},
		// Odd integers above 2^52 are exact and must stay unchanged.
		{1<<52 + 1, 1<<52 + 1},
		{1<<52 + 3, 1<<52 + 3},
		{1e16, 1e16},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, roundHalfUp(tt.in), "roundHalfUp(%v)", tt.in)
	}

	v := float64(1<<52 + 1)
	assert.Equal(t, float64(1<<52+2), math.Floor(v+0.5))
	assert.Equal(t, v, roundHalfUp(v))
}
