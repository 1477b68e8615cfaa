package corpus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/turdle/apps/go-server/internal/corpus"
)

func TestXorShift_KnownSequence(t *testing.T) {
	r := corpus.NewXorShift(1)
	want := []float64{0.22916629258543253, 0.28309846785850823, 0.3196232789196074}
	for i, w := range want {
		assert.InDelta(t, w, r.NextUniform(), 1e-15, "draw %d", i)
	}
}

func TestXorShift_Range(t *testing.T) {
	for _, seed := range []int32{0, 1, 42, -7, 2147483647} {
		r := corpus.NewXorShift(seed)
		for i := 0; i < 10000; i++ {
			u := r.NextUniform()
			require.GreaterOrEqual(t, u, 0.0)
			require.Less(t, u, 1.0)
		}
	}
}

func TestXorShift_SeedDeterminism(t *testing.T) {
	a, b, c := corpus.NewXorShift(7), corpus.NewXorShift(7), corpus.NewXorShift(8)
	diverged := false
	for i := 0; i < 100; i++ {
		ua, ub, uc := a.NextUniform(), b.NextUniform(), c.NextUniform()
		require.Equal(t, ua, ub)
		if ua != uc {
			diverged = true
		}
	}
	assert.True(t, diverged, "different seeds should give different sequences")
}
