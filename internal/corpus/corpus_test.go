package corpus_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/turdle/apps/go-server/internal/corpus"
	"github.com/robalobadob/turdle/apps/go-server/internal/tiles"
)

func TestGenerate_CanonicalOrder(t *testing.T) {
	words, err := corpus.Generate()
	require.NoError(t, err)
	require.Len(t, words, corpus.Size)
	assert.Equal(t, 15625, corpus.Size)
	assert.Equal(t, "QWERT", words[0])
	assert.Equal(t, "QWERP", words[1])
	assert.Equal(t, "NXCVB", words[len(words)-1])
}

func TestVerifyCodec(t *testing.T) {
	assert.NoError(t, corpus.VerifyCodec())
}

func TestBuild_SizeUniquenessValidity(t *testing.T) {
	c, err := corpus.Build(corpus.DefaultSeed)
	require.NoError(t, err)
	require.Equal(t, corpus.Size, c.Len())

	seen := make(map[string]struct{}, c.Len())
	for _, w := range c.Words() {
		_, dup := seen[w]
		require.False(t, dup, "duplicate %s", w)
		seen[w] = struct{}{}
		require.True(t, tiles.IsValidGuess(w), "invalid %s", w)
	}
}

// Walks the rule itself (not the generator) to list every valid guess and
// checks each one is in the corpus.
func TestBuild_Complete(t *testing.T) {
	c, err := corpus.Build(corpus.DefaultSeed)
	require.NoError(t, err)

	found := 0
	var walk func(prefix string)
	walk = func(prefix string) {
		if len(prefix) == tiles.GuessLength {
			require.True(t, tiles.IsValidGuess(prefix))
			require.True(t, c.Contains(prefix), "missing %s", prefix)
			found++
			return
		}
		for _, sym := range tiles.Alphabet {
			if next := prefix + string(sym); tiles.IsValidPrefix(next) {
				walk(next)
			}
		}
	}
	walk("")
	assert.Equal(t, corpus.Size, found)
}

func TestBuild_Deterministic(t *testing.T) {
	a, err := corpus.Build(1)
	require.NoError(t, err)
	b, err := corpus.Build(1)
	require.NoError(t, err)
	assert.Equal(t, a.Words(), b.Words())

	assert.Equal(t, []string{"DBZHS", "ELPQS", "RNHJV", "DFTQJ", "UDLZX"}, a.Slice(0, 5))
	assert.Equal(t, "WKLPQ", a.At(a.Len()-1))

	other, err := corpus.Build(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"BNHSE", "PXWEB", "LTYCV", "ERPAC", "UEOGY"}, other.Slice(0, 5))
	assert.Equal(t, int32(2), other.Seed())

	canonical, err := corpus.Generate()
	require.NoError(t, err)
	assert.NotEqual(t, canonical, a.Words())
}

func TestCorpus_Lookup(t *testing.T) {
	c, err := corpus.Build(corpus.DefaultSeed)
	require.NoError(t, err)

	i, ok := c.Index("dbzhs")
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.True(t, c.Contains("QWERT"))
	assert.False(t, c.Contains("TREWQ"))
	assert.False(t, c.Contains("QWER"))

	assert.Len(t, c.Slice(15620, 100), 5)
	assert.Empty(t, c.Slice(20000, 10))
	assert.Len(t, c.Slice(-5, 3), 3)
	assert.Len(t, c.Slice(0, -1), corpus.Size)

	words := c.Words()
	words[0] = "XXXXX"
	assert.Equal(t, "DBZHS", c.At(0), "Words must return a copy")
}

func TestDefault_BuildsOnce(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]*corpus.Corpus, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := corpus.Default()
			assert.NoError(t, err)
			results[i] = c
		}(i)
	}
	wg.Wait()
	for _, c := range results {
		require.NotNil(t, c)
		assert.Same(t, results[0], c)
	}
	assert.Equal(t, corpus.DefaultSeed, results[0].Seed())
}

// Typing any corpus guess one key at a time never hits a disabled key, and
// every key whose frame breaks the run is disabled along the way.
func TestValidatorAgreesWithCorpus(t *testing.T) {
	c, err := corpus.Default()
	require.NoError(t, err)

	for _, w := range c.Words() {
		for pos := 0; pos < tiles.GuessLength; pos++ {
			prefix, next := w[:pos], rune(w[pos])
			keys, err := tiles.DisabledKeys(prefix)
			require.NoError(t, err)
			require.False(t, keys[string(next)], "%s: key %c disabled after %q", w, next, prefix)

			want, _ := tiles.Frame(next)
			for sym, disabled := range keys {
				f, _ := tiles.Frame(rune(sym[0]))
				if pos == 0 {
					require.False(t, disabled)
				} else {
					require.Equal(t, f != want, disabled, "%s: key %s after %q", w, sym, prefix)
				}
			}
		}
		full, err := tiles.IsNextSymbolDisabled(w, 'Q')
		require.NoError(t, err)
		require.True(t, full)
	}
}

func BenchmarkBuild(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := corpus.Build(corpus.DefaultSeed); err != nil {
			b.Fatal(err)
		}
	}
}
