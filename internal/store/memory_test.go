package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/turdle/apps/go-server/internal/game"
	"github.com/robalobadob/turdle/apps/go-server/internal/store"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	_, err := st.Get(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)

	g := game.New("QWERT")
	require.NoError(t, st.Save(ctx, g))
	got, err := st.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Same(t, g, got)
	assert.Equal(t, 1, st.Len())

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, st.Save(cancelled, g), context.Canceled)
}
