package blobstore

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrottledStore(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	payload := bytes.Repeat([]byte{7}, 300)

	t.Run("ReadsSplitAcrossBurst", func(t *testing.T) {
		store := NewThrottledStore(inner, 100_000)
		require.NoError(t, store.Put(ctx, "blob", payload))

		got, err := ReadAll(ctx, store, "blob")
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("LimitsRate", func(t *testing.T) {
		// 100 B/s with a 100 byte burst: 300 bytes need at least ~2s of
		// refill after the initial burst, so a short deadline must trip.
		store := NewThrottledStore(inner, 100)
		require.NoError(t, inner.Put(ctx, "slow", payload))

		b, err := store.Open(ctx, "slow")
		require.NoError(t, err)
		defer b.Close()

		tctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()
		buf := make([]byte, len(payload))
		n, err := b.ReadAt(tctx, buf, 0)
		assert.Error(t, err)
		assert.Less(t, n, len(payload))
	})

	t.Run("Disabled", func(t *testing.T) {
		store := NewThrottledStore(inner, 0)
		require.NoError(t, store.Put(ctx, "free", payload))
		b, err := store.Open(ctx, "free")
		require.NoError(t, err)
		_, isThrottled := b.(*throttledBlob)
		assert.False(t, isThrottled)
	})
}
