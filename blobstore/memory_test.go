package blobstore

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Open(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	data := []byte("abcdef")
	require.NoError(t, store.Put(ctx, "a", data))
	data[0] = 'X' // the store keeps its own copy

	b, err := store.Open(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(6), b.Size())

	buf := make([]byte, 4)
	n, err := b.ReadAt(ctx, buf, 4)
	assert.Equal(t, 2, n)
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "ef", string(buf[:n]))

	_, err = b.ReadAt(ctx, buf, 100)
	assert.Equal(t, io.EOF, err)
	require.NoError(t, b.Close())

	all, err := ReadAll(ctx, store, "a")
	require.NoError(t, err)
	assert.Equal(t, "abcdef", string(all))
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Put(ctx, "shared", []byte("payload")))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := ReadAll(ctx, store, "shared")
			assert.NoError(t, err)
			assert.Equal(t, "payload", string(got))
			assert.NoError(t, store.Put(ctx, "shared", []byte("payload")))
		}()
	}
	wg.Wait()
}
