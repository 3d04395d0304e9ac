package dataset

import (
	"bytes"
	"context"
	"encoding/binary"
	"math"
	"path/filepath"
	"testing"

	"github.com/hupe1980/lloyd/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLabels(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLabels(&buf, []int{0, 1, 2}))

	want := binary.LittleEndian.AppendUint64(nil, 0)
	want = binary.LittleEndian.AppendUint64(want, 1)
	want = binary.LittleEndian.AppendUint64(want, 2)
	assert.Equal(t, want, buf.Bytes())

	got, err := ReadLabels(&buf)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestWriteLabelsRejectsNegative(t *testing.T) {
	err := WriteLabels(&bytes.Buffer{}, []int{0, -1})
	assert.ErrorIs(t, err, ErrInvalidLabel)
}

func TestReadLabels(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got, err := ReadLabels(bytes.NewReader(nil))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("truncated", func(t *testing.T) {
		data := binary.LittleEndian.AppendUint64(nil, 3)
		_, err := ReadLabels(bytes.NewReader(append(data, 1, 2, 3)))
		var sm *ShapeMismatchError
		require.ErrorAs(t, err, &sm)
		assert.Equal(t, 3, sm.Trailing)
	})

	t.Run("overflow", func(t *testing.T) {
		data := binary.LittleEndian.AppendUint64(nil, math.MaxUint64)
		_, err := ReadLabels(bytes.NewReader(data))
		assert.ErrorIs(t, err, ErrInvalidLabel)
	})
}

func TestReadFloatLabels(t *testing.T) {
	enc := func(vs ...float32) *bytes.Reader {
		return bytes.NewReader(encodeFloats(vs...))
	}

	got, err := ReadFloatLabels(enc(1, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, got)

	for _, bad := range []float32{0.5, -1, float32(math.NaN())} {
		_, err := ReadFloatLabels(enc(0, bad))
		assert.ErrorIs(t, err, ErrInvalidLabel, "value %v", bad)
	}
}

func TestLabelFiles(t *testing.T) {
	dir := t.TempDir()
	labels := []int{2, 0, 1, 1}

	for _, name := range []string{"predicted_classes.data", "labels.u64.zst"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, WriteLabelsFile(path, labels))

			got, err := ReadLabelsFile(path)
			require.NoError(t, err)
			assert.Equal(t, labels, got)
		})
	}

	t.Run("float labels file", func(t *testing.T) {
		path := filepath.Join(dir, "truth.f32")
		ds, err := New([]float32{1, 0, 1}, 1)
		require.NoError(t, err)
		require.NoError(t, EncodeFile(path, ds))

		got, err := ReadFloatLabelsFile(path)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 0, 1}, got)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := ReadLabelsFile(filepath.Join(dir, "missing"))
		var ioErr *IOError
		assert.ErrorAs(t, err, &ioErr)
	})

	t.Run("create in missing dir", func(t *testing.T) {
		err := WriteLabelsFile(filepath.Join(dir, "no", "such", "dir", "l.data"), labels)
		var ioErr *IOError
		require.ErrorAs(t, err, &ioErr)
		assert.Equal(t, "create", ioErr.Op)
	})
}

func TestStoreLabels(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	require.NoError(t, StoreLabels(ctx, store, "out/labels.lz4", []int{0, 1}))
	got, err := LoadLabels(ctx, store, "out/labels.lz4")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, got)

	err = StoreLabels(ctx, store, "bad", []int{-3})
	assert.ErrorIs(t, err, ErrInvalidLabel)
}
