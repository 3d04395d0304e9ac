package dataset

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/hupe1980/lloyd/blobstore"
	"github.com/hupe1980/lloyd/internal/conv"
)

// WriteLabels writes one little-endian uint64 per label.
// Negative labels fail with ErrInvalidLabel.
func WriteLabels(w io.Writer, labels []int) error {
	bw := bufio.NewWriterSize(w, ioBufferSize)

	var word [8]byte
	for i, l := range labels {
		v, err := conv.IntToUint64(l)
		if err != nil {
			return fmt.Errorf("%w at index %d: %w", ErrInvalidLabel, i, err)
		}
		binary.LittleEndian.PutUint64(word[:], v)
		if _, err := bw.Write(word[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteLabelsFile writes labels to path, compressing by suffix.
func WriteLabelsFile(path string, labels []int) error {
	return writeFile(path, func(w io.Writer) error { return WriteLabels(w, labels) })
}

// StoreLabels writes labels to the blob name in store.
func StoreLabels(ctx context.Context, store blobstore.BlobStore, name string, labels []int) error {
	return putBlob(ctx, store, name, func(w io.Writer) error { return WriteLabels(w, labels) })
}

// ReadLabels reads little-endian uint64 labels until EOF.
func ReadLabels(r io.Reader) ([]int, error) {
	return readWords(r, 8, func(b []byte) (int, error) {
		return conv.Uint64ToInt(binary.LittleEndian.Uint64(b))
	})
}

// ReadFloatLabels reads little-endian float32 class ids until EOF. Every
// value must be a non-negative integer.
func ReadFloatLabels(r io.Reader) ([]int, error) {
	return readWords(r, 4, func(b []byte) (int, error) {
		return conv.Float32ToIndex(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	})
}

// ReadLabelsFile reads uint64 labels from path.
func ReadLabelsFile(path string) ([]int, error) {
	return readFile(path, ReadLabels)
}

// ReadFloatLabelsFile reads float32 class ids from path.
func ReadFloatLabelsFile(path string) ([]int, error) {
	return readFile(path, ReadFloatLabels)
}

// LoadLabels reads uint64 labels from the blob name in store.
func LoadLabels(ctx context.Context, store blobstore.BlobStore, name string) ([]int, error) {
	return loadBlob(ctx, store, name, ReadLabels)
}

// LoadFloatLabels reads float32 class ids from the blob name in store.
func LoadFloatLabels(ctx context.Context, store blobstore.BlobStore, name string) ([]int, error) {
	return loadBlob(ctx, store, name, ReadFloatLabels)
}

func loadBlob(ctx context.Context, store blobstore.BlobStore, name string, decode func(io.Reader) ([]int, error)) ([]int, error) {
	b, err := store.Open(ctx, name)
	if err != nil {
		return nil, &IOError{Op: "open", Path: name, Err: err}
	}
	defer b.Close()

	cr, err := CompressionFor(name).reader(blobstore.NewSectionReader(ctx, b))
	if err != nil {
		return nil, wrapIO("read", name, err)
	}
	defer cr.Close()

	labels, err := decode(cr)
	if err != nil {
		return nil, wrapIO("read", name, err)
	}
	return labels, nil
}

func readFile(path string, decode func(io.Reader) ([]int, error)) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	cr, err := CompressionFor(path).reader(f)
	if err != nil {
		return nil, wrapIO("read", path, err)
	}
	defer cr.Close()

	labels, err := decode(cr)
	if err != nil {
		return nil, wrapIO("read", path, err)
	}
	return labels, nil
}

func readWords(r io.Reader, width int, parse func([]byte) (int, error)) ([]int, error) {
	br := bufio.NewReaderSize(r, ioBufferSize)
	word := make([]byte, width)

	var labels []int
	for {
		got, err := io.ReadFull(br, word)
		if errors.Is(err, io.EOF) {
			return labels, nil
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, &ShapeMismatchError{Elements: len(labels), Dim: 1, Samples: len(labels), Trailing: got}
		}
		if err != nil {
			return nil, err
		}
		l, err := parse(word)
		if err != nil {
			return nil, fmt.Errorf("%w at index %d: %w", ErrInvalidLabel, len(labels), err)
		}
		labels = append(labels, l)
	}
}
