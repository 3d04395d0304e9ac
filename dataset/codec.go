package dataset

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/hupe1980/lloyd/blobstore"
)

const (
	ioBufferSize = 64 << 10
	maxPrealloc  = 1 << 24
)

// Decode reads exactly n*d little-endian float32 values from r.
//
// A stream that ends early, carries extra values or ends in a partial
// value fails with a *ShapeMismatchError.
func Decode(r io.Reader, n, d int) (*Dataset, error) {
	if d <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, d)
	}
	if n < 0 {
		return nil, &ShapeMismatchError{Dim: d, Samples: n}
	}

	if n > math.MaxInt/4/d {
		return nil, &ShapeMismatchError{Dim: d, Samples: n}
	}

	// The declared size is untrusted; grow towards it as data arrives.
	want := n * d
	buf := make([]float32, 0, min(want, maxPrealloc))
	br := bufio.NewReaderSize(r, ioBufferSize)

	var word [4]byte
	for len(buf) < want {
		got, err := io.ReadFull(br, word[:])
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, &ShapeMismatchError{Elements: len(buf), Dim: d, Samples: n, Trailing: got}
			}
			return nil, err
		}
		buf = append(buf, math.Float32frombits(binary.LittleEndian.Uint32(word[:])))
	}

	extra, err := io.Copy(io.Discard, br)
	if err != nil {
		return nil, err
	}
	if extra > 0 {
		return nil, &ShapeMismatchError{
			Elements: len(buf) + int(extra/4),
			Dim:      d,
			Samples:  n,
			Trailing: int(extra % 4),
		}
	}

	return New(buf, d)
}

// Encode writes the samples of ds to w as little-endian float32 values.
func Encode(w io.Writer, ds *Dataset) error {
	bw := bufio.NewWriterSize(w, ioBufferSize)

	var word [4]byte
	for _, v := range ds.Raw() {
		binary.LittleEndian.PutUint32(word[:], math.Float32bits(v))
		if _, err := bw.Write(word[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadFile loads n samples of dimension d from path. Names ending in
// ".zst" or ".lz4" are decompressed first.
//
// Open and read failures are reported as *IOError.
func ReadFile(path string, n, d int) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	ds, err := decodeCompressed(f, CompressionFor(path), n, d)
	if err != nil {
		return nil, wrapIO("read", path, err)
	}
	return ds, nil
}

// EncodeFile writes ds to path, compressing by suffix.
func EncodeFile(path string, ds *Dataset) error {
	return writeFile(path, func(w io.Writer) error { return Encode(w, ds) })
}

// Load reads n samples of dimension d from the blob name in store, with
// the same suffix rules as ReadFile.
func Load(ctx context.Context, store blobstore.BlobStore, name string, n, d int) (*Dataset, error) {
	b, err := store.Open(ctx, name)
	if err != nil {
		return nil, &IOError{Op: "open", Path: name, Err: err}
	}
	defer b.Close()

	ds, err := decodeCompressed(blobstore.NewSectionReader(ctx, b), CompressionFor(name), n, d)
	if err != nil {
		return nil, wrapIO("read", name, err)
	}
	return ds, nil
}

// Save encodes ds and stores it as name, compressing by suffix.
func Save(ctx context.Context, store blobstore.BlobStore, name string, ds *Dataset) error {
	return putBlob(ctx, store, name, func(w io.Writer) error { return Encode(w, ds) })
}

func decodeCompressed(r io.Reader, c Compression, n, d int) (*Dataset, error) {
	cr, err := c.reader(r)
	if err != nil {
		return nil, err
	}
	defer cr.Close()

	return Decode(cr, n, d)
}

func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}

	if err := writeCompressed(f, CompressionFor(path), encode); err != nil {
		_ = f.Close()
		return wrapIO("write", path, err)
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	return nil
}

func putBlob(ctx context.Context, store blobstore.BlobStore, name string, encode func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := writeCompressed(&buf, CompressionFor(name), encode); err != nil {
		return err
	}
	if err := store.Put(ctx, name, buf.Bytes()); err != nil {
		return &IOError{Op: "put", Path: name, Err: err}
	}
	return nil
}

func writeCompressed(w io.Writer, c Compression, encode func(io.Writer) error) error {
	cw, err := c.writer(w)
	if err != nil {
		return err
	}
	if err := encode(cw); err != nil {
		_ = cw.Close()
		return err
	}
	return cw.Close()
}
