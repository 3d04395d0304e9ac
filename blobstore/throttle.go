package blobstore

import (
	"context"

	"golang.org/x/time/rate"
)

// ThrottledStore limits the byte throughput of another BlobStore.
// Reads and writes share one token bucket.
type ThrottledStore struct {
	inner   BlobStore
	limiter *rate.Limiter
}

// NewThrottledStore wraps inner with a limit of bytesPerSec.
// A non-positive limit disables throttling.
func NewThrottledStore(inner BlobStore, bytesPerSec int) *ThrottledStore {
	s := &ThrottledStore{inner: inner}
	if bytesPerSec > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec)
	}
	return s
}

// Open opens a blob whose reads are throttled.
func (s *ThrottledStore) Open(ctx context.Context, name string) (Blob, error) {
	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	if s.limiter == nil {
		return b, nil
	}
	return &throttledBlob{Blob: b, limiter: s.limiter}, nil
}

// Put waits for len(data) tokens, then writes through.
func (s *ThrottledStore) Put(ctx context.Context, name string, data []byte) error {
	if err := wait(ctx, s.limiter, len(data)); err != nil {
		return err
	}
	return s.inner.Put(ctx, name, data)
}

type throttledBlob struct {
	Blob
	limiter *rate.Limiter
}

// ReadAt splits p into burst-sized reads so a large buffer never asks the
// limiter for more tokens than it can hold.
func (b *throttledBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	burst := b.limiter.Burst()
	total := 0
	for total < len(p) {
		chunk := p[total:]
		if len(chunk) > burst {
			chunk = chunk[:burst]
		}
		if err := b.limiter.WaitN(ctx, len(chunk)); err != nil {
			return total, err
		}
		n, err := b.Blob.ReadAt(ctx, chunk, off+int64(total))
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func wait(ctx context.Context, l *rate.Limiter, n int) error {
	if l == nil {
		return nil
	}
	burst := l.Burst()
	for n > 0 {
		step := min(n, burst)
		if err := l.WaitN(ctx, step); err != nil {
			return err
		}
		n -= step
	}
	return nil
}
