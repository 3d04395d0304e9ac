package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hupe1980/lloyd/blobstore"
	"github.com/hupe1980/lloyd/blobstore/minio"
	"github.com/hupe1980/lloyd/blobstore/s3"
)

// location is a parsed sample or label path.
type location struct {
	scheme   string // "", "s3" or "minio"
	endpoint string // minio only
	bucket   string
	key      string
}

func parseLocation(uri string) (location, error) {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return location{key: uri}, nil
	}

	parts := strings.SplitN(rest, "/", 3)
	switch scheme {
	case "s3":
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			return location{}, fmt.Errorf("invalid s3 location %q, want s3://bucket/key", uri)
		}
		return location{scheme: scheme, bucket: parts[0], key: strings.Join(parts[1:], "/")}, nil
	case "minio":
		if len(parts) < 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return location{}, fmt.Errorf("invalid minio location %q, want minio://endpoint/bucket/key", uri)
		}
		return location{scheme: scheme, endpoint: parts[0], bucket: parts[1], key: parts[2]}, nil
	default:
		return location{}, fmt.Errorf("unsupported scheme %q in %q", scheme, uri)
	}
}

// openStore resolves uri to a blob store and the blob name inside it.
// A positive bytesPerSec throttles all reads and writes.
func openStore(ctx context.Context, uri string, bytesPerSec int) (blobstore.BlobStore, string, error) {
	loc, err := parseLocation(uri)
	if err != nil {
		return nil, "", err
	}

	var store blobstore.BlobStore
	switch loc.scheme {
	case "s3":
		var opts []s3.Option
		if ep := os.Getenv("LLOYD_S3_ENDPOINT"); ep != "" {
			opts = append(opts, s3.WithEndpoint(ep))
		}
		store, err = s3.New(ctx, loc.bucket, opts...)
	case "minio":
		store, err = minio.New(loc.bucket, minio.Config{
			Endpoint:  loc.endpoint,
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Secure:    os.Getenv("MINIO_SECURE") == "true",
			Region:    os.Getenv("MINIO_REGION"),
		})
	default:
		store = blobstore.NewLocalStore("")
	}
	if err != nil {
		return nil, "", err
	}

	if bytesPerSec > 0 {
		store = blobstore.NewThrottledStore(store, bytesPerSec)
	}
	return store, loc.key, nil
}
