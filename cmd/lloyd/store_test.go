package main

import (
	"context"
	"testing"

	"github.com/hupe1980/lloyd/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		uri  string
		want location
		ok   bool
	}{
		{"data/samples.f32", location{key: "data/samples.f32"}, true},
		{"/abs/path.lz4", location{key: "/abs/path.lz4"}, true},
		{"s3://bucket/a/b.f32", location{scheme: "s3", bucket: "bucket", key: "a/b.f32"}, true},
		{"minio://localhost:9000/bucket/x.f32", location{scheme: "minio", endpoint: "localhost:9000", bucket: "bucket", key: "x.f32"}, true},
		{"s3://bucket", location{}, false},
		{"minio://host/bucket", location{}, false},
		{"gs://bucket/key", location{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			got, err := parseLocation(tt.uri)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpenStore_Local(t *testing.T) {
	ctx := context.Background()

	store, name, err := openStore(ctx, "x.f32", 0)
	require.NoError(t, err)
	assert.Equal(t, "x.f32", name)
	assert.IsType(t, &blobstore.LocalStore{}, store)

	store, _, err = openStore(ctx, "x.f32", 1<<20)
	require.NoError(t, err)
	assert.IsType(t, &blobstore.ThrottledStore{}, store)
}
