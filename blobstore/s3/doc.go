// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("datasets/"),
//	    s3.WithRegion("us-east-1"),
//	)
//	ds, err := dataset.Load(ctx, store, "blobs.f32", n, d)
//
// Reads are served with ranged GetObject calls; writes go through the
// feature/s3/manager uploader, which switches to multipart for large blobs.
package s3
