package service

import (
	"context"
	"io"
)

// MediaStorage defines the interface for the product media object store.
// Uploads are keyed by path and return a publicly resolvable URL. Images and
// videos are distinguished by the MIME-type prefix of the content type.
type MediaStorage interface {
	// Upload stores the content under a generated key derived from filename
	// and contentType and returns its public URL.
	Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error)

	// Close releases the underlying bucket handle.
	Close() error
}
