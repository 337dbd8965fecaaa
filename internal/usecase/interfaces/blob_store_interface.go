package interfaces

import (
	"context"
	"io"
)

// IBlobStore stores uploaded files and returns their public URL.
type IBlobStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (publicURL string, err error)
}
