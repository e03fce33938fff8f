// Package photostore abstracts where uploaded scan images live so the web
// layer can serve them back on the history screen.
package photostore

import (
	"context"
	"io"
)

type PhotoStore interface {
	Save(ctx context.Context, prefix, mimeType string, r io.Reader) (storageKey string, err error)
	Get(ctx context.Context, storageKey string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, storageKey string) error
}
