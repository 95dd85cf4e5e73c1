package out

import (
	"context"
	"io"
)

type StoredFile struct {
	URL      string
	FileName string
}

type StoragePort interface {
	// Upload stores data under a service-generated file name and returns
	// the stored name plus its public URL.
	Upload(ctx context.Context, fileName, contentType string, data io.Reader) (*StoredFile, error)

	// PublicURL resolves the public URL for an already stored file.
	PublicURL(ctx context.Context, folder, fileName string) (string, error)
}
