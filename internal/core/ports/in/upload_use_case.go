package in

import (
	"context"
	"io"

	"github.com/agendazap/slot-suggester/internal/core/domain"
)

type UploadUseCase interface {
	// Upload stores one attachment and returns its public description.
	Upload(ctx context.Context, originalName, contentType string, size int64, data io.Reader) (*domain.UploadResult, error)

	// FileURL resolves the public URL of an already stored attachment.
	FileURL(ctx context.Context, folder, fileName string) (string, error)
}
