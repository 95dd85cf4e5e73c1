package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/agendazap/slot-suggester/internal/config"
	"github.com/agendazap/slot-suggester/internal/core/ports/out"
)

// CloudinaryAdapter implements out.StoragePort on Cloudinary. Files keep the
// service-generated name (PublicID) inside the configured folder so webhook
// payloads can reference them by name alone.
type CloudinaryAdapter struct {
	cld    *cloudinary.Cloudinary
	cfg    *config.Config
	logger out.LoggerPort
}

func NewCloudinaryAdapter(cfg *config.Config, logger out.LoggerPort) (*CloudinaryAdapter, error) {
	cld, err := cloudinary.NewFromURL(cfg.Storage.CloudinaryURL)
	if err != nil {
		logger.Error("storage.cloudinary.init_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("storage.cloudinary.init_failed: %w", err)
	}

	return &CloudinaryAdapter{
		cld:    cld,
		cfg:    cfg,
		logger: logger.WithModule("CloudinaryAdapter"),
	}, nil
}

func (a *CloudinaryAdapter) Upload(ctx context.Context, fileName, contentType string, data io.Reader) (*out.StoredFile, error) {
	result, err := a.cld.Upload.Upload(ctx, data, uploader.UploadParams{
		PublicID:     fileName,
		Folder:       a.cfg.Storage.Folder,
		ResourceType: "auto",
		// The sanitized name is already unique, keep it as-is
		UseFilename:    api.Bool(true),
		UniqueFilename: api.Bool(false),
	})
	if err != nil {
		a.logger.Error("storage.upload.failed", out.LogFields{
			"fileName": fileName,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("storage.upload.failed: %w", err)
	}

	a.logger.Debug("storage.upload.done", out.LogFields{
		"fileName": fileName,
		"publicId": result.PublicID,
		"bytes":    result.Bytes,
	})

	return &out.StoredFile{
		URL:      result.SecureURL,
		FileName: fileName,
	}, nil
}

func (a *CloudinaryAdapter) PublicURL(ctx context.Context, folder, fileName string) (string, error) {
	asset, err := a.cld.Media(folder + "/" + fileName)
	if err != nil {
		return "", fmt.Errorf("storage.url.failed: %w", err)
	}

	url, err := asset.String()
	if err != nil {
		return "", fmt.Errorf("storage.url.failed: %w", err)
	}
	return url, nil
}
