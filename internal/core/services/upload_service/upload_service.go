package upload_service

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"path"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/agendazap/slot-suggester/internal/core/domain"
	"github.com/agendazap/slot-suggester/internal/core/ports/out"
)

type UploadService struct {
	storage out.StoragePort
	logger  out.LoggerPort
	now     func() time.Time
}

func NewUploadService(storage out.StoragePort, logger out.LoggerPort) *UploadService {
	return &UploadService{
		storage: storage,
		logger:  logger.WithModule("UploadService"),
		now:     time.Now,
	}
}

func (s *UploadService) Upload(ctx context.Context, originalName, contentType string, size int64, data io.Reader) (*domain.UploadResult, error) {
	fileName := s.sanitizeFileName(originalName)

	if contentType == "" {
		ext := strings.TrimPrefix(path.Ext(originalName), ".")
		contentType = "application/" + ext
	}

	stored, err := s.storage.Upload(ctx, fileName, contentType, data)
	if err != nil {
		s.logger.Error("upload.store_failed", out.LogFields{
			"fileName": fileName,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("upload.store_failed: %w", err)
	}

	s.logger.Info("upload.stored", out.LogFields{
		"fileName": stored.FileName,
		"size":     size,
	})

	return &domain.UploadResult{
		URL:          stored.URL,
		FileName:     stored.FileName,
		OriginalName: originalName,
		MimeType:     contentType,
		Size:         size,
	}, nil
}

func (s *UploadService) FileURL(ctx context.Context, folder, fileName string) (string, error) {
	url, err := s.storage.PublicURL(ctx, folder, fileName)
	if err != nil {
		return "", fmt.Errorf("upload.url_failed: %w", err)
	}
	return url, nil
}

var (
	invalidFileChars = regexp.MustCompile(`[^a-z0-9.-]`)
	dashRuns         = regexp.MustCompile(`-+`)
)

const randomIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// sanitizeFileName strips accents and anything outside [a-z0-9.-] from the
// original name and appends a timestamp plus a short random id, keeping the
// extension, so repeated uploads of the same attachment never collide.
func (s *UploadService) sanitizeFileName(original string) string {
	base := strings.TrimSuffix(original, path.Ext(original))

	stripAccents := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, err := transform.String(stripAccents, strings.ToLower(base))
	if err != nil {
		normalized = strings.ToLower(base)
	}

	sanitized := invalidFileChars.ReplaceAllString(normalized, "-")
	sanitized = dashRuns.ReplaceAllString(sanitized, "-")
	sanitized = strings.Trim(sanitized, "-")

	extension := strings.TrimPrefix(path.Ext(original), ".")

	unique := make([]byte, 6)
	for i := range unique {
		unique[i] = randomIDAlphabet[rand.Intn(len(randomIDAlphabet))]
	}

	return fmt.Sprintf("%s-%d-%s.%s", sanitized, s.now().UnixMilli(), unique, strings.ToLower(extension))
}
