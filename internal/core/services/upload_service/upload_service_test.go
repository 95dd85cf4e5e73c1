package upload_service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendazap/slot-suggester/internal/core/ports/out"
)

type nopLogger struct{}

func (l nopLogger) Debug(event string, fields out.LogFields) {}
func (l nopLogger) Info(event string, fields out.LogFields)  {}
func (l nopLogger) Warn(event string, fields out.LogFields)  {}
func (l nopLogger) Error(event string, fields out.LogFields) {}

func (l nopLogger) WithFields(fields out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(module string) out.LoggerPort        { return l }

type fakeStorage struct {
	fileName    string
	contentType string
	content     string
	fail        error
}

func (s *fakeStorage) Upload(ctx context.Context, fileName, contentType string, data io.Reader) (*out.StoredFile, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	body, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}
	s.fileName = fileName
	s.contentType = contentType
	s.content = string(body)
	return &out.StoredFile{URL: "https://cdn.example.com/uploads/" + fileName, FileName: fileName}, nil
}

func (s *fakeStorage) PublicURL(ctx context.Context, folder, fileName string) (string, error) {
	if s.fail != nil {
		return "", s.fail
	}
	return "https://cdn.example.com/" + folder + "/" + fileName, nil
}

func newTestService(storage *fakeStorage) *UploadService {
	svc := NewUploadService(storage, nopLogger{})
	svc.now = func() time.Time { return time.UnixMilli(1745625600000) }
	return svc
}

func TestUpload(t *testing.T) {
	storage := &fakeStorage{}
	svc := newTestService(storage)

	result, err := svc.Upload(context.Background(), "Relatório Mensal.PDF", "application/pdf", 42, strings.NewReader("%PDF-1.7"))
	require.NoError(t, err)

	assert.Regexp(t, `^relatorio-mensal-1745625600000-[a-z0-9]{6}\.pdf$`, result.FileName)
	assert.Equal(t, "Relatório Mensal.PDF", result.OriginalName)
	assert.Equal(t, "application/pdf", result.MimeType)
	assert.Equal(t, int64(42), result.Size)
	assert.Equal(t, "https://cdn.example.com/uploads/"+result.FileName, result.URL)
	assert.Equal(t, "%PDF-1.7", storage.content)
}

func TestUpload_DefaultsContentTypeFromExtension(t *testing.T) {
	storage := &fakeStorage{}
	svc := newTestService(storage)

	result, err := svc.Upload(context.Background(), "audio.ogg", "", 10, strings.NewReader("oggs"))
	require.NoError(t, err)
	assert.Equal(t, "application/ogg", result.MimeType)
	assert.Equal(t, "application/ogg", storage.contentType)
}

func TestUpload_StorageFailure(t *testing.T) {
	storage := &fakeStorage{fail: errors.New("cloud unreachable")}
	svc := newTestService(storage)

	result, err := svc.Upload(context.Background(), "foto.jpg", "image/jpeg", 10, strings.NewReader("jpg"))
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestFileURL(t *testing.T) {
	svc := newTestService(&fakeStorage{})

	url, err := svc.FileURL(context.Background(), "uploads", "foto.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/foto.jpg", url)
}

func TestSanitizeFileName(t *testing.T) {
	svc := newTestService(&fakeStorage{})

	cases := []struct {
		in   string
		want string
	}{
		{"Relatório Mensal.PDF", `^relatorio-mensal-\d+-[a-z0-9]{6}\.pdf$`},
		{"comprovante (2).jpeg", `^comprovante-2-\d+-[a-z0-9]{6}\.jpeg$`},
		{"ção___áéí.png", `^cao-aei-\d+-[a-z0-9]{6}\.png$`},
	}

	for _, tc := range cases {
		assert.Regexp(t, tc.want, svc.sanitizeFileName(tc.in), "input %q", tc.in)
	}
}
