package transport

import (
	"errors"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/code19m/errx"
)

// Multipart is a Transport built from a parsed multipart form.
//
// Construction stages every file header into a local directory and records
// one FileSignal per header. Staging failures are mapped onto the code
// enumeration instead of failing construction, so a single broken file
// does not take down the whole request.
type Multipart struct {
	fields map[string][]FileSignal
}

// MultipartOption configures a Multipart transport.
type MultipartOption func(*multipartConfig)

type multipartConfig struct {
	dir     string
	maxSize int64
}

// WithStagingDir sets the directory staged files are written to.
// Defaults to the system temp directory.
func WithStagingDir(dir string) MultipartOption {
	return func(c *multipartConfig) { c.dir = dir }
}

// WithMaxFileSize rejects files larger than max bytes with
// CodeSizeExceedsServerLimit before any bytes are staged.
// Zero means no limit.
func WithMaxFileSize(max int64) MultipartOption {
	return func(c *multipartConfig) { c.maxSize = max }
}

// NewMultipart stages the files of a parsed multipart form and returns a
// transport exposing them as signals.
func NewMultipart(form *multipart.Form, opts ...MultipartOption) (*Multipart, error) {
	if form == nil {
		return nil, errx.New("nil multipart form", errx.WithType(errx.T_Validation))
	}

	cfg := multipartConfig{dir: os.TempDir()}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Multipart{fields: make(map[string][]FileSignal, len(form.File))}

	for field, headers := range form.File {
		signals := make([]FileSignal, 0, len(headers))
		for _, header := range headers {
			signals = append(signals, stageHeader(header, cfg))
		}
		m.fields[field] = signals
	}

	return m, nil
}

// UploadsEnabled implements Transport. A parsed form implies the host
// accepts uploads.
func (m *Multipart) UploadsEnabled() bool {
	return true
}

// Files implements Transport.
func (m *Multipart) Files(field string) ([]FileSignal, bool) {
	signals, ok := m.fields[field]
	return signals, ok
}

// stageHeader writes one file header to the staging directory and reports
// the outcome as a signal.
func stageHeader(header *multipart.FileHeader, cfg multipartConfig) FileSignal {
	signal := FileSignal{Name: header.Filename}

	if header.Filename == "" && header.Size == 0 {
		signal.Code = CodeNoFileSubmitted
		return signal
	}

	if cfg.maxSize > 0 && header.Size > cfg.maxSize {
		signal.Code = CodeSizeExceedsServerLimit
		return signal
	}

	src, err := header.Open()
	if err != nil {
		signal.Code = CodeWriteFailed
		return signal
	}
	defer src.Close()

	dst, err := os.CreateTemp(cfg.dir, "upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			signal.Code = CodeNoStagingDirectory
		} else {
			signal.Code = CodeWriteFailed
		}
		return signal
	}

	written, err := io.Copy(dst, src)
	closeErr := dst.Close()

	switch {
	case err != nil || closeErr != nil:
		_ = os.Remove(dst.Name())
		signal.Code = CodeWriteFailed
	case header.Size > 0 && written < header.Size:
		_ = os.Remove(dst.Name())
		signal.Code = CodePartialUpload
	default:
		signal.TmpPath = dst.Name()
		signal.Code = CodeOK
	}

	return signal
}
