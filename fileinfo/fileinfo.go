// Package fileinfo describes a single uploaded file staged on local disk.
//
// It defines the FileInfo capability contract consumed by the batch,
// validation and storage packages, together with a default implementation
// backed by a readable file. Metadata that is cheap to obtain (size,
// content type) is resolved at construction; content-derived metadata
// (checksum, pixel dimensions) is computed lazily and memoized.
package fileinfo

import (
	"crypto/md5" //nolint:gosec // content fingerprint, not a security boundary
	"encoding/hex"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/code19m/errx"
	"github.com/gabriel-vasile/mimetype"

	// Registered decoders for reading image dimensions.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Dimensions holds the pixel size of image content.
type Dimensions struct {
	Width  int
	Height int
}

// FileInfo is the capability contract for one uploaded file.
//
// The pathname must reference existing, readable content for the lifetime
// of the value. Name and extension are independently mutable before
// storage; the pathname is mutated only by a storage backend once the
// content has reached its final location.
type FileInfo interface {
	// Pathname returns the current on-disk location of the content.
	Pathname() string
	// SetPathname records a new content location. Intended for storage
	// backends after persisting the file.
	SetPathname(pathname string)

	// Name returns the logical filename without extension.
	Name() string
	// SetName replaces the logical filename without touching the extension.
	SetName(name string)

	// Extension returns the lowercase filename extension without the dot.
	Extension() string
	// SetExtension replaces the filename extension.
	SetExtension(ext string)

	// NameWithExtension returns "<name>.<extension>", or just the name
	// when there is no extension.
	NameWithExtension() string

	// Mimetype returns the content type sniffed from the file content.
	Mimetype() string

	// Size returns the content length in bytes.
	Size() int64

	// Checksum returns the MD5 hex digest of the content.
	Checksum() (string, error)

	// Dimensions returns the pixel size of image content. The second
	// return value is false for non-image content.
	Dimensions() (Dimensions, bool)

	// IsUploadedFile reports whether the file genuinely arrived through
	// the upload transport, as opposed to being constructed around an
	// arbitrary local path.
	IsUploadedFile() bool
}

// File is the default FileInfo implementation.
type File struct {
	pathname string
	name     string
	ext      string
	mime     string
	size     int64
	uploaded bool

	checksum string
	dims     *Dimensions
	dimsDone bool
}

// Option configures a File during construction.
type Option func(*File)

// WithUploaded marks the file as delivered by the upload transport.
// Only the transport integration should use this.
func WithUploaded() Option {
	return func(f *File) { f.uploaded = true }
}

// New constructs a File from a staged path and the filename the client
// submitted. The path is stat'd and its content type sniffed immediately.
func New(path, submittedName string, opts ...Option) (*File, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, errx.Wrap(err, errx.WithDetails(errx.D{"pathname": path}))
	}
	if stat.IsDir() {
		return nil, errx.New(
			"pathname is a directory",
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{"pathname": path}),
		)
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, errx.Wrap(err, errx.WithDetails(errx.D{"pathname": path}))
	}

	ext := filepath.Ext(submittedName)

	f := &File{
		pathname: path,
		name:     strings.TrimSuffix(filepath.Base(submittedName), ext),
		ext:      strings.ToLower(strings.TrimPrefix(ext, ".")),
		mime:     mtype.String(),
		size:     stat.Size(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// Pathname implements FileInfo.
func (f *File) Pathname() string { return f.pathname }

// SetPathname implements FileInfo. Memoized content-derived metadata is
// dropped since the new location may hold rewritten content.
func (f *File) SetPathname(pathname string) {
	f.pathname = pathname
	f.checksum = ""
	f.dims = nil
	f.dimsDone = false
}

// Name implements FileInfo.
func (f *File) Name() string { return f.name }

// SetName implements FileInfo.
func (f *File) SetName(name string) { f.name = name }

// Extension implements FileInfo.
func (f *File) Extension() string { return f.ext }

// SetExtension implements FileInfo.
func (f *File) SetExtension(ext string) {
	f.ext = strings.ToLower(strings.TrimPrefix(ext, "."))
}

// NameWithExtension implements FileInfo.
func (f *File) NameWithExtension() string {
	if f.ext == "" {
		return f.name
	}
	return f.name + "." + f.ext
}

// Mimetype implements FileInfo.
func (f *File) Mimetype() string { return f.mime }

// Size implements FileInfo.
func (f *File) Size() int64 { return f.size }

// Checksum implements FileInfo. The digest is computed from the content on
// first call and memoized until the pathname changes.
func (f *File) Checksum() (string, error) {
	if f.checksum != "" {
		return f.checksum, nil
	}

	src, err := os.Open(f.pathname)
	if err != nil {
		return "", errx.Wrap(err, errx.WithDetails(errx.D{"pathname": f.pathname}))
	}
	defer src.Close()

	h := md5.New() //nolint:gosec // content fingerprint, not a security boundary
	if _, err := io.Copy(h, src); err != nil {
		return "", errx.Wrap(err, errx.WithDetails(errx.D{"pathname": f.pathname}))
	}

	f.checksum = hex.EncodeToString(h.Sum(nil))
	return f.checksum, nil
}

// Dimensions implements FileInfo. Only the image header is decoded.
func (f *File) Dimensions() (Dimensions, bool) {
	if f.dimsDone {
		if f.dims == nil {
			return Dimensions{}, false
		}
		return *f.dims, true
	}
	f.dimsDone = true

	if !strings.HasPrefix(f.mime, "image/") {
		return Dimensions{}, false
	}

	src, err := os.Open(f.pathname)
	if err != nil {
		return Dimensions{}, false
	}
	defer src.Close()

	cfg, _, err := image.DecodeConfig(src)
	if err != nil {
		return Dimensions{}, false
	}

	f.dims = &Dimensions{Width: cfg.Width, Height: cfg.Height}
	return *f.dims, true
}

// IsUploadedFile implements FileInfo.
func (f *File) IsUploadedFile() bool { return f.uploaded }
