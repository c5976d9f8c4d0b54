// Package validation_test contains tests for the validation package.
package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/upload/fileinfo"
	"github.com/rise-and-shine/upload/validation"
)

// fakeFile is a minimal FileInfo for exercising validators without disk IO.
type fakeFile struct {
	name     string
	ext      string
	mime     string
	size     int64
	dims     fileinfo.Dimensions
	hasDims  bool
	uploaded bool
}

func (f *fakeFile) Pathname() string                        { return "/tmp/" + f.NameWithExtension() }
func (f *fakeFile) SetPathname(string)                      {}
func (f *fakeFile) Name() string                            { return f.name }
func (f *fakeFile) SetName(name string)                     { f.name = name }
func (f *fakeFile) Extension() string                       { return f.ext }
func (f *fakeFile) SetExtension(ext string)                 { f.ext = ext }
func (f *fakeFile) Mimetype() string                        { return f.mime }
func (f *fakeFile) Size() int64                             { return f.size }
func (f *fakeFile) Checksum() (string, error)               { return "", nil }
func (f *fakeFile) Dimensions() (fileinfo.Dimensions, bool) { return f.dims, f.hasDims }
func (f *fakeFile) IsUploadedFile() bool                    { return f.uploaded }

func (f *fakeFile) NameWithExtension() string {
	if f.ext == "" {
		return f.name
	}
	return f.name + "." + f.ext
}

func TestSize(t *testing.T) {
	tests := []struct {
		name      string
		validator *validation.Size
		size      int64
		wantErr   bool
	}{
		{name: "within max", validator: validation.NewSize(100), size: 99, wantErr: false},
		{name: "at max", validator: validation.NewSize(100), size: 100, wantErr: false},
		{name: "over max", validator: validation.NewSize(100), size: 101, wantErr: true},
		{name: "within range", validator: validation.NewSizeRange(10, 100), size: 50, wantErr: false},
		{name: "below min", validator: validation.NewSizeRange(10, 100), size: 9, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.validator.Validate(&fakeFile{name: "a", ext: "bin", size: tc.size})
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewSizeFromLiteral(t *testing.T) {
	v, err := validation.NewSizeFromLiteral("1k")
	require.NoError(t, err)

	assert.NoError(t, v.Validate(&fakeFile{size: 1024}))
	assert.Error(t, v.Validate(&fakeFile{size: 1025}))

	_, err = validation.NewSizeFromLiteral("nonsense")
	assert.Error(t, err)
}

func TestExtension(t *testing.T) {
	v := validation.NewExtension("jpg", ".PNG")

	tests := []struct {
		name    string
		ext     string
		wantErr bool
	}{
		{name: "allowed", ext: "jpg", wantErr: false},
		{name: "allowed with normalized dot", ext: "png", wantErr: false},
		{name: "case-insensitive", ext: "JPG", wantErr: false},
		{name: "not allowed", ext: "exe", wantErr: true},
		{name: "empty", ext: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(&fakeFile{name: "f", ext: tc.ext})
			if tc.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "Invalid file extension")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMimetype(t *testing.T) {
	v := validation.NewMimetype("image/png", "image/jpeg")

	assert.NoError(t, v.Validate(&fakeFile{mime: "image/png"}))

	err := v.Validate(&fakeFile{mime: "application/pdf"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "application/pdf")
}

func TestDimensions(t *testing.T) {
	v := validation.NewDimensions(800, 600)

	tests := []struct {
		name    string
		file    *fakeFile
		wantErr string
	}{
		{
			name: "exact match",
			file: &fakeFile{dims: fileinfo.Dimensions{Width: 800, Height: 600}, hasDims: true},
		},
		{
			name:    "wrong width",
			file:    &fakeFile{dims: fileinfo.Dimensions{Width: 640, Height: 600}, hasDims: true},
			wantErr: "width",
		},
		{
			name:    "wrong height",
			file:    &fakeFile{dims: fileinfo.Dimensions{Width: 800, Height: 480}, hasDims: true},
			wantErr: "height",
		},
		{
			name:    "not an image",
			file:    &fakeFile{},
			wantErr: "not a readable image",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.file)
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestFunc(t *testing.T) {
	called := false
	v := validation.Func(func(f fileinfo.FileInfo) error {
		called = true
		return nil
	})

	assert.NoError(t, v.Validate(&fakeFile{}))
	assert.True(t, called)
}
