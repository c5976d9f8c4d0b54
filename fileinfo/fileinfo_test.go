// Package fileinfo_test contains tests for the fileinfo package.
package fileinfo_test

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/upload/fileinfo"
)

// stageFile writes content into a temp file and returns its path.
func stageFile(t *testing.T, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "staged")
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

// stagePNG writes a width x height PNG into a temp file.
func stagePNG(t *testing.T, width, height int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "staged.png")
	out, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(out, image.NewRGBA(image.Rect(0, 0, width, height))))
	require.NoError(t, out.Close())
	return path
}

func TestNew(t *testing.T) {
	path := stageFile(t, []byte("hello world"))

	f, err := fileinfo.New(path, "Greeting.TXT")
	require.NoError(t, err)

	assert.Equal(t, path, f.Pathname())
	assert.Equal(t, "Greeting", f.Name())
	assert.Equal(t, "txt", f.Extension())
	assert.Equal(t, "Greeting.txt", f.NameWithExtension())
	assert.Equal(t, int64(11), f.Size())
	assert.Contains(t, f.Mimetype(), "text/plain")
	assert.False(t, f.IsUploadedFile())
}

func TestNew_WithUploaded(t *testing.T) {
	f, err := fileinfo.New(stageFile(t, []byte("x")), "x.bin", fileinfo.WithUploaded())
	require.NoError(t, err)
	assert.True(t, f.IsUploadedFile())
}

func TestNew_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := fileinfo.New(filepath.Join(t.TempDir(), "absent"), "a.txt")
		assert.Error(t, err)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := fileinfo.New(t.TempDir(), "a.txt")
		assert.Error(t, err)
	})
}

func TestFile_Rename(t *testing.T) {
	f, err := fileinfo.New(stageFile(t, []byte("x")), "photo.JPG")
	require.NoError(t, err)

	f.SetName("sanitized")
	assert.Equal(t, "sanitized.jpg", f.NameWithExtension())

	f.SetExtension(".Jpeg")
	assert.Equal(t, "jpeg", f.Extension())
	assert.Equal(t, "sanitized.jpeg", f.NameWithExtension())
}

func TestFile_NoExtension(t *testing.T) {
	f, err := fileinfo.New(stageFile(t, []byte("x")), "README")
	require.NoError(t, err)

	assert.Equal(t, "README", f.Name())
	assert.Equal(t, "", f.Extension())
	assert.Equal(t, "README", f.NameWithExtension())
}

func TestFile_Checksum(t *testing.T) {
	f, err := fileinfo.New(stageFile(t, []byte("hello world")), "a.txt")
	require.NoError(t, err)

	sum, err := f.Checksum()
	require.NoError(t, err)
	assert.Equal(t, "5eb63bbbe01eeed093cb22bb8f5acdc3", sum)

	// Memoized result survives removal of the staged file.
	require.NoError(t, os.Remove(f.Pathname()))
	sum2, err := f.Checksum()
	require.NoError(t, err)
	assert.Equal(t, sum, sum2)
}

func TestFile_SetPathnameInvalidatesChecksum(t *testing.T) {
	f, err := fileinfo.New(stageFile(t, []byte("hello world")), "a.txt")
	require.NoError(t, err)

	_, err = f.Checksum()
	require.NoError(t, err)

	other := stageFile(t, []byte("different content"))
	f.SetPathname(other)
	assert.Equal(t, other, f.Pathname())

	sum, err := f.Checksum()
	require.NoError(t, err)
	assert.NotEqual(t, "5eb63bbbe01eeed093cb22bb8f5acdc3", sum)
}

func TestFile_Dimensions(t *testing.T) {
	f, err := fileinfo.New(stagePNG(t, 120, 80), "pic.png")
	require.NoError(t, err)

	assert.Equal(t, "image/png", f.Mimetype())

	dims, ok := f.Dimensions()
	require.True(t, ok)
	assert.Equal(t, 120, dims.Width)
	assert.Equal(t, 80, dims.Height)
}

func TestFile_Dimensions_NonImage(t *testing.T) {
	f, err := fileinfo.New(stageFile(t, []byte("just text")), "a.txt")
	require.NoError(t, err)

	_, ok := f.Dimensions()
	assert.False(t, ok)
}
