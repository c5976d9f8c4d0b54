// Package localfs provides a local filesystem implementation of the
// storage.Storage interface.
package localfs

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/code19m/errx"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/rise-and-shine/upload/fileinfo"
	"github.com/rise-and-shine/upload/storage"
)

// Backend implements storage.Storage on a local directory.
type Backend struct {
	cfg Config
}

// New creates a local filesystem backend. The destination directory must
// already exist.
func New(cfg Config) (*Backend, error) {
	if err := defaults.Set(&cfg); err != nil {
		return nil, errx.Wrap(err)
	}
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, errx.New(
			"invalid localfs configuration",
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{"error": err.Error()}),
		)
	}

	stat, err := os.Stat(cfg.Directory)
	if err != nil {
		return nil, errx.Wrap(err, errx.WithDetails(errx.D{"directory": cfg.Directory}))
	}
	if !stat.IsDir() {
		return nil, errx.New(
			"destination is not a directory",
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{"directory": cfg.Directory}),
		)
	}

	return &Backend{cfg: cfg}, nil
}

// Upload implements storage.Storage. The staged content is copied into the
// destination directory and the FileInfo pathname updated to point at it.
func (b *Backend) Upload(ctx context.Context, f fileinfo.FileInfo) error {
	if err := ctx.Err(); err != nil {
		return errx.Wrap(err)
	}

	if b.cfg.Randomize {
		f.SetName(uuid.New().String())
	}

	dest := filepath.Join(b.cfg.Directory, f.NameWithExtension())

	if !b.cfg.Overwrite {
		if _, err := os.Stat(dest); err == nil {
			return errx.New(
				"file already exists",
				errx.WithCode(storage.CodeFileAlreadyExists),
				errx.WithType(errx.T_Conflict),
				errx.WithDetails(errx.D{"file": f.NameWithExtension(), "destination": dest}),
			)
		}
	}

	if err := copyFile(f.Pathname(), dest); err != nil {
		return errx.Wrap(err,
			errx.WithCode(storage.CodeWriteFailed),
			errx.WithDetails(errx.D{"file": f.NameWithExtension(), "destination": dest}),
		)
	}

	f.SetPathname(dest)
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dest)
		return err
	}

	return out.Close()
}
