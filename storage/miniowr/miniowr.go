// Package miniowr provides a MinIO implementation of the storage.Storage
// interface.
package miniowr

import (
	"context"
	"os"
	"path"

	"github.com/code19m/errx"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/rise-and-shine/upload/fileinfo"
	"github.com/rise-and-shine/upload/storage"
)

// Client implements storage.Storage using MinIO.
type Client struct {
	client *minio.Client
	cfg    Config
}

// New creates a new MinIO storage backend.
func New(cfg Config) (*Client, error) {
	if err := defaults.Set(&cfg); err != nil {
		return nil, errx.Wrap(err)
	}
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, errx.New(
			"invalid miniowr configuration",
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{"error": err.Error()}),
		)
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errx.Wrap(err)
	}

	return &Client{client: client, cfg: cfg}, nil
}

// Upload implements storage.Storage. The staged content is streamed to the
// bucket under "<key_prefix><name-with-extension>" with the sniffed content
// type, and the FileInfo pathname updated to the object key.
func (c *Client) Upload(ctx context.Context, f fileinfo.FileInfo) error {
	src, err := os.Open(f.Pathname())
	if err != nil {
		return errx.Wrap(err,
			errx.WithCode(storage.CodeWriteFailed),
			errx.WithDetails(errx.D{"file": f.NameWithExtension(), "pathname": f.Pathname()}),
		)
	}
	defer src.Close()

	key := path.Join(c.cfg.KeyPrefix, f.NameWithExtension())

	_, err = c.client.PutObject(ctx, c.cfg.Bucket, key, src, f.Size(), minio.PutObjectOptions{
		ContentType: f.Mimetype(),
	})
	if err != nil {
		return errx.Wrap(err,
			errx.WithCode(storage.CodeWriteFailed),
			errx.WithDetails(errx.D{"file": f.NameWithExtension(), "bucket": c.cfg.Bucket, "key": key}),
		)
	}

	f.SetPathname(key)
	return nil
}
