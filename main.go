// Demo of the upload library: stages a file through the static transport,
// validates it and persists it with the local filesystem backend.
package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rise-and-shine/upload/batch"
	"github.com/rise-and-shine/upload/cfgloader"
	"github.com/rise-and-shine/upload/fileinfo"
	"github.com/rise-and-shine/upload/logger"
	"github.com/rise-and-shine/upload/storage/localfs"
	"github.com/rise-and-shine/upload/transport"
	"github.com/rise-and-shine/upload/validation"
)

type demoConfig struct {
	Logger  logger.Config  `yaml:"logger"`
	Storage localfs.Config `yaml:"storage"`
}

func main() {
	cfg := loadConfig()

	log, err := logger.New(cfg.Logger)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	// Stage a sample file the way a host environment would.
	staging, err := os.MkdirTemp("", "upload-demo-staging-*")
	if err != nil {
		log.Errorw("failed to create staging dir", "error", err)
		return
	}
	defer os.RemoveAll(staging)

	tmpPath := filepath.Join(staging, "staged")
	if err := os.WriteFile(tmpPath, []byte("hello, upload\n"), 0o600); err != nil {
		log.Errorw("failed to stage sample file", "error", err)
		return
	}

	if cfg.Storage.Directory == "" {
		dest, err := os.MkdirTemp("", "upload-demo-dest-*")
		if err != nil {
			log.Errorw("failed to create destination dir", "error", err)
			return
		}
		defer os.RemoveAll(dest)
		cfg.Storage.Directory = dest
	}

	store, err := localfs.New(cfg.Storage)
	if err != nil {
		log.Errorw("failed to build storage", "error", err)
		return
	}

	tr := transport.NewStatic().AddFile("document", tmpPath, "hello.txt")

	maxSize, err := validation.NewSizeFromLiteral("1M")
	if err != nil {
		log.Errorw("failed to build size validator", "error", err)
		return
	}

	b, err := batch.New(tr, "document", store, batch.WithLogger(log))
	if err != nil {
		log.Errorw("failed to build batch", "error", err)
		return
	}

	b.AddValidations(
		maxSize,
		validation.NewExtension("txt", "md"),
	).OnBeforeUpload(func(f fileinfo.FileInfo) {
		log.Infow("about to persist", "file", f.NameWithExtension(), "size", f.Size())
	})

	if !b.IsValid() {
		log.Warnw("batch rejected", "errors", b.Errors())
		return
	}

	if err := b.Upload(context.Background()); err != nil {
		log.Errorw("upload failed", "error", err)
		return
	}

	checksum, _ := b.File().Checksum()
	log.Infow("upload complete",
		"file", b.File().NameWithExtension(),
		"pathname", b.File().Pathname(),
		"checksum", checksum,
	)
}

// loadConfig reads config/demo.yaml when present and falls back to
// defaults otherwise.
func loadConfig() demoConfig {
	cfg, err := cfgloader.Load[demoConfig]("config/demo.yaml")
	if err != nil {
		return demoConfig{
			Logger: logger.Config{Level: "info", Encoding: logger.EncodingConsole},
		}
	}
	return cfg
}
