// Package storage provides the persistence contract for uploaded files.
//
// It defines a Storage interface that can be implemented by various
// backends (local filesystem, MinIO, S3). A backend receives a fully
// validated FileInfo, persists its content durably, and records the final
// location back onto the FileInfo by mutating its pathname.
package storage

import (
	"context"

	"github.com/rise-and-shine/upload/fileinfo"
)

// Storage defines the interface for persisting an uploaded file.
// Implementations must be safe for concurrent use.
type Storage interface {
	// Upload durably persists the file's content. On success the
	// implementation sets the FileInfo pathname to the final location.
	Upload(ctx context.Context, f fileinfo.FileInfo) error
}

// Error codes for storage operations.
const (
	// CodeFileAlreadyExists is returned when the destination already holds
	// a file with the same name and overwriting is disabled.
	CodeFileAlreadyExists = "FILE_ALREADY_EXISTS"

	// CodeWriteFailed is returned when the backend fails to persist the
	// content.
	CodeWriteFailed = "STORAGE_WRITE_FAILED"
)
