// Package transport defines the signal a host environment reports after it
// has received uploaded files and staged them on local disk.
//
// The package does not move any bytes itself. By the time a FileSignal
// exists, the host (an HTTP handler, a CLI, a test fixture) has already
// written the file to a staging location or failed trying; the signal only
// carries the outcome so that an upload batch can be built from it.
package transport

// Code is the per-file outcome reported by the host environment.
type Code int

// Upload outcome codes. Code 5 is unused and reserved.
const (
	CodeOK                     Code = 0
	CodeSizeExceedsServerLimit Code = 1
	CodeSizeExceedsClientLimit Code = 2
	CodePartialUpload          Code = 3
	CodeNoFileSubmitted        Code = 4
	CodeNoStagingDirectory     Code = 6
	CodeWriteFailed            Code = 7
	CodeExtensionAborted       Code = 8
)

// codeMessages maps non-zero outcome codes to human-readable descriptions.
// The table is fixed; unknown codes fall back to a generic message.
var codeMessages = map[Code]string{
	CodeSizeExceedsServerLimit: "Exceeds the maximum allowed file size on the server",
	CodeSizeExceedsClientLimit: "Exceeds the maximum file size declared by the client",
	CodePartialUpload:          "The file was only partially uploaded",
	CodeNoFileSubmitted:        "No file was uploaded",
	CodeNoStagingDirectory:     "Missing a temporary staging directory",
	CodeWriteFailed:            "Failed to write the file to disk",
	CodeExtensionAborted:       "An extension aborted the file upload",
}

// Message returns the human-readable description of the code.
func (c Code) Message() string {
	if msg, ok := codeMessages[c]; ok {
		return msg
	}
	if c == CodeOK {
		return "OK"
	}
	return "Unknown upload error"
}

// FileSignal describes one file reported by the host environment.
//
// TmpPath and Name are meaningful only when Code is CodeOK; a failed file
// has no staged content.
type FileSignal struct {
	// TmpPath is the staging location the host wrote the file to.
	TmpPath string

	// Name is the filename as submitted by the client.
	Name string

	// Code is the per-file outcome.
	Code Code
}

// Transport exposes the upload signal of a host environment.
//
// Implementations must report files for a field in the order the client
// submitted them.
type Transport interface {
	// UploadsEnabled reports whether the host allows file uploads at all.
	UploadsEnabled() bool

	// Files returns the signals recorded for the given field, and whether
	// the field was present in the request.
	Files(field string) ([]FileSignal, bool)
}
