// Package validation defines the per-file validation contract consumed by
// an upload batch, together with the stock validators: size, extension,
// mimetype and image dimensions.
//
// A validator signals failure by returning an error; the batch records the
// error message against the offending file and keeps going. Validators are
// stateless with respect to the batch and safe to share between batches.
package validation

import "github.com/rise-and-shine/upload/fileinfo"

// Validation enforces one constraint on a FileInfo.
type Validation interface {
	// Validate returns nil when the file satisfies the constraint, and an
	// error carrying a human-readable message otherwise.
	Validate(f fileinfo.FileInfo) error
}

// Func adapts a plain function to the Validation interface.
type Func func(f fileinfo.FileInfo) error

// Validate implements Validation.
func (fn Func) Validate(f fileinfo.FileInfo) error {
	return fn(f)
}

// CodeValidationFailed is the errx code carried by all stock validators.
const CodeValidationFailed = "UPLOAD_VALIDATION_FAILED"
