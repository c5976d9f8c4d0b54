package validation

import (
	"fmt"
	"strings"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/upload/fileinfo"
)

// Extension validates a file's extension against an allow list.
// Matching is case-insensitive and ignores a leading dot.
type Extension struct {
	allowed []string
}

// NewExtension creates an extension validator from the allowed extensions.
func NewExtension(allowed ...string) *Extension {
	normalized := make([]string, 0, len(allowed))
	for _, ext := range allowed {
		normalized = append(normalized, strings.ToLower(strings.TrimPrefix(ext, ".")))
	}
	return &Extension{allowed: normalized}
}

// Validate implements Validation.
func (v *Extension) Validate(f fileinfo.FileInfo) error {
	ext := strings.ToLower(f.Extension())
	for _, allowed := range v.allowed {
		if ext == allowed {
			return nil
		}
	}

	return errx.New(
		fmt.Sprintf("Invalid file extension. Must be one of: %s", strings.Join(v.allowed, ", ")),
		errx.WithCode(CodeValidationFailed),
		errx.WithType(errx.T_Validation),
	)
}
