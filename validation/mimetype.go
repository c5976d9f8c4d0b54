package validation

import (
	"fmt"
	"strings"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/upload/fileinfo"
)

// Mimetype validates a file's sniffed content type against an allow list.
type Mimetype struct {
	allowed []string
}

// NewMimetype creates a mimetype validator from the allowed content types.
func NewMimetype(allowed ...string) *Mimetype {
	return &Mimetype{allowed: allowed}
}

// Validate implements Validation.
func (v *Mimetype) Validate(f fileinfo.FileInfo) error {
	mime := f.Mimetype()
	for _, allowed := range v.allowed {
		if mime == allowed {
			return nil
		}
	}

	return errx.New(
		fmt.Sprintf("Invalid mimetype %s. Must be one of: %s", mime, strings.Join(v.allowed, ", ")),
		errx.WithCode(CodeValidationFailed),
		errx.WithType(errx.T_Validation),
	)
}
