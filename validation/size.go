package validation

import (
	"fmt"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/upload/bytesize"
	"github.com/rise-and-shine/upload/fileinfo"
)

// Size validates that a file's byte count falls within [min, max].
type Size struct {
	max int64
	min int64
}

// NewSize creates a size validator with an upper bound in bytes.
func NewSize(max int64) *Size {
	return &Size{max: max}
}

// NewSizeRange creates a size validator with both bounds in bytes.
func NewSizeRange(min, max int64) *Size {
	return &Size{min: min, max: max}
}

// NewSizeFromLiteral creates a size validator from a human-readable upper
// bound such as "10M".
func NewSizeFromLiteral(max string) (*Size, error) {
	n, err := bytesize.Parse(max)
	if err != nil {
		return nil, errx.Wrap(err)
	}
	return NewSize(n), nil
}

// Validate implements Validation.
func (v *Size) Validate(f fileinfo.FileInfo) error {
	size := f.Size()

	if v.max > 0 && size > v.max {
		return errx.New(
			fmt.Sprintf("File size %d exceeds the maximum of %d bytes", size, v.max),
			errx.WithCode(CodeValidationFailed),
			errx.WithType(errx.T_Validation),
		)
	}

	if size < v.min {
		return errx.New(
			fmt.Sprintf("File size %d is below the minimum of %d bytes", size, v.min),
			errx.WithCode(CodeValidationFailed),
			errx.WithType(errx.T_Validation),
		)
	}

	return nil
}
