package validation

import (
	"fmt"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/upload/fileinfo"
)

// Dimensions validates that image content has an exact pixel size.
// Non-image content fails the check.
type Dimensions struct {
	width  int
	height int
}

// NewDimensions creates a dimensions validator for the expected pixel size.
func NewDimensions(width, height int) *Dimensions {
	return &Dimensions{width: width, height: height}
}

// Validate implements Validation.
func (v *Dimensions) Validate(f fileinfo.FileInfo) error {
	dims, ok := f.Dimensions()
	if !ok {
		return errx.New(
			"File is not a readable image",
			errx.WithCode(CodeValidationFailed),
			errx.WithType(errx.T_Validation),
		)
	}

	if dims.Width != v.width {
		return errx.New(
			fmt.Sprintf("Image width %dpx does not match the required %dpx", dims.Width, v.width),
			errx.WithCode(CodeValidationFailed),
			errx.WithType(errx.T_Validation),
		)
	}

	if dims.Height != v.height {
		return errx.New(
			fmt.Sprintf("Image height %dpx does not match the required %dpx", dims.Height, v.height),
			errx.WithCode(CodeValidationFailed),
			errx.WithType(errx.T_Validation),
		)
	}

	return nil
}
