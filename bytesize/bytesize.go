// Package bytesize converts human-readable size literals into byte counts.
package bytesize

import (
	"strings"
	"unicode"

	"github.com/code19m/errx"
	"github.com/spf13/cast"
)

const (
	// KB is the number of bytes in a kibibyte.
	KB int64 = 1024

	// MB is the number of bytes in a mebibyte.
	MB int64 = 1024 * KB

	// GB is the number of bytes in a gibibyte.
	GB int64 = 1024 * MB
)

// Parse converts a size literal with an optional unit suffix into a byte count.
//
// Recognized suffixes are "b", "k", "m" and "g" (case-insensitive),
// multiplying the numeric part by 1, 1024, 1024^2 and 1024^3 respectively.
// A literal without a recognized suffix is parsed as a plain number of bytes.
//
// Examples: "10K" -> 10240, "3M" -> 3145728, "5" -> 5.
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errx.New("empty size literal", errx.WithType(errx.T_Validation))
	}

	multiplier := int64(1)
	numPart := s

	last := rune(s[len(s)-1])
	if unicode.IsLetter(last) {
		switch unicode.ToLower(last) {
		case 'b':
			multiplier = 1
		case 'k':
			multiplier = KB
		case 'm':
			multiplier = MB
		case 'g':
			multiplier = GB
		default:
			return 0, errx.New(
				"unrecognized size suffix",
				errx.WithType(errx.T_Validation),
				errx.WithDetails(errx.D{"literal": s}),
			)
		}
		numPart = strings.TrimSpace(s[:len(s)-1])
	}

	n, err := cast.ToInt64E(numPart)
	if err != nil {
		return 0, errx.Wrap(err, errx.WithDetails(errx.D{"literal": s}))
	}

	return n * multiplier, nil
}
