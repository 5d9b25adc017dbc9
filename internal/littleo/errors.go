package littleo

import (
	"errors"
	"strings"
)

// ErrZeroDenominator marks a sample where the target evaluated to zero.
var ErrZeroDenominator = errors.New("littleo: target is zero at sample point")

// ErrorPrefix starts the single result line returned for unsupported input.
const ErrorPrefix = "Error: "

// IsError reports whether results is the single error line FindLittleO
// returns for unsupported input.
func IsError(results []string) bool {
	return len(results) == 1 && strings.HasPrefix(results[0], ErrorPrefix)
}
