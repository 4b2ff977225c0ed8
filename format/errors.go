package format

import (
	"github.com/zeebo/errs"
)

var (
	// Error is the class of errors returned by this package.
	Error = errs.Class("format")

	// FormatError is the class of malformed format specifiers.
	FormatError = errs.Class("format specifier")

	// OverflowError is the class of outputs whose size can not be
	// represented.
	OverflowError = errs.Class("overflow")
)

// invariant panics when a sizing assumption does not hold. It indicates a bug
// rather than bad input.
func invariant(ok bool, format string, args ...any) {
	if !ok {
		panic(Error.New("invariant violated: "+format, args...))
	}
}
