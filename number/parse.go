package number

import (
	"math"
	"strconv"
	"strings"

	"github.com/zeebo/errs"
)

// SyntaxError is the class of errors for text that is not a decimal number.
var SyntaxError = errs.Class("syntax")

// Parse reads text of the form [+-]digits[.digits][(e|E)[+-]digits], or one of
// NaN, Inf and Infinity, into b. Precision is set to the number of significant
// digits read.
func Parse(s string, b *Buffer) (err error) {
	defer Error.WrapP(&err)

	b.Reset()
	b.Precision = 0

	text := s
	if s == "" {
		return SyntaxError.New("empty input")
	}

	switch s[0] {
	case '-':
		b.Neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	switch strings.ToLower(s) {
	case "nan":
		b.SetNaN()
		return nil
	case "inf", "infinity":
		b.SetInf(b.Neg)
		return nil
	}

	var (
		ds      = make([]byte, 0, len(s))
		intPart = 0
		point   = false
		seen    = false
	)

	i := 0
mantissa:
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			seen = true
			if !point {
				intPart++
			}
			ds = append(ds, c)
		case c == '.' && !point:
			point = true
		default:
			break mantissa
		}
	}

	if !seen {
		return SyntaxError.New("%q", text)
	}

	exp := 0
	if i < len(s) {
		if s[i] != 'e' && s[i] != 'E' {
			return SyntaxError.New("%q", text)
		}

		exp, err = strconv.Atoi(s[i+1:])
		if err != nil {
			return SyntaxError.New("exponent of %q", text)
		}
	}

	scale := int64(intPart) + int64(exp)
	if scale <= math.MinInt32 || scale >= math.MaxInt32 {
		return Error.New("exponent out of range: %q", text)
	}

	significant := strings.Trim(string(ds), "0")

	b.Scale = int(scale)
	b.SetDigits(ds)
	b.Precision = min(len(significant), MaxDigits)

	return nil
}
