package number

import (
	"math"
	"strconv"
	"strings"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("number")

// MaxDigits is the number of digits a Buffer can hold.
const MaxDigits = 50

// Sentinel scales.
const (
	ScaleNaN = math.MinInt32
	ScaleInf = math.MaxInt32
)

// Precisions a Buffer is generated with by default.
const (
	Int32Precision   = 10
	UInt32Precision  = 10
	Int64Precision   = 19
	UInt64Precision  = 20
	FloatPrecision   = 7
	DoublePrecision  = 15
	DecimalPrecision = 29
)

// Buffer is the decimal representation of a number: 0.D1D2...Dn * 10^Scale.
//
// The stored digits never carry leading or trailing zeros. Zero is an empty
// digit sequence with Scale 0 and Neg false.
type Buffer struct {
	Neg       bool
	Scale     int
	Precision int

	n int
	d [MaxDigits]byte
}

// Len returns the number of stored digits.
func (b *Buffer) Len() int {
	return b.n
}

// Digits returns the stored digits. The slice aliases the buffer.
func (b *Buffer) Digits() []byte {
	return b.d[:b.n]
}

// Digit returns the digit at i or 0 past the end of the digits.
func (b *Buffer) Digit(i int) byte {
	if i < 0 || i >= b.n {
		return 0
	}

	return b.d[i]
}

// SetDigits replaces the digits with ds. Scale must already be relative to
// ds; leading zeros are removed by lowering Scale. Digits beyond MaxDigits
// are dropped.
func (b *Buffer) SetDigits(ds []byte) {
	for len(ds) > 0 && ds[0] == '0' {
		ds = ds[1:]
		b.Scale--
	}

	if len(ds) > MaxDigits {
		ds = ds[:MaxDigits]
	}

	for len(ds) > 0 && ds[len(ds)-1] == '0' {
		ds = ds[:len(ds)-1]
	}

	b.n = copy(b.d[:], ds)
	if b.n == 0 {
		b.Scale = 0
		b.Neg = false
	}
}

// Reset sets the buffer to zero.
func (b *Buffer) Reset() {
	b.n = 0
	b.Scale = 0
	b.Neg = false
}

// SetNaN marks the buffer as not-a-number.
func (b *Buffer) SetNaN() {
	b.n = 0
	b.Scale = ScaleNaN
	b.Neg = false
}

// SetInf marks the buffer as an infinity of the given sign.
func (b *Buffer) SetInf(neg bool) {
	b.n = 0
	b.Scale = ScaleInf
	b.Neg = neg
}

func (b *Buffer) IsNaN() bool { return b.Scale == ScaleNaN }
func (b *Buffer) IsInf() bool { return b.Scale == ScaleInf }

// IsZero reports whether the buffer holds a finite zero.
func (b *Buffer) IsZero() bool {
	return b.n == 0 && !b.IsNaN() && !b.IsInf()
}

// Round rounds the digits to pos significant digits, half up.
func (b *Buffer) Round(pos int) {
	i := 0
	for i < pos && i < b.n {
		i++
	}

	if i == pos && b.Digit(i) >= '5' {
		for i > 0 && b.d[i-1] == '9' {
			i--
		}

		if i > 0 {
			b.d[i-1]++
		} else {
			b.Scale++
			b.d[0] = '1'
			i = 1
		}
	} else {
		for i > 0 && b.d[i-1] == '0' {
			i--
		}
	}

	if i == 0 {
		b.Scale = 0
		b.Neg = false
	}

	b.n = i
}

// String returns a debugging rendition such as "-0.125e2".
func (b Buffer) String() string {
	switch {
	case b.IsNaN():
		return "NaN"
	case b.IsInf():
		if b.Neg {
			return "-Inf"
		}

		return "+Inf"
	}

	var sb strings.Builder
	if b.Neg {
		sb.WriteByte('-')
	}

	sb.WriteString("0.")
	if b.n == 0 {
		sb.WriteByte('0')
	}

	sb.Write(b.d[:b.n])
	sb.WriteByte('e')
	sb.WriteString(strconv.Itoa(b.Scale))

	return sb.String()
}
