package format

import (
	"math"

	shopspring "github.com/shopspring/decimal"

	"github.com/calebcase/numtext/culture"
	"github.com/calebcase/numtext/decimal"
	"github.com/calebcase/numtext/ieee"
	"github.com/calebcase/numtext/integer"
	"github.com/calebcase/numtext/number"
)

// FormatInt32 formats v with a standard or picture format.
func FormatInt32(v int32, format string, nf *culture.NumberFormat) (s string, err error) {
	defer Error.WrapP(&err)

	return formatInteger(integer.FromInt64(int64(v)), integer.Int32, format, nf)
}

// FormatUint32 formats v with a standard or picture format.
func FormatUint32(v uint32, format string, nf *culture.NumberFormat) (s string, err error) {
	defer Error.WrapP(&err)

	return formatInteger(integer.FromUint64(uint64(v)), integer.UInt32, format, nf)
}

// FormatInt64 formats v with a standard or picture format.
func FormatInt64(v int64, format string, nf *culture.NumberFormat) (s string, err error) {
	defer Error.WrapP(&err)

	return formatInteger(integer.FromInt64(v), integer.Int64, format, nf)
}

// FormatUint64 formats v with a standard or picture format.
func FormatUint64(v uint64, format string, nf *culture.NumberFormat) (s string, err error) {
	defer Error.WrapP(&err)

	return formatInteger(integer.FromUint64(v), integer.UInt64, format, nf)
}

// formatInteger writes "D", "X" and "G" without a precision directly from
// the block; everything else goes through the digit buffer.
func formatInteger(blk integer.Block, schema integer.Schema, format string, nf *culture.NumberFormat) (string, error) {
	if nf == nil {
		return "", Error.New("nil number format")
	}

	kind, digits, err := ParseSpecifier(format)
	if err != nil {
		return "", err
	}

	switch upper(kind) {
	case 'G':
		if digits > 0 {
			break
		}

		fallthrough
	case 'D':
		return string(blk.AppendDec(nil, digits, nf.NegativeSign)), nil
	case 'X':
		return string(blk.AppendHex(nil, schema, digits, kind == 'X')), nil
	}

	var b number.Buffer
	blk.Number(schema, &b)

	if kind == 0 {
		return picture(&b, format, nf)
	}

	return standard(&b, kind, digits, nf, false)
}

// FormatFloat64 formats v with a standard or picture format. "R" writes the
// shortest of 15 or 17 significant digits that reads back as v.
func FormatFloat64(v float64, format string, nf *culture.NumberFormat) (s string, err error) {
	defer Error.WrapP(&err)

	if nf == nil {
		return "", Error.New("nil number format")
	}

	kind, digits, err := ParseSpecifier(format)
	if err != nil {
		return "", err
	}

	precision := number.DoublePrecision

	switch upper(kind) {
	case 'R':
		return roundTrip64(v, nf)
	case 'E':
		if digits > 14 {
			precision = ieee.MaxPrecision
		}
	case 'G':
		if digits > 15 {
			precision = ieee.MaxPrecision
		}
	}

	var b number.Buffer
	ieee.Decimal(&b, v, precision)

	if kind == 0 {
		return picture(&b, format, nf)
	}

	return standard(&b, kind, digits, nf, false)
}

// FormatFloat32 formats v with a standard or picture format. "R" writes the
// shortest of 7 or 9 significant digits that reads back as v.
func FormatFloat32(v float32, format string, nf *culture.NumberFormat) (s string, err error) {
	defer Error.WrapP(&err)

	if nf == nil {
		return "", Error.New("nil number format")
	}

	kind, digits, err := ParseSpecifier(format)
	if err != nil {
		return "", err
	}

	precision := number.FloatPrecision

	switch upper(kind) {
	case 'R':
		return roundTrip32(v, nf)
	case 'E':
		if digits > 6 {
			precision = 9
		}
	case 'G':
		if digits > 7 {
			precision = 9
		}
	}

	var b number.Buffer
	ieee.Decimal(&b, float64(v), precision)

	if kind == 0 {
		return picture(&b, format, nf)
	}

	return standard(&b, kind, digits, nf, false)
}

// FormatDecimal formats d with a standard or picture format. "G" without a
// precision writes every significant digit in fixed layout.
func FormatDecimal(d shopspring.Decimal, format string, nf *culture.NumberFormat) (s string, err error) {
	defer Error.WrapP(&err)

	if nf == nil {
		return "", Error.New("nil number format")
	}

	kind, digits, err := ParseSpecifier(format)
	if err != nil {
		return "", err
	}

	var b number.Buffer

	err = decimal.Number(d, &b)
	if err != nil {
		return "", err
	}

	if kind == 0 {
		return picture(&b, format, nf)
	}

	return standard(&b, kind, digits, nf, true)
}

// roundTrip64 formats v in "G" at 15 digits when those read back to the same
// bits, and at 17 digits otherwise.
func roundTrip64(v float64, nf *culture.NumberFormat) (string, error) {
	var b number.Buffer

	ieee.Decimal(&b, v, number.DoublePrecision)
	if s, ok := special(&b, nf); ok {
		return s, nil
	}

	if ieee.Float64bits(&b) == math.Float64bits(v) {
		return standard(&b, 'G', number.DoublePrecision, nf, false)
	}

	ieee.Decimal(&b, v, ieee.MaxPrecision)

	return standard(&b, 'G', ieee.MaxPrecision, nf, false)
}

// roundTrip32 formats v in "G" at 7 digits when those read back to the same
// bits once narrowed to single precision, and at 9 digits otherwise.
func roundTrip32(v float32, nf *culture.NumberFormat) (string, error) {
	var b number.Buffer

	ieee.Decimal(&b, float64(v), number.FloatPrecision)
	if s, ok := special(&b, nf); ok {
		return s, nil
	}

	if math.Float32bits(narrow(ieee.Float64(&b))) == math.Float32bits(v) {
		return standard(&b, 'G', number.FloatPrecision, nf, false)
	}

	ieee.Decimal(&b, float64(v), 9)

	return standard(&b, 'G', 9, nf, false)
}

// narrow rounds d to single precision. The conversion must happen at run
// time for the round trip check to observe it.
//
//go:noinline
func narrow(d float64) float32 {
	return float32(d)
}
