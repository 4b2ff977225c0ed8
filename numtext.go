package numtext

import (
	"strconv"

	shopspring "github.com/shopspring/decimal"
	"github.com/zeebo/errs"

	"github.com/calebcase/numtext/culture"
	"github.com/calebcase/numtext/decimal"
	"github.com/calebcase/numtext/format"
	"github.com/calebcase/numtext/ieee"
	"github.com/calebcase/numtext/integer"
	"github.com/calebcase/numtext/number"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("numtext")

// Kinds lists the standard format kinds.
const Kinds = "CFNEGPDXR"

// Format formats v with a standard format specifier such as "N2" or a picture
// format such as "#,##0.00". v must be one of int32, uint32, int64, uint64,
// int, uint, float32, float64 or a shopspring decimal.
func Format(v any, f string, nf *culture.NumberFormat) (s string, err error) {
	defer Error.WrapP(&err)

	switch v := v.(type) {
	case int32:
		return format.FormatInt32(v, f, nf)
	case uint32:
		return format.FormatUint32(v, f, nf)
	case int64:
		return format.FormatInt64(v, f, nf)
	case uint64:
		return format.FormatUint64(v, f, nf)
	case int:
		return format.FormatInt64(int64(v), f, nf)
	case uint:
		return format.FormatUint64(uint64(v), f, nf)
	case float32:
		return format.FormatFloat32(v, f, nf)
	case float64:
		return format.FormatFloat64(v, f, nf)
	case shopspring.Decimal:
		return format.FormatDecimal(v, f, nf)
	case *shopspring.Decimal:
		return format.FormatDecimal(*v, f, nf)
	}

	return "", Error.New("unsupported value type %T", v)
}

// FormatStandard formats v with the standard format kind (one of Kinds,
// either case) and precision. A negative precision selects the kind's
// default.
func FormatStandard(v any, kind byte, precision int, nf *culture.NumberFormat) (s string, err error) {
	defer Error.WrapP(&err)

	if !isKind(kind) {
		return "", format.FormatError.New("unknown format specifier %q", kind)
	}

	if precision > format.MaxPrecision {
		return "", format.FormatError.New("precision %d exceeds %d", precision, format.MaxPrecision)
	}

	specifier := []byte{kind}
	if precision >= 0 {
		specifier = strconv.AppendInt(specifier, int64(precision), 10)
	}

	return Format(v, string(specifier), nf)
}

func isKind(kind byte) bool {
	for i := 0; i < len(Kinds); i++ {
		if kind == Kinds[i] || kind == Kinds[i]|0x20 {
			return true
		}
	}

	return false
}

// FormatPicture formats v with a picture format, even one that reads as a
// standard specifier.
func FormatPicture(v any, picture string, nf *culture.NumberFormat) (s string, err error) {
	defer Error.WrapP(&err)

	var b number.Buffer

	err = Digits(v, &b)
	if err != nil {
		return "", err
	}

	return format.Picture(&b, picture, nf)
}

// Digits fills b with the digits of v at the default precision of its type.
func Digits(v any, b *number.Buffer) (err error) {
	defer Error.WrapP(&err)

	switch v := v.(type) {
	case float32:
		ieee.Decimal(b, float64(v), number.FloatPrecision)
		return nil
	case float64:
		ieee.Decimal(b, v, number.DoublePrecision)
		return nil
	case shopspring.Decimal:
		return decimal.Number(v, b)
	case *shopspring.Decimal:
		return decimal.Number(*v, b)
	}

	return IntegerToDigits(v, b)
}

// IntegerToDigits fills b with the digits of the integer v.
func IntegerToDigits(v any, b *number.Buffer) (err error) {
	defer Error.WrapP(&err)

	var blk integer.Block
	var schema integer.Schema

	switch v := v.(type) {
	case int32:
		blk, schema = integer.FromInt64(int64(v)), integer.Int32
	case uint32:
		blk, schema = integer.FromUint64(uint64(v)), integer.UInt32
	case int64:
		blk, schema = integer.FromInt64(v), integer.Int64
	case uint64:
		blk, schema = integer.FromUint64(v), integer.UInt64
	case int:
		blk, schema = integer.FromInt64(int64(v)), integer.Int64
	case uint:
		blk, schema = integer.FromUint64(uint64(v)), integer.UInt64
	default:
		return Error.New("unsupported integer type %T", v)
	}

	blk.Number(schema, b)

	return nil
}

// ParseDigitsToDouble returns the bits of the double nearest to b.
func ParseDigitsToDouble(b *number.Buffer) uint64 {
	return ieee.Float64bits(b)
}

// ParseDouble parses decimal text such as "-1.25e3" into the bits of the
// nearest double.
func ParseDouble(s string) (bits uint64, err error) {
	defer Error.WrapP(&err)

	var b number.Buffer

	err = number.Parse(s, &b)
	if err != nil {
		return 0, err
	}

	return ieee.Float64bits(&b), nil
}
