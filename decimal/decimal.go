package decimal

import (
	"math"

	shopspring "github.com/shopspring/decimal"
	"github.com/zeebo/errs"

	"github.com/calebcase/numtext/number"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("decimal")

// Precision is the number of significant digits a decimal value carries.
const Precision = number.DecimalPrecision

// Number fills b with the digits of d rounded half up to Precision
// significant digits.
func Number(d shopspring.Decimal, b *number.Buffer) (err error) {
	defer Error.WrapP(&err)

	b.Reset()
	b.Precision = Precision

	if d.IsZero() {
		return nil
	}

	coef := d.Coefficient()
	neg := coef.Sign() < 0
	ds := coef.Abs(coef).Append(nil, 10)

	scale := int64(len(ds)) + int64(d.Exponent())
	if scale <= math.MinInt32 || scale >= math.MaxInt32 {
		return Error.New("exponent out of range: %d", d.Exponent())
	}

	b.Neg = neg
	b.Scale = int(scale)
	b.SetDigits(ds)
	b.Round(Precision)

	return nil
}

// FromBuffer returns the decimal value held by b. NaN and infinities have no
// decimal value.
func FromBuffer(b *number.Buffer) (d shopspring.Decimal, err error) {
	defer Error.WrapP(&err)

	if b.IsNaN() || b.IsInf() {
		return d, Error.New("not a finite value: %s", b)
	}

	if b.IsZero() {
		return shopspring.Zero, nil
	}

	s := string(b.Digits())
	if b.Neg {
		s = "-" + s
	}

	d, err = shopspring.NewFromString(s)
	if err != nil {
		return d, err
	}

	return d.Shift(int32(b.Scale - b.Len())), nil
}
