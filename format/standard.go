package format

import (
	"github.com/calebcase/numtext/culture"
	"github.com/calebcase/numtext/number"
)

// Output templates. '#' is the rendered magnitude, '-' the negative sign,
// '$' the currency symbol and '%' the percent symbol.
var (
	positiveCurrency = [...]string{"$#", "#$", "$ #", "# $"}
	negativeCurrency = [...]string{
		"($#)", "-$#", "$-#", "$#-",
		"(#$)", "-#$", "#-$", "#$-",
		"-# $", "-$ #", "# $-", "$ #-",
		"$ -#", "#- $", "($ #)", "(# $)",
	}
	positivePercent = [...]string{"# %", "#%", "%#", "% #"}
	negativePercent = [...]string{
		"-# %", "-#%", "-%#", "%-#",
		"%#-", "#-%", "#%-", "-% #",
		"# %-", "% #-", "% -#", "#- %",
	}
	negativeNumber = [...]string{"(#)", "-#", "- #", "#-", "# -"}
)

// minSize is the slack every fixed layout starts from. It covers the
// template characters, exponents and the extra digit a rounding carry adds.
const minSize = 105

// Standard formats b using the standard format kind (one of "CFNEGP", either
// case) with the given precision, -1 selecting the kind's default. b is
// rounded in place.
func Standard(b *number.Buffer, kind byte, digits int, nf *culture.NumberFormat) (s string, err error) {
	defer Error.WrapP(&err)

	return standard(b, kind, digits, nf, false)
}

// standard is Standard with the "G" behaviour of decimal values: without a
// precision all digits are written and scientific layout is never used.
func standard(b *number.Buffer, kind byte, digits int, nf *culture.NumberFormat, isDecimal bool) (string, error) {
	if nf == nil {
		return "", Error.New("nil number format")
	}

	if s, ok := special(b, nf); ok {
		return s, nil
	}

	if digits > MaxPrecision {
		return "", FormatError.New("precision %d exceeds %d", digits, MaxPrecision)
	}

	switch upper(kind) {
	case 'C':
		if digits < 0 {
			digits = nf.CurrencyDecimalDigits
		}
		digCount := intDigits(b, digits)

		size, err := fixedSize(minSize + digCount + int64(len(nf.NegativeSign)) +
			int64(len(nf.CurrencyGroupSeparator))*digCount +
			int64(len(nf.CurrencyDecimalSeparator)) + int64(len(nf.CurrencySymbol)))
		if err != nil {
			return "", err
		}

		b.Round(b.Scale + digits)

		w := newFixedWriter(size)

		tmpl, err := pattern(b.Neg, positiveCurrency[:], nf.CurrencyPositivePattern, negativeCurrency[:], nf.CurrencyNegativePattern)
		if err != nil {
			return "", err
		}

		err = w.template(tmpl, nf, func() error {
			return w.fixed(b, digits, nf.CurrencyGroupSizes, nf.CurrencyDecimalSeparator, nf.CurrencyGroupSeparator)
		})
		if err != nil {
			return "", err
		}

		return w.String(), nil
	case 'F':
		if digits < 0 {
			digits = nf.NumberDecimalDigits
		}
		digCount := intDigits(b, digits)

		size, err := fixedSize(minSize + digCount + int64(len(nf.NegativeSign)) +
			int64(len(nf.NumberDecimalSeparator)))
		if err != nil {
			return "", err
		}

		b.Round(b.Scale + digits)

		w := newFixedWriter(size)
		if b.Neg {
			w.writeString(nf.NegativeSign)
		}

		err = w.fixed(b, digits, nil, nf.NumberDecimalSeparator, "")
		if err != nil {
			return "", err
		}

		return w.String(), nil
	case 'N':
		if digits < 0 {
			digits = nf.NumberDecimalDigits
		}
		digCount := intDigits(b, digits)

		size, err := fixedSize(minSize + digCount + int64(len(nf.NegativeSign)) +
			int64(len(nf.NumberGroupSeparator))*digCount +
			int64(len(nf.NumberDecimalSeparator)))
		if err != nil {
			return "", err
		}

		b.Round(b.Scale + digits)

		w := newFixedWriter(size)

		tmpl, err := pattern(b.Neg, []string{"#"}, 0, negativeNumber[:], nf.NumberNegativePattern)
		if err != nil {
			return "", err
		}

		err = w.template(tmpl, nf, func() error {
			return w.fixed(b, digits, nf.NumberGroupSizes, nf.NumberDecimalSeparator, nf.NumberGroupSeparator)
		})
		if err != nil {
			return "", err
		}

		return w.String(), nil
	case 'E':
		if digits < 0 {
			digits = 6
		}
		digits++

		size, err := fixedSize(minSize + int64(digits) +
			int64(len(nf.NegativeSign)+len(nf.PositiveSign))*2 +
			int64(len(nf.NumberDecimalSeparator)))
		if err != nil {
			return "", err
		}

		b.Round(digits)

		w := newFixedWriter(size)
		if b.Neg {
			w.writeString(nf.NegativeSign)
		}

		w.scientific(b, digits, nf, kind)

		return w.String(), nil
	case 'G':
		rounding := true
		if digits < 1 {
			switch {
			case isDecimal && digits == -1:
				digits = number.DecimalPrecision
				rounding = false
			case b.Precision > 0:
				digits = b.Precision
			default:
				digits = max(b.Len(), 1)
			}
		}

		extra := int64(0)
		if !rounding {
			extra = int64(max(b.Scale, -b.Scale))
		}

		size, err := fixedSize(minSize + int64(digits) + extra +
			int64(len(nf.NegativeSign)+len(nf.PositiveSign))*2 +
			int64(len(nf.NumberDecimalSeparator)))
		if err != nil {
			return "", err
		}

		if rounding {
			b.Round(digits)
		}

		w := newFixedWriter(size)
		if b.Neg {
			w.writeString(nf.NegativeSign)
		}

		w.general(b, digits, nf, kind-('G'-'E'), !rounding)

		return w.String(), nil
	case 'P':
		if digits < 0 {
			digits = nf.PercentDecimalDigits
		}

		b.Scale += 2
		digCount := intDigits(b, digits)

		size, err := fixedSize(minSize + digCount + int64(len(nf.NegativeSign)) +
			int64(len(nf.PercentGroupSeparator))*digCount +
			int64(len(nf.PercentDecimalSeparator)) + int64(len(nf.PercentSymbol)))
		if err != nil {
			return "", err
		}

		b.Round(b.Scale + digits)

		w := newFixedWriter(size)

		tmpl, err := pattern(b.Neg, positivePercent[:], nf.PercentPositivePattern, negativePercent[:], nf.PercentNegativePattern)
		if err != nil {
			return "", err
		}

		err = w.template(tmpl, nf, func() error {
			return w.fixed(b, digits, nf.PercentGroupSizes, nf.PercentDecimalSeparator, nf.PercentGroupSeparator)
		})
		if err != nil {
			return "", err
		}

		return w.String(), nil
	}

	return "", FormatError.New("unknown format specifier %q", kind)
}

// intDigits returns the number of digits a fixed layout of b writes before
// grouping.
func intDigits(b *number.Buffer, digits int) int64 {
	return int64(max(b.Scale, 0)) + int64(digits)
}

// pattern selects the positive or negative template.
func pattern(neg bool, positive []string, pi int, negative []string, ni int) (string, error) {
	tmpls, i := positive, pi
	if neg {
		tmpls, i = negative, ni
	}

	if i < 0 || i >= len(tmpls) {
		return "", Error.New("pattern index %d not in [0, %d]", i, len(tmpls)-1)
	}

	return tmpls[i], nil
}

// special returns the symbol for NaN and infinite buffers.
func special(b *number.Buffer, nf *culture.NumberFormat) (string, bool) {
	switch {
	case b.IsNaN():
		return nf.NaNSymbol, true
	case b.IsInf() && b.Neg:
		return nf.NegativeInfinitySymbol, true
	case b.IsInf():
		return nf.PositiveInfinitySymbol, true
	}

	return "", false
}

// template writes tmpl, calling magnitude for each '#'.
func (w *writer) template(tmpl string, nf *culture.NumberFormat, magnitude func() error) error {
	for i := 0; i < len(tmpl); i++ {
		switch c := tmpl[i]; c {
		case '#':
			if err := magnitude(); err != nil {
				return err
			}
		case '-':
			w.writeString(nf.NegativeSign)
		case '$':
			w.writeString(nf.CurrencySymbol)
		case '%':
			w.writeString(nf.PercentSymbol)
		default:
			w.writeByte(c)
		}
	}

	return nil
}

// fixed writes the integer digits of b, grouped by groups when it is not
// empty, then digits fractional digits.
func (w *writer) fixed(b *number.Buffer, digits int, groups []int, decimalSep, groupSep string) error {
	digPos := b.Scale
	dig := 0

	if digPos > 0 {
		if len(groups) > 0 {
			size, groupSize, err := groupLayout(digPos, groups, len(groupSep))
			if err != nil {
				return err
			}

			digStart := min(digPos, b.Len())
			out := w.reserve(size)
			p := size - 1
			idx := 0
			count := 0

			for i := digPos - 1; i >= 0; i-- {
				c := byte('0')
				if i < digStart {
					c = b.Digit(i)
				}

				out[p] = c
				p--

				if groupSize > 0 {
					count++
					if count == groupSize && i != 0 {
						p -= len(groupSep)
						copy(out[p+1:], groupSep)

						if idx < len(groups)-1 {
							idx++
							groupSize = groups[idx]
						}

						count = 0
					}
				}
			}

			invariant(p == -1, "group layout left %d bytes unwritten", p+1)

			dig = digStart
		} else {
			for ; digPos > 0; digPos-- {
				if c := b.Digit(dig); c != 0 {
					w.writeByte(c)
					dig++
				} else {
					w.writeByte('0')
				}
			}
		}
	} else {
		w.writeByte('0')
	}

	if digits > 0 {
		w.writeString(decimalSep)

		if digPos < 0 {
			zeros := min(-digPos, digits)
			for range zeros {
				w.writeByte('0')
			}

			digits -= zeros
		}

		for ; digits > 0; digits-- {
			if c := b.Digit(dig); c != 0 {
				w.writeByte(c)
				dig++
			} else {
				w.writeByte('0')
			}
		}
	}

	return nil
}

// groupLayout returns the length of digPos integer digits once grouped and
// the size of the first group, 0 when no separators are written.
func groupLayout(digPos int, groups []int, sepLen int) (size, first int, err error) {
	total := int64(digPos)
	count := int64(groups[0])
	idx := 0

	for int64(digPos) > count {
		if groups[idx] == 0 {
			break
		}

		total += int64(sepLen)

		if idx < len(groups)-1 {
			idx++
		}

		count += int64(groups[idx])

		if total > maxSize || count > maxSize {
			return 0, 0, OverflowError.New("grouped output size out of range")
		}
	}

	if count == 0 {
		return int(total), 0, nil
	}

	return int(total), groups[0], nil
}

// scientific writes digits significant digits of b as a mantissa with one
// integer digit followed by a three digit exponent.
func (w *writer) scientific(b *number.Buffer, digits int, nf *culture.NumberFormat, marker byte) {
	dig := 0

	next := func() byte {
		if c := b.Digit(dig); c != 0 {
			dig++
			return c
		}

		return '0'
	}

	w.writeByte(next())

	if digits != 1 {
		w.writeString(nf.NumberDecimalSeparator)
	}

	for digits--; digits > 0; digits-- {
		w.writeByte(next())
	}

	e := 0
	if b.Len() != 0 {
		e = b.Scale - 1
	}

	w.exponent(e, marker, 3, nf.PositiveSign, nf.NegativeSign)
}

// general writes b in fixed layout, or in scientific layout with a two digit
// exponent when the decimal point falls outside (-3, digits].
func (w *writer) general(b *number.Buffer, digits int, nf *culture.NumberFormat, marker byte, suppressScientific bool) {
	digPos := b.Scale
	scientific := false

	if !suppressScientific && (digPos > digits || digPos < -3) {
		digPos = 1
		scientific = true
	}

	dig := 0

	if digPos > 0 {
		for ; digPos > 0; digPos-- {
			if c := b.Digit(dig); c != 0 {
				w.writeByte(c)
				dig++
			} else {
				w.writeByte('0')
			}
		}
	} else {
		w.writeByte('0')
	}

	if dig < b.Len() || digPos < 0 {
		w.writeString(nf.NumberDecimalSeparator)

		for ; digPos < 0; digPos++ {
			w.writeByte('0')
		}

		for ; dig < b.Len(); dig++ {
			w.writeByte(b.Digit(dig))
		}
	}

	if scientific {
		w.exponent(b.Scale-1, marker, 2, nf.PositiveSign, nf.NegativeSign)
	}
}
