package format

import (
	"math"

	"github.com/calebcase/numtext/control"
	"github.com/calebcase/numtext/culture"
	"github.com/calebcase/numtext/number"
)

// layout is the result of scanning a picture section before any output is
// written.
type layout struct {
	digitCount int
	decimalPos int
	firstDigit int
	lastDigit  int
	scientific bool

	thousandPos   int
	thousandCount int
	thousandSeps  bool

	scaleAdjust int
	percent     int
	permille    int
}

func scanLayout(section string) (l layout) {
	l.decimalPos = -1
	l.firstDigit = math.MaxInt32
	l.thousandPos = -1

	s := control.NewScanner(section)
	for s.Next() {
		switch s.Token().Type {
		case control.Digit:
			l.digitCount++
		case control.Zero:
			if l.firstDigit == math.MaxInt32 {
				l.firstDigit = l.digitCount
			}

			l.digitCount++
			l.lastDigit = l.digitCount
		case control.Point:
			if l.decimalPos < 0 {
				l.decimalPos = l.digitCount
			}
		case control.Group:
			if l.digitCount == 0 || l.decimalPos >= 0 {
				break
			}

			if l.thousandPos >= 0 {
				if l.thousandPos == l.digitCount {
					l.thousandCount++
					break
				}

				l.thousandSeps = true
			}

			l.thousandPos = l.digitCount
			l.thousandCount = 1
		case control.Percent:
			l.percent++
			l.scaleAdjust += 2
		case control.PerMille:
			l.permille++
			l.scaleAdjust += 3
		case control.Exponent:
			l.scientific = true
		}
	}

	if l.decimalPos < 0 {
		l.decimalPos = l.digitCount
	}

	if l.thousandPos >= 0 {
		if l.thousandPos == l.decimalPos {
			l.scaleAdjust -= l.thousandCount * 3
		} else {
			l.thousandSeps = true
		}
	}

	return l
}

// Picture formats b using a picture format of up to three sections separated
// by ';': positive, negative and zero. b is rounded in place.
func Picture(b *number.Buffer, format string, nf *culture.NumberFormat) (s string, err error) {
	defer Error.WrapP(&err)

	return picture(b, format, nf)
}

func picture(b *number.Buffer, format string, nf *culture.NumberFormat) (string, error) {
	if nf == nil {
		return "", Error.New("nil number format")
	}

	if s, ok := special(b, nf); ok {
		return s, nil
	}

	sectionIndex := 0
	switch {
	case b.Len() == 0:
		sectionIndex = 2
	case b.Neg:
		sectionIndex = 1
	}

	start := control.FindSection(format, sectionIndex)

	var l layout
	for {
		l = scanLayout(format[start:])

		if b.Len() == 0 {
			b.Reset()
			break
		}

		scale := int64(b.Scale) + int64(l.scaleAdjust)
		if scale <= math.MinInt32 || scale >= math.MaxInt32 {
			return "", OverflowError.New("scale %d out of range", scale)
		}

		b.Scale = int(scale)

		if l.scientific {
			b.Round(l.digitCount)
		} else {
			b.Round(b.Scale + l.digitCount - l.decimalPos)
		}

		// A value that rounds to zero is written with the zero section.
		if b.Len() == 0 {
			if zero := control.FindSection(format, 2); zero != start {
				start = zero
				continue
			}
		}

		break
	}

	section := format[start:]

	firstDigit := 0
	if l.firstDigit < l.decimalPos {
		firstDigit = l.decimalPos - l.firstDigit
	}

	lastDigit := 0
	if l.lastDigit > l.decimalPos {
		lastDigit = l.decimalPos - l.lastDigit
	}

	digPos := l.decimalPos
	adjust := 0
	if !l.scientific {
		digPos = max(b.Scale, l.decimalPos)
		adjust = b.Scale - l.decimalPos
	}

	groupSep := nf.NumberGroupSeparator

	var seps control.Stack
	if l.thousandSeps {
		groups := nf.NumberGroupSizes
		if len(groups) == 0 {
			l.thousandSeps = false
		} else {
			numDigits := max(firstDigit, digPos+min(adjust, 0))

			total := int64(groups[0])
			size := groups[0]
			idx := 0

			for int64(numDigits) > total {
				if size == 0 {
					break
				}

				seps.Push(int(total))

				if idx < len(groups)-1 {
					idx++
					size = groups[idx]
				}

				total += int64(size)
				if total > maxSize {
					return "", OverflowError.New("group position %d out of range", total)
				}
			}
		}
	}

	initial, err := fixedSize(int64(len(section)) + 10 +
		int64(len(nf.NegativeSign)) +
		int64(len(nf.NumberDecimalSeparator)) +
		int64(l.percent)*int64(len(nf.PercentSymbol)) +
		int64(l.permille)*int64(len(nf.PerMilleSymbol)) +
		int64(max(adjust, 0)) +
		int64(len(seps))*int64(len(groupSep)))
	if err != nil {
		return "", err
	}

	w := newGrowableWriter(max(initial, 250))

	if b.Neg && start == 0 {
		w.writeString(nf.NegativeSign)
	}

	dig := 0
	decimalWritten := false
	scientific := l.scientific

	group := func() {
		if !l.thousandSeps || digPos <= 1 {
			return
		}

		if top, ok := seps.Top(); ok && digPos == top+1 {
			w.writeString(groupSep)
			invariant(seps.Pop() == nil, "group position stack underflow")
		}
	}

	s := control.NewScanner(section)
	for s.Next() {
		tok := s.Token()

		if adjust > 0 {
			switch tok.Type {
			case control.Digit, control.Zero, control.Point:
				// Integer digits beyond the pattern's width are written
				// before the first placeholder.
				for ; adjust > 0; adjust-- {
					if c := b.Digit(dig); c != 0 {
						w.writeByte(c)
						dig++
					} else {
						w.writeByte('0')
					}

					group()
					digPos--
				}
			}
		}

		switch tok.Type {
		case control.Digit, control.Zero:
			var c byte

			if adjust < 0 {
				adjust++
				if digPos <= firstDigit {
					c = '0'
				}
			} else if c = b.Digit(dig); c != 0 {
				dig++
			} else if digPos > lastDigit {
				c = '0'
			}

			if c != 0 {
				w.writeByte(c)
				group()
			}

			digPos--
		case control.Point:
			if digPos != 0 || decimalWritten {
				break
			}

			if lastDigit < 0 || (l.decimalPos < l.digitCount && dig < b.Len()) {
				w.writeString(nf.NumberDecimalSeparator)
				decimalWritten = true
			}
		case control.Percent:
			w.writeString(nf.PercentSymbol)
		case control.PerMille:
			w.writeString(nf.PerMilleSymbol)
		case control.Group:
		case control.Exponent:
			if !scientific {
				w.writeString(tok.Text)
				break
			}

			positive := ""
			if tok.Sign == '+' {
				positive = nf.PositiveSign
			}

			e := 0
			if b.Len() != 0 {
				e = b.Scale - l.decimalPos
			}

			w.exponent(e, tok.Marker, min(tok.Zeros, 10), positive, nf.NegativeSign)
			scientific = false
		default:
			w.writeString(tok.Text)
		}
	}

	return w.String(), nil
}
