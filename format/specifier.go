package format

// MaxPrecision is the largest precision a standard specifier accepts.
const MaxPrecision = 99

// ParseSpecifier splits a standard format specifier into its kind letter and
// precision. The precision is -1 when the specifier does not carry one.
//
// A kind of 0 means format is a picture format. An empty format is "G".
func ParseSpecifier(format string) (kind byte, digits int, err error) {
	if format == "" {
		return 'G', -1, nil
	}

	c := format[0]
	if !isLetter(c) {
		return 0, -1, nil
	}

	rest := format[1:]
	if rest == "" {
		return c, -1, nil
	}

	if !isDigit(rest[0]) {
		return 0, -1, nil
	}

	i := 0
	for ; i < len(rest) && isDigit(rest[i]); i++ {
		if i == 2 {
			return 0, -1, FormatError.New("precision of %q exceeds %d", format, MaxPrecision)
		}

		digits = digits*10 + int(rest[i]-'0')
	}

	if i < len(rest) {
		return 0, -1, FormatError.New("unexpected %q after precision in %q", rest[i:], format)
	}

	return c, digits, nil
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// upper returns the upper case form of an ASCII letter.
func upper(c byte) byte {
	return c &^ 0x20
}
