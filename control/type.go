package control

// Type is the kind of a picture format token.
type Type struct {
	Char rune
	Abbr string
}

// Match returns true if this control type is introduced by the given rune.
func (t Type) Match(r rune) bool {
	return t.Char != 0 && t.Char == r
}

type types []Type

func (ts types) Match(r rune) (t Type, ok bool) {
	for _, t := range ts {
		if t.Match(r) {
			return t, true
		}
	}

	return t, false
}

var (
	Digit    = Type{'#', "d"}
	Zero     = Type{'0', "z"}
	Point    = Type{'.', "p"}
	Group    = Type{',', "g"}
	Percent  = Type{'%', "pc"}
	PerMille = Type{'‰', "pm"}

	// Escape writes the rune after it literally.
	Escape = Type{'\\', "esc"}

	// Section separates sections. It ends scanning and is never a token.
	Section = Type{';', "s"}

	// Quote is introduced by either ' or ".
	Quote = Type{'\'', "q"}

	// Exponent is introduced by either E or e when followed by a zero,
	// optionally after a sign.
	Exponent = Type{'E', "exp"}

	// Literal is any other rune, including an E that does not start an
	// exponent.
	Literal = Type{0, "lit"}

	// Types are the tokens that are a single rune.
	Types = types{
		Digit,
		Zero,
		Point,
		Group,
		Percent,
		PerMille,
	}
)
