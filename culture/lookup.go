package culture

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(builtin))
	for i, e := range builtin {
		tags[i] = e.tag
	}

	return language.NewMatcher(tags)
}()

// Names returns the names of the built-in cultures.
func Names() []string {
	names := make([]string, len(builtin))
	for i, e := range builtin {
		names[i] = e.nf.Name
	}

	return names
}

// Lookup returns a copy of the built-in culture closest to the BCP 47 tag
// name. The empty name and "invariant" return the invariant culture.
func Lookup(name string) (nf *NumberFormat, err error) {
	defer Error.WrapP(&err)

	if name == "" || strings.EqualFold(name, "invariant") {
		return Invariant.Clone(), nil
	}

	tag, err := language.Parse(name)
	if err != nil {
		return nil, err
	}

	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return nil, Error.New("no culture matches %q", name)
	}

	nf = builtin[index].nf.Clone()

	if unit, c := currency.FromTag(tag); c != language.No {
		nf.CurrencyCode = unit.String()
	}

	return nf, nil
}
