package culture

import "golang.org/x/text/language"

type entry struct {
	tag language.Tag
	nf  *NumberFormat
}

func derive(name string, fn func(nf *NumberFormat)) *NumberFormat {
	nf := Invariant.Clone()
	nf.Name = name
	fn(nf)

	return nf
}

func separators(nf *NumberFormat, decimal, group string) {
	nf.NumberDecimalSeparator = decimal
	nf.CurrencyDecimalSeparator = decimal
	nf.PercentDecimalSeparator = decimal
	nf.NumberGroupSeparator = group
	nf.CurrencyGroupSeparator = group
	nf.PercentGroupSeparator = group
}

// builtin lists the cultures known to Lookup. The first entry is the
// fallback.
var builtin = []entry{
	{language.Und, Invariant},
	{language.AmericanEnglish, derive("en-US", func(nf *NumberFormat) {
		nf.CurrencySymbol = "$"
	})},
	{language.BritishEnglish, derive("en-GB", func(nf *NumberFormat) {
		nf.CurrencySymbol = "£"
		nf.CurrencyNegativePattern = 1
	})},
	{language.MustParse("en-IN"), derive("en-IN", func(nf *NumberFormat) {
		nf.CurrencySymbol = "Rs."
		nf.CurrencyPositivePattern = 2
		nf.CurrencyNegativePattern = 12
		nf.NumberGroupSizes = []int{3, 2}
		nf.CurrencyGroupSizes = []int{3, 2}
		nf.PercentGroupSizes = []int{3, 2}
	})},
	{language.MustParse("fr-FR"), derive("fr-FR", func(nf *NumberFormat) {
		separators(nf, ",", " ")
		nf.CurrencySymbol = "€"
		nf.CurrencyPositivePattern = 3
		nf.CurrencyNegativePattern = 8
	})},
	{language.MustParse("de-DE"), derive("de-DE", func(nf *NumberFormat) {
		separators(nf, ",", ".")
		nf.CurrencySymbol = "€"
		nf.CurrencyPositivePattern = 3
		nf.CurrencyNegativePattern = 8
	})},
	{language.MustParse("de-CH"), derive("de-CH", func(nf *NumberFormat) {
		separators(nf, ".", "'")
		nf.CurrencySymbol = "Fr."
		nf.CurrencyPositivePattern = 2
		nf.CurrencyNegativePattern = 2
	})},
	{language.MustParse("ja-JP"), derive("ja-JP", func(nf *NumberFormat) {
		nf.CurrencySymbol = "¥"
		nf.CurrencyDecimalDigits = 0
		nf.CurrencyNegativePattern = 1
	})},
}
