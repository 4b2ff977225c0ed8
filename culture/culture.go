package culture

import (
	"slices"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("culture")

// Largest valid pattern index per family.
const (
	MaxCurrencyPositivePattern = 3
	MaxCurrencyNegativePattern = 15
	MaxPercentPositivePattern  = 3
	MaxPercentNegativePattern  = 11
	MaxNumberNegativePattern   = 4

	MaxDecimalDigits = 99
	MaxGroupSize     = 9
)

// NumberFormat holds the culture specific symbols and layouts used when
// formatting numbers. It is read only while in use and may be shared
// between goroutines.
type NumberFormat struct {
	Name         string `mapstructure:"name"`
	CurrencyCode string `mapstructure:"currency_code"`

	NaNSymbol              string `mapstructure:"nan_symbol"`
	PositiveInfinitySymbol string `mapstructure:"positive_infinity_symbol"`
	NegativeInfinitySymbol string `mapstructure:"negative_infinity_symbol"`
	PositiveSign           string `mapstructure:"positive_sign"`
	NegativeSign           string `mapstructure:"negative_sign"`

	NumberDecimalSeparator string `mapstructure:"number_decimal_separator"`
	NumberGroupSeparator   string `mapstructure:"number_group_separator"`
	NumberGroupSizes       []int  `mapstructure:"number_group_sizes"`
	NumberDecimalDigits    int    `mapstructure:"number_decimal_digits"`
	NumberNegativePattern  int    `mapstructure:"number_negative_pattern"`

	CurrencySymbol           string `mapstructure:"currency_symbol"`
	CurrencyDecimalSeparator string `mapstructure:"currency_decimal_separator"`
	CurrencyGroupSeparator   string `mapstructure:"currency_group_separator"`
	CurrencyGroupSizes       []int  `mapstructure:"currency_group_sizes"`
	CurrencyDecimalDigits    int    `mapstructure:"currency_decimal_digits"`
	CurrencyPositivePattern  int    `mapstructure:"currency_positive_pattern"`
	CurrencyNegativePattern  int    `mapstructure:"currency_negative_pattern"`

	PercentSymbol           string `mapstructure:"percent_symbol"`
	PerMilleSymbol          string `mapstructure:"per_mille_symbol"`
	PercentDecimalSeparator string `mapstructure:"percent_decimal_separator"`
	PercentGroupSeparator   string `mapstructure:"percent_group_separator"`
	PercentGroupSizes       []int  `mapstructure:"percent_group_sizes"`
	PercentDecimalDigits    int    `mapstructure:"percent_decimal_digits"`
	PercentPositivePattern  int    `mapstructure:"percent_positive_pattern"`
	PercentNegativePattern  int    `mapstructure:"percent_negative_pattern"`
}

// Invariant is the culture independent number format.
var Invariant = &NumberFormat{
	Name: "invariant",

	NaNSymbol:              "NaN",
	PositiveInfinitySymbol: "Infinity",
	NegativeInfinitySymbol: "-Infinity",
	PositiveSign:           "+",
	NegativeSign:           "-",

	NumberDecimalSeparator: ".",
	NumberGroupSeparator:   ",",
	NumberGroupSizes:       []int{3},
	NumberDecimalDigits:    2,
	NumberNegativePattern:  1,

	CurrencySymbol:           "¤",
	CurrencyDecimalSeparator: ".",
	CurrencyGroupSeparator:   ",",
	CurrencyGroupSizes:       []int{3},
	CurrencyDecimalDigits:    2,
	CurrencyPositivePattern:  0,
	CurrencyNegativePattern:  0,

	PercentSymbol:           "%",
	PerMilleSymbol:          "‰",
	PercentDecimalSeparator: ".",
	PercentGroupSeparator:   ",",
	PercentGroupSizes:       []int{3},
	PercentDecimalDigits:    2,
	PercentPositivePattern:  0,
	PercentNegativePattern:  0,
}

// Clone returns a deep copy of nf.
func (nf *NumberFormat) Clone() *NumberFormat {
	c := *nf
	c.NumberGroupSizes = slices.Clone(nf.NumberGroupSizes)
	c.CurrencyGroupSizes = slices.Clone(nf.CurrencyGroupSizes)
	c.PercentGroupSizes = slices.Clone(nf.PercentGroupSizes)

	return &c
}

// Validate returns an error describing every field outside its valid range.
func (nf *NumberFormat) Validate() (err error) {
	defer Error.WrapP(&err)

	var group errs.Group

	pattern := func(name string, v, limit int) {
		if v < 0 || v > limit {
			group.Add(Error.New("%s: %d not in [0, %d]", name, v, limit))
		}
	}

	pattern("number_negative_pattern", nf.NumberNegativePattern, MaxNumberNegativePattern)
	pattern("currency_positive_pattern", nf.CurrencyPositivePattern, MaxCurrencyPositivePattern)
	pattern("currency_negative_pattern", nf.CurrencyNegativePattern, MaxCurrencyNegativePattern)
	pattern("percent_positive_pattern", nf.PercentPositivePattern, MaxPercentPositivePattern)
	pattern("percent_negative_pattern", nf.PercentNegativePattern, MaxPercentNegativePattern)

	pattern("number_decimal_digits", nf.NumberDecimalDigits, MaxDecimalDigits)
	pattern("currency_decimal_digits", nf.CurrencyDecimalDigits, MaxDecimalDigits)
	pattern("percent_decimal_digits", nf.PercentDecimalDigits, MaxDecimalDigits)

	sizes := func(name string, gs []int) {
		for i, g := range gs {
			last := i == len(gs)-1

			switch {
			case g < 0 || g > MaxGroupSize:
				group.Add(Error.New("%s[%d]: %d not in [0, %d]", name, i, g, MaxGroupSize))
			case g == 0 && !last:
				group.Add(Error.New("%s[%d]: only the last group size may be 0", name, i))
			}
		}
	}

	sizes("number_group_sizes", nf.NumberGroupSizes)
	sizes("currency_group_sizes", nf.CurrencyGroupSizes)
	sizes("percent_group_sizes", nf.PercentGroupSizes)

	required := func(name, v string) {
		if v == "" {
			group.Add(Error.New("%s: must not be empty", name))
		}
	}

	required("number_decimal_separator", nf.NumberDecimalSeparator)
	required("currency_decimal_separator", nf.CurrencyDecimalSeparator)
	required("percent_decimal_separator", nf.PercentDecimalSeparator)
	required("negative_sign", nf.NegativeSign)

	return group.Err()
}
