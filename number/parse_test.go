package number_test

import (
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/numtext/number"
)

func TestParse(t *testing.T) {
	type TC struct {
		input     string
		digits    string
		scale     int
		neg       bool
		precision int
		Mark      error
	}

	tcs := []TC{
		{"0", "", 0, false, 0, oops.New("unexpected")},
		{"-0.000", "", 0, false, 0, oops.New("unexpected")},
		{"1", "1", 1, false, 1, oops.New("unexpected")},
		{"+1234.5", "12345", 4, false, 5, oops.New("unexpected")},
		{"-0.00125", "125", -2, true, 3, oops.New("unexpected")},
		{"1e20", "1", 21, false, 1, oops.New("unexpected")},
		{"12.50E-3", "125", -1, false, 3, oops.New("unexpected")},
		{".5", "5", 0, false, 1, oops.New("unexpected")},
		{"5.", "5", 1, false, 1, oops.New("unexpected")},
		{"007.100", "71", 1, false, 2, oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.input), func(t *testing.T) {
			var b number.Buffer

			err := number.Parse(tc.input, &b)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.digits, string(b.Digits()), tc.Mark)
			require.Equal(t, tc.scale, b.Scale, tc.Mark)
			require.Equal(t, tc.neg, b.Neg, tc.Mark)
			require.Equal(t, tc.precision, b.Precision, tc.Mark)
		})
	}
}

func TestParseSpecial(t *testing.T) {
	var b number.Buffer

	require.NoError(t, number.Parse("NaN", &b))
	require.True(t, b.IsNaN())

	require.NoError(t, number.Parse("-Infinity", &b))
	require.True(t, b.IsInf())
	require.True(t, b.Neg)

	require.NoError(t, number.Parse("+inf", &b))
	require.True(t, b.IsInf())
	require.False(t, b.Neg)
}

func TestParseErrors(t *testing.T) {
	type TC struct {
		input  string
		syntax bool
	}

	tcs := []TC{
		{"", true},
		{"-", true},
		{".", true},
		{"1.2.3", true},
		{"12x", true},
		{"1e", true},
		{"1e+", true},
		{"e5", true},
		{"1e99999999999", false},
		{"1e999999999999999999999", true},
		{"1e2147483647", false},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.input), func(t *testing.T) {
			var b number.Buffer

			err := number.Parse(tc.input, &b)
			require.Error(t, err)
			require.True(t, number.Error.Has(err))
			require.Equal(t, tc.syntax, number.SyntaxError.Has(err))
		})
	}
}
