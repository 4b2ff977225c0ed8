package ieee

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/numtext/number"
)

// expected returns the digits and scale of v rounded half up to precision
// digits, starting from the exact expansion strconv produces.
func expected(v float64, precision int) (string, int) {
	s := strconv.FormatFloat(math.Abs(v), 'e', 800, 64)
	mant, exp, _ := strings.Cut(s, "e")
	e, _ := strconv.Atoi(exp)

	ds := []byte(strings.Replace(mant, ".", "", 1))
	up := ds[precision] >= '5'
	ds = ds[:precision]

	if up {
		i := precision - 1
		for i >= 0 && ds[i] == '9' {
			ds[i] = '0'
			i--
		}

		if i < 0 {
			ds = append([]byte{'1'}, ds[:precision-1]...)
			e++
		} else {
			ds[i]++
		}
	}

	trimmed := strings.TrimRight(string(ds), "0")
	if trimmed == "" {
		return "", 0
	}

	return trimmed, e + 1
}

func TestDecimal(t *testing.T) {
	values := []float64{
		1,
		-1,
		0.1,
		0.125,
		1.0 / 3,
		2.5,
		1234.5678,
		math.Pi,
		-math.E,
		1e23,
		9007199254740993,
		18446744073709551615,
		1 << 63,
		123456789012345678,
		math.MaxFloat64,
		math.SmallestNonzeroFloat64,
		2.2250738585072014e-308,
		5e-324 * 3,
		0.30000000000000004,
		1.7976931348623157e308 / 3,
		999999999999999.9,
		0.000123456789,
	}

	for i, v := range values {
		for _, precision := range []int{1, 2, 7, 9, 15, 17} {
			t.Run(fmt.Sprintf("[%d]%g/%d", i, v, precision), func(t *testing.T) {
				var b number.Buffer
				Decimal(&b, v, precision)

				ds, scale := expected(v, precision)
				require.Equal(t, ds, string(b.Digits()), b.String())
				require.Equal(t, scale, b.Scale, b.String())
				require.Equal(t, v < 0, b.Neg, b.String())
				require.Equal(t, precision, b.Precision)
			})
		}
	}
}

func TestDecimalTies(t *testing.T) {
	type TC struct {
		v         float64
		precision int
		digits    string
		scale     int
		Mark      error
	}

	tcs := []TC{
		{0.125, 2, "13", 0, oops.New("unexpected")},
		{0.375, 2, "38", 0, oops.New("unexpected")},
		{2.5, 1, "3", 1, oops.New("unexpected")},
		{3.5, 1, "4", 1, oops.New("unexpected")},
		{9.5, 1, "1", 2, oops.New("unexpected")},
		{1 << 62, 1, "5", 19, oops.New("unexpected")},
		{1000000000000005, 15, "100000000000001", 16, oops.New("unexpected")},
		{-2.5, 1, "3", 1, oops.New("unexpected")},
		{0.5, 1, "5", 0, oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%g", i, tc.v), func(t *testing.T) {
			var b number.Buffer
			Decimal(&b, tc.v, tc.precision)

			require.Equal(t, tc.digits, string(b.Digits()), tc.Mark)
			require.Equal(t, tc.scale, b.Scale, tc.Mark)
		})
	}
}

func TestDecimalSpecial(t *testing.T) {
	var b number.Buffer

	for _, precision := range []int{-5, 0, 1, 15, 17, 99} {
		Decimal(&b, math.NaN(), precision)
		require.True(t, b.IsNaN())
		require.Zero(t, b.Len())
	}

	Decimal(&b, math.Inf(-1), 15)
	require.True(t, b.IsInf())
	require.True(t, b.Neg)

	Decimal(&b, math.Inf(1), 15)
	require.True(t, b.IsInf())
	require.False(t, b.Neg)

	Decimal(&b, math.Copysign(0, -1), 15)
	require.True(t, b.IsZero())
	require.False(t, b.Neg)
	require.Equal(t, 0, b.Scale)

	Decimal(&b, 1.5, 40)
	require.Equal(t, MaxPrecision, b.Precision)
}

func parse(t *testing.T, s string) *number.Buffer {
	t.Helper()

	var b number.Buffer
	require.NoError(t, number.Parse(s, &b))

	return &b
}

func TestFloat64bits(t *testing.T) {
	type TC struct {
		input string
		bits  uint64
		Mark  error
	}

	tcs := []TC{
		{"0", 0, oops.New("unexpected")},
		{"-0", 0, oops.New("unexpected")},
		{"1", 0x3ff0000000000000, oops.New("unexpected")},
		{"-2", 0xc000000000000000, oops.New("unexpected")},
		{"0.1", 0x3fb999999999999a, oops.New("unexpected")},
		{"0.15", math.Float64bits(0.15), oops.New("unexpected")},
		{"0.5", 0x3fe0000000000000, oops.New("unexpected")},
		{"1234.5", math.Float64bits(1234.5), oops.New("unexpected")},
		{"9007199254740993", 0x4340000000000000, oops.New("unexpected")},
		{"1e22", math.Float64bits(1e22), oops.New("unexpected")},
		{"1e400", 0x7ff0000000000000, oops.New("unexpected")},
		{"-1e400", 0xfff0000000000000, oops.New("unexpected")},
		{"1e-400", 0, oops.New("unexpected")},
		{"NaN", 0x7ff8000000000000, oops.New("unexpected")},
		{"-Infinity", 0xfff0000000000000, oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.input), func(t *testing.T) {
			got := Float64bits(parse(t, tc.input))
			require.Equal(t, tc.bits, got, tc.Mark)
		})
	}
}

func TestFloat64bitsLeadingZeros(t *testing.T) {
	// Digits are not required to be canonical.
	b := &number.Buffer{Scale: 3}
	require.Zero(t, Float64bits(b))

	require.Equal(t, math.Float64bits(0.125), magnitude([]byte("00125"), 2))
}

func TestFloat64bitsOverflowSentinel(t *testing.T) {
	type TC struct {
		scale int
		neg   bool
		bits  uint64
	}

	tcs := []TC{
		{353, false, 0x7ff0000000000000},
		{353, true, 0xfff0000000000000},
		{-351, false, 0},
		{-351, true, 1 << 63},
		{1 << 30, false, 0x7ff0000000000000},
		{-(1 << 30), true, 1 << 63},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%d", i, tc.scale), func(t *testing.T) {
			b := number.Buffer{Scale: tc.scale, Neg: tc.neg}
			b.SetDigits([]byte("1"))
			require.Equal(t, tc.bits, Float64bits(&b))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	check := func(v float64) {
		var b number.Buffer
		Decimal(&b, v, MaxPrecision)

		require.Equal(t, math.Float64bits(v), Float64bits(&b), "%v %s", v, b)
	}

	for _, v := range []float64{
		1, 0.1, 0.2, 0.3, 1.0 / 3, math.Pi, math.E, 1e23, 5e-300,
		math.MaxFloat64, -math.MaxFloat64, 2.2250738585072014e-308,
		0.30000000000000004, 123456789.123456789,
		math.SmallestNonzeroFloat64, 2.225073858507201e-308, 1e-310,
	} {
		check(v)
	}

	for i := 0; i < 20000; i++ {
		exp := uint64(1 + rng.Intn(0x7fe))
		mant := rng.Uint64() & fracMask
		sign := uint64(rng.Intn(2)) << 63

		check(math.Float64frombits(sign | exp<<52 | mant))
	}

	// Subnormals.
	for i := 0; i < 5000; i++ {
		mant := rng.Uint64()&fracMask | 1
		sign := uint64(rng.Intn(2)) << 63

		check(math.Float64frombits(sign | mant))
	}
}

// mul64Precise is the rounding counterpart of mul64Lossy used to verify the
// tables.
func mul64Precise(a, b uint64, exp int) (uint64, int) {
	hilo := (((a>>32)*(b&0xffffffff))>>1 +
		((a&0xffffffff)*(b>>32))>>1 +
		((a&0xffffffff)*(b&0xffffffff))>>33) >> 30

	val := (a>>32)*(b>>32) + hilo>>1 + hilo&1

	if val&signBit == 0 {
		val <<= 1
		exp--
	}

	return val, exp
}

func TestTables(t *testing.T) {
	check := func(name string, val uint64, exp int, vals []uint64, exps func(i int) int) {
		mval, mexp := val, exp

		for i := range vals {
			require.Equal(t, vals[i], val, "%s[%d]", name, i)
			if exps != nil {
				require.Equal(t, exps(i), exp, "%s exp[%d]", name, i)
			}

			exp += mexp
			val, exp = mul64Precise(val, mval, exp)
		}
	}

	check("power10", 0xa000000000000000, 4, power10[:15], func(i int) int {
		return int(power10Exp[i])
	})
	check("power10By16", 0x8e1bc9bf04000000, 54, power10By16[:21], func(i int) int {
		return int(power10By16Exp[i])
	})
	check("power10 inverse", 0xcccccccccccccccd, -3, power10[15:], nil)
	check("power10By16 inverse", 0xe69594bec44de160, -53, power10By16[21:], nil)
}
