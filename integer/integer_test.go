package integer

import (
	"fmt"
	"math"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/numtext/number"
)

func TestNumber(t *testing.T) {
	type TC struct {
		name      string
		blk       Block
		schema    Schema
		digits    string
		scale     int
		neg       bool
		precision int
		Mark      error
	}

	tcs := []TC{
		{
			name:      "zero",
			blk:       FromInt64(0),
			schema:    Int32,
			digits:    "",
			scale:     0,
			precision: 10,
			Mark:      oops.New("unexpected"),
		},
		{
			name:      "trailing zeros",
			blk:       FromInt64(1000),
			schema:    Int32,
			digits:    "1",
			scale:     4,
			precision: 10,
			Mark:      oops.New("unexpected"),
		},
		{
			name:      "min int32",
			blk:       FromInt64(math.MinInt32),
			schema:    Int32,
			digits:    "2147483648",
			scale:     10,
			neg:       true,
			precision: 10,
			Mark:      oops.New("unexpected"),
		},
		{
			name:      "max uint32",
			blk:       FromUint64(math.MaxUint32),
			schema:    UInt32,
			digits:    "4294967295",
			scale:     10,
			precision: 10,
			Mark:      oops.New("unexpected"),
		},
		{
			name:      "min int64",
			blk:       FromInt64(math.MinInt64),
			schema:    Int64,
			digits:    "9223372036854775808",
			scale:     19,
			neg:       true,
			precision: 19,
			Mark:      oops.New("unexpected"),
		},
		{
			name:      "max uint64",
			blk:       FromUint64(math.MaxUint64),
			schema:    UInt64,
			digits:    "18446744073709551615",
			scale:     20,
			precision: 20,
			Mark:      oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.NoError(t, tc.schema.Check(tc.blk), tc.Mark)

			var nb number.Buffer
			tc.blk.Number(tc.schema, &nb)

			require.Equal(t, tc.digits, string(nb.Digits()), tc.Mark)
			require.Equal(t, tc.scale, nb.Scale, tc.Mark)
			require.Equal(t, tc.neg, nb.Neg, tc.Mark)
			require.Equal(t, tc.precision, nb.Precision, tc.Mark)
		})
	}
}

func TestCheck(t *testing.T) {
	require.Error(t, Int32.Check(FromInt64(math.MaxInt32+1)))
	require.NoError(t, Int32.Check(FromInt64(math.MinInt32)))
	require.Error(t, Int32.Check(FromInt64(math.MinInt32-1)))
	require.Error(t, UInt32.Check(FromInt64(-1)))
	require.Error(t, UInt32.Check(FromUint64(math.MaxUint32+1)))
	require.NoError(t, Int64.Check(FromInt64(math.MinInt64)))
	require.Error(t, Int64.Check(FromUint64(math.MaxInt64+1)))
	require.NoError(t, UInt64.Check(FromUint64(math.MaxUint64)))
	require.Error(t, Schema{Bits: 16}.Check(FromInt64(1)))
}

func TestAppendDec(t *testing.T) {
	type TC struct {
		blk      Block
		digits   int
		negative string
		output   string
	}

	tcs := []TC{
		{FromInt64(0), 1, "-", "0"},
		{FromInt64(0), 0, "-", "0"},
		{FromInt64(42), 5, "-", "00042"},
		{FromInt64(-42), 5, "-", "-00042"},
		{FromInt64(-42), 1, "−", "−42"},
		{FromInt64(math.MinInt64), 1, "-", "-9223372036854775808"},
		{FromUint64(math.MaxUint64), 22, "-", "0018446744073709551615"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.output), func(t *testing.T) {
			require.Equal(t, tc.output, string(tc.blk.AppendDec(nil, tc.digits, tc.negative)))
		})
	}
}

func TestAppendHex(t *testing.T) {
	type TC struct {
		blk    Block
		schema Schema
		digits int
		upper  bool
		output string
	}

	tcs := []TC{
		{FromInt64(255), Int32, 0, true, "FF"},
		{FromInt64(255), Int32, 8, false, "000000ff"},
		{FromInt64(-1), Int32, 0, true, "FFFFFFFF"},
		{FromInt64(-1), Int64, 0, true, "FFFFFFFFFFFFFFFF"},
		{FromInt64(-2), Int64, 20, false, "0000fffffffffffffffe"},
		{FromInt64(math.MinInt32), Int32, 0, true, "80000000"},
		{FromUint64(0), UInt64, 3, true, "000"},
		{FromUint64(0xdeadbeef), UInt32, 0, true, "DEADBEEF"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.output), func(t *testing.T) {
			require.Equal(t, tc.output, string(tc.blk.AppendHex(nil, tc.schema, tc.digits, tc.upper)))
		})
	}
}
