package command_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/numtext/cmd/numtext/command"
	"github.com/calebcase/numtext/integer"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	command.Root.SetOut(&out)
	command.Root.SetErr(&out)
	command.Root.SetArgs(args)

	err := command.Root.Execute()

	return out.String(), err
}

func TestFormat(t *testing.T) {
	type TC struct {
		Name   string
		Args   []string
		Output string
		Mark   error
	}

	tcs := []TC{
		{
			Name:   "currency and picture",
			Args:   []string{"format", "--culture", "en-US", "--type", "float64", "--", "-1234.567", "C", "#,##0.0"},
			Output: "($1,234.57)\n-1,234.6\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "integer hex",
			Args:   []string{"format", "--culture", "invariant", "--type", "int32", "--", "-1", "X", "D4"},
			Output: "FFFFFFFF\n-0001\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "decimal",
			Args:   []string{"format", "--culture", "de-DE", "--type", "decimal", "1234.5", "N2", "G"},
			Output: "1.234,50\n1234,5\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "round trip",
			Args:   []string{"format", "--culture", "invariant", "--type", "float64", "0.30000000000000004", "R"},
			Output: "0.30000000000000004\n",
			Mark:   oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			out, err := run(t, tc.Args...)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, out, tc.Mark)
		})
	}
}

func TestFormatErrors(t *testing.T) {
	_, err := run(t, "format", "--culture", "invariant", "--type", "int32", "1", "R")
	require.Error(t, err)

	_, err = run(t, "format", "--culture", "invariant", "--type", "int8", "1", "N")
	require.Error(t, err)

	_, err = run(t, "format", "--culture", "invariant", "--type", "float64", "x", "N")
	require.Error(t, err)

	_, err = run(t, "format", "--culture", "invariant", "--type", "int32", "2147483648", "N")
	require.True(t, integer.Error.Has(err))

	_, err = run(t, "format", "--culture", "invariant", "--type", "uint64", "--", "-1", "N")
	require.True(t, integer.Error.Has(err))
}

func TestIntegerLimits(t *testing.T) {
	type TC struct {
		Type   string
		Value  string
		Output string
		Mark   error
	}

	tcs := []TC{
		{Type: "int32", Value: "-2147483648", Output: "-2147483648\n", Mark: oops.New("unexpected")},
		{Type: "int32", Value: "0x7fffffff", Output: "2147483647\n", Mark: oops.New("unexpected")},
		{Type: "int64", Value: "-9223372036854775808", Output: "-9223372036854775808\n", Mark: oops.New("unexpected")},
		{Type: "uint32", Value: "+4294967295", Output: "4294967295\n", Mark: oops.New("unexpected")},
		{Type: "uint64", Value: "18446744073709551615", Output: "18446744073709551615\n", Mark: oops.New("unexpected")},
		{Type: "uint64", Value: "-0", Output: "0\n", Mark: oops.New("unexpected")},
	}

	for _, tc := range tcs {
		t.Run(tc.Type+"/"+tc.Value, func(t *testing.T) {
			out, err := run(t, "format", "--culture", "invariant", "--type", tc.Type, "--", tc.Value, "D")
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, out, tc.Mark)
		})
	}
}

func TestTable(t *testing.T) {
	out, err := run(t, "table", "--culture", "invariant", "--type", "int32", "--precision", "-1", "1234")
	require.NoError(t, err)

	for _, s := range []string{"1,234.00", "¤1,234.00", "1.234000E+003", "4D2", "123,400.00 %"} {
		require.Contains(t, out, s)
	}
}

func TestBits(t *testing.T) {
	out, err := run(t, "bits", "--culture", "invariant", "0.1")
	require.NoError(t, err)
	require.Contains(t, out, "digits: 0.1e0")
	require.Contains(t, out, "bits: 0x3fb999999999999a")
	require.Contains(t, out, "round trip: 0.1")

	out, err = run(t, "bits", "--culture", "invariant", "--", "-1e400")
	require.NoError(t, err)
	require.Contains(t, out, "bits: 0xfff0000000000000")
	require.Contains(t, out, "round trip: -Infinity")
}

func TestConfig(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, command.Root.PersistentFlags().Set("config", ""))
	})

	path := filepath.Join(t.TempDir(), "culture.yaml")
	require.NoError(t, os.WriteFile(path, []byte("currency_symbol: EUR\ncurrency_positive_pattern: 3\n"), 0o644))

	out, err := run(t, "format", "--culture", "en-GB", "--config", path, "--type", "float64", "12.5", "C")
	require.NoError(t, err)
	require.Equal(t, "12.50 EUR\n", out)
}
