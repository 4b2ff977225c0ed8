package command

import (
	"strconv"
	"strings"

	shopspring "github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"github.com/calebcase/numtext"
	"github.com/calebcase/numtext/ieee"
	"github.com/calebcase/numtext/integer"
	"github.com/calebcase/numtext/number"
)

// Types lists the value types accepted by --type.
var Types = []string{"float64", "float32", "int32", "int64", "uint32", "uint64", "decimal"}

func typeFlag(fs *pflag.FlagSet) *string {
	return fs.String("type", "float64", "value type: "+strings.Join(Types, ", "))
}

// parseValue reads text as a value of the named type.
func parseValue(text, typ string) (v any, err error) {
	defer Error.WrapP(&err)

	switch typ {
	case "float64":
		var b number.Buffer

		err = number.Parse(text, &b)
		if err != nil {
			return nil, err
		}

		return ieee.Float64(&b), nil
	case "float32":
		f, err := strconv.ParseFloat(text, 32)
		return float32(f), err
	case "int32":
		blk, err := parseInteger(text, integer.Int32)
		return int32(blk.Int64()), err
	case "int64":
		blk, err := parseInteger(text, integer.Int64)
		return blk.Int64(), err
	case "uint32":
		blk, err := parseInteger(text, integer.UInt32)
		return uint32(blk.Value), err
	case "uint64":
		blk, err := parseInteger(text, integer.UInt64)
		return blk.Value, err
	case "decimal":
		return shopspring.NewFromString(text)
	}

	return nil, Error.New("unknown type %q: expected one of %s", typ, strings.Join(Types, ", "))
}

// parseInteger reads a signed decimal, hex (0x), octal (0o) or binary (0b)
// integer and checks it against schema.
func parseInteger(text string, schema integer.Schema) (blk integer.Block, err error) {
	digits := strings.TrimPrefix(text, "+")
	if rest, ok := strings.CutPrefix(text, "-"); ok {
		digits = rest
		blk.Negative = true
	}

	blk.Value, err = strconv.ParseUint(digits, 0, 64)
	if err != nil {
		return integer.Block{}, err
	}

	err = schema.Check(blk)
	if err != nil {
		return integer.Block{}, err
	}

	return blk, nil
}

// kinds returns the standard format kinds that apply to v.
func kinds(v any) string {
	switch v.(type) {
	case float32, float64:
		return "CFNEGPR"
	case shopspring.Decimal:
		return "CFNEGP"
	}

	return strings.ReplaceAll(numtext.Kinds, "R", "")
}
