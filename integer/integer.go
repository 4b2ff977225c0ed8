package integer

import (
	"math"
	"strconv"

	"github.com/zeebo/errs"

	"github.com/calebcase/numtext/number"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// Block is a signed integer number held as sign and magnitude.
type Block struct {
	Value    uint64
	Negative bool
}

// FromInt64 returns the block for v.
func FromInt64(v int64) Block {
	if v < 0 {
		// Negating in uint64 keeps MinInt64 representable.
		return Block{Value: -uint64(v), Negative: true}
	}

	return Block{Value: uint64(v)}
}

// FromUint64 returns the block for v.
func FromUint64(v uint64) Block {
	return Block{Value: v}
}

// Int64 returns the block as a two's complement int64. Blocks outside the
// Int64 schema wrap.
func (b Block) Int64() int64 {
	if b.Negative {
		return int64(-b.Value)
	}

	return int64(b.Value)
}

// Schema for an integer.
type Schema struct {
	Bits uint64

	Signed bool
}

// Supported integer widths.
var (
	Int32  = Schema{Bits: 32, Signed: true}
	UInt32 = Schema{Bits: 32, Signed: false}
	Int64  = Schema{Bits: 64, Signed: true}
	UInt64 = Schema{Bits: 64, Signed: false}
)

// Precision returns the number of decimal digits needed for the widest value
// of the schema.
func (s Schema) Precision() int {
	switch {
	case s.Bits == 32:
		return number.Int32Precision
	case s.Signed:
		return number.Int64Precision
	default:
		return number.UInt64Precision
	}
}

// Check returns an error if the block is not representable in the schema.
func (s Schema) Check(b Block) (err error) {
	defer Error.WrapP(&err)

	if s.Bits != 32 && s.Bits != 64 {
		return Error.New("unsupported width: %d", s.Bits)
	}

	if !s.Signed {
		if b.Negative && b.Value != 0 {
			return Error.New("negative value for unsigned schema: -%d", b.Value)
		}

		if s.Bits == 32 && b.Value > math.MaxUint32 {
			return Error.New("value out of range: %d", b.Value)
		}

		return nil
	}

	limit := uint64(1)<<(s.Bits-1) - 1
	if b.Negative {
		limit++
	}

	if b.Value > limit {
		return Error.New("value out of range: %s", b)
	}

	return nil
}

// Number fills nb with the digits of the block.
func (b Block) Number(s Schema, nb *number.Buffer) {
	var buf [20]byte

	ds := strconv.AppendUint(buf[:0], b.Value, 10)
	if b.Value == 0 {
		ds = ds[:0]
	}

	nb.Precision = s.Precision()
	nb.Scale = len(ds)
	nb.Neg = b.Negative
	nb.SetDigits(ds)
}

// AppendDec appends the decimal digits of the block, zero padded to at least
// digits digits and prefixed with negative when the block is negative.
func (b Block) AppendDec(dst []byte, digits int, negative string) []byte {
	var buf [20]byte

	ds := strconv.AppendUint(buf[:0], b.Value, 10)

	if b.Negative && b.Value != 0 {
		dst = append(dst, negative...)
	}

	for i := len(ds); i < digits; i++ {
		dst = append(dst, '0')
	}

	return append(dst, ds...)
}

// AppendHex appends the hexadecimal digits of the block's two's complement
// bit pattern at the schema's width, zero padded to at least digits digits.
func (b Block) AppendHex(dst []byte, s Schema, digits int, upper bool) []byte {
	var buf [16]byte

	v := b.Value
	if b.Negative {
		v = -v
	}

	if s.Bits == 32 {
		v &= math.MaxUint32
	}

	ds := strconv.AppendUint(buf[:0], v, 16)
	if upper {
		for i, c := range ds {
			if c >= 'a' {
				ds[i] = c - 'a' + 'A'
			}
		}
	}

	for i := len(ds); i < digits; i++ {
		dst = append(dst, '0')
	}

	return append(dst, ds...)
}

// String returns the block in decimal.
func (b Block) String() string {
	return string(b.AppendDec(nil, 1, "-"))
}
