package ieee

import (
	"math"
	"math/bits"

	"github.com/calebcase/numtext/number"
)

const (
	signBit  = 1 << 63
	infBits  = 0x7ff0000000000000
	nanBits  = 0x7ff8000000000000
	fracMask = 1<<52 - 1

	// Scales at or beyond this magnitude overflow or underflow every double.
	maxScale = 22 * 16
)

// Float64 returns the double nearest to the value of b.
func Float64(b *number.Buffer) float64 {
	return math.Float64frombits(Float64bits(b))
}

// Float64bits returns the IEEE-754 bit pattern of the double nearest to the
// value of b. Only integer arithmetic is used, so the result does not depend
// on the host floating point unit.
func Float64bits(b *number.Buffer) uint64 {
	var sign uint64
	if b.Neg {
		sign = signBit
	}

	switch {
	case b.IsNaN():
		return nanBits
	case b.IsInf():
		return sign | infBits
	}

	return sign | magnitude(b.Digits(), b.Scale)
}

func magnitude(ds []byte, scale int) uint64 {
	total := len(ds)
	for len(ds) > 0 && ds[0] == '0' {
		ds = ds[1:]
	}

	remaining := len(ds)
	if remaining == 0 {
		return 0
	}

	count := min(remaining, 9)
	remaining -= count
	val := digitsToInt(ds[:count])

	if remaining > 0 {
		count = min(remaining, 9)
		remaining -= count

		mult := uint32(power10[count-1] >> (64 - int(power10Exp[count-1])))
		val = val*uint64(mult) + digitsToInt(ds[9:9+count])
	}

	scale -= total - remaining
	absScale := scale
	if absScale < 0 {
		absScale = -absScale
	}

	if absScale >= maxScale {
		if scale > 0 {
			return infBits
		}

		return 0
	}

	exp := 64
	lz := bits.LeadingZeros64(val)
	val <<= lz
	exp -= lz

	if index := absScale & 15; index != 0 {
		mexp := int(power10Exp[index-1])
		if scale < 0 {
			exp += 1 - mexp
			index += 15
		} else {
			exp += mexp
		}

		val, exp = mul64Lossy(val, power10[index-1], exp)
	}

	if index := absScale >> 4; index != 0 {
		mexp := int(power10By16Exp[index-1])
		if scale < 0 {
			exp += 1 - mexp
			index += 21
		} else {
			exp += mexp
		}

		val, exp = mul64Lossy(val, power10By16[index-1], exp)
	}

	// Round to 53 bits, ties to even.
	if val&(1<<10) != 0 {
		tmp := val + (1<<10 - 1) + (val>>11)&1
		if tmp < val {
			tmp = tmp>>1 | signBit
			exp++
		}
		val = tmp
	}

	val >>= 11
	exp += 0x3fe

	switch {
	case exp <= 0:
		if exp <= -52 {
			return 0
		}

		return val >> uint(1-exp)
	case exp >= 0x7ff:
		return infBits
	}

	return uint64(exp)<<52 + val&fracMask
}

// mul64Lossy multiplies two normalized mantissas, dropping the low by low
// partial product. The error stays below the 53 significant bits as long as
// at most two products are chained.
func mul64Lossy(a, b uint64, exp int) (uint64, int) {
	val := (a>>32)*(b>>32) +
		((a>>32)*(b&0xffffffff))>>32 +
		((a&0xffffffff)*(b>>32))>>32

	if val&signBit == 0 {
		val <<= 1
		exp--
	}

	return val, exp
}

func digitsToInt(ds []byte) uint64 {
	var v uint64
	for _, c := range ds {
		v = v*10 + uint64(c-'0')
	}

	return v
}
