package ieee

import (
	"math"
	"math/big"
	"math/bits"
	"strconv"

	"github.com/calebcase/numtext/number"
)

// MaxPrecision is the largest number of significant digits Decimal generates.
const MaxPrecision = 17

// Decimal fills b with v correctly rounded to precision significant digits.
// Exact ties round half up. NaN and the infinities set the sentinel scales.
func Decimal(b *number.Buffer, v float64, precision int) {
	precision = max(1, min(precision, MaxPrecision))

	b.Reset()
	b.Precision = precision

	bs := math.Float64bits(v)
	neg := bs&signBit != 0
	exp := int(bs>>52) & 0x7ff
	mant := bs & fracMask

	switch {
	case exp == 0x7ff && mant != 0:
		b.SetNaN()
		return
	case exp == 0x7ff:
		b.SetInf(neg)
		return
	case exp == 0 && mant == 0:
		return
	}

	var e2 int
	if exp == 0 {
		e2 = -1074
	} else {
		mant |= 1 << 52
		e2 = exp - 1075
	}

	var ds []byte
	var scale int
	if u, ok := exactInteger(mant, e2); ok {
		ds, scale = integerDigits(u, precision)
	} else {
		ds, scale = fractionDigits(mant, e2, precision)
	}

	b.Scale = scale
	b.Neg = neg
	b.SetDigits(ds)
}

// exactInteger returns mant*2^e2 when it is an integer that fits in 64 bits.
func exactInteger(mant uint64, e2 int) (uint64, bool) {
	switch {
	case e2 >= 0:
		if bits.Len64(mant)+e2 > 64 {
			return 0, false
		}

		return mant << uint(e2), true
	case e2 > -64 && mant&(1<<uint(-e2)-1) == 0:
		return mant >> uint(-e2), true
	}

	return 0, false
}

// integerDigits rounds the decimal digits of u to precision digits.
func integerDigits(u uint64, precision int) ([]byte, int) {
	var buf [21]byte

	ds := strconv.AppendUint(buf[1:1], u, 10)
	scale := len(ds)
	if len(ds) <= precision {
		return ds, scale
	}

	up := ds[precision] >= '5'

	ds = ds[:precision]
	if !up {
		return ds, scale
	}

	i := precision - 1
	for i >= 0 && ds[i] == '9' {
		ds[i] = '0'
		i--
	}

	if i < 0 {
		// buf[0] is free for the carry digit.
		ds = buf[:precision+1]
		ds[0] = '1'
		return ds[:precision], scale + 1
	}

	ds[i]++

	return ds, scale
}

// fractionDigits computes the digits of mant*2^e2 with exact big integer
// arithmetic.
func fractionDigits(mant uint64, e2 int, precision int) ([]byte, int) {
	num := new(big.Int).SetUint64(mant)
	den := big.NewInt(1)
	if e2 > 0 {
		num.Lsh(num, uint(e2))
	} else {
		den.Lsh(den, uint(-e2))
	}

	// 10^(k-1) <= v < 10^k with k either estimate or estimate+1.
	k := floorLog10Pow2(bits.Len64(mant)+e2-1) + 1
	if scaledCompare(num, den, k) >= 0 {
		k++
	}

	// q = floor(v * 10^(precision-k)) has exactly precision digits.
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if s := precision - k; s >= 0 {
		n.Mul(n, pow10(s))
	} else {
		d.Mul(d, pow10(-s))
	}

	q, r := new(big.Int).QuoRem(n, d, new(big.Int))

	r.Lsh(r, 1)
	if r.Cmp(d) >= 0 {
		q.Add(q, big.NewInt(1))
	}

	ds := q.Append(nil, 10)
	if len(ds) > precision {
		// Rounded up to 10^precision.
		ds = ds[:precision]
		k++
	}

	return ds, k
}

// scaledCompare compares num/den with 10^k.
func scaledCompare(num, den *big.Int, k int) int {
	if k >= 0 {
		return num.Cmp(new(big.Int).Mul(den, pow10(k)))
	}

	return new(big.Int).Mul(num, pow10(-k)).Cmp(den)
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// floorLog10Pow2 returns floor(log10(2^e)) for |e| <= 1650.
func floorLog10Pow2(e int) int {
	return (e * 78913) >> 18
}
