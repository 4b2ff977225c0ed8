// Package ieee converts between IEEE-754 doubles and number.Buffer digits.
//
// Decimal generates correctly rounded digits. Values that are integers below
// 2^64 are handled with machine integers; everything else is computed
// exactly with math/big, so no host formatting routine is involved.
//
// Float64bits goes the other way using 64-bit fixed point arithmetic only:
//
//  1. The first 18 significant digits are packed into a uint64 in two groups
//     of at most 9 digits.
//  2. The mantissa is normalized so its top bit is set.
//  3. The remaining power of ten is applied with at most two multiplies, one
//     from a table of 10^1..10^15 and one from a table of 10^16..10^336 (or
//     their reciprocals when scaling down).
//  4. The 64-bit result is rounded to 53 bits, ties to even, and assembled
//     into the bit pattern, producing subnormals and infinities as needed.
//
// Scales of 352 or more in magnitude short circuit to infinity or zero.
package ieee
