// Package decimal converts base 10 fixed point values into the digit buffer
// used by the formatters.
//
// A decimal value is an unscaled integer coefficient and a base 10 exponent:
//
//  number = coefficient * 10 ^ exponent
//
// For example:
//
//  1.23 = 123 * 10^-2
//
// The buffer stores the same value with the decimal point in front of the
// first significant digit:
//
//  1.23 = 0.123 * 10^1
//
// so the buffer scale is the number of coefficient digits plus the exponent.
// Values are limited to Precision (29) significant digits, rounding half away
// from zero on the first dropped digit. Trailing zeros of the coefficient are
// not significant and are dropped:
//
//  coefficient  exponent  digits  scale
//  123          -2        123     1
//  1200         0         12      4
//  5            -30       5       -29
package decimal
