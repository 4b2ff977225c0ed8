// Package number provides the decimal digit buffer shared by every numeric
// text conversion.
//
// Representation
//
// A Buffer holds a sign, a decimal scale and a run of ASCII digits. The value
// is the digit run read as a fraction and shifted by the scale:
//
//  value = (-1)^Neg * 0.D1D2...Dn * 10^Scale
//
//  | value     | Neg   | Scale | Digits |
//  |-----------|-------|-------|--------|
//  | 0         | false | 0     |        |
//  | 1         | false | 1     | 1      |
//  | 1234.5    | false | 4     | 12345  |
//  | -0.00125  | true  | -2    | 125    |
//  | 1e20      | false | 21    | 1      |
//  | NaN       | false | MinInt32 |     |
//  | -Infinity | true  | MaxInt32 |     |
//  |-----------|-------|-------|--------|
//
// Digits never carry leading or trailing zeros, so zero has exactly one
// representation. The two sentinel scales mark NaN and the infinities and
// are never used as exponents.
//
// Precision records how many significant digits the buffer was generated
// with. General formatting uses it when no explicit precision is requested.
//
// Rounding
//
// Round keeps the first pos digits and rounds half up on the digit that
// follows. A carry out of the first digit becomes a single "1" one decimal
// place higher:
//
//  | digits | scale | pos | result | scale |
//  |--------|-------|-----|--------|-------|
//  | 12345  | 4     | 4   | 1235   | 4     |
//  | 9995   | 1     | 3   | 1      | 2     |
//  | 1204   | 2     | 3   | 12     | 2     |
//  | 4      | -1    | 0   |        | 0     |
//  |--------|-------|-----|--------|-------|
//
// A buffer emptied by rounding is canonical zero.
package number
