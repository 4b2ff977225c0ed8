// Package control tokenizes picture format strings.
//
// A picture format describes the exact layout of a formatted number. It has
// up to three sections separated by ';': the first is used for positive
// values, the second for negative values and the third for zero. A missing
// or empty section falls back to the first one.
//
// Control Characters
//
//  | Char   | Type     | Meaning                                                   |
//  |--------|----------|-----------------------------------------------------------|
//  | #      | Digit    | Optional digit placeholder                                |
//  | 0      | Zero     | Mandatory digit placeholder                               |
//  | .      | Point    | Decimal point (first occurrence only)                     |
//  | ,      | Group    | Group separator, or divide by 1000 left of the point      |
//  | %      | Percent  | Multiply by 100 and emit the percent symbol               |
//  | ‰      | PerMille | Multiply by 1000 and emit the per mille symbol            |
//  | E0 E+0 | Exponent | Scientific notation; zeros give the minimum exponent size |
//  | '..'   | Quote    | Literal text up to the matching quote (' or ")            |
//  | \x     | Escape   | The next character literally                              |
//  | ;      | Section  | Ends the section                                          |
//  |--------|----------|-----------------------------------------------------------|
//
// Anything else, including an E not followed by a zero, is a Literal.
//
// Scanning the section "#,##0.00 'units'" yields:
//
//  | Type  | Text    |
//  |-------|---------|
//  | Digit | #       |
//  | Group | ,       |
//  | Digit | #       |
//  | Digit | #       |
//  | Zero  | 0       |
//  | Point | .       |
//  | Zero  | 0       |
//  | Zero  | 0       |
//  | Literal | (space) |
//  | Quote | units   |
//  |-------|---------|
//
// Quotes, escapes and exponent markers consume several characters but are
// returned as a single token, so both formatting passes see the same token
// stream.
package control
