// Package format renders digit buffers and native values as text.
//
// Standard formats are a kind letter with an optional precision of 0 to 99:
//
//  kind  layout                                  default precision
//  C     currency template, grouped              culture currency digits
//  F     fixed point                             culture number digits
//  N     fixed point, grouped, negative template culture number digits
//  E     d.ddddddE+ddd                           6
//  G     fixed or d.ddE+dd, whichever is shorter value precision
//  P     percent template, value * 100, grouped  culture percent digits
//  D     integers only, zero padded              minimum digits
//  X     integers only, two's complement hex     minimum digits
//  R     floats only, shortest of 15/17 (7/9)    -
//
// Any other format is a picture format:
//
//  #,##0.00;(#,##0.00);zero
//
// with up to three sections for positive, negative and zero values. A missing
// negative section writes the negative sign before the first section. Output
// sizes of standard formats are computed before writing; a size beyond
// math.MaxInt32 is an OverflowError.
package format
