// Package arith provides the signed integer operations applied to decoded
// operands.
//
// Operands are decoded from their binary representation, combined in plain
// int64 arithmetic, and the result is encoded back with the same schema. For
// widths up to 32 bits the intermediate result can't overflow int64, so any
// overflow is detected when the result is encoded.
//
// Division
//
// Division truncates toward zero (Go's / operator) and division by zero is an
// error:
//
//   7 /  2 =  3
//  -7 /  2 = -3
//   7 / -2 = -3
//  -7 / -2 =  3
//
// Examples
//
// Two's complement, 8 bits:
//
//  | Operation               | Decimal    | Result   |
//  |-------------------------|------------|----------|
//  | 00000101 + 11111101     |  5 + -3    | 00000010 |
//  | 00000101 / 00000011     |  5 / 3     | 00000001 |
//  | 11111011 * 00000010     | -5 * 2     | 11110110 |
//  | 01111111 + 00000001     | 127 + 1    | overflow |
//  |-------------------------|------------|----------|
package arith
