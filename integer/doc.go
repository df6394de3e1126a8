// Package integer provides fixed width signed integers in the classic binary
// representations.
//
// A Block is the raw bit pattern (most significant bit first when written
// as text). A Schema pairs a width with a scheme.Scheme and the Encoder and
// Decoder translate between blocks and int64 values under that schema.
//
// Representations
//
// The same 4 bit pattern read under each scheme:
//
//  | Bits      | Sign-Magnitude | One's Complement | Two's Complement | Biased (K=7) |
//  |-----------|----------------|------------------|------------------|--------------|
//  | 0 1 1 1   | +7             | +7               | +7               | 0            |
//  | 0 0 0 1   | +1             | +1               | +1               | -6           |
//  | 0 0 0 0   | +0             | +0               | 0                | -7           |
//  | 1 0 0 0   | -0             | -7               | -8               | +1           |
//  | 1 1 1 0   | -6             | -1               | -2               | +7           |
//  | 1 1 1 1   | -7             | -0               | -1               | +8           |
//  |-----------|----------------|------------------|------------------|--------------|
//
// Sign-magnitude and one's complement both have two zeros. Both decode to 0
// and 0 is always encoded as the all positive pattern.
//
// The bias for an n bit biased block is 2^(n-1) - 1 (127 for 8 bits).
//
// Widths
//
// Blocks are between 1 and 32 bits wide. Encoding a value outside the
// representable range of the schema is an overflow error rather than a
// silently widened pattern.
package integer
