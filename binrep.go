// Package binrep converts between binary strings and signed integers in the
// classic fixed width representations and performs arithmetic on operands
// encoded in them.
//
// Scheme tags are "sm" (sign-magnitude), "c1" (one's complement), "c2"
// (two's complement) and "polarizada" (biased / excess-K).
package binrep

import (
	"strconv"

	"github.com/zeebo/errs"

	"github.com/calebcase/binrep/arith"
	"github.com/calebcase/binrep/integer"
	"github.com/calebcase/binrep/scheme"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("binrep")

// BinToDec returns the value of the binary string bin under the scheme named
// by tag. The width is the length of bin.
func BinToDec(bin string, tag string) (v int64, err error) {
	defer Error.WrapP(&err)

	s, err := scheme.Parse(tag)
	if err != nil {
		return 0, err
	}

	blk, err := integer.Parse(bin)
	if err != nil {
		return 0, err
	}

	return integer.NewDecoder(integer.Schema{
		Bits:   blk.Bits,
		Scheme: s,
	}).Decode(blk)
}

// DecToBin returns the binary string of exactly bits characters that
// represents num under the scheme named by tag.
func DecToBin(num int64, bits uint, tag string) (bin string, err error) {
	defer Error.WrapP(&err)

	s, err := scheme.Parse(tag)
	if err != nil {
		return "", err
	}

	blk, err := integer.NewEncoder(integer.Schema{
		Bits:   bits,
		Scheme: s,
	}).Encode(num)
	if err != nil {
		return "", err
	}

	return blk.String(), nil
}

// Result of an operation.
type Result struct {
	// Binary is the encoded result. It is empty if the result overflowed.
	Binary string

	// Decimal is the base 10 form of Value.
	Decimal string

	// Value is the raw result before encoding.
	Value int64
}

// Operate decodes a and b (each exactly bits wide) under the scheme named by
// tag, applies op to them and encodes the result with the same scheme and
// width.
//
// If the result doesn't fit the width an overflow error is returned along
// with a Result carrying the raw value.
func Operate(a, b string, op string, tag string, bits uint) (r Result, err error) {
	defer Error.WrapP(&err)

	s, err := scheme.Parse(tag)
	if err != nil {
		return r, err
	}

	o, err := arith.ParseOp(op)
	if err != nil {
		return r, err
	}

	schema := integer.Schema{
		Bits:   bits,
		Scheme: s,
	}

	err = schema.Validate()
	if err != nil {
		return r, err
	}

	dec := integer.NewDecoder(schema)

	x, err := decodeOperand(dec, a)
	if err != nil {
		return r, err
	}

	y, err := decodeOperand(dec, b)
	if err != nil {
		return r, err
	}

	r.Value, err = o.Apply(x, y)
	if err != nil {
		return r, err
	}

	r.Decimal = strconv.FormatInt(r.Value, 10)

	blk, err := integer.NewEncoder(schema).Encode(r.Value)
	if err != nil {
		return r, err
	}

	r.Binary = blk.String()

	return r, nil
}

func decodeOperand(dec *integer.Decoder, bin string) (v int64, err error) {
	blk, err := integer.Parse(bin)
	if err != nil {
		return 0, err
	}

	return dec.Decode(blk)
}
