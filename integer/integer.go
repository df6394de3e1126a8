package integer

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/binrep/scheme"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// Error kinds.
var (
	ErrMalformedInput = errs.Class("malformed input")
	ErrOverflow       = errs.Class("overflow")
)

// Block is a fixed width bit pattern. Only the low Bits bits of Value are
// used.
type Block struct {
	Value uint64
	Bits  uint
}

func mask(bits uint) uint64 {
	return uint64(1)<<bits - 1
}

func signBit(bits uint) uint64 {
	return uint64(1) << (bits - 1)
}

// Negative returns true if the most significant bit is set.
func (b Block) Negative() bool {
	return b.Bits > 0 && b.Value&signBit(b.Bits) != 0
}

// MarshalText implements encoding.TextMarshaler. The text form is the
// binary string, most significant bit first.
func (b Block) MarshalText() (text []byte, err error) {
	err = scheme.CheckWidth(b.Bits)
	if err != nil {
		return nil, Error.Wrap(ErrMalformedInput.Wrap(err))
	}

	if b.Value&^mask(b.Bits) != 0 {
		return nil, Error.Wrap(ErrMalformedInput.New("value %b wider than %d bits", b.Value, b.Bits))
	}

	text = make([]byte, b.Bits)
	for i := range text {
		text[i] = '0' + byte(b.Value>>(b.Bits-1-uint(i))&1)
	}

	return text, nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The width of the block
// is the length of the text.
func (b *Block) UnmarshalText(text []byte) (err error) {
	if len(text) == 0 {
		return Error.Wrap(ErrMalformedInput.New("empty"))
	}

	if len(text) > scheme.MaxBits {
		return Error.Wrap(ErrMalformedInput.New("length=%d (max %d)", len(text), scheme.MaxBits))
	}

	var v uint64

	for i, c := range text {
		switch c {
		case '0':
			v <<= 1
		case '1':
			v = v<<1 | 1
		default:
			return Error.Wrap(ErrMalformedInput.New("invalid character %q at %d", c, i))
		}
	}

	b.Value = v
	b.Bits = uint(len(text))

	return nil
}

// String returns the binary string or a placeholder if the block is
// malformed.
func (b Block) String() string {
	text, err := b.MarshalText()
	if err != nil {
		return "<malformed>"
	}

	return string(text)
}

// Parse returns the block for a binary string.
func Parse(bin string) (b Block, err error) {
	err = b.UnmarshalText([]byte(bin))

	return b, err
}

// Schema for a fixed width signed integer.
type Schema struct {
	Bits   uint
	Scheme scheme.Scheme
}

// Validate returns an error if the schema can't be used for encoding or
// decoding.
func (s Schema) Validate() (err error) {
	defer Error.WrapP(&err)

	_, _, err = s.Scheme.Range(s.Bits)

	return err
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema) *Decoder {
	return &Decoder{
		schema: schema,
	}
}

// Decode returns the signed value of the block.
func (d *Decoder) Decode(b Block) (v int64, err error) {
	defer Error.WrapP(&err)

	err = d.schema.Validate()
	if err != nil {
		return 0, err
	}

	n := d.schema.Bits

	if b.Bits != n {
		return 0, ErrMalformedInput.New("width=%d (want %d)", b.Bits, n)
	}

	if b.Value&^mask(n) != 0 {
		return 0, ErrMalformedInput.New("value %b wider than %d bits", b.Value, n)
	}

	negative := b.Negative()

	switch d.schema.Scheme {
	case scheme.SignMagnitude:
		magnitude := int64(b.Value &^ signBit(n))
		if negative {
			return -magnitude, nil
		}

		return magnitude, nil
	case scheme.OnesComplement:
		if negative {
			return -int64(^b.Value & mask(n)), nil
		}

		return int64(b.Value), nil
	case scheme.TwosComplement:
		if negative {
			return int64(b.Value) - int64(1)<<n, nil
		}

		return int64(b.Value), nil
	case scheme.Biased:
		return int64(b.Value) - scheme.Bias(n), nil
	}

	// Unreachable: Validate rejects unknown schemes.
	return 0, scheme.ErrInvalidScheme.New("%d", uint8(d.schema.Scheme))
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema) *Encoder {
	return &Encoder{
		schema: schema,
	}
}

// Encode returns the block representing v. Values that don't fit in the
// schema's width return an overflow error.
func (e *Encoder) Encode(v int64) (b Block, err error) {
	defer Error.WrapP(&err)

	n := e.schema.Bits

	min, max, err := e.schema.Scheme.Range(n)
	if err != nil {
		return b, err
	}

	if v < min || v > max {
		return b, ErrOverflow.New("%d does not fit %s in %d bits [%d, %d]", v, e.schema.Scheme, n, min, max)
	}

	b.Bits = n

	switch e.schema.Scheme {
	case scheme.SignMagnitude:
		if v < 0 {
			b.Value = uint64(-v) | signBit(n)
		} else {
			b.Value = uint64(v)
		}
	case scheme.OnesComplement:
		if v < 0 {
			b.Value = ^uint64(-v) & mask(n)
		} else {
			b.Value = uint64(v)
		}
	case scheme.TwosComplement:
		b.Value = uint64(v) & mask(n)
	case scheme.Biased:
		b.Value = uint64(v + scheme.Bias(n))
	}

	return b, nil
}
