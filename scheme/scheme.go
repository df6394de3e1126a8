// Package scheme enumerates the signed binary number representations.
package scheme

import (
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("scheme")

// Error kinds.
var (
	ErrInvalidScheme = errs.Class("invalid scheme")
	ErrInvalidWidth  = errs.Class("invalid width")
)

// MaxBits is the widest representation supported.
const MaxBits = 32

// Scheme is a signed binary representation.
type Scheme uint8

// Schemes.
const (
	Invalid Scheme = iota
	SignMagnitude
	OnesComplement
	TwosComplement
	Biased
)

type info struct {
	Abbr    string
	Name    string
	Aliases []string
}

var infos = [...]info{
	Invalid:        {"", "invalid", nil},
	SignMagnitude:  {"sm", "sign-magnitude", nil},
	OnesComplement: {"c1", "ones-complement", nil},
	TwosComplement: {"c2", "twos-complement", nil},
	Biased:         {"polarizada", "biased", []string{"excess"}},
}

// Schemes lists every valid scheme.
var Schemes = []Scheme{
	SignMagnitude,
	OnesComplement,
	TwosComplement,
	Biased,
}

// Parse returns the scheme named by tag. Both the short tag (e.g. "c2") and
// the long name (e.g. "twos-complement") are accepted.
func Parse(tag string) (Scheme, error) {
	for _, s := range Schemes {
		i := infos[s]
		if tag == i.Abbr || tag == i.Name {
			return s, nil
		}

		for _, alias := range i.Aliases {
			if tag == alias {
				return s, nil
			}
		}
	}

	return Invalid, Error.Wrap(ErrInvalidScheme.New("%q", tag))
}

// Valid returns true if s is one of the known schemes.
func (s Scheme) Valid() bool {
	return s > Invalid && int(s) < len(infos)
}

// String returns the short tag.
func (s Scheme) String() string {
	if !s.Valid() {
		return "invalid"
	}

	return infos[s].Abbr
}

// Name returns the long name.
func (s Scheme) Name() string {
	if !s.Valid() {
		return infos[Invalid].Name
	}

	return infos[s].Name
}

// Bias returns the excess-K bias used by the biased scheme for the given
// width.
func Bias(bits uint) int64 {
	return int64(1)<<(bits-1) - 1
}

// CheckWidth returns an error if bits is not a supported width.
func CheckWidth(bits uint) error {
	if bits < 1 || bits > MaxBits {
		return Error.Wrap(ErrInvalidWidth.New("bits=%d (want 1..%d)", bits, MaxBits))
	}

	return nil
}

// Range returns the inclusive range of values representable by s in the
// given width.
//
//  | Scheme          | Min             | Max           |
//  |-----------------|-----------------|---------------|
//  | sign-magnitude  | -(2^(b-1) - 1)  | 2^(b-1) - 1   |
//  | ones-complement | -(2^(b-1) - 1)  | 2^(b-1) - 1   |
//  | twos-complement | -2^(b-1)        | 2^(b-1) - 1   |
//  | biased          | -(2^(b-1) - 1)  | 2^(b-1)       |
func (s Scheme) Range(bits uint) (min, max int64, err error) {
	err = CheckWidth(bits)
	if err != nil {
		return 0, 0, err
	}

	half := int64(1) << (bits - 1)

	switch s {
	case SignMagnitude, OnesComplement:
		return -(half - 1), half - 1, nil
	case TwosComplement:
		return -half, half - 1, nil
	case Biased:
		return -(half - 1), half, nil
	}

	return 0, 0, Error.Wrap(ErrInvalidScheme.New("%d", uint8(s)))
}
