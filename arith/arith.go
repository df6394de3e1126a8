package arith

import (
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("arith")

// Error kinds.
var (
	ErrInvalidOperation = errs.Class("invalid operation")
	ErrDivisionByZero   = errs.Class("division by zero")
)

// Op is an arithmetic operation.
type Op uint8

// Operations.
const (
	Invalid Op = iota
	Add
	Sub
	Mul
	Div
)

var symbols = [...]string{
	Invalid: "?",
	Add:     "+",
	Sub:     "-",
	Mul:     "*",
	Div:     "/",
}

// Ops lists every valid operation.
var Ops = []Op{
	Add,
	Sub,
	Mul,
	Div,
}

// ParseOp returns the operation for the symbol.
func ParseOp(sym string) (Op, error) {
	for _, op := range Ops {
		if symbols[op] == sym {
			return op, nil
		}
	}

	return Invalid, Error.Wrap(ErrInvalidOperation.New("%q", sym))
}

// Valid returns true if op is one of the known operations.
func (op Op) Valid() bool {
	return op > Invalid && int(op) < len(symbols)
}

// String returns the operation symbol.
func (op Op) String() string {
	if !op.Valid() {
		return symbols[Invalid]
	}

	return symbols[op]
}

// Apply returns a op b. Division truncates toward zero.
func (op Op) Apply(a, b int64) (v int64, err error) {
	switch op {
	case Add:
		return a + b, nil
	case Sub:
		return a - b, nil
	case Mul:
		return a * b, nil
	case Div:
		if b == 0 {
			return 0, Error.Wrap(ErrDivisionByZero.New("%d / 0", a))
		}

		return a / b, nil
	}

	return 0, Error.Wrap(ErrInvalidOperation.New("%d", uint8(op)))
}
