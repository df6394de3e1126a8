package binrep_test

import (
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/binrep"
	"github.com/calebcase/binrep/arith"
	"github.com/calebcase/binrep/integer"
	"github.com/calebcase/binrep/scheme"
)

func TestBinToDec(t *testing.T) {
	type TC struct {
		bin  string
		tag  string
		v    int64
		Mark error
	}

	tcs := []TC{
		{bin: "00000101", tag: "c2", v: 5, Mark: oops.New("unexpected")},
		{bin: "11111101", tag: "c2", v: -3, Mark: oops.New("unexpected")},
		{bin: "01111111", tag: "polarizada", v: 0, Mark: oops.New("unexpected")},
		{bin: "10000000", tag: "sm", v: 0, Mark: oops.New("unexpected")},
		{bin: "00000000", tag: "sm", v: 0, Mark: oops.New("unexpected")},
		{bin: "1011", tag: "sm", v: -3, Mark: oops.New("unexpected")},
		{bin: "1011", tag: "c1", v: -4, Mark: oops.New("unexpected")},
		{bin: "1011", tag: "c2", v: -5, Mark: oops.New("unexpected")},
		{bin: "1011", tag: "polarizada", v: 4, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s/%s", i, tc.tag, tc.bin), func(t *testing.T) {
			v, err := binrep.BinToDec(tc.bin, tc.tag)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.v, v, tc.Mark)
		})
	}
}

func TestDecToBin(t *testing.T) {
	type TC struct {
		num  int64
		bits uint
		tag  string
		bin  string
		Mark error
	}

	tcs := []TC{
		{num: 5, bits: 8, tag: "c2", bin: "00000101", Mark: oops.New("unexpected")},
		{num: -3, bits: 8, tag: "c2", bin: "11111101", Mark: oops.New("unexpected")},
		{num: 0, bits: 8, tag: "polarizada", bin: "01111111", Mark: oops.New("unexpected")},
		{num: -3, bits: 4, tag: "sm", bin: "1011", Mark: oops.New("unexpected")},
		{num: -3, bits: 4, tag: "c1", bin: "1100", Mark: oops.New("unexpected")},
		{num: 8, bits: 4, tag: "polarizada", bin: "1111", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s/%d", i, tc.tag, tc.num), func(t *testing.T) {
			bin, err := binrep.DecToBin(tc.num, tc.bits, tc.tag)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.bin, bin, tc.Mark)
		})
	}
}

func TestRoundtrip(t *testing.T) {
	for _, tag := range []string{"sm", "c1", "c2", "polarizada"} {
		s, err := scheme.Parse(tag)
		require.NoError(t, err)

		for _, bits := range []uint{4, 8, 16} {
			min, max, err := s.Range(bits)
			require.NoError(t, err)

			for num := min; num <= max; num++ {
				bin, err := binrep.DecToBin(num, bits, tag)
				require.NoError(t, err)

				if uint(len(bin)) != bits {
					require.Len(t, bin, int(bits), "%s/%d: %d", tag, bits, num)
				}

				v, err := binrep.BinToDec(bin, tag)
				require.NoError(t, err)

				if v != num {
					require.Equal(t, num, v, "%s/%d: %s", tag, bits, bin)
				}
			}
		}
	}
}

func TestOperate(t *testing.T) {
	type TC struct {
		a, b string
		op   string
		tag  string
		bits uint
		bin  string
		dec  string
		Mark error
	}

	tcs := []TC{
		{a: "00000101", b: "11111101", op: "+", tag: "c2", bits: 8, bin: "00000010", dec: "2", Mark: oops.New("unexpected")},
		{a: "00000101", b: "00000011", op: "/", tag: "c2", bits: 8, bin: "00000001", dec: "1", Mark: oops.New("unexpected")},
		{a: "00000101", b: "00000111", op: "-", tag: "c2", bits: 8, bin: "11111110", dec: "-2", Mark: oops.New("unexpected")},
		{a: "11111011", b: "00000010", op: "*", tag: "c2", bits: 8, bin: "11110110", dec: "-10", Mark: oops.New("unexpected")},
		{a: "11111001", b: "00000010", op: "/", tag: "c2", bits: 8, bin: "11111101", dec: "-3", Mark: oops.New("unexpected")},
		{a: "10000101", b: "00000011", op: "+", tag: "sm", bits: 8, bin: "10000010", dec: "-2", Mark: oops.New("unexpected")},
		{a: "11111010", b: "00000011", op: "+", tag: "c1", bits: 8, bin: "11111101", dec: "-2", Mark: oops.New("unexpected")},
		{a: "10000100", b: "01111010", op: "+", tag: "polarizada", bits: 8, bin: "01111111", dec: "0", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s%s%s/%s", i, tc.a, tc.op, tc.b, tc.tag), func(t *testing.T) {
			r, err := binrep.Operate(tc.a, tc.b, tc.op, tc.tag, tc.bits)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.bin, r.Binary, tc.Mark)
			require.Equal(t, tc.dec, r.Decimal, tc.Mark)
		})
	}
}

func TestOperateErrors(t *testing.T) {
	type TC struct {
		name string
		a, b string
		op   string
		tag  string
		bits uint
		has  func(error) bool
	}

	tcs := []TC{
		{
			name: "division by zero",
			a:    "00000101",
			b:    "00000000",
			op:   "/",
			tag:  "c2",
			bits: 8,
			has:  arith.ErrDivisionByZero.Has,
		},
		{
			name: "division by negative zero",
			a:    "00000101",
			b:    "10000000",
			op:   "/",
			tag:  "sm",
			bits: 8,
			has:  arith.ErrDivisionByZero.Has,
		},
		{
			name: "invalid operation",
			a:    "00000101",
			b:    "00000001",
			op:   "%",
			tag:  "c2",
			bits: 8,
			has:  arith.ErrInvalidOperation.Has,
		},
		{
			name: "invalid scheme",
			a:    "00000101",
			b:    "00000001",
			op:   "+",
			tag:  "c3",
			bits: 8,
			has:  scheme.ErrInvalidScheme.Has,
		},
		{
			name: "malformed operand",
			a:    "0000010x",
			b:    "00000001",
			op:   "+",
			tag:  "c2",
			bits: 8,
			has:  integer.ErrMalformedInput.Has,
		},
		{
			name: "operand width",
			a:    "0101",
			b:    "00000001",
			op:   "+",
			tag:  "c2",
			bits: 8,
			has:  integer.ErrMalformedInput.Has,
		},
		{
			name: "invalid width",
			a:    "0101",
			b:    "0001",
			op:   "+",
			tag:  "c2",
			bits: 0,
			has:  scheme.ErrInvalidWidth.Has,
		},
		{
			name: "overflow",
			a:    "01111111",
			b:    "00000001",
			op:   "+",
			tag:  "c2",
			bits: 8,
			has:  integer.ErrOverflow.Has,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			r, err := binrep.Operate(tc.a, tc.b, tc.op, tc.tag, tc.bits)
			require.Error(t, err)
			require.True(t, tc.has(err), "%+v", err)
			require.True(t, binrep.Error.Has(err), "%+v", err)
			require.Empty(t, r.Binary)
		})
	}

	t.Run("overflow keeps value", func(t *testing.T) {
		r, err := binrep.Operate("01111111", "00000010", "*", "c2", 8)
		require.True(t, integer.ErrOverflow.Has(err), "%+v", err)
		require.Equal(t, int64(254), r.Value)
		require.Equal(t, "254", r.Decimal)
	})
}

func TestConversionErrors(t *testing.T) {
	_, err := binrep.BinToDec("0101", "xx")
	require.True(t, scheme.ErrInvalidScheme.Has(err), "%+v", err)

	_, err = binrep.BinToDec("01a1", "c2")
	require.True(t, integer.ErrMalformedInput.Has(err), "%+v", err)

	_, err = binrep.BinToDec("", "c2")
	require.True(t, integer.ErrMalformedInput.Has(err), "%+v", err)

	_, err = binrep.DecToBin(1, 8, "xx")
	require.True(t, scheme.ErrInvalidScheme.Has(err), "%+v", err)

	_, err = binrep.DecToBin(300, 8, "c2")
	require.True(t, integer.ErrOverflow.Has(err), "%+v", err)
}

func ExampleOperate() {
	a, _ := binrep.DecToBin(5, 8, "c2")
	b, _ := binrep.DecToBin(-3, 8, "c2")
	fmt.Printf("5 = %s | -3 = %s\n", a, b)

	r, err := binrep.Operate(a, b, "+", "c2", 8)
	if err != nil {
		panic(err)
	}

	fmt.Printf("sum: %s = %s\n", r.Binary, r.Decimal)
	// Output:
	// 5 = 00000101 | -3 = 11111101
	// sum: 00000010 = 2
}
