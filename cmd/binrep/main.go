package main

import (
	goflag "flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog"

	"github.com/calebcase/binrep"
	"github.com/calebcase/binrep/integer"
	"github.com/calebcase/binrep/scheme"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out, errOut io.Writer) int {
	defer klog.Flush()

	cmd := NewCommandCLI("binrep", out, errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)

		return 1
	}

	return 0
}

// Options shared by the conversion commands.
type Options struct {
	Bits   uint
	Scheme string
	Dump   bool

	Out io.Writer
}

// AddFlags registers the shared flags.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.UintVarP(&o.Bits, "bits", "b", o.Bits, "Width of the binary representation (1..32). 0 uses the operand width.")
	fs.StringVarP(&o.Scheme, "scheme", "s", o.Scheme, "Representation: sm, c1, c2 or polarizada.")
	fs.BoolVar(&o.Dump, "dump", o.Dump, "Dump the result structure.")
}

func (o *Options) dump(v interface{}) {
	if o.Dump {
		spew.Fdump(o.Out, v)
	}
}

// NewCommandCLI returns the root command.
func NewCommandCLI(name string, out, errOut io.Writer) *cobra.Command {
	cmds := &cobra.Command{
		Use:   name,
		Short: "Convert and operate on fixed width signed binary numbers",
		Long: `Convert and operate on fixed width signed binary numbers.

Negative numbers must follow "--" so they aren't read as flags:

    ` + name + ` encode -b 8 -s c2 -- -3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmds.SetOutput(errOut)

	fs := goflag.NewFlagSet(name, goflag.ContinueOnError)
	klog.InitFlags(fs)
	cmds.PersistentFlags().AddGoFlagSet(fs)

	cmds.AddCommand(
		NewCmdDemo(out),
		NewCmdEncode(out),
		NewCmdDecode(out),
		NewCmdOperate(out),
		NewCmdRange(out),
	)

	return cmds
}

// NewCmdDemo returns the demo command.
func NewCmdDemo(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Add 5 and -3 in 8 bit two's complement",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			const bits, tag = 8, "c2"

			a, err := binrep.DecToBin(5, bits, tag)
			if err != nil {
				return err
			}

			b, err := binrep.DecToBin(-3, bits, tag)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "5 = %s | -3 = %s\n", a, b)

			r, err := binrep.Operate(a, b, "+", tag, bits)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "sum: %s = %s\n", r.Binary, r.Decimal)

			return nil
		},
	}
}

// NewCmdEncode returns the encode command.
func NewCmdEncode(out io.Writer) *cobra.Command {
	o := &Options{Bits: 8, Scheme: "c2", Out: out}

	cmd := &cobra.Command{
		Use:   "encode NUMBER",
		Short: "Encode a decimal number",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			num, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}

			klog.V(2).Infof("encode num=%d bits=%d scheme=%s", num, o.Bits, o.Scheme)

			bin, err := binrep.DecToBin(num, o.Bits, o.Scheme)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, bin)
			o.dump(bin)

			return nil
		},
	}
	o.AddFlags(cmd.Flags())

	return cmd
}

// NewCmdDecode returns the decode command.
func NewCmdDecode(out io.Writer) *cobra.Command {
	o := &Options{Scheme: "c2", Out: out}

	cmd := &cobra.Command{
		Use:   "decode BINARY",
		Short: "Decode a binary string",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			klog.V(2).Infof("decode bin=%s scheme=%s", args[0], o.Scheme)

			v, err := binrep.BinToDec(args[0], o.Scheme)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, v)

			if o.Dump {
				blk, err := integer.Parse(args[0])
				if err != nil {
					return err
				}

				o.dump(blk)
			}

			return nil
		},
	}
	o.AddFlags(cmd.Flags())

	return cmd
}

// NewCmdOperate returns the op command.
func NewCmdOperate(out io.Writer) *cobra.Command {
	o := &Options{Scheme: "c2", Out: out}

	cmd := &cobra.Command{
		Use:   "op A OPERATOR B",
		Short: "Apply +, -, * or / to two binary operands",
		Args:  cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			bits := o.Bits
			if bits == 0 {
				bits = uint(len(args[0]))
			}

			klog.V(2).Infof("op a=%s op=%s b=%s bits=%d scheme=%s", args[0], args[1], args[2], bits, o.Scheme)

			r, err := binrep.Operate(args[0], args[2], args[1], o.Scheme, bits)
			if err != nil {
				if integer.ErrOverflow.Has(err) {
					klog.V(1).Infof("raw result %s", r.Decimal)
				}

				return err
			}

			fmt.Fprintf(out, "%s = %s\n", r.Binary, r.Decimal)
			o.dump(r)

			return nil
		},
	}
	o.AddFlags(cmd.Flags())

	return cmd
}

// NewCmdRange returns the range command.
func NewCmdRange(out io.Writer) *cobra.Command {
	o := &Options{Bits: 8, Scheme: "c2", Out: out}

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Print the representable range",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			s, err := scheme.Parse(o.Scheme)
			if err != nil {
				return err
			}

			min, max, err := s.Range(o.Bits)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s %d bits: [%d, %d]\n", s.Name(), o.Bits, min, max)

			return nil
		},
	}
	o.AddFlags(cmd.Flags())

	return cmd
}
