package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/clktmr/fixedpoint/charset"
)

func emit(w io.Writer, text fmt.Stringer, v any) error {
	if *jsonOutput {
		return json.NewEncoder(w).Encode(v)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

func subcommand(name, args string) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ExitOnError)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: fixconv %s %s\n", name, args)
		flags.PrintDefaults()
	}
	return flags
}

func showMain(args []string) error {
	flags := subcommand("show", "<unit> <value>")
	flags.Parse(args[1:])
	if flags.NArg() != 2 {
		flags.Usage()
		os.Exit(1)
	}
	in, err := lookup(flags.Arg(0))
	if err != nil {
		return err
	}
	r, err := in.show(flags.Arg(1))
	if err != nil {
		return err
	}
	return emit(os.Stdout, r, r)
}

type codesReport struct {
	Codes hexBytes `json:"codes"`
}

type hexBytes []byte

func (b hexBytes) String() string { return fmt.Sprintf("% x", []byte(b)) }

func (b hexBytes) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(b)), nil
}

func (r codesReport) String() string { return r.Codes.String() }

func lcdMain(args []string) error {
	flags := subcommand("lcd", "[-width n] <unit> <value>")
	width := flags.Int("width", 0, "right-align the label in `n` characters")
	flags.Parse(args[1:])
	if flags.NArg() != 2 {
		flags.Usage()
		os.Exit(1)
	}
	in, err := lookup(flags.Arg(0))
	if err != nil {
		return err
	}
	b, err := in.label(flags.Arg(1))
	if err != nil {
		return err
	}
	r := codesReport{charset.Pad(b, *width)}
	return emit(os.Stdout, r, r)
}

type frameReport [3]*report

func (r frameReport) String() string {
	var sb strings.Builder
	for i, ph := range r {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "L%d ", i+1)
		if ph == nil {
			sb.WriteString(absent)
		} else {
			sb.WriteString(ph.String())
		}
	}
	return sb.String()
}

func frameMain(args []string) error {
	flags := subcommand("frame", "<unit> <hex> | -encode <unit> <l1> <l2> <l3>")
	encode := flags.Bool("encode", false, "encode values instead of decoding a frame")
	flags.Parse(args[1:])

	if *encode {
		if flags.NArg() != 4 {
			flags.Usage()
			os.Exit(1)
		}
		in, err := lookup(flags.Arg(0))
		if err != nil {
			return err
		}
		b, err := in.encode([3]string{flags.Arg(1), flags.Arg(2), flags.Arg(3)})
		if err != nil {
			return err
		}
		r := codesReport{b}
		return emit(os.Stdout, r, r)
	}

	if flags.NArg() != 2 {
		flags.Usage()
		os.Exit(1)
	}
	in, err := lookup(flags.Arg(0))
	if err != nil {
		return err
	}
	b, err := hex.DecodeString(strings.ReplaceAll(flags.Arg(1), " ", ""))
	if err != nil {
		return err
	}
	if len(b) != in.frameLen() {
		return fmt.Errorf("expected %d bytes, got %d", in.frameLen(), len(b))
	}
	r, err := in.decode(b)
	if err != nil {
		return err
	}
	return emit(os.Stdout, frameReport(r), r)
}
