// Command fixconv inspects fixed-point readings: their decimal and raw forms,
// their rendering on character LCDs and the telemetry frames carrying them.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
)

const usageString = `fixconv inspects fixed-point readings.

Usage:

	%s [-json] <command> [arguments]

The commands are:

	show  <unit> <value>         print decimal, raw and float form
	lcd   <unit> <value>         print HD44780 ROM codes of a label
	frame <unit> <hex>           decode a three-phase telemetry frame
	frame -encode <unit> l1 l2 l3  encode a frame, "-" marks an absent phase

The units are:

	%s
`

var jsonOutput = flag.Bool("json", false, "print results as JSON")

func usage() {
	names := make([]string, 0, len(units))
	for name := range units {
		names = append(names, name)
	}
	slices.Sort(names)
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0], strings.Join(names, " "))
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	var err error
	switch flag.Arg(0) {
	case "show":
		err = showMain(flag.Args())
	case "lcd":
		err = lcdMain(flag.Args())
	case "frame":
		err = frameMain(flag.Args())
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalln(err)
	}
}

func lookup(name string) (inspector, error) {
	in, ok := units[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown unit: %s", name)
	}
	return in, nil
}
