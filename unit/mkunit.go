//go:build ignore

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"text/template"
)

var unitTemplate = `
// {{ .Alias }} is a quantity in {{ .Symbol }} with precision {{ .Precision }}.
type {{ .Alias }} = fixed.Value[{{ .Name }}]

func ({{ .Name }}) Precision() uint8 { return {{ .Precision }} }
func ({{ .Name }}) Symbol() string   { return {{ printf "%q" .Symbol }} }

func {{ .Name }}R(raw {{ .Name }}) {{ .Alias }} { return fixed.FromRepr(raw) }
func {{ .Name }}F(f float32) ({{ .Alias }}, error) { return fixed.New[{{ .Name }}](f) }
`

type unitType struct {
	Name, BaseType, Alias, Symbol string
	Precision                     uint
}

func fromDecl(name, basetype, precision, symbol, alias string) (u unitType) {
	u.Name = name
	u.BaseType = basetype
	u.Symbol = symbol
	u.Alias = alias

	var limit uint64
	switch basetype {
	case "int32":
		limit = math.MaxInt32
	case "int16":
		limit = math.MaxInt16
	case "uint16":
		limit = math.MaxUint16
	case "int8":
		limit = math.MaxInt8
	case "uint8":
		limit = math.MaxUint8
	default:
		log.Fatalln("unsupported basetype:", basetype)
	}

	p, err := strconv.ParseUint(precision, 10, 8)
	if err != nil {
		log.Fatalln(err)
	}
	if p > 9 {
		log.Fatalln("precision exceeds 9 digits:", p)
	}
	if scale := uint64(math.Pow10(int(p))); scale > limit {
		log.Fatalln("must represent one", symbol)
	}
	u.Precision = uint(p)
	return
}

func usage() {
	fmt.Printf("Usage: %v <typename> <basetype> <precision> <symbol> <alias>\n", os.Args[0])
}

func main() {
	log.Default().SetFlags(log.Lshortfile)
	if len(os.Args) != 6 {
		usage()
		os.Exit(1)
	}

	source := bytes.NewBuffer(nil)
	tmpl, err := template.New("unitTemplate").Parse(unitTemplate)
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Fprintln(source, "package unit")
	fmt.Fprintln(source, "import \"github.com/clktmr/fixedpoint/fixed\"")

	err = tmpl.Execute(source, fromDecl(os.Args[1], os.Args[2], os.Args[3], os.Args[4], os.Args[5]))
	if err != nil {
		log.Fatalln(err)
	}

	formattedSource, err := format.Source(source.Bytes())
	if err != nil {
		log.Fatalln(err)
	}
	err = os.WriteFile(strings.ToLower(os.Args[1])+"_unit.go", formattedSource, 0644)
	if err != nil {
		log.Fatalln(err)
	}
}
