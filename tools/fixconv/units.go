package main

import (
	"fmt"

	"github.com/clktmr/fixedpoint/charset"
	"github.com/clktmr/fixedpoint/fixed"
	"github.com/clktmr/fixedpoint/frame"
	"github.com/clktmr/fixedpoint/phases"
	"github.com/clktmr/fixedpoint/unit"
)

// report describes a single value.
type report struct {
	Unit  string      `json:"unit"`
	Text  string      `json:"text"`
	Raw   fixed.Fixed `json:"raw"`
	Scale fixed.Fixed `json:"scale"`
	Float fixed.Float `json:"float"`
}

func (r report) String() string {
	return fmt.Sprintf("%s %s\traw %d/%d\tfloat %g", r.Text, r.Unit, r.Raw, r.Scale, r.Float)
}

func reportOf[R fixed.Spec](v fixed.Value[R]) report {
	return report{
		Unit:  fixed.Symbol[R](),
		Text:  v.String(),
		Raw:   v.Fixed(),
		Scale: fixed.Scale[R](),
		Float: v.Float(),
	}
}

// inspector erases the unit type parameter, so units can be selected by
// name at runtime.
type inspector interface {
	show(s string) (report, error)
	label(s string) ([]byte, error)
	decode(b []byte) ([3]*report, error)
	encode(vals [3]string) ([]byte, error)
	frameLen() int
}

type unitOf[R fixed.Spec] struct{}

func (unitOf[R]) show(s string) (report, error) {
	v, err := fixed.Parse[R](s)
	if err != nil {
		return report{}, err
	}
	return reportOf(v), nil
}

func (unitOf[R]) label(s string) ([]byte, error) {
	v, err := fixed.Parse[R](s)
	if err != nil {
		return nil, err
	}
	return charset.Label(v)
}

func (unitOf[R]) decode(b []byte) (r [3]*report, err error) {
	p, err := frame.Decode[R](b)
	if err != nil {
		return r, err
	}
	for i := range p {
		if v, ok := p.Get(i); ok {
			rep := reportOf(v)
			r[i] = &rep
		}
	}
	return r, nil
}

// absent marks a phase out of service on the command line.
const absent = "-"

func (unitOf[R]) encode(vals [3]string) ([]byte, error) {
	var p phases.Opt[fixed.Value[R]]
	for i, s := range vals {
		if s == absent {
			continue
		}
		v, err := fixed.Parse[R](s)
		if err != nil {
			return nil, fmt.Errorf("L%d: %w", i+1, err)
		}
		p = p.With(i, v)
	}
	return frame.Append(nil, p), nil
}

func (unitOf[R]) frameLen() int { return frame.Len[R]() }

var units = map[string]inspector{
	"volt":         unitOf[unit.Volt]{},
	"precisevolt":  unitOf[unit.PreciseVolt]{},
	"amp":          unitOf[unit.Amp]{},
	"watt":         unitOf[unit.Watt]{},
	"kilowatt":     unitOf[unit.KiloWatt]{},
	"kilowatthour": unitOf[unit.KiloWattHour]{},
	"milliohm":     unitOf[unit.MilliOhm]{},
	"celsius":      unitOf[unit.Celsius]{},
	"percent":      unitOf[unit.Percent]{},
}
