package phases_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/clktmr/fixedpoint/fixed"
	"github.com/clktmr/fixedpoint/phases"
	"github.com/clktmr/fixedpoint/unit"
)

func amps(l1, l2, l3 unit.Amp) phases.Opt[unit.Current] {
	return phases.Of(unit.AmpR(l1), unit.AmpR(l2), unit.AmpR(l3))
}

func TestCount(t *testing.T) {
	p := amps(1, 2, 3)
	tests := map[string]struct {
		p    phases.Opt[unit.Current]
		want int
	}{
		"none":  {phases.Opt[unit.Current]{}, 0},
		"all":   {p, 3},
		"two":   {p.Without(1), 2},
		"one":   {p.Without(0).Without(2), 1},
		"zero":  {phases.Opt[unit.Current]{}.With(2, unit.AmpR(0)), 1},
		"again": {p.Without(1).With(1, unit.AmpR(5)), 3},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if n := tc.p.Count(); n != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, n)
			}
		})
	}
}

func TestSum(t *testing.T) {
	tests := map[string]struct {
		p   phases.Opt[unit.Current]
		sum unit.Current
		ok  bool
		err error
	}{
		"all":      {amps(10, 20, 30), unit.AmpR(60), true, nil},
		"two":      {amps(10, 20, 30).Without(1), unit.AmpR(40), true, nil},
		"none":     {phases.Opt[unit.Current]{}, unit.AmpR(0), false, nil},
		"zero":     {phases.Opt[unit.Current]{}.With(0, unit.AmpR(0)), unit.AmpR(0), true, nil},
		"negative": {amps(-10, 5, 0), unit.AmpR(-5), true, nil},
		"overflow": {amps(math.MaxInt32, 1, 0), unit.AmpR(0), false, fixed.ErrRange},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			sum, ok, err := phases.Sum(tc.p)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
			if ok != tc.ok || sum != tc.sum {
				t.Fatalf("expected %v (%v), got %v (%v)", tc.sum, tc.ok, sum, ok)
			}
		})
	}
}

func TestAdd(t *testing.T) {
	p := amps(10, 20, 30).Without(2)
	q := amps(1, 2, 3).Without(1)
	got, err := phases.Add(p, q)
	if err != nil {
		t.Fatal(err)
	}
	want := amps(11, 20, 3)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	none := phases.Opt[unit.Current]{}
	got, err = phases.Add(none, none)
	if err != nil || got.Count() != 0 {
		t.Fatalf("expected no phases, got %v (%v)", got, err)
	}

	_, err = phases.Add(amps(math.MaxInt32, 0, 0), amps(1, 0, 0))
	if !errors.Is(err, fixed.ErrRange) {
		t.Fatalf("expected %v, got %v", fixed.ErrRange, err)
	}
}

func TestMinMax(t *testing.T) {
	tests := map[string]struct {
		p        phases.Opt[unit.Current]
		min, max unit.Current
		ok       bool
	}{
		"all":     {amps(20, -5, 7), unit.AmpR(-5), unit.AmpR(20), true},
		"without": {amps(20, -5, 7).Without(1), unit.AmpR(7), unit.AmpR(20), true},
		"single":  {amps(20, -5, 7).Without(0).Without(1), unit.AmpR(7), unit.AmpR(7), true},
		"equal":   {amps(3, 3, 3), unit.AmpR(3), unit.AmpR(3), true},
		"none":    {phases.Opt[unit.Current]{}, unit.AmpR(0), unit.AmpR(0), false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			lo, ok := phases.Min(tc.p)
			if ok != tc.ok || lo != tc.min {
				t.Fatalf("min: expected %v (%v), got %v (%v)", tc.min, tc.ok, lo, ok)
			}
			hi, ok := phases.Max(tc.p)
			if ok != tc.ok || hi != tc.max {
				t.Fatalf("max: expected %v (%v), got %v (%v)", tc.max, tc.ok, hi, ok)
			}
		})
	}
}

func TestGet(t *testing.T) {
	p := amps(1, 2, 3).Without(1)
	if v, ok := p.Get(0); !ok || v != unit.AmpR(1) {
		t.Errorf("L1: got %v (%v)", v, ok)
	}
	if _, ok := p.Get(1); ok {
		t.Error("L2 in service")
	}
}
