// Package phases represents three-phase electrical quantities where some or
// all phases may be out of service. An out of service phase is distinct from
// a phase with a zero value.
package phases

// Phase is the reading of a single phase. Valid is false if the phase is out
// of service.
type Phase[T any] struct {
	Value T
	Valid bool
}

// Opt holds the readings of the phases L1, L2 and L3.
type Opt[T any] [3]Phase[T]

// Of returns an Opt with all three phases in service.
func Of[T any](l1, l2, l3 T) Opt[T] {
	return Opt[T]{{l1, true}, {l2, true}, {l3, true}}
}

// With returns a copy of p with phase i (0..2) set to v.
func (p Opt[T]) With(i int, v T) Opt[T] {
	p[i] = Phase[T]{v, true}
	return p
}

// Without returns a copy of p with phase i (0..2) out of service.
func (p Opt[T]) Without(i int) Opt[T] {
	p[i] = Phase[T]{}
	return p
}

// Get returns the value of phase i and whether it's in service.
func (p Opt[T]) Get(i int) (T, bool) {
	return p[i].Value, p[i].Valid
}

// Count returns the number of phases in service.
func (p Opt[T]) Count() (n int) {
	for _, ph := range p {
		if ph.Valid {
			n++
		}
	}
	return
}

type Adder[T any] interface {
	Add(T) (T, error)
}

type Comparer[T any] interface {
	Cmp(T) int
}

// Sum returns the sum of all phases in service. ok is false if no phase is
// in service.
func Sum[T Adder[T]](p Opt[T]) (sum T, ok bool, err error) {
	for _, ph := range p {
		sum, ok, err = add(sum, ok, ph)
		if err != nil {
			return
		}
	}
	return
}

// Add adds p and q phase by phase. A phase is in service in the result if
// it's in service in p or q.
func Add[T Adder[T]](p, q Opt[T]) (r Opt[T], err error) {
	for i := range r {
		r[i].Value, r[i].Valid, err = add(p[i].Value, p[i].Valid, q[i])
		if err != nil {
			return Opt[T]{}, err
		}
	}
	return r, nil
}

func add[T Adder[T]](acc T, valid bool, ph Phase[T]) (T, bool, error) {
	switch {
	case !ph.Valid:
		return acc, valid, nil
	case !valid:
		return ph.Value, true, nil
	}
	s, err := acc.Add(ph.Value)
	return s, err == nil, err
}

// Max returns the largest phase in service.
func Max[T Comparer[T]](p Opt[T]) (T, bool) {
	return pick(p, 1)
}

// Min returns the smallest phase in service.
func Min[T Comparer[T]](p Opt[T]) (T, bool) {
	return pick(p, -1)
}

func pick[T Comparer[T]](p Opt[T], sign int) (v T, ok bool) {
	for _, ph := range p {
		if ph.Valid && (!ok || ph.Value.Cmp(v)*sign > 0) {
			v, ok = ph.Value, true
		}
	}
	return
}
