package gcc

import "fmt"

// IntView is the contract this package consumes from the surrounding
// constraint framework: an integer variable exposing bounds and domain
// iteration, and mutators that narrow the domain and report a
// ModEvent. The framework's own view type (spaces, cloning, arenas) is
// out of scope for this package; DomainVar below is a minimal concrete
// implementation used by the propagators' own tests and by cmd/gcc-demo.
type IntView interface {
	// Min returns the smallest value still in the domain.
	Min() int
	// Max returns the largest value still in the domain.
	Max() int
	// Size returns the number of values still in the domain.
	Size() int
	// Assigned reports whether the domain has collapsed to one value.
	Assigned() bool
	// Contains reports whether v is still in the domain.
	Contains(v int) bool
	// Each calls f once per value still in the domain, ascending.
	Each(f func(v int))

	// Gq narrows the domain to values >= v.
	Gq(v int) (ModEvent, error)
	// Lq narrows the domain to values <= v.
	Lq(v int) (ModEvent, error)
	// Nq removes v from the domain.
	Nq(v int) (ModEvent, error)
	// Eq narrows the domain to {v}.
	Eq(v int) (ModEvent, error)
}

// DomainVar is a domainSet-backed IntView, the propagator package's own
// stand-in for the host framework's variable type. Grounded on the
// teacher's FDVar: a small identity plus a copy-on-write BitSet domain.
type DomainVar struct {
	id     int
	name   string
	domain domainSet
}

// NewDomainVar returns a DomainVar with domain [lo, hi].
func NewDomainVar(id int, name string, lo, hi int) *DomainVar {
	if hi < lo {
		hi = lo
	}
	return &DomainVar{id: id, name: name, domain: newDomainSet(lo, hi-lo+1)}
}

// NewDomainVarFromValues returns a DomainVar whose domain is exactly
// values, which need not be contiguous.
func NewDomainVarFromValues(id int, name string, values []int) *DomainVar {
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	d := emptyDomainSet(lo, hi-lo+1)
	for _, v := range values {
		d = d.With(v)
	}
	return &DomainVar{id: id, name: name, domain: d}
}

func (v *DomainVar) ID() int      { return v.id }
func (v *DomainVar) Name() string { return v.name }

func (v *DomainVar) Min() int            { return v.domain.Min() }
func (v *DomainVar) Max() int            { return v.domain.Max() }
func (v *DomainVar) Size() int           { return v.domain.Count() }
func (v *DomainVar) Assigned() bool      { return v.domain.IsSingleton() }
func (v *DomainVar) Contains(x int) bool { return v.domain.Has(x) }
func (v *DomainVar) Each(f func(x int))  { v.domain.IterateValues(f) }

func (v *DomainVar) eventFor(before domainSet) ModEvent {
	if v.domain.IsEmpty() {
		return MEdFailed
	}
	if v.domain.Count() == before.Count() {
		return MEdNone
	}
	if v.domain.IsSingleton() {
		return MEdAssigned
	}
	if v.domain.Min() != before.Min() || v.domain.Max() != before.Max() {
		return MEdBounds
	}
	return MEdDomain
}

// Gq narrows the domain to values >= x.
func (v *DomainVar) Gq(x int) (ModEvent, error) {
	before := v.domain
	nd := emptyDomainSet(before.base, before.n)
	before.IterateValues(func(val int) {
		if val >= x {
			nd = nd.With(val)
		}
	})
	v.domain = nd
	ev := v.eventFor(before)
	if ev.Failed() {
		return ev, fmt.Errorf("%w: var %s domain emptied by gq(%d)", ErrFailed, v.name, x)
	}
	return ev, nil
}

// Lq narrows the domain to values <= x.
func (v *DomainVar) Lq(x int) (ModEvent, error) {
	before := v.domain
	nd := emptyDomainSet(before.base, before.n)
	before.IterateValues(func(val int) {
		if val <= x {
			nd = nd.With(val)
		}
	})
	v.domain = nd
	ev := v.eventFor(before)
	if ev.Failed() {
		return ev, fmt.Errorf("%w: var %s domain emptied by lq(%d)", ErrFailed, v.name, x)
	}
	return ev, nil
}

// Nq removes x from the domain.
func (v *DomainVar) Nq(x int) (ModEvent, error) {
	before := v.domain
	v.domain = before.Without(x)
	ev := v.eventFor(before)
	if ev.Failed() {
		return ev, fmt.Errorf("%w: var %s domain emptied by nq(%d)", ErrFailed, v.name, x)
	}
	return ev, nil
}

// Eq narrows the domain to {x}.
func (v *DomainVar) Eq(x int) (ModEvent, error) {
	before := v.domain
	if before.Has(x) {
		v.domain = emptyDomainSet(before.base, before.n).With(x)
	} else {
		v.domain = emptyDomainSet(before.base, before.n)
	}
	ev := v.eventFor(before)
	if ev.Failed() {
		return ev, fmt.Errorf("%w: var %s domain emptied by eq(%d)", ErrFailed, v.name, x)
	}
	return ev, nil
}

// Clone returns a deep copy, used when the host space is cloned.
func (v *DomainVar) Clone() *DomainVar {
	return &DomainVar{id: v.id, name: v.name, domain: v.domain.Clone()}
}
