package gcc

import "fmt"

// Card is a cardinality specification: a value together with the
// required occurrence count range [lo, hi] and a running counter of how
// many variables have already been fixed to it. When backed by an
// IntView (IsView), lo and hi mirror that view's bounds and can
// themselves be tightened; otherwise lo and hi are the constants given
// to NewFixedCard.
//
// Invariant: 0 <= lo <= hi <= n, where n is the number of variables the
// owning propagator was posted with.
type Card struct {
	value   int
	lo, hi  int
	counter int
	view    IntView // nil unless isView
}

// NewFixedCard returns a Card for value with a fixed [lo,hi] requirement.
func NewFixedCard(value, lo, hi int) *Card {
	return &Card{value: value, lo: lo, hi: hi}
}

// NewViewCard returns a Card for value whose [lo,hi] bounds are mirrored
// from view, an integer variable bounded in [0,n].
func NewViewCard(value int, view IntView) *Card {
	return &Card{value: value, lo: view.Min(), hi: view.Max(), view: view}
}

func (c *Card) Value() int   { return c.value }
func (c *Card) Min() int     { return c.lo }
func (c *Card) Max() int     { return c.hi }
func (c *Card) Counter() int { return c.counter }
func (c *Card) IsView() bool { return c.view != nil }

// Inc increments the saturation counter and, when view-backed, pushes the
// new lower bound into the backing view so the cardinality's own domain
// reflects how many variables are already fixed to it.
func (c *Card) Inc() (ModEvent, error) {
	c.counter++
	if c.view == nil {
		if c.counter > c.hi {
			return MEdFailed, fmt.Errorf("%w: value %d counter %d exceeds hi %d", ErrCapacityOverflow, c.value, c.counter, c.hi)
		}
		return MEdNone, nil
	}
	ev, err := c.view.Gq(c.counter)
	if err != nil {
		return MEdFailed, fmt.Errorf("%w: cardinality view for value %d", ErrInfeasibleCard, c.value)
	}
	c.lo = c.view.Min()
	c.hi = c.view.Max()
	if c.lo > c.hi {
		return MEdFailed, fmt.Errorf("%w: value %d lo %d > hi %d", ErrInfeasibleCard, c.value, c.lo, c.hi)
	}
	return ev, nil
}

// Tighten narrows [lo,hi] to the intersection with [newLo,newHi],
// propagating into the backing view when isView. Returns the resulting
// event and an error if the bounds collapse (lo > hi).
func (c *Card) Tighten(newLo, newHi int) (ModEvent, error) {
	ev := MEdNone
	if newLo > c.lo {
		if c.view != nil {
			e, err := c.view.Gq(newLo)
			if err != nil {
				return MEdFailed, fmt.Errorf("%w: value %d", ErrInfeasibleCard, c.value)
			}
			ev = join(ev, e)
		}
		c.lo = newLo
	}
	if newHi < c.hi {
		if c.view != nil {
			e, err := c.view.Lq(newHi)
			if err != nil {
				return MEdFailed, fmt.Errorf("%w: value %d", ErrInfeasibleCard, c.value)
			}
			ev = join(ev, e)
		}
		c.hi = newHi
	}
	if c.lo > c.hi {
		return MEdFailed, fmt.Errorf("%w: value %d lo %d > hi %d after tighten", ErrInfeasibleCard, c.value, c.lo, c.hi)
	}
	return ev, nil
}

// refresh re-reads [lo,hi] from the backing view. Needed for the
// `shared` aliasing case (§4.6/§9): a cardinality view that is also one
// of the x variables can move from a mutation this propagator itself
// made to a different variable.
func (c *Card) refresh() error {
	if c.view == nil {
		return nil
	}
	c.lo, c.hi = c.view.Min(), c.view.Max()
	if c.lo > c.hi {
		return fmt.Errorf("%w: value %d", ErrInfeasibleCard, c.value)
	}
	return nil
}
