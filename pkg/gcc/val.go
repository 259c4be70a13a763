package gcc

import "fmt"

// ValPropagator is §4.5's value-consistent filter: the cheapest of the
// three variants, pruning only what is locally forced by a saturated
// cardinality ceiling or a tight cardinality floor. Grounded on the
// teacher's own gcc.go (GlobalCardinality.Propagate), which already
// computes per-value fixed/possible counts and prunes once a ceiling
// saturates; this adds the lo_j-forcing half that file never attempted.
type ValPropagator struct {
	views []IntView
	cards []*Card

	// counted marks, per variable index, whether its assignment has
	// already incremented its value's Card.counter. A Card's counter is
	// incremented exactly once per variable, the first propagate call in
	// which that variable is observed assigned.
	counted []bool
}

// NewValPropagator returns a propagator over views with the given
// cardinalities. Does not run initial propagation; callers use PostVal.
func NewValPropagator(views []IntView, cards []*Card) *ValPropagator {
	return &ValPropagator{views: views, cards: cards, counted: make([]bool, len(views))}
}

func (p *ValPropagator) Views() []IntView { return p.views }
func (p *ValPropagator) Cards() []*Card   { return p.cards }

// Propagate runs the single-pass loop of §4.5 to its own fixpoint: force
// variables whose remaining candidates for v_j exactly meet the unmet
// portion of lo_j, then for every assigned variable increment its value's
// counter and prune v_j elsewhere once counter reaches hi_j. Repeats
// until no view changes.
func (p *ValPropagator) Propagate() (Status, error) {
	overall := MEdNone
	changed := true
	for changed {
		changed = false

		for _, c := range p.cards {
			if err := c.refresh(); err != nil {
				return StatusFailed, err
			}
			if c.Min() <= 0 {
				continue
			}
			assigned := 0
			candidates := make([]IntView, 0, len(p.views))
			for _, v := range p.views {
				if v.Assigned() {
					if v.Min() == c.Value() {
						assigned++
					}
				} else if v.Contains(c.Value()) {
					candidates = append(candidates, v)
				}
			}
			unmet := c.Min() - assigned
			if unmet <= 0 {
				continue
			}
			if len(candidates) < unmet {
				return StatusFailed, fmt.Errorf("%w: value %d has %d candidates for %d unmet occurrences", ErrCapacityUnderflow, c.Value(), len(candidates), unmet)
			}
			if len(candidates) != unmet {
				continue
			}
			for _, v := range candidates {
				ev, err := v.Eq(c.Value())
				if err != nil {
					return StatusFailed, fmt.Errorf("%w: forcing value %d", ErrFailed, c.Value())
				}
				if ev != MEdNone {
					overall = join(overall, ev)
					changed = true
				}
			}
		}

		byValue := make(map[int]*Card, len(p.cards))
		for _, c := range p.cards {
			byValue[c.Value()] = c
		}
		for i, v := range p.views {
			if !v.Assigned() || p.counted[i] {
				continue
			}
			val := v.Min()
			c, ok := byValue[val]
			if !ok {
				p.counted[i] = true
				continue
			}
			p.counted[i] = true
			ev, err := c.Inc()
			if err != nil {
				return StatusFailed, err
			}
			if ev != MEdNone {
				overall = join(overall, ev)
				changed = true
			}
			if c.Counter() > c.Max() {
				return StatusFailed, fmt.Errorf("%w: value %d counter %d exceeds hi %d", ErrCapacityOverflow, val, c.Counter(), c.Max())
			}
			if c.Counter() == c.Max() {
				for j, other := range p.views {
					if j == i || other.Assigned() {
						continue
					}
					if !other.Contains(val) {
						continue
					}
					ev, err := other.Nq(val)
					if err != nil {
						return StatusFailed, fmt.Errorf("%w: saturating value %d", ErrFailed, val)
					}
					if ev != MEdNone {
						overall = join(overall, ev)
						changed = true
					}
				}
			}
		}
	}

	if allAssigned(p.views) && allCountersInRange(p.cards) {
		return StatusSubsumed, nil
	}
	if overall == MEdNone {
		return StatusFix, nil
	}
	return StatusNoFix, nil
}

func allAssigned(views []IntView) bool {
	for _, v := range views {
		if !v.Assigned() {
			return false
		}
	}
	return true
}

func allCountersInRange(cards []*Card) bool {
	for _, c := range cards {
		if c.Counter() < c.Min() || c.Counter() > c.Max() {
			return false
		}
	}
	return true
}
