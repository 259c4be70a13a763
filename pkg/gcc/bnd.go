package gcc

import "fmt"

// BndPropagator is §4.6's bounds-consistent variant: it orchestrates a
// HallEngine over the current views, plus (when any cardinality is
// isView) a pruneCards pass that tightens cardinality bounds from the
// current count of forced/possible candidates. Grounded on the
// teacher's FDStore-level orchestration pattern in fd.go — build
// scratch, run a filter, decide fixpoint vs re-enqueue — generalized to
// the four-way ok-fix/ok-nofix/subsumed/failed result §6 specifies.
type BndPropagator struct {
	views []IntView
	cards []*Card
	hall  *HallEngine
}

// NewBndPropagator returns a propagator ready for Propagate.
func NewBndPropagator(views []IntView, cards []*Card) *BndPropagator {
	return &BndPropagator{views: views, cards: cards, hall: NewHallEngine()}
}

func (p *BndPropagator) Views() []IntView { return p.views }
func (p *BndPropagator) Cards() []*Card   { return p.cards }

// cardFixed reports whether every cardinality has lo_j == hi_j.
func (p *BndPropagator) cardFixed() bool {
	for _, c := range p.cards {
		if c.Min() != c.Max() {
			return false
		}
	}
	return true
}

// skipLBC reports whether every cardinality has lo_j == 0.
func (p *BndPropagator) skipLBC() bool {
	for _, c := range p.cards {
		if c.Min() > 0 {
			return false
		}
	}
	return true
}

// pruneCards tightens each isView cardinality to [#forced, #possible]:
// the number of variables already assigned to v_j, and the number that
// still could be. Removes any cardinality whose tightened hi is 0 from
// every variable's domain.
func (p *BndPropagator) pruneCards() (ModEvent, error) {
	overall := MEdNone
	selfAliased := false
	for _, c := range p.cards {
		if !c.IsView() {
			continue
		}
		forced, possible := 0, 0
		for _, v := range p.views {
			if v.Assigned() && v.Min() == c.Value() {
				forced++
			}
			if v.Contains(c.Value()) {
				possible++
			}
		}
		ev, err := c.Tighten(forced, possible)
		if err != nil {
			return MEdFailed, err
		}
		overall = join(overall, ev)
		if ev != MEdNone && c.view != nil {
			// shared = true: the cardinality view may also be one of the
			// x variables this same Tighten call just mutated.
			for _, v := range p.views {
				if v == c.view {
					selfAliased = true
					break
				}
			}
		}
		if c.Max() == 0 {
			for _, v := range p.views {
				if !v.Contains(c.Value()) {
					continue
				}
				ev, err := v.Nq(c.Value())
				if err != nil {
					return MEdFailed, fmt.Errorf("%w: removing zero-capacity value %d", ErrFailed, c.Value())
				}
				overall = join(overall, ev)
			}
		}
	}
	if selfAliased {
		overall = join(overall, MEdBounds)
	}
	return overall, nil
}

// Propagate implements §4.6's state machine: pruneCards -> build partial
// sums -> UBC -> (skip_lbc or card_fixed? : LBC) -> pruneCards -> decide
// fixpoint.
func (p *BndPropagator) Propagate() (Status, error) {
	if len(p.cards) == 0 {
		return StatusSubsumed, nil
	}

	pruned := MEdNone
	if hasViewCard(p.cards) {
		ev, err := p.pruneCards()
		if err != nil {
			return StatusFailed, err
		}
		pruned = ev
	}

	p.hall.build(p.cards, p.views, len(p.views))

	overall := pruned
	ev, err := p.hall.ubc(p.views)
	if err != nil {
		return StatusFailed, err
	}
	overall = join(overall, ev)

	if !p.skipLBC() && !p.cardFixed() {
		ev, err := p.hall.lbc(p.views)
		if err != nil {
			return StatusFailed, err
		}
		overall = join(overall, ev)
	}

	if hasViewCard(p.cards) {
		ev, err := p.pruneCards()
		if err != nil {
			return StatusFailed, err
		}
		overall = join(overall, ev)
	}

	if allAssigned(p.views) && allCountersSatisfied(p.views, p.cards) {
		return StatusSubsumed, nil
	}
	if overall == MEdNone {
		return StatusFix, nil
	}
	return StatusNoFix, nil
}

// allCountersSatisfied checks lo_j <= count <= hi_j for every card,
// counting directly off the current assignment, since ValPropagator's counter bookkeeping is
// not shared with Bnd when posted standalone.
func allCountersSatisfied(views []IntView, cards []*Card) bool {
	counts := make(map[int]int, len(cards))
	for _, v := range views {
		if v.Assigned() {
			counts[v.Min()]++
		}
	}
	for _, c := range cards {
		n := counts[c.Value()]
		if n < c.Min() || n > c.Max() {
			return false
		}
	}
	return true
}

func hasViewCard(cards []*Card) bool {
	for _, c := range cards {
		if c.IsView() {
			return true
		}
	}
	return false
}
