package gcc

// DomPropagator is §4.6's domain-consistent (arc-consistent) variant:
// orchestrates VarValGraph.sync -> maximumMatching -> maximumMatchingCards
// -> sccs, then applies the same fixpoint/subsumed decision as Bnd.
// The graph persists across calls per §4.4's incrementality contract.
type DomPropagator struct {
	views []IntView
	cards []*Card
	graph *VarValGraph
}

// NewDomPropagator returns a propagator, building its VarValGraph once
// from the initial views and cardinalities, with DefaultOptions tuning.
func NewDomPropagator(views []IntView, cards []*Card) *DomPropagator {
	return NewDomPropagatorWithOptions(views, cards, DefaultOptions())
}

// NewDomPropagatorWithOptions is NewDomPropagator with explicit scratch
// tuning, forwarded to the underlying VarValGraph.
func NewDomPropagatorWithOptions(views []IntView, cards []*Card, opts Options) *DomPropagator {
	return &DomPropagator{views: views, cards: cards, graph: NewVarValGraphWithOptions(views, cards, opts)}
}

func (p *DomPropagator) Views() []IntView { return p.views }
func (p *DomPropagator) Cards() []*Card   { return p.cards }

// Clone copies the propagator onto clonedViews with a deep copy of its
// persistent matching graph, for search-space cloning per §5/§9. The
// cards slice and its Cards are shared with the original.
func (p *DomPropagator) Clone(clonedViews []IntView) *DomPropagator {
	return &DomPropagator{views: clonedViews, cards: p.cards, graph: p.graph.Clone()}
}

// Propagate runs one full matching-repair-and-prune cycle.
func (p *DomPropagator) Propagate() (Status, error) {
	if len(p.cards) == 0 {
		return StatusSubsumed, nil
	}

	p.graph.sync(p.views)

	if err := p.graph.maximumMatching(); err != nil {
		return StatusFailed, err
	}
	if err := p.graph.maximumMatchingCards(); err != nil {
		return StatusFailed, err
	}
	overall, err := p.graph.sccs(p.views)
	if err != nil {
		return StatusFailed, err
	}

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
			return StatusFailed, err
		}
		if ev != MEdNone {
			overall = join(overall, ev)
			for _, v := range p.views {
				if v == c.view {
					selfAliased = true
				}
			}
		}
	}
	if selfAliased {
		overall = join(overall, MEdBounds)
	}

	if allAssigned(p.views) && allCountersSatisfied(p.views, p.cards) {
		return StatusSubsumed, nil
	}
	if overall == MEdNone {
		return StatusFix, nil
	}
	return StatusNoFix, nil
}
