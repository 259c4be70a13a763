package gcc

import "testing"

// Scenario 5's cardinalities force count(2) == 0 in every solution: lo(1)
// + lo(3) == 2 + 1 == n == 3, leaving no slack for value 2 at all, while
// value 1 remains consistent for x[2] via the witness assignment
// [1, 3, 1]. Domain consistency must therefore prune value 2 from x[2],
// not value 1; see DESIGN.md for the derivation.
func TestVarValGraphScenario5PrunesValueTwo(t *testing.T) {
	views := newVars3([][]int{{1, 3}, {1, 3}, {1, 2, 3}})
	cards := []*Card{
		NewFixedCard(1, 2, 2),
		NewFixedCard(2, 0, 1),
		NewFixedCard(3, 1, 1),
	}
	p := NewDomPropagator(views, cards)
	status, err := p.Propagate()
	if err != nil {
		t.Fatalf("Propagate: %v", err)
	}
	if status == StatusFailed {
		t.Fatalf("Propagate: unexpected failure")
	}
	if views[2].Contains(2) {
		t.Fatalf("x[2] still contains 2, want it pruned")
	}
	if !views[2].Contains(1) || !views[2].Contains(3) {
		t.Fatalf("x[2] = %v, want {1,3} retained", domainValues(views[2]))
	}
}

func TestVarValGraphMatchingSaturatesHiCapacity(t *testing.T) {
	views := newVars3([][]int{{1, 2}, {1, 2}, {1, 2}})
	cards := []*Card{
		NewFixedCard(1, 0, 2),
		NewFixedCard(2, 0, 2),
	}
	g := NewVarValGraph(views, cards)
	if err := g.maximumMatching(); err != nil {
		t.Fatalf("maximumMatching: %v", err)
	}
	for i := range g.vars {
		if g.vars[i].matched == unmatchedSentinel {
			t.Fatalf("var %d left unmatched", i)
		}
	}
}

func newVars3(doms [][]int) []IntView {
	out := make([]IntView, len(doms))
	for i, d := range doms {
		out[i] = NewDomainVarFromValues(i, "x", d)
	}
	return out
}

func domainValues(v IntView) []int {
	var out []int
	v.Each(func(x int) { out = append(out, x) })
	return out
}
