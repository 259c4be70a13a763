package gcc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDomPropagatorSubsumedWhenAllAssigned(t *testing.T) {
	views := newVars3([][]int{{1}, {2}})
	cards := []*Card{NewFixedCard(1, 1, 1), NewFixedCard(2, 1, 1)}
	p := NewDomPropagator(views, cards)

	status, err := p.Propagate()
	require.NoError(t, err)
	require.Equal(t, StatusSubsumed, status)
}

func TestDomPropagatorIdempotent(t *testing.T) {
	views := newVars3([][]int{{1, 3}, {1, 3}, {1, 2, 3}})
	cards := []*Card{NewFixedCard(1, 2, 2), NewFixedCard(2, 0, 1), NewFixedCard(3, 1, 1)}
	p := NewDomPropagator(views, cards)

	_, err := p.Propagate()
	require.NoError(t, err)

	before := domainValues(views[2])
	status, err := p.Propagate()
	require.NoError(t, err)
	require.NotEqual(t, StatusFailed, status)
	require.Equal(t, before, domainValues(views[2]))
}

// TestDomPropagatorScenario3NoPruning drives the lo-rebalancing path:
// maximumMatching's greedy first-fit can pile all three variables onto
// value 1 (room up to hi=3), leaving value 2 below its lo=1 floor.
// maximumMatchingCards must reroute one variable back to value 2 rather
// than failing, and the resulting matching must leave every domain
// untouched — a clean fixpoint, no pruning.
func TestDomPropagatorScenario3NoPruning(t *testing.T) {
	views := newVars3([][]int{{1, 2}, {1, 2}, {1, 2}})
	cards := []*Card{NewFixedCard(1, 1, 3), NewFixedCard(2, 1, 3)}
	p := NewDomPropagator(views, cards)

	status, err := p.Propagate()
	require.NoError(t, err)
	require.NotEqual(t, StatusFailed, status)
	for _, v := range views {
		require.Equal(t, []int{1, 2}, domainValues(v))
	}
}

// TestDomPropagatorScenario4Fails: three variables, but the two values'
// combined hi capacity (1+1=2) cannot cover all three, so no matching
// exists regardless of consistency level.
func TestDomPropagatorScenario4Fails(t *testing.T) {
	views := newVars3([][]int{{1, 2}, {1, 2}, {1, 2}})
	cards := []*Card{NewFixedCard(1, 0, 1), NewFixedCard(2, 0, 1)}
	p := NewDomPropagator(views, cards)

	status, err := p.Propagate()
	require.Error(t, err)
	require.Equal(t, StatusFailed, status)
}

func TestDomPropagatorCloneIsIndependent(t *testing.T) {
	views := newVars3([][]int{{1, 2}, {1, 2}})
	cards := []*Card{NewFixedCard(1, 0, 2), NewFixedCard(2, 0, 2)}
	p := NewDomPropagator(views, cards)
	_, err := p.Propagate()
	require.NoError(t, err)

	clonedViews := []IntView{views[0].(*DomainVar).Clone(), views[1].(*DomainVar).Clone()}
	clone := p.Clone(clonedViews)
	require.NotSame(t, p.graph, clone.graph)
}
