package gcc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValPropagatorPrunesOnSaturation(t *testing.T) {
	views := []IntView{
		NewDomainVar(0, "x0", 1, 1),
		NewDomainVar(1, "x1", 1, 2),
		NewDomainVar(2, "x2", 1, 2),
	}
	cards := []*Card{NewFixedCard(1, 1, 1), NewFixedCard(2, 0, 2)}
	p := NewValPropagator(views, cards)

	status, err := p.Propagate()
	require.NoError(t, err)
	require.NotEqual(t, StatusFailed, status)

	require.False(t, views[1].Contains(1), "x1 should have 1 pruned once x0's fix saturates value 1")
	require.False(t, views[2].Contains(1), "x2 should have 1 pruned once x0's fix saturates value 1")
}

func TestValPropagatorForcesOnExactCandidateCount(t *testing.T) {
	views := []IntView{
		NewDomainVar(0, "x0", 1, 2),
		NewDomainVar(1, "x1", 2, 3),
		NewDomainVar(2, "x2", 2, 3),
	}
	cards := []*Card{NewFixedCard(1, 1, 1)}
	p := NewValPropagator(views, cards)

	status, err := p.Propagate()
	require.NoError(t, err)
	require.NotEqual(t, StatusFailed, status)
	require.True(t, views[0].Assigned())
	require.Equal(t, 1, views[0].Min())
}

func TestValPropagatorSubsumedWhenAllAssigned(t *testing.T) {
	views := []IntView{
		NewDomainVar(0, "x0", 1, 1),
		NewDomainVar(1, "x1", 2, 2),
	}
	cards := []*Card{NewFixedCard(1, 1, 1), NewFixedCard(2, 1, 1)}
	p := NewValPropagator(views, cards)

	status, err := p.Propagate()
	require.NoError(t, err)
	require.Equal(t, StatusSubsumed, status)
}

func TestValPropagatorFailsOnOverflow(t *testing.T) {
	views := []IntView{
		NewDomainVar(0, "x0", 1, 1),
		NewDomainVar(1, "x1", 1, 1),
	}
	cards := []*Card{NewFixedCard(1, 0, 1)}
	p := NewValPropagator(views, cards)

	status, err := p.Propagate()
	require.Error(t, err)
	require.Equal(t, StatusFailed, status)
}
