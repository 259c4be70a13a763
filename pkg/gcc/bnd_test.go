package gcc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBndPropagatorScenario2(t *testing.T) {
	views := []IntView{
		NewDomainVar(0, "x0", 1, 2),
		NewDomainVar(1, "x1", 1, 2),
		NewDomainVar(2, "x2", 1, 3),
	}
	cards := []*Card{NewFixedCard(1, 1, 1), NewFixedCard(2, 1, 1), NewFixedCard(3, 1, 1)}
	p := NewBndPropagator(views, cards)

	status, err := p.Propagate()
	require.NoError(t, err)
	require.NotEqual(t, StatusFailed, status)
	require.Equal(t, 3, views[2].Min())
	require.Equal(t, 3, views[2].Max())
}

func TestBndPropagatorScenario4Fails(t *testing.T) {
	views := []IntView{
		NewDomainVar(0, "x0", 1, 2),
		NewDomainVar(1, "x1", 1, 2),
		NewDomainVar(2, "x2", 1, 2),
	}
	cards := []*Card{NewFixedCard(1, 0, 1), NewFixedCard(2, 0, 1)}
	p := NewBndPropagator(views, cards)

	status, err := p.Propagate()
	require.Error(t, err)
	require.Equal(t, StatusFailed, status)
}

func TestBndPropagatorEmptyCardListIsNoOp(t *testing.T) {
	views := []IntView{NewDomainVar(0, "x0", 1, 5)}
	p := NewBndPropagator(views, nil)

	status, err := p.Propagate()
	require.NoError(t, err)
	require.Equal(t, StatusSubsumed, status)
}

func TestBndPropagatorViewCardTightensToCandidateRange(t *testing.T) {
	views := []IntView{
		NewDomainVar(0, "x0", 1, 5),
		NewDomainVar(1, "x1", 1, 5),
		NewDomainVar(2, "x2", 1, 5),
		NewDomainVar(3, "x3", 1, 5),
	}
	kView := NewDomainVar(100, "k1", 0, 4)
	card := NewViewCard(1, kView)
	p := NewBndPropagator(views, []*Card{card})

	status, err := p.Propagate()
	require.NoError(t, err)
	require.NotEqual(t, StatusFailed, status)
	require.Equal(t, 0, card.Min())
	require.Equal(t, 4, card.Max())
}
