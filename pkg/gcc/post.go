package gcc

import (
	"fmt"

	"github.com/pkg/errors"
)

// validatePost checks §4.7's posting invariants: Σlo_j <= n <= Σhi_j,
// every v_j distinct, and every lo_j/hi_j non-negative with lo_j <= hi_j.
// Grounded on fd.go's NewFDStoreWithDomain validate-then-construct style.
func validatePost(n int, cards []*Card) error {
	seen := make(map[int]struct{}, len(cards))
	sumLo, sumHi := 0, 0
	for _, c := range cards {
		if c.Min() < 0 || c.Max() < 0 {
			return errors.Wrapf(ErrPostInvalid, "value %d: negative bound", c.Value())
		}
		if c.Min() > c.Max() {
			return errors.Wrapf(ErrPostInvalid, "value %d: lo %d > hi %d", c.Value(), c.Min(), c.Max())
		}
		if _, dup := seen[c.Value()]; dup {
			return errors.Wrapf(ErrPostInvalid, "value %d: duplicate cardinality entry", c.Value())
		}
		seen[c.Value()] = struct{}{}
		sumLo += c.Min()
		sumHi += c.Max()
	}
	if sumLo > n {
		return errors.Wrapf(ErrPostInvalid, "sum of lo (%d) exceeds n (%d)", sumLo, n)
	}
	if len(cards) > 0 && sumHi < n {
		return errors.Wrapf(ErrPostInvalid, "sum of hi (%d) below n (%d)", sumHi, n)
	}
	return nil
}

// PostVal validates and constructs a ValPropagator, running it to an
// initial fixpoint. Posted unconditionally per §4.7: Val never fails to
// post on a structurally valid cardinality list.
func PostVal(views []IntView, cards []*Card) (*ValPropagator, Status, error) {
	if err := validatePost(len(views), cards); err != nil {
		return nil, StatusFailed, err
	}
	p := NewValPropagator(views, cards)
	status, err := p.Propagate()
	if err != nil {
		return nil, StatusFailed, err
	}
	return p, status, nil
}

// PostBnd validates and constructs a BndPropagator. It always posts Bnd
// alone and never runs Val. Bnd only moves variable bounds, so it does not
// remove an interior value that Val would remove once that value's
// cardinality ceiling is reached.
func PostBnd(views []IntView, cards []*Card) (*BndPropagator, Status, error) {
	if err := validatePost(len(views), cards); err != nil {
		return nil, StatusFailed, err
	}
	p := NewBndPropagator(views, cards)
	status, err := p.Propagate()
	if err != nil {
		return nil, StatusFailed, err
	}
	return p, status, nil
}

// PostDom validates and constructs a DomPropagator, the strongest
// variant per §4.7.
func PostDom(views []IntView, cards []*Card) (*DomPropagator, Status, error) {
	if err := validatePost(len(views), cards); err != nil {
		return nil, StatusFailed, err
	}
	p := NewDomPropagator(views, cards)
	status, err := p.Propagate()
	if err != nil {
		return nil, StatusFailed, err
	}
	return p, status, nil
}

// costFor reports the worst-case time class per §6's contract table. d is
// the largest domain size among views.
func costFor(kind string, views []IntView) (Cost, error) {
	n := len(views)
	d := 0
	for _, v := range views {
		if v.Size() > d {
			d = v.Size()
		}
	}
	switch kind {
	case "val":
		return CostHighLinear, nil
	case "bnd":
		return CostLowLinear, nil
	case "dom":
		switch {
		case d < 6:
			return CostLowLinear, nil
		case d < n/2:
			return CostHighLinear, nil
		case d < n*n:
			return CostLowQuadratic, nil
		default:
			return CostHighCubic, nil
		}
	default:
		return 0, fmt.Errorf("%w: unknown propagator kind %q", ErrPostInvalid, kind)
	}
}

// Cost reports ValPropagator's worst-case time class: high-linear.
func (p *ValPropagator) Cost() Cost { c, _ := costFor("val", p.views); return c }

// Cost reports BndPropagator's worst-case time class: dynamic low-linear.
func (p *BndPropagator) Cost() Cost { c, _ := costFor("bnd", p.views); return c }

// Cost reports DomPropagator's worst-case time class per the
// domain-size-dependent table in §6.
func (p *DomPropagator) Cost() Cost { c, _ := costFor("dom", p.views); return c }
