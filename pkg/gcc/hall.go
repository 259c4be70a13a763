package gcc

import "fmt"

// HallInfo is the scratch slot spec.md's data model names for the
// Hall-interval sweep: the compressed bound value, a union-find parent
// (t), the slot's remaining critical capacity (d), a pointer to the left
// edge of the Hall interval it currently belongs to (h), and the
// tightened bound computed for the slot (newBound). build() sets Bounds,
// and sets T and H to the slot's own bound; D and NewBound stay zero. The
// filtering in ubc/lbc reads only Bounds: it is done with a direct scan
// over candidate intervals rather than a union-find walk — see DESIGN.md
// for why.
type HallInfo struct {
	Bounds   int
	T        int
	D        int
	H        int
	NewBound int
}

// HallEngine implements §4.3's bounds-consistency filtering: it detects
// Hall intervals — value ranges [a,b] where the number of variables
// confined to the interval (min>=a and max<=b) exactly equals the
// interval's total upper-bound capacity (per §8 Invariant 4) — and
// moves the bound of any variable that has one bound inside a saturated
// interval and the other outside it past the interval's edge. lps (built
// from each card's lo) is read only by totalDemand; it plays no part in
// the UBC/LBC saturation test.
type HallEngine struct {
	cards   []*Card
	lps     PartialSum
	ups     PartialSum
	info    []HallInfo
	scratch *boundScratch
}

// NewHallEngine returns an engine ready for build().
func NewHallEngine() *HallEngine { return &HallEngine{} }

// build (re)constructs lps/ups over the value range spanned by cards,
// per §4.3 step 3. views supplies §4.3 step 1/2's mu/nu orderings
// (buildBoundScratch), used by ubc/lbc to sweep variables in ascending-
// max/ascending-min order; its bounds (each variable's min and max+1)
// are also folded into the same candidate-interval set as the
// cardinality values themselves, so a Hall interval whose edge falls
// exactly on a variable's bound (rather than on a cardinality value) is
// still a candidate the UBC/LBC sweep considers. Values with no Card
// entry that lie between the smallest and largest card value are treated
// as unrestricted: no mandatory lower bound (lo contributes 0) and no
// effective upper cap within this propagation (hi contributes n, more
// than enough variables could ever need it). Values outside that range
// are not covered by lps/ups and contribute no capacity at all.
func (h *HallEngine) build(cards []*Card, views []IntView, n int) {
	if len(views) > 0 {
		h.scratch = buildBoundScratch(views)
	} else {
		h.scratch = nil
	}
	h.cards = cards
	minV, maxV := cards[0].Value(), cards[0].Value()
	for _, c := range cards {
		if c.Value() < minV {
			minV = c.Value()
		}
		if c.Value() > maxV {
			maxV = c.Value()
		}
	}
	byValue := make(map[int]*Card, len(cards))
	for _, c := range cards {
		byValue[c.Value()] = c
	}
	h.lps.build(minV, maxV, func(v int) int {
		if c, ok := byValue[v]; ok {
			return c.Min()
		}
		return 0
	})
	h.ups.build(minV, maxV, func(v int) int {
		if c, ok := byValue[v]; ok {
			return c.Max()
		}
		return n
	})

	seen := make(map[int]struct{}, 2*len(cards))
	for _, c := range cards {
		seen[c.Value()] = struct{}{}
		seen[c.Value()+1] = struct{}{}
	}
	if h.scratch != nil {
		for _, b := range h.scratch.bounds {
			seen[b] = struct{}{}
		}
	}
	h.info = make([]HallInfo, 0, len(seen))
	for b := range seen {
		h.info = append(h.info, HallInfo{Bounds: b, T: b, H: b})
	}
}

// totalDemand returns Σlo_j across every card, via the lps partial sum —
// the left side of §8 Invariant 3 (Σlo_j <= n <= Σhi_j).
func (h *HallEngine) totalDemand() int {
	return h.lps.sumRange(h.lps.minValue(), h.lps.maxValue())
}

// totalCapacity returns Σhi_j across every card explicitly listed (values
// with no card entry contribute n to ups.build and would otherwise
// dominate the sum, so this sums the cards directly instead of querying
// ups).
func (h *HallEngine) totalCapacity() int {
	total := 0
	for _, c := range h.cards {
		total += c.Max()
	}
	return total
}

func confinedCount(views []IntView, a, b int) int {
	cnt := 0
	for _, v := range views {
		if v.Min() >= a && v.Max() <= b {
			cnt++
		}
	}
	return cnt
}

// sweepOrder returns the variable indices in order, preferring order
// when non-nil (mu for ubc's ascending-max sweep, nu for lbc's
// ascending-min sweep per §4.3 step 1) and falling back to positional
// order when scratch was not built (no views to sweep by).
func sweepOrder(order []int, n int) []int {
	if order != nil {
		return order
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// ubc sweeps candidate intervals [a,b] over the compressed bound set and
// raises the min of every variable whose min lies inside a saturated
// interval and whose max lies beyond it, past the interval's right edge.
// Returns the joined ModEvent, or an error wrapping ErrCapacityOverflow
// when an interval holds more confined variables than its capacity
// (ErrFailed when a push empties a domain).
func (h *HallEngine) ubc(views []IntView) (ModEvent, error) {
	overall := MEdNone
	changed := true
	for pass := 0; changed && pass < len(views)+1; pass++ {
		changed = false
		for _, a := range h.info {
			for _, b := range h.info {
				if b.Bounds < a.Bounds {
					continue
				}
				capacity := h.ups.sumRange(a.Bounds, b.Bounds)
				need := confinedCount(views, a.Bounds, b.Bounds)
				if need > capacity {
					return MEdFailed, fmt.Errorf("%w: interval [%d,%d] needs %d, capacity %d", ErrCapacityOverflow, a.Bounds, b.Bounds, need, capacity)
				}
				if capacity == 0 || need != capacity {
					continue
				}
				tracef("ubc: hall interval [%d,%d] saturated (need=%d capacity=%d)", a.Bounds, b.Bounds, need, capacity)
				newMin := h.ups.skipNonNullElementsRight(b.Bounds + 1)
				var mu []int
				if h.scratch != nil {
					mu = h.scratch.mu
				}
				for _, idx := range sweepOrder(mu, len(views)) {
					v := views[idx]
					if v.Min() < a.Bounds || v.Min() > b.Bounds {
						continue
					}
					if v.Min() >= a.Bounds && v.Max() <= b.Bounds {
						continue // confined: this variable *is* the demand, not an intruder
					}
					if v.Min() >= newMin {
						continue
					}
					ev, err := v.Gq(newMin)
					if err != nil {
						return MEdFailed, fmt.Errorf("%w: pushing min past hall interval [%d,%d]", ErrFailed, a.Bounds, b.Bounds)
					}
					if ev != MEdNone {
						overall = join(overall, ev)
						changed = true
					}
				}
			}
		}
	}
	return overall, nil
}

// lbc is ubc's mirror image: pulls the max of every variable whose max
// lies inside a saturated interval and whose min lies below it, under
// the interval's left edge. Skipped entirely by
// BndPropagator when skip_lbc holds (all lo_j == 0).
func (h *HallEngine) lbc(views []IntView) (ModEvent, error) {
	overall := MEdNone
	changed := true
	for pass := 0; changed && pass < len(views)+1; pass++ {
		changed = false
		for _, a := range h.info {
			for _, b := range h.info {
				if b.Bounds < a.Bounds {
					continue
				}
				capacity := h.ups.sumRange(a.Bounds, b.Bounds)
				need := confinedCount(views, a.Bounds, b.Bounds)
				if capacity == 0 || need != capacity {
					continue
				}
				tracef("lbc: hall interval [%d,%d] saturated (need=%d capacity=%d)", a.Bounds, b.Bounds, need, capacity)
				newMax := h.ups.skipNonNullElementsLeft(a.Bounds - 1)
				var nu []int
				if h.scratch != nil {
					nu = h.scratch.nu
				}
				for _, idx := range sweepOrder(nu, len(views)) {
					v := views[idx]
					if v.Max() < a.Bounds || v.Max() > b.Bounds {
						continue
					}
					if v.Min() >= a.Bounds && v.Max() <= b.Bounds {
						continue
					}
					if v.Max() <= newMax {
						continue
					}
					ev, err := v.Lq(newMax)
					if err != nil {
						return MEdFailed, fmt.Errorf("%w: pulling max below hall interval [%d,%d]", ErrFailed, a.Bounds, b.Bounds)
					}
					if ev != MEdNone {
						overall = join(overall, ev)
						changed = true
					}
				}
			}
		}
	}
	return overall, nil
}
