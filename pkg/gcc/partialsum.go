package gcc

// PartialSum is a prefix-sum structure over a contiguous integer value
// range, built once per propagation from a vector of per-value capacities
// (a Card's lo or hi field), answering two O(1) queries after build:
// the total capacity in a value interval, and the next/previous value
// with nonzero capacity. No allocation happens during a query; build is
// the only place that allocates.
type PartialSum struct {
	lo, hi int   // covered range [lo, hi]
	sum    []int // sum[i] = capacity(lo .. lo+i-1), length hi-lo+2
	right  []int // right[i] = smallest v >= lo+i with capacity(v) > 0, or hi+1
	left   []int // left[i]  = largest  v <= lo+i with capacity(v) > 0, or lo-1
}

// build constructs the structure over [lo,hi] from cap(v), the capacity
// assigned to value v (out-of-range v must return 0).
func (p *PartialSum) build(lo, hi int, cap func(v int) int) {
	if hi < lo {
		hi = lo - 1 // empty range, one-wide sentinel below
	}
	n := hi - lo + 1
	if n < 0 {
		n = 0
	}
	p.lo, p.hi = lo, hi
	p.sum = make([]int, n+1)
	for i := 0; i < n; i++ {
		p.sum[i+1] = p.sum[i] + cap(lo+i)
	}

	p.right = make([]int, n+1)
	next := hi + 1
	for i := n - 1; i >= 0; i-- {
		if cap(lo+i) > 0 {
			next = lo + i
		}
		p.right[i] = next
	}
	p.right[n] = hi + 1

	p.left = make([]int, n+1)
	prev := lo - 1
	for i := 0; i < n; i++ {
		if cap(lo+i) > 0 {
			prev = lo + i
		}
		p.left[i] = prev
	}
	p.left[n] = prev
}

func (p *PartialSum) clampIndex(v int) int {
	i := v - p.lo
	if i < 0 {
		return 0
	}
	if i > p.hi-p.lo+1 {
		return p.hi - p.lo + 1
	}
	return i
}

// minValue returns the lowest value in the covered range.
func (p *PartialSum) minValue() int { return p.lo }

// maxValue returns the highest value in the covered range.
func (p *PartialSum) maxValue() int { return p.hi }

// sumRange returns the total capacity assigned to values in [a,b], clamped to
// the covered range. Empty or out-of-range intervals return 0.
func (p *PartialSum) sumRange(a, b int) int {
	if b < a || b < p.lo || a > p.hi {
		return 0
	}
	ai := p.clampIndex(a)
	bi := p.clampIndex(b + 1)
	return p.sum[bi] - p.sum[ai]
}

// skipNonNullElementsRight returns the smallest value >= a with nonzero
// capacity, or hi+1 if none exists.
func (p *PartialSum) skipNonNullElementsRight(a int) int {
	if a < p.lo {
		a = p.lo
	}
	i := p.clampIndex(a)
	return p.right[i]
}

// skipNonNullElementsLeft returns the largest value <= a with nonzero
// capacity, or lo-1 if none exists.
func (p *PartialSum) skipNonNullElementsLeft(a int) int {
	if a < p.lo {
		return p.lo - 1
	}
	if a > p.hi {
		a = p.hi
	}
	i := p.clampIndex(a)
	return p.left[i]
}
