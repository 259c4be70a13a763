package gcc

import "testing"

func TestPartialSumRangeAndSkip(t *testing.T) {
	cap := map[int]int{0: 0, 1: 5, 2: 0}
	var p PartialSum
	p.build(0, 2, func(v int) int { return cap[v] })

	if got := p.sumRange(0, 2); got != 5 {
		t.Fatalf("sumRange(0,2) = %d, want 5", got)
	}
	if got := p.sumRange(0, 0); got != 0 {
		t.Fatalf("sumRange(0,0) = %d, want 0", got)
	}
	if got := p.skipNonNullElementsRight(0); got != 1 {
		t.Fatalf("skipNonNullElementsRight(0) = %d, want 1", got)
	}
	if got := p.skipNonNullElementsRight(2); got != 3 {
		t.Fatalf("skipNonNullElementsRight(2) = %d, want 3 (hi+1)", got)
	}
	if got := p.skipNonNullElementsLeft(2); got != 1 {
		t.Fatalf("skipNonNullElementsLeft(2) = %d, want 1", got)
	}
	if got := p.skipNonNullElementsLeft(0); got != -1 {
		t.Fatalf("skipNonNullElementsLeft(0) = %d, want -1 (lo-1)", got)
	}
}

func TestPartialSumEmptyRange(t *testing.T) {
	var p PartialSum
	p.build(5, 5, func(v int) int { return 0 })
	if got := p.sumRange(5, 5); got != 0 {
		t.Fatalf("sumRange = %d, want 0", got)
	}
	if got := p.skipNonNullElementsRight(5); got != 6 {
		t.Fatalf("skipNonNullElementsRight = %d, want 6", got)
	}
}
