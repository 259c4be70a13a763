package gcc

import "sort"

// boundScratch is the per-propagation sort/compression scratch for Bnd:
// mu orders variable indices ascending by max, nu orders them ascending
// by min (§4.3 step 1's sweep order), and bounds holds the sorted unique
// critical values (each variable's min and max+1, per the classical
// Hall-interval construction).
//
// Grounded on fd_regin.go's maxMatching, which builds an index
// permutation with sort.Slice rather than sorting the variables
// themselves.
type boundScratch struct {
	mu     []int
	nu     []int
	bounds []int
}

func buildBoundScratch(views []IntView) *boundScratch {
	n := len(views)
	s := &boundScratch{
		mu: make([]int, n),
		nu: make([]int, n),
	}
	for i := 0; i < n; i++ {
		s.mu[i] = i
		s.nu[i] = i
	}
	sort.Slice(s.mu, func(a, b int) bool { return views[s.mu[a]].Max() < views[s.mu[b]].Max() })
	sort.Slice(s.nu, func(a, b int) bool { return views[s.nu[a]].Min() < views[s.nu[b]].Min() })

	seen := make(map[int]struct{}, 2*n)
	for _, v := range views {
		seen[v.Min()] = struct{}{}
		seen[v.Max()+1] = struct{}{}
	}
	s.bounds = make([]int, 0, len(seen))
	for b := range seen {
		s.bounds = append(s.bounds, b)
	}
	sort.Ints(s.bounds)

	return s
}
