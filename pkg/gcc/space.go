package gcc

// Space is a minimal stand-in for the surrounding constraint framework's
// search space (explicitly out of scope per §1): an arena-style registry
// of DomainVars that cmd/gcc-demo can post propagators against. Mirrors the teacher's FDStore as
// the thing constraints are posted onto, stripped of goal/search
// machinery this package does not need.
type Space struct {
	vars []*DomainVar
}

// NewSpace returns an empty space.
func NewSpace() *Space { return &Space{} }

// NewVar allocates and registers a new variable with domain [lo, hi].
func (s *Space) NewVar(name string, lo, hi int) *DomainVar {
	v := NewDomainVar(len(s.vars), name, lo, hi)
	s.vars = append(s.vars, v)
	return v
}

// Vars returns every variable registered in the space, in allocation
// order.
func (s *Space) Vars() []*DomainVar { return s.vars }

// Views returns every variable as an IntView, the slice shape the
// propagator constructors take.
func (s *Space) Views() []IntView {
	out := make([]IntView, len(s.vars))
	for i, v := range s.vars {
		out[i] = v
	}
	return out
}

// Clone returns a space with freshly cloned copies of every variable,
// for the backtracking/parallel-search cloning contract of §5.
func (s *Space) Clone() *Space {
	out := &Space{vars: make([]*DomainVar, len(s.vars))}
	for i, v := range s.vars {
		out.vars[i] = v.Clone()
	}
	return out
}
