// Package gcc implements the Global Cardinality Constraint propagator
// family for finite-domain constraint programming.
//
// Given variables x[0..n) and cardinality specifications k[0..m) — each
// pairing a value with a required occurrence count range [lo,hi] — the
// propagators in this package narrow the variables' domains so that every
// remaining assignment satisfies, for every specified value v,
// lo <= |{i : x[i] = v}| <= hi.
//
// Three propagators of increasing strength are provided:
//
//   - Val: value-consistent. Removes a value from every variable once its
//     cardinality ceiling is reached.
//   - Bnd: bounds-consistent. Narrows variable bounds via Hall-interval
//     detection over the cardinality lower/upper sums.
//   - Dom: domain-consistent (arc-consistent). Maintains an incremental
//     bipartite b-matching between variables and values plus a strongly
//     connected component analysis to prune every unsupported edge.
//
// Cardinalities may themselves be backed by an IntView (IsView() true on
// the Card), in which case the propagator also tightens the cardinality's
// own bounds.
//
// This package implements only the propagator core: the partial-sum
// capacity structures, the Hall-interval engine, and the incremental
// matching/SCC machinery. It does not implement a general constraint
// store, a search engine, or a modeling surface — those are the
// surrounding framework's responsibility; gcc consumes IntView, whose
// mutators report a ModEvent, and each Propagate call returns a Status,
// as described in SPEC_FULL.md.
package gcc
