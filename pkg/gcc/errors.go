package gcc

import "errors"

// Sentinel errors returned by the propagators in this package. Deeper
// context (which value, which interval) is attached with fmt.Errorf's %w
// during propagation; post-time validation failures are wrapped with
// github.com/pkg/errors.Wrapf.
var (
	// ErrFailed indicates a propagator reached an inconsistent state:
	// some variable's domain became empty, or no matching value exists
	// for a variable.
	ErrFailed = errors.New("gcc: propagation failed")

	// ErrPostInvalid indicates the invariants checked at post time did
	// not hold: sum(lo) > n, n > sum(hi), duplicate values, or a
	// negative count.
	ErrPostInvalid = errors.New("gcc: invalid cardinality specification")

	// ErrCapacityOverflow indicates more variables are forced to a value
	// than its hi bound allows.
	ErrCapacityOverflow = errors.New("gcc: cardinality upper bound exceeded")

	// ErrCapacityUnderflow indicates fewer candidates remain for a value
	// than its lo bound requires.
	ErrCapacityUnderflow = errors.New("gcc: cardinality lower bound unreachable")

	// ErrInfeasibleCard indicates a view-backed cardinality's own domain
	// became inconsistent (lo > hi after tightening).
	ErrInfeasibleCard = errors.New("gcc: cardinality view became infeasible")
)
