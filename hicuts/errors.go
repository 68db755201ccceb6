package hicuts

import "errors"

var (
	// ErrAlreadyCut indicates cut or unequalCut was called on a node that
	// has already been partitioned.
	ErrAlreadyCut = errors.New("hicuts: node has already been cut")

	// ErrTooFewCutPoints indicates unequalCut was asked to cut with fewer
	// than two cut points.
	ErrTooFewCutPoints = errors.New("hicuts: fewer than two cut points")

	// ErrNeedRand indicates a config was built without a random source;
	// dimension tie-breaking has no deterministic fallback, so a caller
	// must supply one explicitly via WithRand.
	ErrNeedRand = errors.New("hicuts: dimension tie-breaking needs a *rand.Rand, see WithRand")

	// ErrNoRules indicates BuildTree was asked to build a tree over an
	// empty rule set.
	ErrNoRules = errors.New("hicuts: no rules given")

	// ErrDimensionNotCuttable indicates the chosen dimension's interval
	// already has zero width (a single value), so spec §3's invariant
	// num_cuts ≤ b−a leaves no room for even one more cut there. The
	// node stays a leaf rather than being cut into a child identical to
	// itself.
	ErrDimensionNotCuttable = errors.New("hicuts: chosen dimension has zero width")
)
