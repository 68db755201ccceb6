package geom

import "errors"

// Sentinel errors for the geom package. Callers branch on these with
// errors.Is rather than string comparison.
var (
	// ErrBadInterval indicates an Interval was constructed with Low > High.
	ErrBadInterval = errors.New("geom: interval low exceeds high")

	// ErrDimensionOutOfRange indicates a Dimension index outside [0, NumDims).
	ErrDimensionOutOfRange = errors.New("geom: dimension out of range")

	// ErrDimensionMismatch indicates NewBox was given a number of intervals
	// other than NumDims. Equal and Collide do not return it; they report
	// false for boxes of different dimensionality.
	ErrDimensionMismatch = errors.New("geom: dimension count mismatch")

	// ErrTooFewCutPoints names the case of fewer than two cut points.
	// UnequalCut does not return it: it treats that case as a no-op and
	// returns a nil slice and a nil error.
	ErrTooFewCutPoints = errors.New("geom: fewer than two cut points")
)
