package geom

// Box is the Cartesian product of one Interval per dimension, in the
// canonical order (SrcPort, DstPort, SrcAddr, DstAddr). It is the
// hyper-rectangle a Rule or a TreeNode occupies in classification space.
type Box struct {
	dims []Interval
}

// NewBox builds a Box from exactly NumDims intervals, in canonical order.
func NewBox(dims []Interval) (Box, error) {
	if len(dims) != NumDims {
		return Box{}, ErrDimensionMismatch
	}
	cp := make([]Interval, len(dims))
	copy(cp, dims)
	return Box{dims: cp}, nil
}

// Interval returns the Interval this Box occupies along d.
func (b Box) Interval(d Dimension) Interval {
	return b.dims[d]
}

// NumDims reports how many dimensions this Box spans (always geom.NumDims
// for a validly constructed Box).
func (b Box) NumDims() int {
	return len(b.dims)
}

// Equal reports per-interval equality. Two Box values of different
// dimensionality are never equal.
func (b Box) Equal(other Box) bool {
	if len(b.dims) != len(other.dims) {
		return false
	}
	for i := range b.dims {
		if !b.dims[i].Equal(other.dims[i]) {
			return false
		}
	}
	return true
}

// Collide reports whether b and other overlap in every dimension. Two
// boxes that are disjoint in even one dimension do not collide.
//
// Collide is symmetric: b.Collide(other) == other.Collide(b).
func (b Box) Collide(other Box) bool {
	if len(b.dims) != len(other.dims) {
		return false
	}
	for i := range b.dims {
		if !b.dims[i].Overlaps(other.dims[i]) {
			return false
		}
	}
	return true
}

// Cut partitions the interval at dimension d into n+1 adjacent, disjoint
// pieces and returns one Box per piece, identical to the receiver in every
// other dimension.
//
// With L = floor((high-low)/(n+1)), the first n pieces each hold L+1
// values: piece i spans [low+i*(L+1), low+i*(L+1)+L]. The last piece
// absorbs the remainder and spans [low+n*(L+1), high]. Adjacent pieces
// never share a value because each successive piece starts at the
// previous piece's end plus one.
//
// Cut does not validate n against the interval's width; callers (hicuts's
// determine-number-of-cuts pass) are responsible for keeping n*(L+1) <=
// high-low so that no piece goes empty.
func (b Box) Cut(d Dimension, n int) ([]Box, error) {
	if !d.Valid() {
		return nil, ErrDimensionOutOfRange
	}
	iv := b.dims[d]
	pieceLen := iv.Width() / Value(n+1)

	result := make([]Box, 0, n+1)
	start := iv.Low
	for i := 0; i < n; i++ {
		end := start + pieceLen
		result = append(result, b.withInterval(d, Interval{Low: start, High: end}))
		start = end + 1
	}
	result = append(result, b.withInterval(d, Interval{Low: start, High: iv.High}))
	return result, nil
}

// UnequalCut partitions the interval at dimension d at the given strictly
// increasing cut points (each inside the interval), producing pieces
// [low, p0], [p0+1, p1], ..., [p_{k-1}+1, high]. The trailing piece is
// omitted when the last cut point equals high.
//
// Per spec, fewer than two cut points is not an error: UnequalCut returns
// a nil slice and a nil error, leaving it to the caller (hicuts's tree
// builder) to fall back to another cut strategy.
func (b Box) UnequalCut(d Dimension, cutPoints []Value) ([]Box, error) {
	if !d.Valid() {
		return nil, ErrDimensionOutOfRange
	}
	if len(cutPoints) < 2 {
		return nil, nil
	}
	iv := b.dims[d]
	result := make([]Box, 0, len(cutPoints)+1)
	start := iv.Low
	var end Value
	for _, cp := range cutPoints {
		end = cp
		result = append(result, b.withInterval(d, Interval{Low: start, High: end}))
		start = end + 1
	}
	if end < iv.High {
		result = append(result, b.withInterval(d, Interval{Low: start, High: iv.High}))
	}
	return result, nil
}

// withInterval returns a copy of b with dimension d replaced.
func (b Box) withInterval(d Dimension, iv Interval) Box {
	cp := make([]Interval, len(b.dims))
	copy(cp, b.dims)
	cp[d] = iv
	return Box{dims: cp}
}
