package rule

import (
	"sort"

	"github.com/arnegrau/hicuts/geom"
)

// NumDistinctRulesInDim counts how many rules in rs have an interval along
// d that no other rule's interval overlaps. It sorts a copy of rs
// ascending by interval-low in d, then sweeps: the first rule is distinct
// iff its end is strictly less than the next rule's start; an interior
// rule i is distinct iff its start exceeds the running maximum end of
// every earlier rule and its end is strictly less than the next rule's
// start; the last rule is distinct iff its start exceeds the running
// maximum end of every earlier rule.
func NumDistinctRulesInDim(d geom.Dimension, rs []*Rule) int {
	n := len(rs)
	if n == 0 {
		return 0
	}
	sorted := make([]*Rule, n)
	copy(sorted, rs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Box.Interval(d).Low < sorted[j].Box.Interval(d).Low
	})

	count := 0
	runningMaxEnd := sorted[0].Box.Interval(d).High
	for i := 0; i < n; i++ {
		iv := sorted[i].Box.Interval(d)
		isLast := i == n-1

		exceedsPriorMax := i == 0 || iv.Low > runningMaxEnd
		var beatsNext bool
		if isLast {
			beatsNext = true
		} else {
			beatsNext = iv.High < sorted[i+1].Box.Interval(d).Low
		}

		if exceedsPriorMax && beatsNext {
			count++
		}

		if i > 0 && iv.High > runningMaxEnd {
			runningMaxEnd = iv.High
		}
	}
	return count
}

// CutPoints returns the distinct interval endpoints of rs projected onto
// dimension d, clipped to frame's bound on that dimension, deduplicated
// and sorted ascending. The result is meant to be passed straight to
// geom.Box.UnequalCut.
func CutPoints(d geom.Dimension, rs []*Rule, frame geom.Box) []geom.Value {
	bound := frame.Interval(d)
	seen := make(map[geom.Value]struct{}, len(rs)*2)
	var points []geom.Value

	add := func(v geom.Value) {
		if v < bound.Low || v > bound.High {
			return
		}
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		points = append(points, v)
	}

	for _, r := range rs {
		iv := r.Box.Interval(d)
		add(iv.Low)
		add(iv.High)
	}
	sort.Slice(points, func(i, j int) bool { return points[i] < points[j] })
	return points
}

// IsShadowed reports whether earlier fully covers r within frame: for
// every dimension, earlier's interval intersected with frame contains r's
// interval intersected with frame, and earlier's protocol covers r's
// (equal, or earlier is Wildcard). This is the exact anti-redundancy test
// add_rule runs before admitting a candidate rule into a node.
func IsShadowed(earlier, r *Rule, frame geom.Box) bool {
	if earlier.Protocol != Wildcard && earlier.Protocol != r.Protocol {
		return false
	}
	for d := geom.Dimension(0); d < geom.NumDims; d++ {
		bound := frame.Interval(d)
		eLow, eHigh := clip(earlier.Box.Interval(d), bound)
		rLow, rHigh := clip(r.Box.Interval(d), bound)
		if !(eLow <= rLow && rHigh <= eHigh) {
			return false
		}
	}
	return true
}

func clip(iv, bound geom.Interval) (geom.Value, geom.Value) {
	low := iv.Low
	if bound.Low > low {
		low = bound.Low
	}
	high := iv.High
	if bound.High < high {
		high = bound.High
	}
	return low, high
}
