package hicuts

import (
	"math"

	"github.com/arnegrau/hicuts/geom"
)

// trialChildren computes the children an equidistant cut at (d, numCuts)
// would produce, without mutating n. Used by determineNumberOfCuts and
// the least-max-rules dimension heuristic, both of which must undo their
// trial cuts.
func trialChildren(n *Node, d geom.Dimension, numCuts int) ([]*Node, error) {
	subBoxes, err := n.Box.Cut(d, numCuts)
	if err != nil {
		return nil, err
	}
	children := make([]*Node, 0, len(subBoxes))
	for _, sub := range subBoxes {
		kept := collidingRules(n.Rules, sub)
		if len(kept) == 0 {
			continue
		}
		children = append(children, newNode(sub, kept))
	}
	return children, nil
}

// determineNumberOfCuts starts from n = max(4, floor(sqrt(|rules|))) and
// repeatedly doubles it as long as the trial cut's space measure stays
// strictly below spfac * |rules|, then returns the last n that failed
// that test, capped at the interval's width and then lowered further
// where needed until the last piece geom.Box.Cut produces still starts
// inside the interval, so no piece can be empty. A dimension whose interval is already a single value (width 0) caps to
// 0: spec §3's invariant num_cuts ≤ b−a leaves no room for even one cut
// there, and callers must treat that as uncuttable rather than force a
// cut that produces an inverted trailing piece.
func determineNumberOfCuts(node *Node, d geom.Dimension, spfac int) int {
	numRules := len(node.Rules)
	n := isqrt(numRules)
	if n < 4 {
		n = 4
	}

	for {
		children, err := trialChildren(node, d, n)
		if err != nil {
			break
		}
		measure := spaceMeasure(children, n)
		if measure < spfac*numRules {
			n *= 2
			continue
		}
		break
	}

	iv := node.Box.Interval(d)
	width := int(iv.Width())
	if n > width {
		n = width
	}
	// Box.Cut gives each of the first n pieces L+1 values, L = width/(n+1).
	for n > 0 && n*(width/(n+1)+1) > width {
		n--
	}
	return n
}

func isqrt(x int) int {
	if x <= 0 {
		return 0
	}
	return int(math.Sqrt(float64(x)))
}
