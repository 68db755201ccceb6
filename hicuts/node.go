package hicuts

import (
	"github.com/arnegrau/hicuts/geom"
	"github.com/arnegrau/hicuts/rule"
)

// Node is one node of a HiCuts decision tree: the region of
// classification space it represents, the rules that collide with that
// region, and (once cut) its children. A Node with no children is a
// leaf; there is no separate leaf type.
type Node struct {
	Box      geom.Box
	Rules    []*rule.Rule
	Children []*Node

	HasBeenCut bool
	CutDim     geom.Dimension
	NumCuts    int

	// ID is assigned by ComputeNumbering; it is -1 until then.
	ID int
}

func newNode(box geom.Box, rules []*rule.Rule) *Node {
	return &Node{Box: box, Rules: rules, ID: -1}
}

// MinimalBoundingBox returns the per-dimension min/max box spanning
// every rule in rs. Callers must pass a non-empty slice.
func MinimalBoundingBox(rs []*rule.Rule) geom.Box {
	ivs := make([]geom.Interval, geom.NumDims)
	for d := geom.Dimension(0); d < geom.NumDims; d++ {
		first := rs[0].Box.Interval(d)
		low, high := first.Low, first.High
		for _, r := range rs[1:] {
			iv := r.Box.Interval(d)
			if iv.Low < low {
				low = iv.Low
			}
			if iv.High > high {
				high = iv.High
			}
		}
		ivs[d] = geom.Interval{Low: low, High: high}
	}
	b, _ := geom.NewBox(ivs)
	return b
}

// addRule appends r to rules if it is not shadowed, within frame, by any
// rule already present. This is the idempotent-with-respect-to-shadowing
// admission test add_rule runs for every candidate child rule.
func addRule(rules []*rule.Rule, r *rule.Rule, frame geom.Box) []*rule.Rule {
	for _, earlier := range rules {
		if rule.IsShadowed(earlier, r, frame) {
			return rules
		}
	}
	return append(rules, r)
}

// collidingRules filters parent's rules down to those that collide with
// sub, threading each surviving rule through addRule so later rules
// fully shadowed by an earlier one (within sub) are dropped.
func collidingRules(parentRules []*rule.Rule, sub geom.Box) []*rule.Rule {
	var kept []*rule.Rule
	for _, r := range parentRules {
		if !r.Box.Collide(sub) {
			continue
		}
		kept = addRule(kept, r, sub)
	}
	return kept
}

// cut partitions n into numCuts+1 equidistant sub-boxes along d and builds one
// child per non-empty sub-box. It refuses to run twice on the same node.
func (n *Node) cut(d geom.Dimension, numCuts int) error {
	if n.HasBeenCut {
		return ErrAlreadyCut
	}
	subBoxes, err := n.Box.Cut(d, numCuts)
	if err != nil {
		return err
	}
	n.applyCut(d, numCuts, subBoxes)
	return nil
}

// unequalCut partitions n along d at cutPoints and builds one child per
// non-empty resulting sub-box. It refuses to run twice on the same node
// or with fewer than two cut points.
func (n *Node) unequalCut(d geom.Dimension, cutPoints []geom.Value) error {
	if n.HasBeenCut {
		return ErrAlreadyCut
	}
	if len(cutPoints) < 2 {
		return ErrTooFewCutPoints
	}
	subBoxes, err := n.Box.UnequalCut(d, cutPoints)
	if err != nil {
		return err
	}
	n.applyCut(d, len(cutPoints), subBoxes)
	return nil
}

func (n *Node) applyCut(d geom.Dimension, numCuts int, subBoxes []geom.Box) {
	children := make([]*Node, 0, len(subBoxes))
	for _, sub := range subBoxes {
		kept := collidingRules(n.Rules, sub)
		if len(kept) == 0 {
			continue
		}
		children = append(children, newNode(sub, kept))
	}
	n.HasBeenCut = true
	n.CutDim = d
	n.NumCuts = numCuts
	n.Children = children
}

// Leaf reports whether n has no children.
func (n *Node) Leaf() bool {
	return len(n.Children) == 0
}

// spaceMeasure is the sum of every child's rule count plus numCuts+1, the
// quantity determine_number_of_cuts bounds against spfac * |rules|.
func spaceMeasure(children []*Node, numCuts int) int {
	total := 0
	for _, c := range children {
		total += len(c.Rules)
	}
	return total + numCuts + 1
}
