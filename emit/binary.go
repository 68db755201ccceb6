package emit

import (
	"github.com/arnegrau/hicuts/geom"
	"github.com/arnegrau/hicuts/hicuts"
	"github.com/arnegrau/hicuts/rule"
)

// searchRange is one node of the abstract binary search tree emit
// builds over a dispatch node's children: the inclusive child-index
// range it covers and the iptables chain its tests are written into.
type searchRange struct {
	s, e  int
	chain string
}

// emitBinaryDispatch writes a hard-coded binary search tree of range
// tests over n's children into chainName, BFS-traversing the abstract
// search tree with an explicit queue. cc (the dispatching node's own id)
// and a local counter namespace every intermediate chain it allocates.
func (e *emitter) emitBinaryDispatch(n *hicuts.Node, chainName, label string, treeIdx int, protocol rule.Protocol) {
	children := n.Children
	cc := n.ID
	k := 0
	nextBinName := func() string {
		name := BuildBinSearchName(label, treeIdx, cc, k)
		k++
		return name
	}

	childChain := func(idx int) string {
		return BuildTreeChainName(label, treeIdx, children[idx].ID)
	}

	queue := []searchRange{{s: 0, e: len(children) - 1, chain: chainName}}
	for len(queue) > 0 {
		sr := queue[0]
		queue = queue[1:]

		lookup := sr.s + (sr.e-sr.s)/2

		if sr.s == sr.e {
			e.printf("-A %s -j %s", sr.chain, childChain(lookup))
			continue
		}

		exact := children[lookup].Box.Interval(n.CutDim)
		e.printf("-A %s %s -j %s", sr.chain, dispatchClause(n.CutDim, exact, protocol), childChain(lookup))

		if lookup > sr.s {
			leftChain := nextBinName()
			e.declare(leftChain)
			leftBox := boundingInterval(children, sr.s, lookup-1, n.CutDim)
			e.printf("-A %s %s -j %s", sr.chain, dispatchClause(n.CutDim, leftBox, protocol), leftChain)
			queue = append(queue, searchRange{s: sr.s, e: lookup - 1, chain: leftChain})
		}

		rightChain := nextBinName()
		e.declare(rightChain)
		e.printf("-A %s -j %s", sr.chain, rightChain)
		queue = append(queue, searchRange{s: lookup + 1, e: sr.e, chain: rightChain})
	}
}

// boundingInterval returns the per-dimension min/max over
// children[s..e]'s interval in d, the bounding box of a binary search
// subtree.
func boundingInterval(children []*hicuts.Node, s, e int, d geom.Dimension) geom.Interval {
	first := children[s].Box.Interval(d)
	low, high := first.Low, first.High
	for i := s + 1; i <= e; i++ {
		iv := children[i].Box.Interval(d)
		if iv.Low < low {
			low = iv.Low
		}
		if iv.High > high {
			high = iv.High
		}
	}
	return geom.Interval{Low: low, High: high}
}
