package hicuts

import (
	"github.com/arnegrau/hicuts/geom"
	"github.com/arnegrau/hicuts/rule"
)

// BuildTree constructs a HiCuts decision tree over rules, rooted at the
// domain's minimal bounding box, according to opts. It traverses the
// tree-in-progress breadth-first with an explicit FIFO queue rather than
// recursion, matching the iterative traversal idiom used throughout this
// codebase.
func BuildTree(rules []*rule.Rule, opts ...Option) (*Node, error) {
	if len(rules) == 0 {
		return nil, ErrNoRules
	}
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	root := newNode(MinimalBoundingBox(rules), rules)

	queue := []*Node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		if len(n.Rules) <= cfg.binth {
			continue
		}

		if err := cutNode(n, cfg); err != nil {
			continue
		}

		for _, child := range n.Children {
			if len(child.Rules) > cfg.binth {
				queue = append(queue, child)
			}
		}
	}

	return root, nil
}

func cutNode(n *Node, cfg *config) error {
	switch cfg.cutAlgo {
	case Unequal:
		return cutNodeUnequal(n, cfg)
	default:
		return cutNodeEquidistant(n, cfg)
	}
}

func cutNodeEquidistant(n *Node, cfg *config) error {
	d := chooseDim(n, cfg)
	numCuts := determineNumberOfCuts(n, d, cfg.spfac)
	if numCuts == 0 {
		return ErrDimensionNotCuttable
	}
	return n.cut(d, numCuts)
}

func cutNodeUnequal(n *Node, cfg *config) error {
	d := chooseDimMaxDistinctOrFallback(n, cfg)
	points := rule.CutPoints(d, n.Rules, n.Box)
	if len(points) >= 2 {
		return n.unequalCut(d, points)
	}

	dPrime := mostDistinctDim(n.Rules)
	projectionPoints := rule.CutPoints(dPrime, n.Rules, n.Box)
	if len(projectionPoints) >= 2 {
		return n.unequalCut(dPrime, projectionPoints)
	}

	return cutNodeEquidistant(n, cfg)
}

func chooseDim(n *Node, cfg *config) geom.Dimension {
	switch cfg.dimChoice {
	case LeastMaxRules:
		return chooseDimLeastMaxRules(n, cfg.spfac, cfg.rng)
	default:
		return chooseDimMaxDistinctOrFallback(n, cfg)
	}
}

// chooseDimMaxDistinctOrFallback runs the max-distinct heuristic and, if
// every dimension tied at zero distinct rules (every rule pairwise
// overlaps every other rule in every dimension, so the distinct-count
// carries no real signal), falls back to the least-max-rules heuristic,
// which picks a dimension by its actual cut outcome rather than a count
// that is zero everywhere.
func chooseDimMaxDistinctOrFallback(n *Node, cfg *config) geom.Dimension {
	d, hasSignal := chooseDimMaxDistinct(n.Rules, n.Box, cfg.rng)
	if !hasSignal {
		return chooseDimLeastMaxRules(n, cfg.spfac, cfg.rng)
	}
	return d
}

func mostDistinctDim(rules []*rule.Rule) geom.Dimension {
	best := geom.Dimension(0)
	bestCount := -1
	for d := geom.Dimension(0); d < geom.NumDims; d++ {
		count := rule.NumDistinctRulesInDim(d, rules)
		if count > bestCount {
			bestCount = count
			best = d
		}
	}
	return best
}

// ComputeNumbering assigns a dense pre-order DFS id to every node in the
// tree rooted at root, starting at 0, using an explicit stack so
// traversal depth is bounded by heap rather than goroutine stack size.
// Children of a given node are visited left to right.
func ComputeNumbering(root *Node) {
	next := 0
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n.ID = next
		next++

		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
}
