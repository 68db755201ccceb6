package hicuts

import (
	"math/rand"

	"github.com/arnegrau/hicuts/geom"
	"github.com/arnegrau/hicuts/rule"
)

// chooseDimMaxDistinct computes num_distinct_rules_in_dim for every
// dimension, restricts to the dimensions tied for the maximum, further
// restricts ties to the dimension(s) with the largest interval span in
// box, and picks uniformly at random among what remains. The second
// return value reports whether any dimension yielded a strictly positive
// distinct count.
func chooseDimMaxDistinct(rules []*rule.Rule, box geom.Box, rng *rand.Rand) (geom.Dimension, bool) {
	distinct := make([]int, geom.NumDims)
	maxDistinct := -1
	for d := geom.Dimension(0); d < geom.NumDims; d++ {
		distinct[d] = rule.NumDistinctRulesInDim(d, rules)
		if distinct[d] > maxDistinct {
			maxDistinct = distinct[d]
		}
	}

	var candidates []geom.Dimension
	for d := geom.Dimension(0); d < geom.NumDims; d++ {
		if distinct[d] == maxDistinct {
			candidates = append(candidates, d)
		}
	}

	var maxSpan geom.Value
	for i, d := range candidates {
		span := box.Interval(d).Width()
		if i == 0 || span > maxSpan {
			maxSpan = span
		}
	}
	var finalists []geom.Dimension
	for _, d := range candidates {
		if box.Interval(d).Width() == maxSpan {
			finalists = append(finalists, d)
		}
	}

	chosen := finalists[rng.Intn(len(finalists))]
	return chosen, maxDistinct > 0
}

// chooseDimLeastMaxRules trial-cuts every dimension with the cut count
// determine_number_of_cuts would choose for it, observes the largest
// resulting child's rule count, and picks the dimension minimizing that
// maximum. Ties are broken uniformly at random.
func chooseDimLeastMaxRules(node *Node, spfac int, rng *rand.Rand) geom.Dimension {
	best := -1
	var candidates []geom.Dimension

	for d := geom.Dimension(0); d < geom.NumDims; d++ {
		n := determineNumberOfCuts(node, d, spfac)
		children, err := trialChildren(node, d, n)
		if err != nil || len(children) == 0 {
			continue
		}
		maxRules := 0
		for _, c := range children {
			if len(c.Rules) > maxRules {
				maxRules = len(c.Rules)
			}
		}
		switch {
		case best < 0 || maxRules < best:
			best = maxRules
			candidates = []geom.Dimension{d}
		case maxRules == best:
			candidates = append(candidates, d)
		}
	}

	if len(candidates) == 0 {
		return geom.SrcPort
	}
	return candidates[rng.Intn(len(candidates))]
}
