package ruleset

import "github.com/arnegrau/hicuts/rule"

// Chain is one chain's rules, in original file order.
type Chain struct {
	Name  string
	Rules []*rule.Rule
}

// GroupByChain partitions rs by Chain, preserving each rule's original
// position within its chain. Chains are returned in first-seen order so
// downstream output stays deterministic for a given input file.
func GroupByChain(rs []*rule.Rule) []*Chain {
	order := make([]string, 0)
	byName := make(map[string]*Chain)

	for _, r := range rs {
		c, ok := byName[r.Chain]
		if !ok {
			c = &Chain{Name: r.Chain}
			byName[r.Chain] = c
			order = append(order, r.Chain)
		}
		c.Rules = append(c.Rules, r)
	}

	chains := make([]*Chain, 0, len(order))
	for _, name := range order {
		chains = append(chains, byName[name])
	}
	return chains
}
