package compiler

import (
	"math/rand"

	"github.com/arnegrau/hicuts/config"
	"github.com/arnegrau/hicuts/emit"
	"github.com/arnegrau/hicuts/hicuts"
	"github.com/arnegrau/hicuts/ruleset"
)

// buildPlans extracts sub-rulesets from every chain and builds a HiCuts
// tree over each one, returning one emit.ChainPlan per chain and the
// total number of domains found across all chains.
func buildPlans(chains []*ruleset.Chain, cfg *config.Config, rng *rand.Rand) ([]emit.ChainPlan, int, error) {
	plans := make([]emit.ChainPlan, 0, len(chains))
	numDomains := 0

	for _, chain := range chains {
		domains := ruleset.ExtractDomains(chain.Rules, cfg.MinRules)
		numDomains += len(domains)

		domainPlans := make([]emit.DomainPlan, 0, len(domains))
		for _, d := range domains {
			domainRules := chain.Rules[d.Start : d.End+1]
			tree, err := hicuts.BuildTree(domainRules,
				hicuts.WithBinth(cfg.Binth),
				hicuts.WithSpfac(cfg.Spfac),
				hicuts.WithDimChoice(cfg.DimChoice),
				hicuts.WithRand(rng),
			)
			if err != nil {
				return nil, 0, err
			}
			domainPlans = append(domainPlans, emit.DomainPlan{
				Domain:   d,
				Tree:     tree,
				Protocol: domainRules[0].Protocol,
			})
		}

		plans = append(plans, emit.ChainPlan{Chain: chain, Domains: domainPlans})
	}

	return plans, numDomains, nil
}

func searchStyle(s config.SearchStyle) emit.SearchStyle {
	if s == config.SearchBinary {
		return emit.Binary
	}
	return emit.Linear
}
