package ruleset

import "github.com/arnegrau/hicuts/rule"

// Domain identifies a contiguous, classifiable sub-ruleset within a
// chain's rule vector: the inclusive index range [Start, End].
type Domain struct {
	Start int
	End   int
}

// Len reports the number of rules the domain spans.
func (d Domain) Len() int { return d.End - d.Start + 1 }

// ExtractDomains finds every maximal contiguous run of rules with
// Applicable == true whose length is at least minRules. Non-applicable
// rules break runs; runs shorter than minRules are discarded, leaving
// their rules to be emitted verbatim outside any tree.
func ExtractDomains(rs []*rule.Rule, minRules int) []Domain {
	var domains []Domain
	runStart := -1

	flush := func(end int) {
		if runStart < 0 {
			return
		}
		if end-runStart+1 >= minRules {
			domains = append(domains, Domain{Start: runStart, End: end})
		}
		runStart = -1
	}

	for i, r := range rs {
		if r.Applicable {
			if runStart < 0 {
				runStart = i
			}
		} else {
			flush(i - 1)
		}
	}
	flush(len(rs) - 1)

	return domains
}
