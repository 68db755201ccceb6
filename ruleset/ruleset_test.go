package ruleset_test

import (
	"testing"

	"github.com/arnegrau/hicuts/rule"
	"github.com/arnegrau/hicuts/ruleset"
)

func tagged(applicable bool, chain string) *rule.Rule {
	return &rule.Rule{Chain: chain, Applicable: applicable}
}

func TestGroupByChain_PreservesOrderAndGrouping(t *testing.T) {
	rs := []*rule.Rule{
		tagged(true, "INPUT"),
		tagged(true, "FORWARD"),
		tagged(true, "INPUT"),
	}
	chains := ruleset.GroupByChain(rs)
	if len(chains) != 2 {
		t.Fatalf("len(chains) = %d; want 2", len(chains))
	}
	if chains[0].Name != "INPUT" || len(chains[0].Rules) != 2 {
		t.Errorf("chains[0] = %+v; want INPUT with 2 rules", chains[0])
	}
	if chains[1].Name != "FORWARD" || len(chains[1].Rules) != 1 {
		t.Errorf("chains[1] = %+v; want FORWARD with 1 rule", chains[1])
	}
}

// TestExtractDomains_ScenarioFour mirrors spec scenario 4: tags
// (N,N,A,A,N,N,A,A,N,A,N,A,A,A) with min_rules=2 => domains (2,3),
// (6,7), (11,13).
func TestExtractDomains_ScenarioFour(t *testing.T) {
	tags := []bool{false, false, true, true, false, false, true, true, false, true, false, true, true, true}
	rs := make([]*rule.Rule, len(tags))
	for i, a := range tags {
		rs[i] = tagged(a, "C")
	}

	got := ruleset.ExtractDomains(rs, 2)
	want := []ruleset.Domain{{Start: 2, End: 3}, {Start: 6, End: 7}, {Start: 11, End: 13}}
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d; want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("domain %d = %+v; want %+v", i, got[i], want[i])
		}
	}
}

func TestExtractDomains_TrailingRunAtEndOfChain(t *testing.T) {
	rs := []*rule.Rule{tagged(false, "C"), tagged(true, "C"), tagged(true, "C")}
	got := ruleset.ExtractDomains(rs, 2)
	want := []ruleset.Domain{{Start: 1, End: 2}}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("got = %v; want %v", got, want)
	}
}

func TestExtractDomains_NoRunsMeetsMinimum(t *testing.T) {
	rs := []*rule.Rule{tagged(true, "C"), tagged(false, "C"), tagged(true, "C")}
	got := ruleset.ExtractDomains(rs, 2)
	if len(got) != 0 {
		t.Errorf("got = %v; want no domains", got)
	}
}
