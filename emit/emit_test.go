package emit_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnegrau/hicuts/action"
	"github.com/arnegrau/hicuts/emit"
	"github.com/arnegrau/hicuts/geom"
	"github.com/arnegrau/hicuts/hicuts"
	"github.com/arnegrau/hicuts/rule"
	"github.com/arnegrau/hicuts/ruleset"
)

func fullBox(t *testing.T) geom.Box {
	t.Helper()
	ivs := make([]geom.Interval, geom.NumDims)
	for i := range ivs {
		ivs[i] = geom.Interval{Low: 0, High: 0xFFFFFFFF}
	}
	b, err := geom.NewBox(ivs)
	require.NoError(t, err)
	return b
}

func withDim(t *testing.T, d geom.Dimension, low, high geom.Value) geom.Box {
	t.Helper()
	ivs := make([]geom.Interval, geom.NumDims)
	for i := range ivs {
		ivs[i] = geom.Interval{Low: 0, High: 0xFFFFFFFF}
	}
	ivs[d] = geom.Interval{Low: low, High: high}
	b, err := geom.NewBox(ivs)
	require.NoError(t, err)
	return b
}

func TestBuildChainNames(t *testing.T) {
	assert.Equal(t, "INPUT_0", emit.BuildChainName("INPUT", 0))
	assert.Equal(t, "INPUT_0_3", emit.BuildTreeChainName("INPUT", 0, 3))
	assert.Equal(t, "INPUT_0_3_1", emit.BuildBinSearchName("INPUT", 0, 3, 1))
}

// TestDispatch_ScenarioFive mirrors spec scenario 5: a node cut on
// dimension 2 (src address) with children spanning 0.0.0.0-0.0.0.127 and
// 0.0.0.128-0.0.0.255 emits two iprange dispatch rules.
func TestDispatch_ScenarioFive(t *testing.T) {
	root := &hicuts.Node{
		Box:        fullBox(t),
		CutDim:     geom.SrcAddr,
		HasBeenCut: true,
	}
	child0 := &hicuts.Node{Box: withDim(t, geom.SrcAddr, 0, 127), ID: 1, Rules: []*rule.Rule{{SourceText: "-A C -j DROP"}}}
	child1 := &hicuts.Node{Box: withDim(t, geom.SrcAddr, 128, 255), ID: 2, Rules: []*rule.Rule{{SourceText: "-A C -j DROP"}}}
	root.Children = []*hicuts.Node{child0, child1}
	root.ID = 0

	plan := emit.ChainPlan{
		Chain: &ruleset.Chain{Name: "C", Rules: child0.Rules},
		Domains: []emit.DomainPlan{{
			Domain:   ruleset.Domain{Start: 0, End: 0},
			Tree:     root,
			Protocol: rule.TCP,
		}},
	}
	policies := rule.NewDefaultPolicies()

	var buf bytes.Buffer
	err := emit.Emit(&buf, []emit.ChainPlan{plan}, policies, emit.Config{Search: emit.Linear})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "-A C_0_0 -m iprange --src-range 0.0.0.0-0.0.0.127 -j C_0_1")
	assert.Contains(t, out, "-A C_0_0 -m iprange --src-range 0.0.0.128-0.0.0.255 -j C_0_2")
}

// TestLeaf_ScenarioSix mirrors spec scenario 6: three rules with
// leaf_jump=true, current chain CUR, next chain NXT, produce three
// patched DROP lines followed by a jump to NXT.
func TestLeaf_ScenarioSix(t *testing.T) {
	rules := []*rule.Rule{
		{SourceText: "-A INPUT --sport 1 -j DROP", Applicable: true, Box: fullBox(t), Protocol: rule.TCP, Action: action.DropAction()},
		{SourceText: "-A INPUT --sport 2 -j DROP", Applicable: true, Box: fullBox(t), Protocol: rule.TCP, Action: action.DropAction()},
		{SourceText: "-A INPUT --sport 3 -j DROP", Applicable: true, Box: fullBox(t), Protocol: rule.TCP, Action: action.DropAction()},
	}
	leaf := &hicuts.Node{Box: fullBox(t), Rules: rules, ID: 0}

	plan := emit.ChainPlan{
		Chain: &ruleset.Chain{Name: "INPUT", Rules: rules},
		Domains: []emit.DomainPlan{{
			Domain:   ruleset.Domain{Start: 0, End: 2},
			Tree:     leaf,
			Protocol: rule.TCP,
		}},
	}
	policies := rule.NewDefaultPolicies()

	var buf bytes.Buffer
	err := emit.Emit(&buf, []emit.ChainPlan{plan}, policies, emit.Config{Search: emit.Linear})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var leafLines []string
	for _, l := range lines {
		if strings.HasPrefix(l, "-A INPUT_0_0 ") {
			leafLines = append(leafLines, l)
		}
	}
	require.Len(t, leafLines, 4)
	assert.Equal(t, "-A INPUT_0_0 --sport 1 -j DROP", leafLines[0])
	assert.Equal(t, "-A INPUT_0_0 --sport 2 -j DROP", leafLines[1])
	assert.Equal(t, "-A INPUT_0_0 --sport 3 -j DROP", leafLines[2])
	assert.Equal(t, "-A INPUT_0_0 -j INPUT_1", leafLines[3])
}

func TestEmit_FramingHasFilterHeaderAndCommit(t *testing.T) {
	rules := []*rule.Rule{
		{SourceText: "-A OTHER -j ACCEPT", Applicable: false, Box: fullBox(t), Chain: "OTHER"},
	}
	plan := emit.ChainPlan{Chain: &ruleset.Chain{Name: "OTHER", Rules: rules}}
	policies := rule.NewDefaultPolicies()
	policies.Set("INPUT", action.DropAction())

	var buf bytes.Buffer
	err := emit.Emit(&buf, []emit.ChainPlan{plan}, policies, emit.Config{})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "*filter\n"))
	assert.Contains(t, out, ":INPUT DROP [0:0]")
	assert.True(t, strings.HasSuffix(strings.TrimRight(out, "\n"), "COMMIT"))
}
