package emit

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arnegrau/hicuts/action"
	"github.com/arnegrau/hicuts/hicuts"
	"github.com/arnegrau/hicuts/rule"
	"github.com/arnegrau/hicuts/ruleset"
)

// SearchStyle selects how an internal HiCuts node's dispatch is
// rendered.
type SearchStyle int

const (
	// Linear writes one rule per child, in order.
	Linear SearchStyle = iota
	// Binary writes a hard-coded binary search tree of range tests over
	// the node's children.
	Binary
)

// Config holds the emission-wide knobs.
type Config struct {
	Search SearchStyle
}

// DomainPlan pairs one extracted domain with the HiCuts tree built over
// its rules and the transport protocol that tree's root jump is guarded
// by.
type DomainPlan struct {
	Domain   ruleset.Domain
	Tree     *hicuts.Node
	Protocol rule.Protocol
}

// ChainPlan is everything Emit needs to render one chain: its rules in
// original order and the domains (with trees) extracted from it.
type ChainPlan struct {
	Chain   *ruleset.Chain
	Domains []DomainPlan
}

// emitter accumulates the rule body and the set of chain names it
// declares while walking chain plans, so the full :name declarations can
// be written before the body even though they are only known once the
// body has been built.
type emitter struct {
	cfg      Config
	body     bytes.Buffer
	declared []string
}

func (e *emitter) printf(format string, args ...any) {
	fmt.Fprintf(&e.body, format+"\n", args...)
}

func (e *emitter) declare(chain string) {
	e.declared = append(e.declared, chain)
}

// Emit writes a complete iptables save-format rendering of plans to w:
// the *filter header, one policy declaration per built-in chain, every
// generated sub-chain declaration, the rule body, and a trailing COMMIT.
func Emit(w io.Writer, plans []ChainPlan, policies *rule.DefaultPolicies, cfg Config) error {
	e := &emitter{cfg: cfg}

	for _, plan := range plans {
		if err := e.emitChain(plan, policies); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "*filter"); err != nil {
		return err
	}
	for _, chain := range []string{"INPUT", "FORWARD", "OUTPUT"} {
		act, err := policies.ChainPolicy(chain)
		if err != nil {
			continue
		}
		if act.Code() == action.None {
			continue
		}
		if _, err := fmt.Fprintf(w, ":%s %s [0:0]\n", chain, act.IptablesVerb()); err != nil {
			return err
		}
	}
	for _, name := range e.declared {
		if _, err := fmt.Fprintf(w, ":%s - [0:0]\n", name); err != nil {
			return err
		}
	}
	if _, err := w.Write(e.body.Bytes()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "COMMIT"); err != nil {
		return err
	}
	return nil
}

func (e *emitter) emitChain(plan ChainPlan, policies *rule.DefaultPolicies) error {
	chainName := plan.Chain.Name
	rules := plan.Chain.Rules
	builtin := BuiltinChains[chainName]

	entryChain := BuildChainName(chainName, 0)
	e.declare(entryChain)
	e.printf("-A %s -j %s", chainName, entryChain)

	i := 0
	subIdx := 0
	for t, dp := range plan.Domains {
		subChain := BuildChainName(chainName, subIdx)
		nextSubChain := BuildChainName(chainName, subIdx+1)
		e.declare(nextSubChain)

		for ; i < dp.Domain.Start; i++ {
			e.printf("%s", rules[i].PatchedChain(subChain))
		}
		i = dp.Domain.End + 1

		leafJump := builtin || i < len(rules)
		if err := e.emitTree(dp, t, chainName, subChain, nextSubChain, leafJump); err != nil {
			return err
		}
		subIdx++
	}

	finalChain := BuildChainName(chainName, subIdx)
	for ; i < len(rules); i++ {
		e.printf("%s", rules[i].PatchedChain(finalChain))
	}
	if builtin {
		if act, err := policies.ChainPolicy(chainName); err == nil {
			e.printf("-A %s -j %s", finalChain, act.IptablesVerb())
		}
	}
	return nil
}

func (e *emitter) emitTree(dp DomainPlan, treeIdx int, chainName, subChain, nextSubChain string, leafJump bool) error {
	if dp.Tree == nil {
		return ErrNoTreeForDomain
	}
	hicuts.ComputeNumbering(dp.Tree)

	rootChain := BuildTreeChainName(chainName, treeIdx, dp.Tree.ID)
	e.declare(rootChain)
	e.printf("-A %s -p %s -j %s", subChain, dp.Protocol.String(), rootChain)
	e.printf("-A %s -j %s", subChain, nextSubChain)

	queue := []*hicuts.Node{dp.Tree}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		nodeChain := BuildTreeChainName(chainName, treeIdx, n.ID)
		if n.Leaf() {
			e.emitLeaf(n, nodeChain, leafJump, nextSubChain)
			continue
		}

		for _, c := range n.Children {
			e.declare(BuildTreeChainName(chainName, treeIdx, c.ID))
		}

		switch e.cfg.Search {
		case Binary:
			e.emitBinaryDispatch(n, nodeChain, chainName, treeIdx, dp.Protocol)
		default:
			e.emitLinearDispatch(n, nodeChain, chainName, treeIdx, dp.Protocol)
		}
		queue = append(queue, n.Children...)
	}
	return nil
}

// emitLeaf writes every rule in n, in original order, with the chain
// name patched to chainName. If leafJump, it appends an unconditional
// jump to nextChain so non-matching packets continue past the tree.
func (e *emitter) emitLeaf(n *hicuts.Node, chainName string, leafJump bool, nextChain string) {
	for _, r := range n.Rules {
		e.printf("%s", r.PatchedChain(chainName))
	}
	if leafJump {
		e.printf("-A %s -j %s", chainName, nextChain)
	}
}

func (e *emitter) emitLinearDispatch(n *hicuts.Node, chainName, label string, treeIdx int, protocol rule.Protocol) {
	for _, c := range n.Children {
		target := BuildTreeChainName(label, treeIdx, c.ID)
		clause := dispatchClause(n.CutDim, c.Box.Interval(n.CutDim), protocol)
		e.printf("-A %s %s -j %s", chainName, clause, target)
	}
}

