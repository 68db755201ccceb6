package rule

import (
	"strings"

	"github.com/arnegrau/hicuts/action"
	"github.com/arnegrau/hicuts/geom"
)

// Port and address bounds, mirrored from the original parser's constants.
const (
	MinPort geom.Value = 0
	MaxPort geom.Value = 65535
	MinAddr geom.Value = 0
	MaxAddr geom.Value = 0xFFFFFFFF
)

// Rule is one entry in a linear firewall ruleset: a predicate over the
// 4-D classification space plus protocol, an action, the chain it lives
// in, and enough of its original text to reproduce it verbatim.
type Rule struct {
	Box        geom.Box
	Protocol   Protocol
	Action     action.Action
	Chain      string
	SourceText string

	// Applicable is true iff the rule is classifiable: every match it uses
	// is understood and cuttable. Non-applicable rules participate in
	// chain ordering but never enter a tree.
	Applicable bool
}

// PatchedChain returns the rule's SourceText with the chain name
// immediately following "-A " replaced by newChain, leaving the rest of
// the line untouched. This is how a passthrough rule, or a leaf's
// applicable rule, gets re-homed into a generated sub-chain without
// re-rendering its matches.
//
// If SourceText does not contain "-A ", it is returned unchanged.
func (r Rule) PatchedChain(newChain string) string {
	const marker = "-A "
	idx := strings.Index(r.SourceText, marker)
	if idx < 0 {
		return r.SourceText
	}
	afterMarker := idx + len(marker)
	rest := r.SourceText[afterMarker:]

	nameEnd := strings.IndexByte(rest, ' ')
	if nameEnd < 0 {
		return r.SourceText[:afterMarker] + newChain
	}
	return r.SourceText[:afterMarker] + newChain + rest[nameEnd:]
}
