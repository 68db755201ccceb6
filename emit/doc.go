// Package emit renders a chain's rules, domains, and HiCuts trees back
// into iptables save-format text: new sub-chains wired together by
// jumps, passthrough text for rules outside any domain, and a trailing
// default-policy rule for built-in chains. Internal dispatch nodes are
// written either as a flat list of range tests (linear search) or as a
// hard-coded binary search tree of range tests (binary search).
package emit
