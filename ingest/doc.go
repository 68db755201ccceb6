// Package ingest turns iptables save-format text into rule.Rule records
// plus a rule.DefaultPolicies table. It is the "external collaborator"
// spec.md names but does not specify in algorithmic depth: token parsing
// here is intentionally thinner and less documented than hicuts or emit.
//
// Any match the parser does not understand demotes a rule to
// Applicable = false rather than aborting the run, so the rest of the
// file still compiles; the rule's original text is kept for verbatim
// passthrough.
package ingest
