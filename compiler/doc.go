// Package compiler orchestrates the five-stage pipeline that turns an
// iptables save-format ruleset into its HiCuts-compiled equivalent:
// ingest, chain grouping, sub-ruleset extraction, tree construction, and
// emission. It is the one place that wires every other package together,
// the way builder.BuildGraph is the single orchestrator sitting above
// many independent constructors.
package compiler
