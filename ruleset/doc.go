// Package ruleset groups a flat rule.Rule slice by chain and extracts the
// classifiable sub-rulesets (domains) the HiCuts tree builder operates
// on: maximal contiguous runs of applicable rules at least min_rules
// long.
package ruleset
