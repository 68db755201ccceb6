// Package rule holds the Rule type the rest of the compiler operates on: a
// 4-D geom.Box plus a transport protocol, an action.Action, the owning
// chain name, and the rule's original source text for passthrough
// emission. It also carries the dimension-statistics and shadow-detection
// helpers the HiCuts tree builder needs (num_distinct_rules_in_dim,
// cut_points, is_shadowed in the original hitables rule model), and the
// DefaultPolicies lookup used when emitting a chain's trailing policy
// rule.
package rule
