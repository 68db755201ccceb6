// Package hicuts builds the decision tree at the heart of the compiler:
// given a domain's bounding box and rule set, it repeatedly cuts the box
// along a chosen dimension until every leaf holds at most binth rules.
// Two cut strategies (equidistant, unequal) and two dimension-selection
// heuristics (max-distinct, least-max-rules) are available, configured
// through functional options mirroring the teacher's builder-config
// pattern.
package hicuts
