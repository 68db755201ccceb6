package rule

import "errors"

var (
	// ErrUnknownProtocol indicates a protocol value outside {TCP, UDP, Wildcard}.
	ErrUnknownProtocol = errors.New("rule: unknown protocol")

	// ErrNoRules indicates an operation that requires at least one rule
	// was given an empty slice. NumDistinctRulesInDim and CutPoints do not
	// return it; for an empty slice they return 0 and nil.
	ErrNoRules = errors.New("rule: no rules given")

	// ErrUnknownChain indicates DefaultPolicies was asked for a chain it
	// has no policy recorded for.
	ErrUnknownChain = errors.New("rule: unknown chain")
)
