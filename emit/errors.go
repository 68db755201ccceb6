package emit

import "errors"

var (
	// ErrNoTreeForDomain indicates Emit was given a domain with no
	// corresponding built tree.
	ErrNoTreeForDomain = errors.New("emit: domain has no built tree")

	// ErrUnknownSearch indicates a Config with an unrecognized Search
	// value.
	ErrUnknownSearch = errors.New("emit: unknown search style")
)
