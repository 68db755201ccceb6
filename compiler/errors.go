package compiler

import "errors"

var (
	// ErrInfileUnreadable indicates the configured input file could not
	// be opened or read.
	ErrInfileUnreadable = errors.New("compiler: input file is not accessible")
	// ErrOutfileUnwritable indicates the configured output file could not
	// be created or truncated.
	ErrOutfileUnwritable = errors.New("compiler: output file is not accessible")
)
