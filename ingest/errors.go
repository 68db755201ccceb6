package ingest

import "errors"

var (
	// ErrMalformedIP indicates a dotted-quad address could not be parsed.
	ErrMalformedIP = errors.New("ingest: malformed IPv4 address")
	// ErrMalformedPort indicates a port token was not a valid uint16.
	ErrMalformedPort = errors.New("ingest: malformed port")
	// ErrMalformedPortRange indicates a port:port token was malformed.
	ErrMalformedPortRange = errors.New("ingest: malformed port range")
	// ErrMalformedSubnet indicates an addr/prefix token was malformed.
	ErrMalformedSubnet = errors.New("ingest: malformed subnet")
	// ErrMalformedIPRange indicates an IP-IP token was malformed.
	ErrMalformedIPRange = errors.New("ingest: malformed IP range")
	// ErrFileNotReadable indicates the input file could not be opened.
	ErrFileNotReadable = errors.New("ingest: input file is not accessible")
)
