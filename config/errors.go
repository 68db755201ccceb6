package config

import (
	"errors"
	"strconv"
)

var (
	// ErrUnknownOption indicates a flag not in the recognized set.
	ErrUnknownOption = errors.New("config: unknown option")
	// ErrMissingRequired indicates --infile or --outfile was not given.
	ErrMissingRequired = errors.New("config: missing required option")
	// ErrUsageRequested is returned by Parse when --usage was given; the
	// caller should print usage text and exit zero, not treat this as a
	// failure.
	ErrUsageRequested = errors.New("config: usage requested")
)

// EnumError is a descriptive error for an invalid enum-valued flag, such
// as an unrecognized --search or --dim-choice value.
type EnumError struct {
	Param string
	Input string
	Want  []string
}

func (e *EnumError) Error() string {
	s := "Invalid parameter " + e.Param + " ('" + e.Input + "'): must be one of"
	for i, w := range e.Want {
		if i > 0 {
			s += ","
		}
		s += " " + w
	}
	return s + "!"
}

// ParamError is a descriptive, single-line error for an invalid integer
// parameter, matching the original argument parser's message shape:
// "Invalid parameter --binth ('x'): must be an integer between 1 and 65536!"
type ParamError struct {
	Param    string
	Input    string
	Min, Max int
}

func (e *ParamError) Error() string {
	return "Invalid parameter " + e.Param + " ('" + e.Input + "'): must be an integer between " +
		strconv.Itoa(e.Min) + " and " + strconv.Itoa(e.Max) + "!"
}
