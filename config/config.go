package config

import (
	"flag"
	"io"
	"strconv"

	"github.com/arnegrau/hicuts/hicuts"
)

// SearchStyle mirrors emit.SearchStyle without importing emit, so config
// has no dependency on the emission package.
type SearchStyle int

const (
	SearchLinear SearchStyle = iota
	SearchBinary
)

// Config holds every tunable the compiler pipeline is invoked with,
// already parsed and range-checked.
type Config struct {
	Binth      int
	Spfac      int
	Search     SearchStyle
	DimChoice  hicuts.DimChoice
	MinRules   int
	RandomSeed int
	Infile     string
	Outfile    string
	Verbose    bool
}

// Usage is the flag summary printed when --usage is given, matching the
// original print_usage layout.
const Usage = `Usage: hicuts
    [--binth <NUM>]
    [--spfac <NUM>]
    [--search <linear|binary>]
    [--dim-choice <max-dist|least-max>]
    [--min-rules <NUM>]
    [--random-seed <NUM>]
    [--verbose]
     --infile <PATH_TO_FILE>
     --outfile <PATH_TO_FILE>
`

// Parse parses args (typically os.Args[1:]) into a validated Config. It
// returns ErrUsageRequested (not a failure) when --usage was given, and
// *ParamError or ErrMissingRequired for invalid or absent arguments.
func Parse(args []string) (*Config, error) {
	fs := flag.NewFlagSet("hicuts", flag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	var (
		binth      = fs.String("binth", "4", "")
		spfac      = fs.String("spfac", "4", "")
		search     = fs.String("search", "linear", "")
		dimChoice  = fs.String("dim-choice", "max-dist", "")
		minRules   = fs.String("min-rules", "10", "")
		randomSeed = fs.String("random-seed", "0", "")
		infile     = fs.String("infile", "", "")
		outfile    = fs.String("outfile", "", "")
		verbose    = fs.Bool("verbose", false, "")
		usage      = fs.Bool("usage", false, "")
	)

	if err := fs.Parse(args); err != nil {
		return nil, ErrUnknownOption
	}
	if *usage {
		return nil, ErrUsageRequested
	}

	cfg := &Config{Verbose: *verbose}

	var err error
	if cfg.Binth, err = parseIntParam(*binth, "--binth", 1, 65536); err != nil {
		return nil, err
	}
	if cfg.Spfac, err = parseIntParam(*spfac, "--spfac", 1, 65536); err != nil {
		return nil, err
	}
	if cfg.MinRules, err = parseIntParam(*minRules, "--min-rules", 1, 65536); err != nil {
		return nil, err
	}
	if cfg.RandomSeed, err = parseIntParam(*randomSeed, "--random-seed", 0, 65535); err != nil {
		return nil, err
	}

	switch *search {
	case "linear":
		cfg.Search = SearchLinear
	case "binary":
		cfg.Search = SearchBinary
	default:
		return nil, &EnumError{Param: "--search", Input: *search, Want: []string{"linear", "binary"}}
	}

	switch *dimChoice {
	case "max-dist":
		cfg.DimChoice = hicuts.MaxDistinct
	case "least-max":
		cfg.DimChoice = hicuts.LeastMaxRules
	default:
		return nil, &EnumError{Param: "--dim-choice", Input: *dimChoice, Want: []string{"max-dist", "least-max"}}
	}

	if *infile == "" || *outfile == "" {
		return nil, ErrMissingRequired
	}
	cfg.Infile = *infile
	cfg.Outfile = *outfile

	return cfg, nil
}

// parseIntParam mirrors the original argument parser's parse_int_param:
// leading zeros are trimmed, the trimmed string must be all digits and
// no more than 5 characters long, and the resulting value must fall in
// [min, max].
func parseIntParam(input, param string, min, max int) (int, error) {
	trimmed := trimLeadingZeros(input)
	if len(trimmed) > 5 {
		return 0, &ParamError{Param: param, Input: input, Min: min, Max: max}
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] < '0' || trimmed[i] > '9' {
			return 0, &ParamError{Param: param, Input: input, Min: min, Max: max}
		}
	}
	n := 0
	if trimmed != "" {
		v, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, &ParamError{Param: param, Input: input, Min: min, Max: max}
		}
		n = v
	}
	if n < min || n > max {
		return 0, &ParamError{Param: param, Input: input, Min: min, Max: max}
	}
	return n, nil
}

// trimLeadingZeros drops every leading '0' byte, mirroring the original
// parser's trim_leading_zeros.
func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s) && s[i] == '0' {
		i++
	}
	return s[i:]
}
