// Package config parses and validates the command-line options the
// compiler is invoked with. It uses the standard library flag package
// rather than a third-party CLI framework: no source file anywhere in
// the example pack actually imports one, only unrelated projects'
// go.mod manifests mention cobra/pflag as an indirect dependency of a
// debugger. Integer parameters tolerate leading zeros, matching the
// original argument parser's trim_leading_zeros behavior.
package config
