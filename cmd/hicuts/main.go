// Command hicuts compiles an iptables save-format ruleset into a
// semantically equivalent ruleset whose per-packet matching cost is
// logarithmic or sub-linear in the number of rules, by applying the
// HiCuts geometric packet-classification algorithm.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/arnegrau/hicuts/compiler"
	"github.com/arnegrau/hicuts/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Parse(args)
	if err != nil {
		if errors.Is(err, config.ErrUsageRequested) {
			fmt.Fprint(os.Stderr, config.Usage)
			return 0
		}
		printError(err)
		return 1
	}

	var logger *log.Logger
	if cfg.Verbose {
		logger = log.New(os.Stdout, "", 0)
	}

	if err := compiler.Run(cfg, logger); err != nil {
		printError(err)
		return 1
	}
	return 0
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "\nERROR: %v\n\n", err)
}
