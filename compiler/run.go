package compiler

import (
	"bufio"
	"bytes"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/arnegrau/hicuts/config"
	"github.com/arnegrau/hicuts/emit"
	"github.com/arnegrau/hicuts/ingest"
	"github.com/arnegrau/hicuts/ruleset"
)

// Run executes the full compilation pipeline described by cfg: it reads
// cfg.Infile, compiles its ruleset into HiCuts-dispatch form, and writes
// the result to cfg.Outfile. When cfg.Verbose, logger receives one line
// per pipeline stage in addition to the timing comments written into
// the output file itself, mirroring the original program's behavior of
// always recording stage timings in the generated file.
func Run(cfg *config.Config, logger *log.Logger) error {
	totalStart := time.Now()

	infile, err := os.Open(cfg.Infile)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInfileUnreadable, cfg.Infile, err)
	}
	defer infile.Close()

	lines, err := ingest.ReadLines(infile)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInfileUnreadable, cfg.Infile, err)
	}

	// Open the output file up front so an unwritable destination fails
	// fast, before any compilation work is done.
	out, err := os.Create(cfg.Outfile)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrOutfileUnwritable, cfg.Outfile, err)
	}

	rng := rand.New(rand.NewSource(int64(cfg.RandomSeed)))

	// Stage 1: parsing.
	start := time.Now()
	rules, policies := ingest.ParseRules(lines)
	chains := ruleset.GroupByChain(rules)
	numRules := len(rules)
	parseDuration := time.Since(start)
	fmt.Fprintf(out, "# Parsing (%d): %s seconds\n", numRules, formatSeconds(parseDuration))
	logStage(logger, cfg, "Parsing (%d): %s seconds", numRules, formatSeconds(parseDuration))

	// Stage 2: sub-ruleset extraction + HiCuts transformation, combined
	// so each chain's domains and trees are built together.
	start = time.Now()
	plans, numDomains, err := buildPlans(chains, cfg, rng)
	if err != nil {
		out.Close()
		return err
	}
	extractAndBuildDuration := time.Since(start)
	fmt.Fprintf(out, "# Sub-ruleset extraction (%d): %s seconds\n", numDomains, formatSeconds(extractAndBuildDuration))
	logStage(logger, cfg, "Sub-ruleset extraction (%d): %s seconds", numDomains, formatSeconds(extractAndBuildDuration))
	fmt.Fprintf(out, "# HiCuts transformation: %s seconds\n", formatSeconds(extractAndBuildDuration))
	logStage(logger, cfg, "HiCuts transformation: %s seconds", formatSeconds(extractAndBuildDuration))

	// Stage 3: emission.
	start = time.Now()
	var body bytes.Buffer
	emitCfg := emit.Config{Search: searchStyle(cfg.Search)}
	if err := emit.Emit(&body, plans, policies, emitCfg); err != nil {
		out.Close()
		return err
	}
	emitDuration := time.Since(start)
	fmt.Fprintf(out, "# iptables output generation: %s seconds\n\n", formatSeconds(emitDuration))
	logStage(logger, cfg, "iptables output generation: %s seconds", formatSeconds(emitDuration))

	if _, err := out.Write(body.Bytes()); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	totalDuration := time.Since(totalStart)
	if err := insertTotalRuntime(cfg.Outfile, totalDuration); err != nil {
		return err
	}
	logStage(logger, cfg, "Total runtime: %s seconds", formatSeconds(totalDuration))

	return nil
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.6f", d.Seconds())
}

func logStage(logger *log.Logger, cfg *config.Config, format string, args ...any) {
	if !cfg.Verbose || logger == nil {
		return
	}
	logger.Printf(format, args...)
}

// insertTotalRuntime reopens path, reads back the four stage-timing
// comment lines Run just wrote, and rewrites the file with a "# Total
// runtime: T seconds" line inserted immediately after them — the total
// is only known once every stage (including emission) has finished, so
// this has to be a second pass over the file rather than written inline.
func insertTotalRuntime(path string, total time.Duration) error {
	generated, err := readAllLines(path)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrOutfileUnwritable, path, err)
	}
	defer out.Close()

	const headerLines = 4
	i := 0
	for ; i < headerLines && i < len(generated); i++ {
		fmt.Fprintln(out, generated[i])
	}
	fmt.Fprintf(out, "# Total runtime: %s seconds\n", formatSeconds(total))
	for ; i < len(generated); i++ {
		fmt.Fprintln(out, generated[i])
	}
	return nil
}

func readAllLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
