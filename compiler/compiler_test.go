package compiler

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/arnegrau/hicuts/config"
	"github.com/arnegrau/hicuts/hicuts"
)

func writeTempInfile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "in.rules")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRun_ProducesFramedOutputWithTimingAndRuntime(t *testing.T) {
	var rules strings.Builder
	rules.WriteString("*filter\n:INPUT DROP [0:0]\n")
	for i := 0; i < 12; i++ {
		rules.WriteString("-A INPUT -p tcp --dport ")
		rules.WriteString(strconv.Itoa(i + 1))
		rules.WriteString(" -j ACCEPT\n")
	}
	rules.WriteString("COMMIT\n")

	infile := writeTempInfile(t, rules.String())
	outfile := filepath.Join(filepath.Dir(infile), "out.rules")

	cfg := &config.Config{
		Binth:      4,
		Spfac:      4,
		MinRules:   5,
		RandomSeed: 1,
		Infile:     infile,
		Outfile:    outfile,
	}

	if err := Run(cfg, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(outfile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(data)

	lines := strings.Split(out, "\n")
	if len(lines) < 5 {
		t.Fatalf("expected at least 5 lines, got %d", len(lines))
	}
	for i, prefix := range []string{"# Parsing (", "# Sub-ruleset extraction (", "# HiCuts transformation: ", "# iptables output generation: ", "# Total runtime: "} {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d = %q; want prefix %q", i, lines[i], prefix)
		}
	}
	if !strings.Contains(out, "*filter") {
		t.Error("output missing *filter header")
	}
	if !strings.Contains(out, ":INPUT DROP [0:0]") {
		t.Error("output missing INPUT policy declaration")
	}
	if !strings.HasSuffix(strings.TrimRight(out, "\n"), "COMMIT") {
		t.Error("output missing trailing COMMIT")
	}
}

func TestRun_BinarySearchAndLeastMaxRulesDimChoice(t *testing.T) {
	var rules strings.Builder
	rules.WriteString("*filter\n:INPUT DROP [0:0]\n")
	for i := 0; i < 12; i++ {
		rules.WriteString("-A INPUT -p tcp --dport ")
		rules.WriteString(strconv.Itoa(i + 1))
		rules.WriteString(" -j ACCEPT\n")
	}
	rules.WriteString("COMMIT\n")

	infile := writeTempInfile(t, rules.String())
	outfile := filepath.Join(filepath.Dir(infile), "out.rules")

	cfg := &config.Config{
		Binth:      4,
		Spfac:      4,
		MinRules:   5,
		RandomSeed: 1,
		Search:     config.SearchBinary,
		DimChoice:  hicuts.LeastMaxRules,
		Infile:     infile,
		Outfile:    outfile,
	}

	if err := Run(cfg, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(outfile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, "*filter") {
		t.Error("output missing *filter header")
	}
	if !strings.HasSuffix(strings.TrimRight(out, "\n"), "COMMIT") {
		t.Error("output missing trailing COMMIT")
	}
}

func TestRun_UnreadableInfileIsAnError(t *testing.T) {
	cfg := &config.Config{
		Binth: 4, Spfac: 4, MinRules: 5,
		Infile:  "/nonexistent/does-not-exist.rules",
		Outfile: filepath.Join(t.TempDir(), "out.rules"),
	}
	if err := Run(cfg, nil); err == nil {
		t.Fatal("expected error for unreadable infile")
	}
}
