package ingest

import (
	"bufio"
	"io"
	"strings"

	"github.com/arnegrau/hicuts/action"
	"github.com/arnegrau/hicuts/geom"
	"github.com/arnegrau/hicuts/rule"
)

// ReadLines reads r line by line, trimming surrounding whitespace and
// dropping blank lines, mirroring the original parser's
// file_read_lines.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ParseRules parses lines into rule.Rule records plus a
// rule.DefaultPolicies table. Control lines (starting with '#', '*', or
// the literal "COMMIT") are consumed and ignored; lines starting with
// ':' declare a chain's default policy; everything else is parsed as a
// rule line.
func ParseRules(lines []string) ([]*rule.Rule, *rule.DefaultPolicies) {
	policies := rule.NewDefaultPolicies()
	rules := make([]*rule.Rule, 0, len(lines))

	for _, line := range lines {
		switch {
		case line == "COMMIT":
			continue
		case strings.HasPrefix(line, "#"), strings.HasPrefix(line, "*"):
			continue
		case strings.HasPrefix(line, ":"):
			parsePolicyLine(line, policies)
		default:
			rules = append(rules, parseRuleLine(line))
		}
	}
	return rules, policies
}

// parsePolicyLine parses a ":<CHAIN> <POLICY> [x:y]" declaration. A
// policy of "-" (a user-defined chain with no built-in default) is not
// recorded.
func parsePolicyLine(line string, policies *rule.DefaultPolicies) {
	fields := strings.Fields(strings.TrimPrefix(line, ":"))
	if len(fields) < 2 {
		return
	}
	chain, policy := fields[0], fields[1]
	switch policy {
	case "ACCEPT":
		policies.Set(chain, action.AcceptAction())
	case "DROP":
		policies.Set(chain, action.DropAction())
	case "REJECT":
		policies.Set(chain, action.RejectAction())
	}
}

func fullAddrInterval() geom.Interval {
	return geom.Interval{Low: rule.MinAddr, High: rule.MaxAddr}
}

func fullPortInterval() geom.Interval {
	return geom.Interval{Low: rule.MinPort, High: rule.MaxPort}
}

// ruleBuilder accumulates the result of tokenizing one rule line. bad is
// set the moment an unrecognized token or an unparseable value is seen;
// once bad, remaining tokens are ignored but the rule itself is still
// returned (with SourceText intact) rather than dropped.
type ruleBuilder struct {
	fields []string
	i      int
	ivs    [geom.NumDims]geom.Interval
	r      *rule.Rule
	bad    bool
}

// next consumes and returns the token following the current one, or
// ("", false) if none remains.
func (b *ruleBuilder) next() (string, bool) {
	if b.i+1 >= len(b.fields) {
		return "", false
	}
	b.i++
	return b.fields[b.i], true
}

func (b *ruleBuilder) fail() { b.bad = true }

// parseRuleLine tokenizes one rule line. Any token it does not
// recognize, or any value it cannot parse, demotes the rule to
// Applicable = false; the rule's SourceText is always preserved
// verbatim for passthrough emission regardless.
func parseRuleLine(line string) *rule.Rule {
	b := &ruleBuilder{
		fields: strings.Fields(line),
		ivs:    [geom.NumDims]geom.Interval{fullPortInterval(), fullPortInterval(), fullAddrInterval(), fullAddrInterval()},
		r: &rule.Rule{
			SourceText: line,
			Protocol:   rule.Wildcard,
			Action:     action.AcceptAction(),
			Applicable: true,
		},
	}

	for ; b.i < len(b.fields) && !b.bad; b.i++ {
		b.dispatch(b.fields[b.i])
	}

	if b.bad {
		b.r.Applicable = false
		return b.r
	}
	box, err := geom.NewBox(b.ivs[:])
	if err != nil {
		b.r.Applicable = false
		return b.r
	}
	b.r.Box = box
	return b.r
}

func (b *ruleBuilder) dispatch(tok string) {
	switch tok {
	case "-A":
		v, ok := b.next()
		if !ok {
			b.fail()
			return
		}
		b.r.Chain = v

	case "-p":
		v, ok := b.next()
		if !ok {
			b.fail()
			return
		}
		switch v {
		case "tcp":
			b.r.Protocol = rule.TCP
		case "udp":
			b.r.Protocol = rule.UDP
		default:
			b.fail()
		}

	case "-m":
		v, ok := b.next()
		if !ok {
			b.fail()
			return
		}
		switch v {
		case "iprange", "tcp", "udp":
		default:
			b.fail()
		}

	case "--src":
		b.setInterval(geom.SrcAddr, parseSubnet)
	case "--dst":
		b.setInterval(geom.DstAddr, parseSubnet)
	case "--src-range":
		b.setInterval(geom.SrcAddr, parseIPRange)
	case "--dst-range":
		b.setInterval(geom.DstAddr, parseIPRange)
	case "--sport":
		b.setInterval(geom.SrcPort, parsePortOrRange)
	case "--dport":
		b.setInterval(geom.DstPort, parsePortOrRange)

	case "-j":
		v, ok := b.next()
		if !ok {
			b.fail()
			return
		}
		switch v {
		case "ACCEPT":
			b.r.Action = action.AcceptAction()
		case "DROP":
			b.r.Action = action.DropAction()
		case "REJECT":
			b.r.Action = action.RejectAction()
		case "JUMP":
			target, ok := b.next()
			if !ok {
				b.fail()
				return
			}
			jmp, err := action.NewJump(target)
			if err != nil {
				b.fail()
				return
			}
			b.r.Action = jmp
		default:
			b.fail()
		}

	default:
		b.fail()
	}
}

// setInterval consumes the next token and parses it with parseFn into
// dimension d, failing the builder on any error.
func (b *ruleBuilder) setInterval(d geom.Dimension, parseFn func(string) (geom.Interval, error)) {
	v, ok := b.next()
	if !ok {
		b.fail()
		return
	}
	iv, err := parseFn(v)
	if err != nil {
		b.fail()
		return
	}
	b.ivs[d] = iv
}
