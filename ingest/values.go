package ingest

import (
	"strconv"
	"strings"

	"github.com/arnegrau/hicuts/geom"
)

// parseIP parses a dotted-quad IPv4 address into its 32-bit value.
func parseIP(s string) (geom.Value, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return 0, ErrMalformedIP
	}
	var v geom.Value
	for i, p := range parts {
		octet, err := strconv.Atoi(p)
		if err != nil || octet < 0 || octet > 255 {
			return 0, ErrMalformedIP
		}
		v |= geom.Value(octet) << uint(24-8*i)
	}
	return v, nil
}

// parsePort parses a single decimal port number in [0, 65535].
func parsePort(s string) (geom.Value, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 65535 {
		return 0, ErrMalformedPort
	}
	return geom.Value(n), nil
}

// parsePortOrRange parses either a bare port ("80") or a port:port range
// ("1024:2048") into an Interval.
func parsePortOrRange(s string) (geom.Interval, error) {
	if !strings.Contains(s, ":") {
		p, err := parsePort(s)
		if err != nil {
			return geom.Interval{}, err
		}
		return geom.Interval{Low: p, High: p}, nil
	}
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return geom.Interval{}, ErrMalformedPortRange
	}
	lo, err := parsePort(parts[0])
	if err != nil {
		return geom.Interval{}, ErrMalformedPortRange
	}
	hi, err := parsePort(parts[1])
	if err != nil {
		return geom.Interval{}, ErrMalformedPortRange
	}
	if lo > hi {
		return geom.Interval{}, ErrMalformedPortRange
	}
	return geom.Interval{Low: lo, High: hi}, nil
}

// parseIPRange parses an "IP-IP" token into an Interval.
func parseIPRange(s string) (geom.Interval, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return geom.Interval{}, ErrMalformedIPRange
	}
	lo, err := parseIP(parts[0])
	if err != nil {
		return geom.Interval{}, ErrMalformedIPRange
	}
	hi, err := parseIP(parts[1])
	if err != nil {
		return geom.Interval{}, ErrMalformedIPRange
	}
	if lo > hi {
		return geom.Interval{}, ErrMalformedIPRange
	}
	return geom.Interval{Low: lo, High: hi}, nil
}

// parseSubnet parses an "ADDR/PREFIX" token into an Interval. ADDR may
// be a dotted-quad, or (per the original hitables parser) a bare decimal
// number, which is treated as the high-order octet of an address with
// the remaining octets zero. A missing "/PREFIX" implies prefix 32 (an
// exact single address).
func parseSubnet(s string) (geom.Interval, error) {
	addrPart := s
	prefix := 32
	if idx := strings.IndexByte(s, '/'); idx >= 0 {
		addrPart = s[:idx]
		p, err := strconv.Atoi(s[idx+1:])
		if err != nil || p < 0 || p > 32 {
			return geom.Interval{}, ErrMalformedSubnet
		}
		prefix = p
	}

	var addr geom.Value
	if strings.Contains(addrPart, ".") {
		v, err := parseIP(addrPart)
		if err != nil {
			return geom.Interval{}, ErrMalformedSubnet
		}
		addr = v
	} else {
		n, err := strconv.Atoi(addrPart)
		if err != nil || n < 0 {
			return geom.Interval{}, ErrMalformedSubnet
		}
		addr = geom.Value(n) << 24
	}

	var mask geom.Value
	if prefix > 0 {
		mask = geom.Value(0xFFFFFFFF) << uint(32-prefix)
	}
	low := addr & mask
	high := low | ^mask
	return geom.Interval{Low: low, High: high}, nil
}
