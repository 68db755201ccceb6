package emit

import (
	"fmt"

	"github.com/arnegrau/hicuts/geom"
	"github.com/arnegrau/hicuts/rule"
)

// numToIP renders a 32-bit address value as dotted-quad text.
func numToIP(v geom.Value) string {
	return fmt.Sprintf("%d.%d.%d.%d", v>>24&0xFF, v>>16&0xFF, v>>8&0xFF, v&0xFF)
}

// dispatchClause renders the full match predicate for a dispatch rule
// cut on dimension d over iv: the two port dimensions carry a -p
// protocol guard ahead of the port-range test, the two address
// dimensions are protocol-agnostic and use a bare -m iprange test.
func dispatchClause(d geom.Dimension, iv geom.Interval, protocol rule.Protocol) string {
	switch d {
	case geom.SrcPort:
		return fmt.Sprintf("-p %s --sport %d:%d", protocol, iv.Low, iv.High)
	case geom.DstPort:
		return fmt.Sprintf("-p %s --dport %d:%d", protocol, iv.Low, iv.High)
	case geom.SrcAddr:
		return fmt.Sprintf("-m iprange --src-range %s-%s", numToIP(iv.Low), numToIP(iv.High))
	case geom.DstAddr:
		return fmt.Sprintf("-m iprange --dst-range %s-%s", numToIP(iv.Low), numToIP(iv.High))
	default:
		return ""
	}
}
