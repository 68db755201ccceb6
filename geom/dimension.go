package geom

// Value is the 32-bit unsigned integer every classification dimension is
// encoded into: ports occupy [0, 65535], IPv4 addresses occupy
// [0, 2^32-1]. It is exported as geom.Value rather than a bare uint32 so
// call sites read as domain values, not arithmetic.
type Value = uint32

// Dimension names one axis of the 4-D classification space. The canonical
// order is fixed by spec: source port, destination port, source address,
// destination address.
type Dimension int

const (
	SrcPort Dimension = iota
	DstPort
	SrcAddr
	DstAddr

	// NumDims is the number of classification dimensions. Protocol is a
	// scalar predicate carried alongside a Box, never a cut axis, so it is
	// not counted here.
	NumDims = 4
)

// String renders a short name for a Dimension, for debugging and log
// output.
func (d Dimension) String() string {
	switch d {
	case SrcPort:
		return "sport"
	case DstPort:
		return "dport"
	case SrcAddr:
		return "src-addr"
	case DstAddr:
		return "dst-addr"
	default:
		return "invalid-dimension"
	}
}

// Valid reports whether d is one of the four known dimensions.
func (d Dimension) Valid() bool {
	return d >= SrcPort && d <= DstAddr
}
