package emit

import "strconv"

// BuiltinChains are the three chains iptables always declares with a
// native policy. Only these get a policy declaration in the output
// framing and a trailing default-policy rule in their terminal
// sub-chain.
var BuiltinChains = map[string]bool{
	"INPUT":   true,
	"OUTPUT":  true,
	"FORWARD": true,
}

// BuildChainName names the i-th top-level sub-chain generated while
// processing chain C.
func BuildChainName(c string, i int) string {
	return c + "_" + strconv.Itoa(i)
}

// BuildTreeChainName names the chain representing HiCuts node nid in the
// t-th tree built for chain C.
func BuildTreeChainName(c string, t, nid int) string {
	return c + "_" + strconv.Itoa(t) + "_" + strconv.Itoa(nid)
}

// BuildBinSearchName names the k-th intermediate chain of the binary
// search dispatch built for HiCuts node cc, in the t-th tree built for
// chain C.
func BuildBinSearchName(c string, t, cc, k int) string {
	return c + "_" + strconv.Itoa(t) + "_" + strconv.Itoa(cc) + "_" + strconv.Itoa(k)
}
