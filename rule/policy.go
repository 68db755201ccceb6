package rule

import "github.com/arnegrau/hicuts/action"

// DefaultPolicies records the trailing default action for each built-in
// chain (INPUT, FORWARD, OUTPUT, ...). The emitter consults this when
// writing a chain's final policy rule.
type DefaultPolicies struct {
	byChain map[string]action.Action
}

// NewDefaultPolicies builds an empty policy table. Use Set to register
// chains as they are parsed.
func NewDefaultPolicies() *DefaultPolicies {
	return &DefaultPolicies{byChain: make(map[string]action.Action)}
}

// Set records act as chain's default policy, overwriting any prior value.
func (p *DefaultPolicies) Set(chain string, act action.Action) {
	p.byChain[chain] = act
}

// ChainPolicy returns the recorded default policy for chain.
func (p *DefaultPolicies) ChainPolicy(chain string) (action.Action, error) {
	act, ok := p.byChain[chain]
	if !ok {
		return action.Action{}, ErrUnknownChain
	}
	return act, nil
}

// Chains returns the chain names with a recorded policy, in no
// particular order.
func (p *DefaultPolicies) Chains() []string {
	names := make([]string, 0, len(p.byChain))
	for name := range p.byChain {
		names = append(names, name)
	}
	return names
}
