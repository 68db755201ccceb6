package action

import "errors"

// Code is the disposition an Action carries. It corresponds to the
// original ActionCode enum (DROP, REJECT, ACCEPT, JUMP, NONE).
type Code int

const (
	// None marks a rule whose target chain carries no matching policy yet
	// (used internally while building default policies; never emitted).
	None Code = iota
	Accept
	Drop
	Reject
	// Jump hands control to another chain by name. Only a Jump Action
	// carries a non-empty Target.
	Jump
)

// ErrJumpNeedsTarget indicates NewJump was called with an empty chain name.
var ErrJumpNeedsTarget = errors.New("action: jump requires a non-empty target chain")

// Action is a terminal rule disposition. The zero value is not meaningful;
// build one with AcceptAction, DropAction, RejectAction, or NewJump.
type Action struct {
	code   Code
	target string
}

// AcceptAction returns the accept disposition.
func AcceptAction() Action { return Action{code: Accept} }

// DropAction returns the drop disposition.
func DropAction() Action { return Action{code: Drop} }

// RejectAction returns the reject disposition.
func RejectAction() Action { return Action{code: Reject} }

// NewJump returns a disposition that hands control to target.
func NewJump(target string) (Action, error) {
	if target == "" {
		return Action{}, ErrJumpNeedsTarget
	}
	return Action{code: Jump, target: target}, nil
}

// Code reports the disposition's kind.
func (a Action) Code() Code { return a.code }

// Target returns the jump destination chain name. It is only meaningful
// when Code() == Jump.
func (a Action) Target() string { return a.target }

// IptablesVerb renders the disposition the way iptables' -j flag expects
// it: ACCEPT, DROP, REJECT, or the literal target chain name for a jump.
func (a Action) IptablesVerb() string {
	switch a.code {
	case Accept:
		return "ACCEPT"
	case Drop:
		return "DROP"
	case Reject:
		return "REJECT"
	case Jump:
		return a.target
	default:
		return ""
	}
}

// String implements fmt.Stringer for debugging and log output.
func (a Action) String() string {
	switch a.code {
	case Accept:
		return "ACCEPT"
	case Drop:
		return "DROP"
	case Reject:
		return "REJECT"
	case Jump:
		return "JUMP(" + a.target + ")"
	default:
		return "NONE"
	}
}
