// Package action models the terminal disposition of a rule: accept, drop,
// reject, or jump to another chain. It mirrors the ActionCode/Action split
// from the original hitables rule model as one struct pairing a Code with
// a jump target; its fields are unexported, so a Jump built through
// NewJump always carries a non-empty target.
package action
