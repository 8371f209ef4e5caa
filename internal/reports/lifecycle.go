package reports

import "github.com/pharmasync/pharmasync/internal/shared"

// Transition moves a report between lifecycle states.
//
// The policy is deliberately permissive: any of the three states may move
// to any other, Resolved included, and a reflexive transition is a valid
// no-op. The dashboard exposes all three states as always-clickable
// options, so a strict forward-only sequence would reject actions the UI
// offers. ErrInvalidTransition is therefore only reachable for values
// outside the closed enumeration; it stays in the signature so a stricter
// policy can be adopted without changing callers.
func Transition(current, target Status) (Status, error) {
	if !current.Valid() || !target.Valid() {
		return current, shared.ErrInvalidTransition
	}
	return target, nil
}
