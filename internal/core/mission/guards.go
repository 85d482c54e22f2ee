package mission

// CanAssign evaluates whether the mission accepts new members.
// Rule: an ended mission is immutable.
func CanAssign(name string, current Status) error {
	if current.Terminal() {
		return &EndedError{Mission: name}
	}
	return nil
}

// CanComplete evaluates whether the mission can be completed.
// Rule: only a mission that is in progress can end.
func CanComplete(name string, current Status) error {
	if current != StatusInProgress {
		return &InvalidStatusError{Mission: name, Current: current, Required: StatusInProgress}
	}
	return nil
}
