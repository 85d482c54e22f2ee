package rocket

// AssignContext provides the context for the assignability guard.
type AssignContext struct {
	RocketName      string
	AssignedMission string // current mission name, empty when unassigned
	TargetMission   string
}

// CanBeAssigned evaluates whether a rocket may join the target mission.
// Rule: a rocket belongs to at most one mission. Re-assigning to the
// mission it already belongs to is allowed (callers treat it as a no-op).
func CanBeAssigned(ctx AssignContext) error {
	if ctx.AssignedMission != "" && ctx.AssignedMission != ctx.TargetMission {
		return &AlreadyAssignedError{Rocket: ctx.RocketName, Mission: ctx.AssignedMission}
	}
	return nil
}

// CanCompleteRepair evaluates whether a repair can be completed.
// Rule: only a rocket that is currently under repair can finish one.
func CanCompleteRepair(name string, current Status) error {
	if current != StatusInRepair {
		return &InvalidStatusError{Rocket: name, Current: current, Required: StatusInRepair}
	}
	return nil
}
