package rocket

import "fmt"

// AlreadyAssignedError reports an assignment attempt on a rocket that
// already belongs to a different mission.
type AlreadyAssignedError struct {
	Rocket  string
	Mission string // the mission the rocket currently belongs to
}

func (e *AlreadyAssignedError) Error() string {
	return fmt.Sprintf("rocket '%s' is already assigned to mission '%s'", e.Rocket, e.Mission)
}

// InvalidStatusError reports an operation that required a specific rocket
// status which did not hold.
type InvalidStatusError struct {
	Rocket   string
	Current  Status
	Required Status
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("rocket '%s' has status '%s', but '%s' was expected", e.Rocket, e.Current, e.Required)
}
