package mission

import "fmt"

// EndedError reports a mutation attempted on a mission that has ended.
type EndedError struct {
	Mission string
}

func (e *EndedError) Error() string {
	return fmt.Sprintf("cannot modify mission '%s': it has '%s' status", e.Mission, StatusEnded)
}

// NotPartOfMissionError reports a removal attempted on a rocket that is
// not a member of the mission.
type NotPartOfMissionError struct {
	Rocket  string
	Mission string
}

func (e *NotPartOfMissionError) Error() string {
	return fmt.Sprintf("rocket '%s' is not part of mission '%s'", e.Rocket, e.Mission)
}

// InvalidStatusError reports an operation that required a specific mission
// status which did not hold.
type InvalidStatusError struct {
	Mission  string
	Current  Status
	Required Status
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("mission '%s' has status '%s', but '%s' was expected", e.Mission, e.Current, e.Required)
}
