// Package rocket contains the pure business logic for rocket state.
// This is part of the Functional Core - no I/O, only pure functions.
package rocket

// Status represents the possible states of a rocket.
type Status string

const (
	StatusOnGround Status = "ON_GROUND"
	StatusInSpace  Status = "IN_SPACE"
	StatusInRepair Status = "IN_REPAIR"
)

// InitialStatus returns the initial status for a newly built rocket.
func InitialStatus() Status {
	return StatusOnGround
}
