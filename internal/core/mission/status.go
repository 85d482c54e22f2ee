// Package mission contains the pure business logic for mission state.
// This is part of the Functional Core - no I/O, only pure functions.
package mission

// Status represents the possible states of a mission.
type Status string

const (
	StatusScheduled  Status = "SCHEDULED"
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusEnded      Status = "ENDED"
)

// InitialStatus returns the initial status for a newly created mission.
func InitialStatus() Status {
	return StatusScheduled
}

// Terminal reports whether the status absorbs all further transitions.
// An ended mission never changes status again.
func (s Status) Terminal() bool {
	return s == StatusEnded
}
