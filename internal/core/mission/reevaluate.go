package mission

import "github.com/example/dragonctl/internal/core/rocket"

// Reevaluate recomputes a mission status from its members' statuses.
// The result is a pure function of the inputs; calling it again with the
// same inputs yields the same status.
//
// Priority order, first match wins:
//  1. A terminal status is never recomputed.
//  2. No members: SCHEDULED.
//  3. Any member under repair: PENDING.
//  4. Otherwise: IN_PROGRESS.
func Reevaluate(current Status, members []rocket.Status) Status {
	if current.Terminal() {
		return current
	}

	if len(members) == 0 {
		return StatusScheduled
	}

	for _, m := range members {
		if m == rocket.StatusInRepair {
			return StatusPending
		}
	}

	return StatusInProgress
}
