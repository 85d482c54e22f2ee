package rocket

// StatusAfterAssignment returns the rocket status after joining a mission.
// Assignment never interrupts an ongoing repair; a healthy rocket launches.
func StatusAfterAssignment(current Status) Status {
	if current == StatusInRepair {
		return current
	}
	return StatusInSpace
}

// StatusAfterDetach returns the rocket status after leaving a mission.
// A rocket in space lands; a rocket under repair stays under repair.
func StatusAfterDetach(current Status) Status {
	if current == StatusInSpace {
		return StatusOnGround
	}
	return current
}

// StatusAfterRepair returns the rocket status after a completed repair.
// An assigned rocket rejoins its mission in space, an unassigned one
// returns to the ground.
func StatusAfterRepair(assigned bool) Status {
	if assigned {
		return StatusInSpace
	}
	return StatusOnGround
}
