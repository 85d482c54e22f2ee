// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import "context"

// FleetService defines the primary port for rocket and mission operations.
// Implementations live in the application layer, adapters in the CLI layer.
type FleetService interface {
	// CreateRocket registers a new rocket under a unique name.
	CreateRocket(ctx context.Context, req CreateRocketRequest) (*Rocket, error)

	// CreateMission registers a new mission under a unique name.
	CreateMission(ctx context.Context, req CreateMissionRequest) (*Mission, error)

	// GetRocket retrieves a rocket by name.
	GetRocket(ctx context.Context, name string) (*Rocket, error)

	// GetMission retrieves a mission by name.
	GetMission(ctx context.Context, name string) (*Mission, error)

	// ListRockets lists all rockets sorted by name.
	ListRockets(ctx context.Context) ([]*Rocket, error)

	// ListMissions lists all missions sorted by name.
	ListMissions(ctx context.Context) ([]*Mission, error)

	// AssignRockets assigns the named rockets to a mission. Every rocket is
	// validated before any assignment happens; either all rockets join the
	// mission or none do. An empty rocket list is a trivial success.
	AssignRockets(ctx context.Context, req AssignRocketsRequest) (*Mission, error)

	// UnassignRocket removes a rocket from a mission it is a member of.
	UnassignRocket(ctx context.Context, req UnassignRocketRequest) (*Mission, error)

	// PutRocketInRepair marks a rocket as under repair. A mission the rocket
	// is assigned to is put on hold.
	PutRocketInRepair(ctx context.Context, name string) (*Rocket, error)

	// CompleteRocketRepair finishes an ongoing repair and lets the assigned
	// mission (if any) resume.
	CompleteRocketRepair(ctx context.Context, name string) (*Rocket, error)

	// CompleteMission ends a mission in progress and releases its rockets.
	CompleteMission(ctx context.Context, name string) (*Mission, error)

	// GetSummary returns the fleet summary: missions ordered by descending
	// rocket count (ties by descending name), rockets ordered by name.
	GetSummary(ctx context.Context) (*FleetSummary, error)
}

// Rocket represents a rocket entity at the port boundary.
type Rocket struct {
	Name            string
	Status          string
	AssignedMission string // empty when unassigned
}

// Mission represents a mission entity at the port boundary.
type Mission struct {
	Name            string
	Status          string
	AssignedRockets []string // member names sorted ascending
}

// CreateRocketRequest contains parameters for creating a rocket.
type CreateRocketRequest struct {
	Name string
}

// CreateMissionRequest contains parameters for creating a mission.
type CreateMissionRequest struct {
	Name string
}

// AssignRocketsRequest contains parameters for a batch assignment.
type AssignRocketsRequest struct {
	Mission string
	Rockets []string
}

// UnassignRocketRequest contains parameters for removing a rocket from a mission.
type UnassignRocketRequest struct {
	Mission string
	Rocket  string
}

// FleetSummary is the renderable view of the whole fleet.
type FleetSummary struct {
	Missions []MissionSummary
}

// MissionSummary is one mission line with its member rockets.
type MissionSummary struct {
	Name    string
	Status  string
	Rockets []RocketSummary
}

// RocketSummary is one rocket line under a mission.
type RocketSummary struct {
	Name   string
	Status string
}
