// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives storage.
package secondary

import "context"

// RocketRepository defines the secondary port for rocket storage.
type RocketRepository interface {
	// Create stores a new rocket. Duplicate names are rejected.
	Create(ctx context.Context, record *RocketRecord) error

	// GetByName retrieves a rocket by its name.
	GetByName(ctx context.Context, name string) (*RocketRecord, error)

	// Update replaces the stored record for an existing rocket.
	Update(ctx context.Context, record *RocketRecord) error

	// List retrieves all rockets sorted by name.
	List(ctx context.Context) ([]*RocketRecord, error)
}

// MissionRepository defines the secondary port for mission storage.
type MissionRepository interface {
	// Create stores a new mission. Duplicate names are rejected.
	Create(ctx context.Context, record *MissionRecord) error

	// GetByName retrieves a mission by its name.
	GetByName(ctx context.Context, name string) (*MissionRecord, error)

	// Update replaces the stored record for an existing mission.
	Update(ctx context.Context, record *MissionRecord) error

	// List retrieves all missions sorted by name.
	List(ctx context.Context) ([]*MissionRecord, error)
}

// RocketRecord represents a rocket as held by the store. Relationships are
// carried by name so that the store stays the single authority over them.
type RocketRecord struct {
	Name            string
	Status          string
	AssignedMission string // mission name, empty when unassigned
}

// MissionRecord represents a mission as held by the store.
type MissionRecord struct {
	Name            string
	Status          string
	AssignedRockets []string // member rocket names, unordered
}
