// Package memory provides the in-memory storage adapter. A single Store
// owns both entity collections so that the rocket/mission relationship has
// one authoritative home; repositories are views over the same arena.
package memory

import (
	"context"
	"sort"

	"github.com/example/dragonctl/internal/ports/secondary"
)

// Store is the name-keyed arena holding all fleet state.
type Store struct {
	rockets  map[string]*secondary.RocketRecord
	missions map[string]*secondary.MissionRecord
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		rockets:  make(map[string]*secondary.RocketRecord),
		missions: make(map[string]*secondary.MissionRecord),
	}
}

// Rockets returns the rocket repository view of the store.
func (s *Store) Rockets() *RocketStore {
	return &RocketStore{store: s}
}

// Missions returns the mission repository view of the store.
func (s *Store) Missions() *MissionStore {
	return &MissionStore{store: s}
}

// Records are copied on every read and write so callers never hold aliases
// into the arena.

func cloneRocket(r *secondary.RocketRecord) *secondary.RocketRecord {
	clone := *r
	return &clone
}

func cloneMission(m *secondary.MissionRecord) *secondary.MissionRecord {
	clone := *m
	clone.AssignedRockets = append([]string(nil), m.AssignedRockets...)
	return &clone
}

// RocketStore implements secondary.RocketRepository over the arena.
type RocketStore struct {
	store *Store
}

var _ secondary.RocketRepository = (*RocketStore)(nil)

func (r *RocketStore) Create(ctx context.Context, record *secondary.RocketRecord) error {
	if _, ok := r.store.rockets[record.Name]; ok {
		return &secondary.AlreadyExistsError{Kind: secondary.KindRocket, Name: record.Name}
	}
	r.store.rockets[record.Name] = cloneRocket(record)
	return nil
}

func (r *RocketStore) GetByName(ctx context.Context, name string) (*secondary.RocketRecord, error) {
	record, ok := r.store.rockets[name]
	if !ok {
		return nil, &secondary.NotFoundError{Kind: secondary.KindRocket, Name: name}
	}
	return cloneRocket(record), nil
}

func (r *RocketStore) Update(ctx context.Context, record *secondary.RocketRecord) error {
	if _, ok := r.store.rockets[record.Name]; !ok {
		return &secondary.NotFoundError{Kind: secondary.KindRocket, Name: record.Name}
	}
	r.store.rockets[record.Name] = cloneRocket(record)
	return nil
}

func (r *RocketStore) List(ctx context.Context) ([]*secondary.RocketRecord, error) {
	records := make([]*secondary.RocketRecord, 0, len(r.store.rockets))
	for _, record := range r.store.rockets {
		records = append(records, cloneRocket(record))
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records, nil
}

// MissionStore implements secondary.MissionRepository over the arena.
type MissionStore struct {
	store *Store
}

var _ secondary.MissionRepository = (*MissionStore)(nil)

func (m *MissionStore) Create(ctx context.Context, record *secondary.MissionRecord) error {
	if _, ok := m.store.missions[record.Name]; ok {
		return &secondary.AlreadyExistsError{Kind: secondary.KindMission, Name: record.Name}
	}
	m.store.missions[record.Name] = cloneMission(record)
	return nil
}

func (m *MissionStore) GetByName(ctx context.Context, name string) (*secondary.MissionRecord, error) {
	record, ok := m.store.missions[name]
	if !ok {
		return nil, &secondary.NotFoundError{Kind: secondary.KindMission, Name: name}
	}
	return cloneMission(record), nil
}

func (m *MissionStore) Update(ctx context.Context, record *secondary.MissionRecord) error {
	if _, ok := m.store.missions[record.Name]; !ok {
		return &secondary.NotFoundError{Kind: secondary.KindMission, Name: record.Name}
	}
	m.store.missions[record.Name] = cloneMission(record)
	return nil
}

func (m *MissionStore) List(ctx context.Context) ([]*secondary.MissionRecord, error) {
	records := make([]*secondary.MissionRecord, 0, len(m.store.missions))
	for _, record := range m.store.missions {
		records = append(records, cloneMission(record))
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records, nil
}
