package app

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	coremission "github.com/example/dragonctl/internal/core/mission"
	corerocket "github.com/example/dragonctl/internal/core/rocket"
	"github.com/example/dragonctl/internal/ports/primary"
	"github.com/example/dragonctl/internal/ports/secondary"
)

// ErrNameRequired signals a missing entity name. Unlike the domain error
// conditions this is a programming error on the caller's side.
var ErrNameRequired = errors.New("name is required")

// FleetServiceImpl implements the FleetService interface. It is the only
// code that mutates rocket and mission records, and it always updates both
// sides of the assignment relationship within a single method call.
type FleetServiceImpl struct {
	rocketRepo  secondary.RocketRepository
	missionRepo secondary.MissionRepository
	log         zerolog.Logger
}

var _ primary.FleetService = (*FleetServiceImpl)(nil)

// NewFleetService creates a new FleetService with injected dependencies.
func NewFleetService(
	rocketRepo secondary.RocketRepository,
	missionRepo secondary.MissionRepository,
	log zerolog.Logger,
) *FleetServiceImpl {
	return &FleetServiceImpl{
		rocketRepo:  rocketRepo,
		missionRepo: missionRepo,
		log:         log,
	}
}

// CreateRocket creates a new rocket on the ground, unassigned.
func (s *FleetServiceImpl) CreateRocket(ctx context.Context, req primary.CreateRocketRequest) (*primary.Rocket, error) {
	if err := requireName(secondary.KindRocket, req.Name); err != nil {
		return nil, err
	}

	record := &secondary.RocketRecord{
		Name:   req.Name,
		Status: string(corerocket.InitialStatus()),
	}
	if err := s.rocketRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.log.Debug().Str("rocket", record.Name).Msg("rocket created")
	return recordToRocket(record), nil
}

// CreateMission creates a new scheduled mission with no rockets.
func (s *FleetServiceImpl) CreateMission(ctx context.Context, req primary.CreateMissionRequest) (*primary.Mission, error) {
	if err := requireName(secondary.KindMission, req.Name); err != nil {
		return nil, err
	}

	record := &secondary.MissionRecord{
		Name:   req.Name,
		Status: string(coremission.InitialStatus()),
	}
	if err := s.missionRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.log.Debug().Str("mission", record.Name).Msg("mission created")
	return recordToMission(record), nil
}

// GetRocket retrieves a rocket by name.
func (s *FleetServiceImpl) GetRocket(ctx context.Context, name string) (*primary.Rocket, error) {
	record, err := s.rocketRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return recordToRocket(record), nil
}

// GetMission retrieves a mission by name.
func (s *FleetServiceImpl) GetMission(ctx context.Context, name string) (*primary.Mission, error) {
	record, err := s.missionRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return recordToMission(record), nil
}

// ListRockets lists all rockets sorted by name.
func (s *FleetServiceImpl) ListRockets(ctx context.Context) ([]*primary.Rocket, error) {
	records, err := s.rocketRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	rockets := make([]*primary.Rocket, len(records))
	for i, record := range records {
		rockets[i] = recordToRocket(record)
	}
	return rockets, nil
}

// ListMissions lists all missions sorted by name.
func (s *FleetServiceImpl) ListMissions(ctx context.Context) ([]*primary.Mission, error) {
	records, err := s.missionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	missions := make([]*primary.Mission, len(records))
	for i, record := range records {
		missions[i] = recordToMission(record)
	}
	return missions, nil
}

// AssignRockets assigns the named rockets to a mission. Every candidate is
// validated before any state changes, so a failing rocket leaves the whole
// batch unapplied. Rockets already on the mission are absorbed silently.
func (s *FleetServiceImpl) AssignRockets(ctx context.Context, req primary.AssignRocketsRequest) (*primary.Mission, error) {
	if err := requireName(secondary.KindMission, req.Mission); err != nil {
		return nil, err
	}

	mission, err := s.missionRepo.GetByName(ctx, req.Mission)
	if err != nil {
		return nil, err
	}
	if err := coremission.CanAssign(mission.Name, coremission.Status(mission.Status)); err != nil {
		return nil, err
	}

	// Validation pass: resolve every rocket and run its guard before
	// touching anything.
	candidates := make([]*secondary.RocketRecord, 0, len(req.Rockets))
	for _, name := range req.Rockets {
		if err := requireName(secondary.KindRocket, name); err != nil {
			return nil, err
		}
		rocket, err := s.rocketRepo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		guard := corerocket.AssignContext{
			RocketName:      rocket.Name,
			AssignedMission: rocket.AssignedMission,
			TargetMission:   mission.Name,
		}
		if err := corerocket.CanBeAssigned(guard); err != nil {
			return nil, err
		}
		candidates = append(candidates, rocket)
	}

	if len(candidates) == 0 {
		return recordToMission(mission), nil
	}

	// Commit pass: mirror both sides of the relationship, then recompute
	// the mission status from its full membership.
	for _, rocket := range candidates {
		if rocket.AssignedMission == mission.Name {
			continue
		}
		rocket.AssignedMission = mission.Name
		rocket.Status = string(corerocket.StatusAfterAssignment(corerocket.Status(rocket.Status)))
		if err := s.rocketRepo.Update(ctx, rocket); err != nil {
			return nil, fmt.Errorf("failed to update rocket: %w", err)
		}
		mission.AssignedRockets = appendMember(mission.AssignedRockets, rocket.Name)
		s.log.Debug().Str("rocket", rocket.Name).Str("mission", mission.Name).Msg("rocket assigned")
	}

	if err := s.recomputeMissionStatus(ctx, mission); err != nil {
		return nil, err
	}
	return recordToMission(mission), nil
}

// UnassignRocket removes a rocket from a mission it belongs to.
func (s *FleetServiceImpl) UnassignRocket(ctx context.Context, req primary.UnassignRocketRequest) (*primary.Mission, error) {
	if err := requireName(secondary.KindMission, req.Mission); err != nil {
		return nil, err
	}
	if err := requireName(secondary.KindRocket, req.Rocket); err != nil {
		return nil, err
	}

	mission, err := s.missionRepo.GetByName(ctx, req.Mission)
	if err != nil {
		return nil, err
	}
	rocket, err := s.rocketRepo.GetByName(ctx, req.Rocket)
	if err != nil {
		return nil, err
	}

	if !hasMember(mission.AssignedRockets, rocket.Name) {
		return nil, &coremission.NotPartOfMissionError{Rocket: rocket.Name, Mission: mission.Name}
	}

	mission.AssignedRockets = removeMember(mission.AssignedRockets, rocket.Name)
	rocket.AssignedMission = ""
	rocket.Status = string(corerocket.StatusAfterDetach(corerocket.Status(rocket.Status)))
	if err := s.rocketRepo.Update(ctx, rocket); err != nil {
		return nil, fmt.Errorf("failed to update rocket: %w", err)
	}

	s.log.Debug().Str("rocket", rocket.Name).Str("mission", mission.Name).Msg("rocket unassigned")

	if err := s.recomputeMissionStatus(ctx, mission); err != nil {
		return nil, err
	}
	return recordToMission(mission), nil
}

// PutRocketInRepair marks a rocket as under repair. An assigned mission is
// FORCED to PENDING, deliberately bypassing recomputation: a repair puts
// the mission on hold no matter what the other members report.
func (s *FleetServiceImpl) PutRocketInRepair(ctx context.Context, name string) (*primary.Rocket, error) {
	rocket, err := s.rocketRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	rocket.Status = string(corerocket.StatusInRepair)
	if err := s.rocketRepo.Update(ctx, rocket); err != nil {
		return nil, fmt.Errorf("failed to update rocket: %w", err)
	}
	s.log.Debug().Str("rocket", rocket.Name).Msg("rocket put in repair")

	if rocket.AssignedMission != "" {
		mission, err := s.missionRepo.GetByName(ctx, rocket.AssignedMission)
		if err != nil {
			return nil, fmt.Errorf("assigned mission lookup: %w", err)
		}
		if err := s.forceMissionStatus(ctx, mission, coremission.StatusPending); err != nil {
			return nil, err
		}
	}

	return recordToRocket(rocket), nil
}

// CompleteRocketRepair finishes an ongoing repair. An assigned rocket goes
// back to space and its mission gets recomputed; an unassigned one lands.
func (s *FleetServiceImpl) CompleteRocketRepair(ctx context.Context, name string) (*primary.Rocket, error) {
	rocket, err := s.rocketRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := corerocket.CanCompleteRepair(rocket.Name, corerocket.Status(rocket.Status)); err != nil {
		return nil, err
	}

	assigned := rocket.AssignedMission != ""
	rocket.Status = string(corerocket.StatusAfterRepair(assigned))
	if err := s.rocketRepo.Update(ctx, rocket); err != nil {
		return nil, fmt.Errorf("failed to update rocket: %w", err)
	}
	s.log.Debug().Str("rocket", rocket.Name).Msg("rocket repair completed")

	if assigned {
		mission, err := s.missionRepo.GetByName(ctx, rocket.AssignedMission)
		if err != nil {
			return nil, fmt.Errorf("assigned mission lookup: %w", err)
		}
		if err := s.recomputeMissionStatus(ctx, mission); err != nil {
			return nil, err
		}
	}

	return recordToRocket(rocket), nil
}

// CompleteMission ends a mission in progress. All members are detached
// without membership checks: the mission is the authority over its own set.
func (s *FleetServiceImpl) CompleteMission(ctx context.Context, name string) (*primary.Mission, error) {
	mission, err := s.missionRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := coremission.CanComplete(mission.Name, coremission.Status(mission.Status)); err != nil {
		return nil, err
	}

	for _, member := range mission.AssignedRockets {
		rocket, err := s.rocketRepo.GetByName(ctx, member)
		if err != nil {
			return nil, fmt.Errorf("member lookup: %w", err)
		}
		rocket.AssignedMission = ""
		rocket.Status = string(corerocket.StatusAfterDetach(corerocket.Status(rocket.Status)))
		if err := s.rocketRepo.Update(ctx, rocket); err != nil {
			return nil, fmt.Errorf("failed to update rocket: %w", err)
		}
	}

	mission.AssignedRockets = nil
	mission.Status = string(coremission.StatusEnded)
	if err := s.missionRepo.Update(ctx, mission); err != nil {
		return nil, fmt.Errorf("failed to update mission: %w", err)
	}

	s.log.Debug().Str("mission", mission.Name).Msg("mission completed")
	return recordToMission(mission), nil
}

// GetSummary returns all missions with their rockets, ordered for rendering:
// descending rocket count, ties by descending mission name, rockets by name.
func (s *FleetServiceImpl) GetSummary(ctx context.Context) (*primary.FleetSummary, error) {
	missions, err := s.missionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &primary.FleetSummary{Missions: make([]primary.MissionSummary, 0, len(missions))}
	for _, mission := range missions {
		entry := primary.MissionSummary{
			Name:    mission.Name,
			Status:  mission.Status,
			Rockets: make([]primary.RocketSummary, 0, len(mission.AssignedRockets)),
		}
		for _, member := range sortedMembers(mission.AssignedRockets) {
			rocket, err := s.rocketRepo.GetByName(ctx, member)
			if err != nil {
				return nil, fmt.Errorf("member lookup: %w", err)
			}
			entry.Rockets = append(entry.Rockets, primary.RocketSummary{
				Name:   rocket.Name,
				Status: rocket.Status,
			})
		}
		summary.Missions = append(summary.Missions, entry)
	}

	sort.Slice(summary.Missions, func(i, j int) bool {
		a, b := summary.Missions[i], summary.Missions[j]
		if len(a.Rockets) != len(b.Rockets) {
			return len(a.Rockets) > len(b.Rockets)
		}
		return a.Name > b.Name
	})

	return summary, nil
}

// forceMissionStatus overrides a mission status without consulting the
// members. This is NOT interchangeable with recomputeMissionStatus; the
// repair-start path depends on the override.
func (s *FleetServiceImpl) forceMissionStatus(ctx context.Context, mission *secondary.MissionRecord, status coremission.Status) error {
	mission.Status = string(status)
	if err := s.missionRepo.Update(ctx, mission); err != nil {
		return fmt.Errorf("failed to update mission: %w", err)
	}
	s.log.Debug().Str("mission", mission.Name).Str("status", mission.Status).Msg("mission status forced")
	return nil
}

// recomputeMissionStatus derives the mission status from its current
// membership and stores the result.
func (s *FleetServiceImpl) recomputeMissionStatus(ctx context.Context, mission *secondary.MissionRecord) error {
	members := make([]corerocket.Status, 0, len(mission.AssignedRockets))
	for _, member := range mission.AssignedRockets {
		rocket, err := s.rocketRepo.GetByName(ctx, member)
		if err != nil {
			return fmt.Errorf("member lookup: %w", err)
		}
		members = append(members, corerocket.Status(rocket.Status))
	}

	next := coremission.Reevaluate(coremission.Status(mission.Status), members)
	if string(next) != mission.Status {
		s.log.Debug().Str("mission", mission.Name).Str("from", mission.Status).Str("to", string(next)).Msg("mission status recomputed")
	}
	mission.Status = string(next)
	if err := s.missionRepo.Update(ctx, mission); err != nil {
		return fmt.Errorf("failed to update mission: %w", err)
	}
	return nil
}

func requireName(kind, name string) error {
	if name == "" {
		return fmt.Errorf("%s: %w", kind, ErrNameRequired)
	}
	return nil
}

func recordToRocket(record *secondary.RocketRecord) *primary.Rocket {
	return &primary.Rocket{
		Name:            record.Name,
		Status:          record.Status,
		AssignedMission: record.AssignedMission,
	}
}

func recordToMission(record *secondary.MissionRecord) *primary.Mission {
	return &primary.Mission{
		Name:            record.Name,
		Status:          record.Status,
		AssignedRockets: sortedMembers(record.AssignedRockets),
	}
}

func sortedMembers(members []string) []string {
	sorted := append([]string(nil), members...)
	sort.Strings(sorted)
	return sorted
}

func hasMember(members []string, name string) bool {
	for _, member := range members {
		if member == name {
			return true
		}
	}
	return false
}

func appendMember(members []string, name string) []string {
	if hasMember(members, name) {
		return members
	}
	return append(members, name)
}

func removeMember(members []string, name string) []string {
	kept := members[:0]
	for _, member := range members {
		if member != name {
			kept = append(kept, member)
		}
	}
	return kept
}
