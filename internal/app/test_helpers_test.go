package app

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/example/dragonctl/internal/adapters/memory"
	"github.com/example/dragonctl/internal/ports/primary"
)

// newTestService builds a service over a fresh in-memory arena.
func newTestService() *FleetServiceImpl {
	store := memory.NewStore()
	return NewFleetService(store.Rockets(), store.Missions(), zerolog.Nop())
}

// mustRocket creates a rocket or fails the test.
func mustRocket(t *testing.T, s *FleetServiceImpl, name string) {
	t.Helper()
	if _, err := s.CreateRocket(context.Background(), primary.CreateRocketRequest{Name: name}); err != nil {
		t.Fatalf("CreateRocket(%s) = %v", name, err)
	}
}

// mustMission creates a mission or fails the test.
func mustMission(t *testing.T, s *FleetServiceImpl, name string) {
	t.Helper()
	if _, err := s.CreateMission(context.Background(), primary.CreateMissionRequest{Name: name}); err != nil {
		t.Fatalf("CreateMission(%s) = %v", name, err)
	}
}

// mustAssign assigns rockets to a mission or fails the test.
func mustAssign(t *testing.T, s *FleetServiceImpl, mission string, rockets ...string) {
	t.Helper()
	if _, err := s.AssignRockets(context.Background(), primary.AssignRocketsRequest{Mission: mission, Rockets: rockets}); err != nil {
		t.Fatalf("AssignRockets(%s, %v) = %v", mission, rockets, err)
	}
}

// assertMirrored verifies the central invariant: a rocket points at a
// mission if and only if that mission lists the rocket as a member.
func assertMirrored(t *testing.T, s *FleetServiceImpl) {
	t.Helper()
	ctx := context.Background()

	rockets, err := s.ListRockets(ctx)
	if err != nil {
		t.Fatalf("ListRockets() = %v", err)
	}
	missions, err := s.ListMissions(ctx)
	if err != nil {
		t.Fatalf("ListMissions() = %v", err)
	}

	memberOf := make(map[string]string)
	for _, m := range missions {
		for _, r := range m.AssignedRockets {
			if prev, ok := memberOf[r]; ok {
				t.Errorf("rocket %s is a member of both %s and %s", r, prev, m.Name)
			}
			memberOf[r] = m.Name
		}
	}

	for _, r := range rockets {
		if memberOf[r.Name] != r.AssignedMission {
			t.Errorf("rocket %s points at mission %q but membership says %q",
				r.Name, r.AssignedMission, memberOf[r.Name])
		}
		delete(memberOf, r.Name)
	}
	for r, m := range memberOf {
		t.Errorf("mission %s lists unknown rocket %s", m, r)
	}
}

// rocketState fetches a rocket's status and mission or fails the test.
func rocketState(t *testing.T, s *FleetServiceImpl, name string) *primary.Rocket {
	t.Helper()
	rocket, err := s.GetRocket(context.Background(), name)
	if err != nil {
		t.Fatalf("GetRocket(%s) = %v", name, err)
	}
	return rocket
}

// missionState fetches a mission's status and members or fails the test.
func missionState(t *testing.T, s *FleetServiceImpl, name string) *primary.Mission {
	t.Helper()
	mission, err := s.GetMission(context.Background(), name)
	if err != nil {
		t.Fatalf("GetMission(%s) = %v", name, err)
	}
	return mission
}
