package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	coremission "github.com/example/dragonctl/internal/core/mission"
	corerocket "github.com/example/dragonctl/internal/core/rocket"
	"github.com/example/dragonctl/internal/ports/primary"
)

// MissionAdapter is a thin adapter that translates CLI operations to
// FleetService calls for missions.
type MissionAdapter struct {
	service primary.FleetService
	out     io.Writer
}

// NewMissionAdapter creates a new MissionAdapter with the given service.
func NewMissionAdapter(service primary.FleetService, out io.Writer) *MissionAdapter {
	return &MissionAdapter{
		service: service,
		out:     out,
	}
}

// Create registers a new mission.
func (a *MissionAdapter) Create(ctx context.Context, name string) error {
	mission, err := a.service.CreateMission(ctx, primary.CreateMissionRequest{Name: name})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created mission %s (%s)\n", mission.Name, mission.Status)
	return nil
}

// List lists all missions.
func (a *MissionAdapter) List(ctx context.Context) error {
	missions, err := a.service.ListMissions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list missions: %w", err)
	}

	if len(missions) == 0 {
		fmt.Fprintln(a.out, "No missions found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-20s %-12s %s\n", "NAME", "STATUS", "DRAGONS")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────")
	for _, m := range missions {
		fmt.Fprintf(a.out, "%-20s %-12s %d\n", m.Name, m.Status, len(m.AssignedRockets))
	}
	fmt.Fprintln(a.out)

	return nil
}

// Show displays details for a single mission.
func (a *MissionAdapter) Show(ctx context.Context, name string) error {
	mission, err := a.service.GetMission(ctx, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nMission: %s\n", mission.Name)
	fmt.Fprintf(a.out, "Status:  %s\n", mission.Status)
	if len(mission.AssignedRockets) > 0 {
		fmt.Fprintf(a.out, "Dragons: %s\n", strings.Join(mission.AssignedRockets, ", "))
	} else {
		fmt.Fprintln(a.out, "Dragons: none")
	}
	fmt.Fprintln(a.out)

	return nil
}

// Assign assigns one or more rockets to a mission (all-or-nothing).
func (a *MissionAdapter) Assign(ctx context.Context, mission string, rockets []string) error {
	result, err := a.service.AssignRockets(ctx, primary.AssignRocketsRequest{
		Mission: mission,
		Rockets: rockets,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Mission %s now has %d dragon(s), status %s\n",
		result.Name, len(result.AssignedRockets), result.Status)
	return nil
}

// Unassign removes a rocket from a mission.
func (a *MissionAdapter) Unassign(ctx context.Context, mission, rocket string) error {
	result, err := a.service.UnassignRocket(ctx, primary.UnassignRocketRequest{
		Mission: mission,
		Rocket:  rocket,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Removed %s from mission %s (now %s)\n", rocket, result.Name, result.Status)
	return nil
}

// Complete ends a mission and releases its rockets.
func (a *MissionAdapter) Complete(ctx context.Context, name string) error {
	result, err := a.service.CompleteMission(ctx, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Mission %s ended\n", result.Name)
	return nil
}

// Summary renders the fleet summary: missions by descending dragon count
// (ties by descending name), each rocket indented under its mission.
func (a *MissionAdapter) Summary(ctx context.Context) error {
	summary, err := a.service.GetSummary(ctx)
	if err != nil {
		return fmt.Errorf("failed to get summary: %w", err)
	}

	for _, m := range summary.Missions {
		fmt.Fprintf(a.out, "- %s - %s - Dragons: %d\n", m.Name, statusLabel(m.Status), len(m.Rockets))
		for _, r := range m.Rockets {
			fmt.Fprintf(a.out, "\t- %s - %s\n", r.Name, statusLabel(r.Status))
		}
	}

	return nil
}

// statusLabel colors a status for terminal output. Healthy states render
// green, blocked states yellow, idle states cyan, terminal states plain.
func statusLabel(status string) string {
	switch status {
	case string(coremission.StatusInProgress), string(corerocket.StatusInSpace):
		return color.GreenString(status)
	case string(coremission.StatusPending), string(corerocket.StatusInRepair):
		return color.YellowString(status)
	case string(coremission.StatusScheduled), string(corerocket.StatusOnGround):
		return color.CyanString(status)
	default:
		return status
	}
}
