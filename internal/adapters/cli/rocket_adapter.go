// Package cli provides thin CLI adapters that translate between CLI concerns
// and the fleet service. Adapters handle output formatting but delegate all
// business logic to the service.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/dragonctl/internal/ports/primary"
)

// RocketAdapter is a thin adapter that translates CLI operations to
// FleetService calls for rockets.
type RocketAdapter struct {
	service primary.FleetService
	out     io.Writer
}

// NewRocketAdapter creates a new RocketAdapter with the given service.
func NewRocketAdapter(service primary.FleetService, out io.Writer) *RocketAdapter {
	return &RocketAdapter{
		service: service,
		out:     out,
	}
}

// Create registers a new rocket.
func (a *RocketAdapter) Create(ctx context.Context, name string) error {
	rocket, err := a.service.CreateRocket(ctx, primary.CreateRocketRequest{Name: name})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created rocket %s (%s)\n", rocket.Name, rocket.Status)
	return nil
}

// List lists all rockets.
func (a *RocketAdapter) List(ctx context.Context) error {
	rockets, err := a.service.ListRockets(ctx)
	if err != nil {
		return fmt.Errorf("failed to list rockets: %w", err)
	}

	if len(rockets) == 0 {
		fmt.Fprintln(a.out, "No rockets found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-20s %-12s %s\n", "NAME", "STATUS", "MISSION")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────")
	for _, r := range rockets {
		mission := r.AssignedMission
		if mission == "" {
			mission = "-"
		}
		fmt.Fprintf(a.out, "%-20s %-12s %s\n", r.Name, r.Status, mission)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Repair puts a rocket into repair.
func (a *RocketAdapter) Repair(ctx context.Context, name string) error {
	rocket, err := a.service.PutRocketInRepair(ctx, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Rocket %s is now %s\n", rocket.Name, rocket.Status)
	if rocket.AssignedMission != "" {
		fmt.Fprintf(a.out, "  Mission %s is on hold\n", rocket.AssignedMission)
	}
	return nil
}

// RepairDone completes a rocket's repair.
func (a *RocketAdapter) RepairDone(ctx context.Context, name string) error {
	rocket, err := a.service.CompleteRocketRepair(ctx, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Rocket %s repaired, now %s\n", rocket.Name, rocket.Status)
	return nil
}
