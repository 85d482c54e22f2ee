package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/dragonctl/internal/wire"
)

// MissionCmd returns the mission command
func MissionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mission",
		Short: "Manage missions",
		Long:  "Create, list and manage missions and their assigned rockets",
	}

	cmd.AddCommand(missionCreateCmd())
	cmd.AddCommand(missionListCmd())
	cmd.AddCommand(missionShowCmd())
	cmd.AddCommand(missionAssignCmd())
	cmd.AddCommand(missionUnassignCmd())
	cmd.AddCommand(missionCompleteCmd())

	return cmd
}

func missionCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new mission",
		Long:  "Create a new mission. It starts scheduled, with no rockets.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.MissionAdapter().Create(cmd.Context(), args[0])
		},
	}
}

func missionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List missions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.MissionAdapter().List(cmd.Context())
		},
	}
}

func missionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Show mission details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.MissionAdapter().Show(cmd.Context(), args[0])
		},
	}
}

func missionAssignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign [mission] [rocket...]",
		Short: "Assign rockets to a mission",
		Long: `Assign one or more rockets to a mission.

Every rocket is validated before any assignment happens: if one rocket
cannot join, none of them do.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.MissionAdapter().Assign(cmd.Context(), args[0], args[1:])
		},
	}
}

func missionUnassignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unassign [mission] [rocket]",
		Short: "Remove a rocket from a mission",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.MissionAdapter().Unassign(cmd.Context(), args[0], args[1])
		},
	}
}

func missionCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete [name]",
		Short: "End a mission in progress",
		Long:  "End a mission in progress. Its rockets are released back to the fleet.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.MissionAdapter().Complete(cmd.Context(), args[0])
		},
	}
}
