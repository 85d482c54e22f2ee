package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/dragonctl/internal/wire"
)

// RocketCmd returns the rocket command
func RocketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rocket",
		Short: "Manage rockets in the fleet",
		Long:  "Create, list and repair rockets in the dragon fleet",
	}

	cmd.AddCommand(rocketCreateCmd())
	cmd.AddCommand(rocketListCmd())
	cmd.AddCommand(rocketRepairCmd())
	cmd.AddCommand(rocketRepairDoneCmd())

	return cmd
}

func rocketCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new rocket",
		Long:  "Create a new rocket. It starts on the ground, unassigned.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.RocketAdapter().Create(cmd.Context(), args[0])
		},
	}
}

func rocketListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rockets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.RocketAdapter().List(cmd.Context())
		},
	}
}

func rocketRepairCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repair [name]",
		Short: "Put a rocket into repair",
		Long:  "Put a rocket into repair. A mission the rocket is assigned to goes on hold.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.RocketAdapter().Repair(cmd.Context(), args[0])
		},
	}
}

func rocketRepairDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repair-done [name]",
		Short: "Complete a rocket's repair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.RocketAdapter().RepairDone(cmd.Context(), args[0])
		},
	}
}
