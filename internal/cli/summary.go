package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/dragonctl/internal/wire"
)

// SummaryCmd returns the summary command
func SummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show a summary of missions and their rockets",
		Long: `Show a summary of all missions and the rockets assigned to them.

Missions are ordered by descending dragon count, ties broken by
descending name. Rockets are listed by name under their mission.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.MissionAdapter().Summary(cmd.Context())
		},
	}
}
