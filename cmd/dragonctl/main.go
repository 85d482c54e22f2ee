package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/dragonctl/internal/cli"
	"github.com/example/dragonctl/internal/config"
	"github.com/example/dragonctl/internal/logging"
	"github.com/example/dragonctl/internal/version"
	"github.com/example/dragonctl/internal/wire"
)

func main() {
	var configPath string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "dragonctl",
		Short:   "dragonctl - mission control for the dragon rocket fleet",
		Version: version.String(),
		Long: `dragonctl tracks a fleet of rockets and the missions they fly.
Rockets are assigned to missions, repaired, and released; mission status
follows the health of its rockets.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			switch cfg.Output.Color {
			case config.ColorAlways:
				color.NoColor = false
			case config.ColorNever:
				color.NoColor = true
			}

			level := cfg.Log.Level
			if verbose {
				level = "debug"
			}
			wire.SetLogger(logging.New(os.Stderr, level))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "dragonctl.toml", "Path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(cli.RocketCmd())
	rootCmd.AddCommand(cli.MissionCmd())
	rootCmd.AddCommand(cli.SummaryCmd())
	rootCmd.AddCommand(cli.RunCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
