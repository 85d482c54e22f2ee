package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/dragonctl/internal/adapters/cli"
	"github.com/example/dragonctl/internal/wire"
)

// RunCmd returns the run command
func RunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [script]",
		Short: "Run a fleet script",
		Long: `Run a line-oriented fleet script against a single in-memory fleet.

Directives (one per line, '#' starts a comment):
  rocket <name>              create a rocket
  mission <name>             create a mission
  assign <mission> <r...>    assign rockets (all-or-nothing)
  unassign <mission> <r>     remove a rocket from a mission
  repair <rocket>            put a rocket into repair
  repair-done <rocket>       complete a rocket's repair
  complete <mission>         end a mission
  summary                    print the fleet summary

The first failing line aborts the script.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open script: %w", err)
			}
			defer file.Close()

			return runScript(cmd.Context(), wire.RocketAdapter(), wire.MissionAdapter(), file)
		},
	}
}

// runScript applies script directives in order against the adapters'
// shared fleet. The first failing line aborts with its line number.
func runScript(ctx context.Context, rockets *cliadapter.RocketAdapter, missions *cliadapter.MissionAdapter, script io.Reader) error {
	scanner := bufio.NewScanner(script)
	line := 0

	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.Index(text, "#"); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		if err := applyDirective(ctx, rockets, missions, fields); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	return nil
}

func applyDirective(ctx context.Context, rockets *cliadapter.RocketAdapter, missions *cliadapter.MissionAdapter, fields []string) error {
	directive, args := fields[0], fields[1:]

	want := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("'%s' takes %d argument(s), got %d", directive, n, len(args))
		}
		return nil
	}

	switch directive {
	case "rocket":
		if err := want(1); err != nil {
			return err
		}
		return rockets.Create(ctx, args[0])
	case "mission":
		if err := want(1); err != nil {
			return err
		}
		return missions.Create(ctx, args[0])
	case "assign":
		if len(args) < 1 {
			return fmt.Errorf("'assign' needs a mission name")
		}
		return missions.Assign(ctx, args[0], args[1:])
	case "unassign":
		if err := want(2); err != nil {
			return err
		}
		return missions.Unassign(ctx, args[0], args[1])
	case "repair":
		if err := want(1); err != nil {
			return err
		}
		return rockets.Repair(ctx, args[0])
	case "repair-done":
		if err := want(1); err != nil {
			return err
		}
		return rockets.RepairDone(ctx, args[0])
	case "complete":
		if err := want(1); err != nil {
			return err
		}
		return missions.Complete(ctx, args[0])
	case "summary":
		if err := want(0); err != nil {
			return err
		}
		return missions.Summary(ctx)
	default:
		return fmt.Errorf("unknown directive '%s'", directive)
	}
}
