package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	cliadapter "github.com/example/dragonctl/internal/adapters/cli"
	"github.com/example/dragonctl/internal/adapters/memory"
	"github.com/example/dragonctl/internal/app"
)

func newScriptHarness(out *bytes.Buffer) (*cliadapter.RocketAdapter, *cliadapter.MissionAdapter) {
	store := memory.NewStore()
	service := app.NewFleetService(store.Rockets(), store.Missions(), zerolog.Nop())
	return cliadapter.NewRocketAdapter(service, out), cliadapter.NewMissionAdapter(service, out)
}

func TestRunScript(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	script := `
# build the fleet
rocket Falcon-9
rocket Dragon-1
mission Starlink-1

assign Starlink-1 Falcon-9 Dragon-1
repair Dragon-1
repair-done Dragon-1
summary
`

	var out bytes.Buffer
	rockets, missions := newScriptHarness(&out)

	if err := runScript(context.Background(), rockets, missions, strings.NewReader(script)); err != nil {
		t.Fatalf("runScript() = %v", err)
	}

	output := out.String()
	want := "- Starlink-1 - IN_PROGRESS - Dragons: 2\n\t- Dragon-1 - IN_SPACE\n\t- Falcon-9 - IN_SPACE\n"
	if !strings.HasSuffix(output, want) {
		t.Errorf("script output does not end with summary:\n%q\nwant suffix:\n%q", output, want)
	}
}

func TestRunScriptReportsFailingLine(t *testing.T) {
	script := "rocket Falcon-9\nassign Starlink-1 Falcon-9\n"

	var out bytes.Buffer
	rockets, missions := newScriptHarness(&out)

	err := runScript(context.Background(), rockets, missions, strings.NewReader(script))
	if err == nil {
		t.Fatal("runScript() = nil, want error")
	}
	if !strings.HasPrefix(err.Error(), "line 2:") {
		t.Errorf("error = %q, want 'line 2:' prefix", err.Error())
	}
}

func TestRunScriptRejectsUnknownDirective(t *testing.T) {
	var out bytes.Buffer
	rockets, missions := newScriptHarness(&out)

	err := runScript(context.Background(), rockets, missions, strings.NewReader("launch Falcon-9\n"))
	if err == nil || !strings.Contains(err.Error(), "unknown directive 'launch'") {
		t.Errorf("error = %v, want unknown directive", err)
	}
}
