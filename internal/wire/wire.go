// Package wire provides dependency injection for the dragonctl application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	cliadapter "github.com/example/dragonctl/internal/adapters/cli"
	"github.com/example/dragonctl/internal/adapters/memory"
	"github.com/example/dragonctl/internal/app"
	"github.com/example/dragonctl/internal/ports/primary"
)

var (
	fleetService primary.FleetService
	logger       = zerolog.Nop()
	once         sync.Once
)

// SetLogger installs the process logger. Must be called before the first
// service lookup to take effect.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// FleetService returns the singleton FleetService instance.
func FleetService() primary.FleetService {
	once.Do(initServices)
	return fleetService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	// The arena is the single authority over rockets, missions and the
	// assignment relation between them.
	store := memory.NewStore()

	fleetService = app.NewFleetService(store.Rockets(), store.Missions(), logger)
}

// RocketAdapter returns a new RocketAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func RocketAdapter() *cliadapter.RocketAdapter {
	return RocketAdapterWithOutput(os.Stdout)
}

// RocketAdapterWithOutput returns a new RocketAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func RocketAdapterWithOutput(out io.Writer) *cliadapter.RocketAdapter {
	once.Do(initServices)
	return cliadapter.NewRocketAdapter(fleetService, out)
}

// MissionAdapter returns a new MissionAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func MissionAdapter() *cliadapter.MissionAdapter {
	return MissionAdapterWithOutput(os.Stdout)
}

// MissionAdapterWithOutput returns a new MissionAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func MissionAdapterWithOutput(out io.Writer) *cliadapter.MissionAdapter {
	once.Do(initServices)
	return cliadapter.NewMissionAdapter(fleetService, out)
}
