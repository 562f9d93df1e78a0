// Package engine orchestrates trip planning for travelbuddy.
//
// The engine sits between the CLI and the lower-level packages. PlanTrip runs
// a fixed sequence: load the user's profile, merge preferences, search for
// attractions, build the itinerary, and append the trip to the profile.
//
// Key components:
//   - Engine: holds the store, finder, builder, clock and logger
//   - PlanTrip: the research → planning → memory pipeline
//   - History/Preferences/Users/Catalog: read-only views for the CLI
package engine

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/danieljhkim/travelbuddy/internal/attractions"
	"github.com/danieljhkim/travelbuddy/internal/clock"
	"github.com/danieljhkim/travelbuddy/internal/itinerary"
	"github.com/danieljhkim/travelbuddy/internal/memory"
)

// Engine orchestrates all travelbuddy operations.
// It is the main API surface called by the CLI.
type Engine struct {
	store   memory.Store
	finder  *attractions.Finder
	builder *itinerary.Builder
	clock   clock.Clock
	logger  *slog.Logger
	newID   func() string

	// mu spans the load → save of a plan so history appends are not lost.
	mu sync.Mutex
}

// New creates a new Engine with the given dependencies.
// A nil logger selects slog.Default().
func New(
	store memory.Store,
	finder *attractions.Finder,
	builder *itinerary.Builder,
	clk clock.Clock,
	logger *slog.Logger,
) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		store:   store,
		finder:  finder,
		builder: builder,
		clock:   clk,
		logger:  logger,
		newID:   uuid.NewString,
	}
}
