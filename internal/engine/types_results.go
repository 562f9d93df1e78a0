package engine

import "github.com/danieljhkim/travelbuddy/internal/memory"

// PlanTripResult represents the outcome of planning a trip.
type PlanTripResult struct {
	// Trip is the planned trip, including its summary
	Trip *memory.Trip `json:"trip"`

	// PlacesConsidered is the number of ranked candidates handed to the builder
	PlacesConsidered int `json:"places_considered"`

	// Saved reports whether the trip was written to memory. When false,
	// PlanTrip also returns an error wrapping ErrStorage.
	Saved bool `json:"memory_saved"`
}
