package engine

// PlanTripRequest represents a request to plan a trip.
type PlanTripRequest struct {
	// UserID identifies the profile to load and update
	UserID string

	// Destination is the city to plan for
	Destination string

	// StartDate and EndDate are inclusive YYYY-MM-DD dates
	StartDate string
	EndDate   string

	// Interests are free-text category tags; empty means any category
	Interests []string

	// Preferences override the stored preferences for matching keys
	Preferences map[string]any
}
