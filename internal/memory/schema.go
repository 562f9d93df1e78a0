package memory

import (
	"time"

	"github.com/danieljhkim/travelbuddy/internal/itinerary"
)

// Document is the persisted memory bank: user ID to profile.
type Document map[string]*UserProfile

// UserProfile is the preference-and-history record of one user.
type UserProfile struct {
	// UserID is the unique key of the profile
	UserID string `json:"user_id"`

	// Preferences holds free-form settings such as diet or walking limits
	Preferences map[string]any `json:"preferences"`

	// Trips is the append-only trip history, oldest first
	Trips []Trip `json:"trips"`
}

// Trip is one planned trip. It is never modified after creation.
type Trip struct {
	// ID uniquely identifies the trip
	ID string `json:"id"`

	Destination string `json:"destination"`

	// StartDate and EndDate are inclusive YYYY-MM-DD dates
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	// Interests is the normalized interest tag set
	Interests []string `json:"interests"`

	// Preferences is the merged preference snapshot the trip was planned with
	Preferences map[string]any `json:"preferences"`

	// Itinerary has one entry per day of the range
	Itinerary []itinerary.Day `json:"itinerary"`

	// Summary is the rendered text form of the itinerary
	Summary string `json:"summary"`

	// CreatedAt is when the trip was planned
	CreatedAt time.Time `json:"created_at"`
}

// NewUserProfile creates an empty profile for userID.
func NewUserProfile(userID string) *UserProfile {
	return &UserProfile{
		UserID:      userID,
		Preferences: map[string]any{},
		Trips:       []Trip{},
	}
}

// AppendTrip adds a trip to the end of the history.
func (p *UserProfile) AppendTrip(trip Trip) {
	p.Trips = append(p.Trips, trip)
}

// MergePreferences returns stored overlaid with overrides. Override values
// win; stored values fill the gaps. Neither input is modified.
func MergePreferences(stored, overrides map[string]any) map[string]any {
	merged := make(map[string]any, len(stored)+len(overrides))
	for k, v := range stored {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
