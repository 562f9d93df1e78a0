package itinerary

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidRange indicates an end date before the start date.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrInvalidDate indicates a date that is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidPolicy indicates an unusable slot template or threshold.
	ErrInvalidPolicy = errors.New("invalid itinerary policy")
)

// DefaultProximityKm is the distance under which two attractions count as nearby.
const DefaultProximityKm = 2.0

const clockLayout = "15:04"

// Slot is a named time window within a day holding at most one attraction.
type Slot struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// String renders the slot as "name HH:MM-HH:MM".
func (s Slot) String() string {
	return fmt.Sprintf("%s %s-%s", s.Name, s.Start, s.End)
}

// DefaultSlots returns the three-block daily template.
func DefaultSlots() []Slot {
	return []Slot{
		{Name: "morning", Start: "09:00", End: "12:00"},
		{Name: "afternoon", Start: "12:30", End: "15:00"},
		{Name: "evening", Start: "15:30", End: "18:00"},
	}
}

// Policy configures slot allocation.
type Policy struct {
	// Slots is the daily schedule template, in chronological order.
	Slots []Slot

	// ProximityKm is the pairwise distance threshold for grouping.
	ProximityKm float64
}

// DefaultPolicy returns the default template with DefaultProximityKm.
func DefaultPolicy() Policy {
	return Policy{Slots: DefaultSlots(), ProximityKm: DefaultProximityKm}
}

// Validate checks that the template is non-empty, well-formed,
// chronological and non-overlapping, and that the threshold is not negative.
func (p Policy) Validate() error {
	if len(p.Slots) == 0 {
		return fmt.Errorf("%w: slot template is empty", ErrInvalidPolicy)
	}
	if !(p.ProximityKm >= 0) {
		return fmt.Errorf("%w: proximity threshold %v is not a non-negative number", ErrInvalidPolicy, p.ProximityKm)
	}

	var prevEnd time.Time
	for i, s := range p.Slots {
		if s.Name == "" {
			return fmt.Errorf("%w: slot %d has no name", ErrInvalidPolicy, i)
		}
		start, err := time.Parse(clockLayout, s.Start)
		if err != nil {
			return fmt.Errorf("%w: slot %q start %q: %v", ErrInvalidPolicy, s.Name, s.Start, err)
		}
		end, err := time.Parse(clockLayout, s.End)
		if err != nil {
			return fmt.Errorf("%w: slot %q end %q: %v", ErrInvalidPolicy, s.Name, s.End, err)
		}
		if !start.Before(end) {
			return fmt.Errorf("%w: slot %q ends before it starts", ErrInvalidPolicy, s.Name)
		}
		if i > 0 && start.Before(prevEnd) {
			return fmt.Errorf("%w: slot %q overlaps or precedes the previous slot", ErrInvalidPolicy, s.Name)
		}
		prevEnd = end
	}
	return nil
}
