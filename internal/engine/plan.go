package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/danieljhkim/travelbuddy/internal/attractions"
	"github.com/danieljhkim/travelbuddy/internal/itinerary"
	"github.com/danieljhkim/travelbuddy/internal/memory"
)

// PlanTrip researches destination, builds an itinerary over the requested
// dates and appends the trip to the user's history.
//
// Search, range and load failures are fatal and leave memory untouched.
// If only the final save fails, the planned trip is still returned with
// Saved=false together with an error wrapping ErrStorage.
func (e *Engine) PlanTrip(ctx context.Context, req *PlanTripRequest) (*PlanTripResult, error) {
	if err := validatePlanRequest(req); err != nil {
		return nil, err
	}

	start, err := itinerary.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}
	end, err := itinerary.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("end date: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.logger.Info("planning trip", "user", req.UserID, "destination", req.Destination)

	profile, err := e.store.Load(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	preferences := memory.MergePreferences(profile.Preferences, req.Preferences)

	interests := attractions.NormalizeInterests(req.Interests)
	candidates, err := e.finder.Search(ctx, req.Destination, interests)
	if err != nil {
		return nil, err
	}

	days, err := e.builder.Build(start, end, candidates)
	if err != nil {
		return nil, err
	}
	e.logger.Info("itinerary built", "days", len(days), "candidates", len(candidates))

	trip := &memory.Trip{
		ID:          e.newID(),
		Destination: req.Destination,
		StartDate:   itinerary.FormatDate(start),
		EndDate:     itinerary.FormatDate(end),
		Interests:   interests,
		Preferences: preferences,
		Itinerary:   days,
		CreatedAt:   e.clock.Now(),
	}
	trip.Summary = RenderSummary(trip)

	result := &PlanTripResult{
		Trip:             trip,
		PlacesConsidered: len(candidates),
	}

	profile.Preferences = memory.MergePreferences(preferences, nil)
	profile.AppendTrip(*trip)
	if err := e.store.Save(profile); err != nil {
		e.logger.Error("failed to save memory", "user", req.UserID, "error", err)
		return result, fmt.Errorf("trip planned but not saved: %w", err)
	}

	result.Saved = true
	e.logger.Info("memory saved", "user", req.UserID, "trips", len(profile.Trips))
	return result, nil
}

func validatePlanRequest(req *PlanTripRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrValidation)
	}
	if err := validateUserID(req.UserID); err != nil {
		return err
	}
	if strings.TrimSpace(req.Destination) == "" {
		return fmt.Errorf("%w: destination is required", ErrValidation)
	}
	return nil
}

// validateUserID rejects empty IDs and IDs with surrounding whitespace.
func validateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user id is required", ErrValidation)
	}
	if strings.TrimSpace(userID) != userID {
		return fmt.Errorf("%w: user id %q has leading or trailing whitespace", ErrValidation, userID)
	}
	return nil
}
