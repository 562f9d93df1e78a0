package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/travelbuddy/internal/attractions"
	"github.com/danieljhkim/travelbuddy/internal/memory"
)

// History returns the user's trips, oldest first.
func (e *Engine) History(ctx context.Context, userID string) ([]memory.Trip, error) {
	profile, err := e.load(userID)
	if err != nil {
		return nil, err
	}
	return profile.Trips, nil
}

// Preferences returns the user's stored preferences.
func (e *Engine) Preferences(ctx context.Context, userID string) (map[string]any, error) {
	profile, err := e.load(userID)
	if err != nil {
		return nil, err
	}
	return profile.Preferences, nil
}

// Users lists the users present in memory.
func (e *Engine) Users(ctx context.Context) ([]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	users, err := e.store.Users()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Catalog returns the ranked candidates for destination, ignoring interests.
// The list is capped like any search.
func (e *Engine) Catalog(ctx context.Context, destination string) ([]attractions.Attraction, error) {
	if destination == "" {
		return nil, fmt.Errorf("%w: destination is required", ErrValidation)
	}
	return e.finder.Search(ctx, destination, nil)
}

func (e *Engine) load(userID string) (*memory.UserProfile, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	profile, err := e.store.Load(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return profile, nil
}
