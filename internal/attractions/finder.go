package attractions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

// DefaultMaxCandidates caps how many ranked candidates a search returns.
const DefaultMaxCandidates = 12

// Finder turns raw source hits into a ranked candidate list.
type Finder struct {
	source        Source
	maxCandidates int
	logger        *slog.Logger
}

// NewFinder creates a Finder. A non-positive maxCandidates selects
// DefaultMaxCandidates; a nil logger selects slog.Default().
func NewFinder(source Source, maxCandidates int, logger *slog.Logger) *Finder {
	if maxCandidates <= 0 {
		maxCandidates = DefaultMaxCandidates
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Finder{
		source:        source,
		maxCandidates: maxCandidates,
		logger:        logger,
	}
}

// Search returns the deduplicated, interest-filtered candidates for destination,
// ranked by rating (desc) then name (asc) and capped at MaxCandidates.
// An empty interest set keeps every category. No matches is an empty slice.
func (f *Finder) Search(ctx context.Context, destination string, interests []string) ([]Attraction, error) {
	f.logger.Info("search tool query", "destination", destination, "interests", interests)

	hits, err := f.source.Lookup(ctx, destination)
	if err != nil {
		if errors.Is(err, ErrSourceUnavailable) {
			return nil, fmt.Errorf("failed to look up attractions for %q: %w", destination, err)
		}
		return nil, fmt.Errorf("%w: failed to look up attractions for %q: %v", ErrSourceUnavailable, destination, err)
	}

	candidates := Rank(Dedupe(FilterByInterests(hits, interests)))
	if len(candidates) > f.maxCandidates {
		candidates = candidates[:f.maxCandidates]
	}

	f.logger.Debug("search complete", "destination", destination, "hits", len(hits), "candidates", len(candidates))
	return candidates, nil
}

// FilterByInterests keeps the candidates whose category is one of interests.
// Matching is case-insensitive; an empty interest set keeps everything.
func FilterByInterests(candidates []Attraction, interests []string) []Attraction {
	tags := NormalizeInterests(interests)
	out := make([]Attraction, 0, len(candidates))
	if len(tags) == 0 {
		return append(out, candidates...)
	}

	wanted := make(map[string]bool, len(tags))
	for _, tag := range tags {
		wanted[tag] = true
	}
	for _, c := range candidates {
		if wanted[normalizeTag(c.Category)] {
			out = append(out, c)
		}
	}
	return out
}

// Dedupe collapses attractions sharing a Key, keeping the highest-rated one.
// The first occurrence wins a rating tie. Output keeps first-seen order.
func Dedupe(candidates []Attraction) []Attraction {
	index := make(map[Key]int, len(candidates))
	out := make([]Attraction, 0, len(candidates))
	for _, c := range candidates {
		if i, ok := index[c.Key()]; ok {
			if c.Rating > out[i].Rating {
				out[i] = c
			}
			continue
		}
		index[c.Key()] = len(out)
		out = append(out, c)
	}
	return out
}

// Rank sorts candidates in place by rating desc, name asc, then coordinates,
// and returns the slice.
func Rank(candidates []Attraction) []Attraction {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if a.Location.Lat != b.Location.Lat {
			return a.Location.Lat < b.Location.Lat
		}
		return a.Location.Lon < b.Location.Lon
	})
	return candidates
}
