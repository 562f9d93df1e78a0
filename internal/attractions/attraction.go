// Package attractions finds candidate points of interest for a destination.
//
// Candidates come from a Source (a stubbed YAML catalog today) and are
// filtered by interest tags, deduplicated by name and location, ranked by
// rating and capped before they reach the itinerary builder.
package attractions

import (
	"errors"
	"math"
	"sort"
	"strings"
)

// ErrSourceUnavailable indicates the attraction source could not be reached.
var ErrSourceUnavailable = errors.New("attraction source unavailable")

const earthRadiusKm = 6371.0

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// DistanceKm returns the great-circle distance between two locations.
func (l Location) DistanceKm(other Location) float64 {
	lat1 := l.Lat * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (other.Lon - l.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Attraction is a point of interest candidate.
type Attraction struct {
	Name        string   `json:"name" yaml:"name"`
	Category    string   `json:"category" yaml:"category"`
	Location    Location `json:"location" yaml:",inline"`
	Rating      float64  `json:"rating" yaml:"rating"`
	Description string   `json:"description,omitempty" yaml:"description"`
	Hours       string   `json:"hours,omitempty" yaml:"hours"`
}

// Key identifies an attraction for deduplication.
type Key struct {
	Name     string
	Location Location
}

// Key returns the dedup key of the attraction.
func (a Attraction) Key() Key {
	return Key{Name: a.Name, Location: a.Location}
}

// NormalizeInterests lower-cases and trims tags, drops empties and
// duplicates, and returns them sorted.
func NormalizeInterests(interests []string) []string {
	seen := make(map[string]bool, len(interests))
	out := make([]string, 0, len(interests))
	for _, tag := range interests {
		tag = normalizeTag(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

func normalizeTag(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
