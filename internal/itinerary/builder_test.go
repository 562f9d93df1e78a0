package itinerary

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/travelbuddy/internal/attractions"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func twoSlotPolicy() Policy {
	return Policy{
		Slots: []Slot{
			{Name: "morning", Start: "09:00", End: "12:00"},
			{Name: "afternoon", Start: "13:00", End: "17:00"},
		},
		ProximityKm: DefaultProximityKm,
	}
}

// parisCandidates returns four ranked attractions: two on the Left Bank
// cafés cluster and two near the Louvre.
func parisCandidates() []attractions.Attraction {
	return []attractions.Attraction{
		{Name: "Louvre Museum", Category: "museums", Location: attractions.Location{Lat: 48.8606, Lon: 2.3376}, Rating: 4.8},
		{Name: "Musée d'Orsay", Category: "museums", Location: attractions.Location{Lat: 48.8600, Lon: 2.3266}, Rating: 4.7},
		{Name: "Café de Flore", Category: "cafes", Location: attractions.Location{Lat: 48.8541, Lon: 2.3326}, Rating: 4.3},
		{Name: "Les Deux Magots", Category: "cafes", Location: attractions.Location{Lat: 48.8540, Lon: 2.3333}, Rating: 4.2},
	}
}

func gridCandidates(n int) []attractions.Attraction {
	out := make([]attractions.Attraction, n)
	for i := range out {
		out[i] = attractions.Attraction{
			Name:     fmt.Sprintf("Place %02d", i),
			Location: attractions.Location{Lat: 10 + float64(i), Lon: 10},
			Rating:   5 - float64(i)*0.1,
		}
	}
	return out
}

func allNames(days []Day) []string {
	var out []string
	for _, d := range days {
		for _, v := range d.Visits {
			out = append(out, v.Attraction.Name)
		}
	}
	return out
}

func TestBuilder_Build_ThreeDaysFourCandidates(t *testing.T) {
	b, err := NewBuilder(twoSlotPolicy())
	require.NoError(t, err)

	days, err := b.Build(mustDate(t, "2025-12-01"), mustDate(t, "2025-12-03"), parisCandidates())
	require.NoError(t, err)

	require.Len(t, days, 3)
	assert.Equal(t, "2025-12-01", days[0].Date)
	assert.Equal(t, "2025-12-02", days[1].Date)
	assert.Equal(t, "2025-12-03", days[2].Date)
	assert.Len(t, days[0].Visits, 2)
	assert.Len(t, days[1].Visits, 2)
	assert.Empty(t, days[2].Visits)
	assert.ElementsMatch(t, []string{"Louvre Museum", "Musée d'Orsay", "Café de Flore", "Les Deux Magots"}, allNames(days))
}

func TestBuilder_Build_DayCount(t *testing.T) {
	b, err := NewBuilder(DefaultPolicy())
	require.NoError(t, err)

	tests := []struct {
		start, end string
		want       int
	}{
		{"2025-12-01", "2025-12-01", 1},
		{"2025-12-01", "2025-12-03", 3},
		{"2025-12-30", "2026-01-02", 4},
		{"2024-02-28", "2024-03-01", 3},
		{"2025-03-29", "2025-04-02", 5},
		{"1700-01-01", "2100-01-01", 146098},
	}

	for _, tt := range tests {
		t.Run(tt.start+"_"+tt.end, func(t *testing.T) {
			days, err := b.Build(mustDate(t, tt.start), mustDate(t, tt.end), gridCandidates(4))
			require.NoError(t, err)
			assert.Len(t, days, tt.want)
			assert.Equal(t, tt.start, days[0].Date)
			assert.Equal(t, tt.end, days[len(days)-1].Date)
		})
	}
}

func TestBuilder_Build_InvalidRange(t *testing.T) {
	b, err := NewBuilder(DefaultPolicy())
	require.NoError(t, err)

	days, err := b.Build(mustDate(t, "2025-12-03"), mustDate(t, "2025-12-01"), parisCandidates())
	assert.Nil(t, days)
	assert.True(t, errors.Is(err, ErrInvalidRange), "got %v", err)
}

func TestBuilder_Build_Overflow(t *testing.T) {
	b, err := NewBuilder(DefaultPolicy())
	require.NoError(t, err)

	candidates := gridCandidates(10)
	days, err := b.Build(mustDate(t, "2025-12-01"), mustDate(t, "2025-12-02"), candidates)
	require.NoError(t, err)

	placed := allNames(days)
	require.Len(t, placed, 6)
	want := []string{}
	for _, c := range candidates[:6] {
		want = append(want, c.Name)
	}
	assert.ElementsMatch(t, want, placed, "highest-ranked subset kept")
}

func TestBuilder_Build_Uniqueness(t *testing.T) {
	b, err := NewBuilder(DefaultPolicy())
	require.NoError(t, err)

	candidates := append(parisCandidates(), parisCandidates()...)
	days, err := b.Build(mustDate(t, "2025-12-01"), mustDate(t, "2025-12-05"), candidates)
	require.NoError(t, err)

	seen := map[attractions.Key]bool{}
	for _, d := range days {
		for _, v := range d.Visits {
			assert.False(t, seen[v.Attraction.Key()], "%s placed twice", v.Attraction.Name)
			seen[v.Attraction.Key()] = true
		}
	}
	assert.Len(t, seen, 4)
}

func TestBuilder_Build_SlotsChronological(t *testing.T) {
	b, err := NewBuilder(DefaultPolicy())
	require.NoError(t, err)

	days, err := b.Build(mustDate(t, "2025-12-01"), mustDate(t, "2025-12-03"), gridCandidates(8))
	require.NoError(t, err)

	for _, d := range days {
		for i, v := range d.Visits {
			assert.Equal(t, DefaultSlots()[i], v.Slot)
		}
	}
	assert.Len(t, days[2].Visits, 2, "trailing slots left empty")
}

func TestBuilder_Build_ProximityGrouping(t *testing.T) {
	b, err := NewBuilder(twoSlotPolicy())
	require.NoError(t, err)

	// Ranked order alternates between two distant cities; grouping should
	// keep each day inside one city.
	paris := attractions.Location{Lat: 48.8566, Lon: 2.3522}
	rome := attractions.Location{Lat: 41.9028, Lon: 12.4964}
	candidates := []attractions.Attraction{
		{Name: "P1", Location: paris, Rating: 5.0},
		{Name: "R1", Location: rome, Rating: 4.9},
		{Name: "P2", Location: attractions.Location{Lat: paris.Lat + 0.001, Lon: paris.Lon}, Rating: 4.8},
		{Name: "R2", Location: attractions.Location{Lat: rome.Lat + 0.001, Lon: rome.Lon}, Rating: 4.7},
	}

	days, err := b.Build(mustDate(t, "2025-12-01"), mustDate(t, "2025-12-02"), candidates)
	require.NoError(t, err)

	assert.Equal(t, []string{"P1", "P2"}, allNames(days[:1]))
	assert.Equal(t, []string{"R1", "R2"}, allNames(days[1:]))
}

func TestBuilder_Build_FallsBackToClosest(t *testing.T) {
	policy := DefaultPolicy()
	policy.ProximityKm = 0
	b, err := NewBuilder(policy)
	require.NoError(t, err)

	candidates := []attractions.Attraction{
		{Name: "Seed", Location: attractions.Location{Lat: 0, Lon: 0}, Rating: 5},
		{Name: "Far", Location: attractions.Location{Lat: 10, Lon: 0}, Rating: 4},
		{Name: "Near", Location: attractions.Location{Lat: 1, Lon: 0}, Rating: 3},
	}

	days, err := b.Build(mustDate(t, "2025-12-01"), mustDate(t, "2025-12-01"), candidates)
	require.NoError(t, err)
	assert.Equal(t, []string{"Seed", "Near", "Far"}, allNames(days))
}

func TestBuilder_Build_Deterministic(t *testing.T) {
	b, err := NewBuilder(DefaultPolicy())
	require.NoError(t, err)

	start, end := mustDate(t, "2025-12-01"), mustDate(t, "2025-12-04")
	first, err := b.Build(start, end, gridCandidates(9))
	require.NoError(t, err)
	second, err := b.Build(start, end, gridCandidates(9))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuilder_Build_NoCandidates(t *testing.T) {
	b, err := NewBuilder(DefaultPolicy())
	require.NoError(t, err)

	days, err := b.Build(mustDate(t, "2025-12-01"), mustDate(t, "2025-12-02"), nil)
	require.NoError(t, err)
	require.Len(t, days, 2)
	for _, d := range days {
		assert.NotNil(t, d.Visits)
		assert.Empty(t, d.Visits)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-12-20")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC), d)

	for _, bad := range []string{"", "20-12-2025", "2025-13-01", "2025-12-20T10:00:00Z"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", bad)
	}
}

func TestPolicy_Validate(t *testing.T) {
	tests := []struct {
		name    string
		policy  Policy
		wantErr bool
	}{
		{"default", DefaultPolicy(), false},
		{"empty template", Policy{ProximityKm: 1}, true},
		{"negative threshold", Policy{Slots: DefaultSlots(), ProximityKm: -1}, true},
		{"NaN threshold", Policy{Slots: DefaultSlots(), ProximityKm: math.NaN()}, true},
		{"missing name", Policy{Slots: []Slot{{Start: "09:00", End: "10:00"}}}, true},
		{"bad clock", Policy{Slots: []Slot{{Name: "a", Start: "9am", End: "10:00"}}}, true},
		{"ends before start", Policy{Slots: []Slot{{Name: "a", Start: "11:00", End: "10:00"}}}, true},
		{"overlapping", Policy{Slots: []Slot{
			{Name: "a", Start: "09:00", End: "12:00"},
			{Name: "b", Start: "11:00", End: "13:00"},
		}}, true},
		{"adjacent is fine", Policy{Slots: []Slot{
			{Name: "a", Start: "09:00", End: "12:00"},
			{Name: "b", Start: "12:00", End: "13:00"},
		}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPolicy)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
