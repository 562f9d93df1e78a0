package engine

import (
	"fmt"
	"strings"

	"github.com/danieljhkim/travelbuddy/internal/memory"
)

// RenderSummary renders a trip's itinerary as plain text. The output depends
// only on the trip's destination, dates and itinerary.
func RenderSummary(trip *memory.Trip) string {
	places := 0
	for _, day := range trip.Itinerary {
		places += len(day.Visits)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s to %s (%s, %s)\n",
		trip.Destination, trip.StartDate, trip.EndDate,
		plural(len(trip.Itinerary), "day", "days"),
		plural(places, "place", "places"))

	for _, day := range trip.Itinerary {
		b.WriteString(day.Date)
		b.WriteString("\n")
		if len(day.Visits) == 0 {
			b.WriteString("  (free)\n")
			continue
		}
		for _, v := range day.Visits {
			fmt.Fprintf(&b, "  %-9s %s-%s  %s [%s, %.1f]\n",
				v.Slot.Name, v.Slot.Start, v.Slot.End,
				v.Attraction.Name, v.Attraction.Category, v.Attraction.Rating)
		}
	}

	return b.String()
}

func plural(count int, singular, pluralForm string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, pluralForm)
}
