package itinerary

import (
	"time"

	"github.com/danieljhkim/travelbuddy/internal/attractions"
)

// Visit is an attraction assigned to a slot.
type Visit struct {
	Slot       Slot                   `json:"slot"`
	Attraction attractions.Attraction `json:"attraction"`
}

// Day is one calendar day of an itinerary. Visits are in slot order;
// unfilled slots are absent.
type Day struct {
	Date   string  `json:"date"`
	Visits []Visit `json:"visits"`
}

// Builder allocates candidates into days according to a Policy.
type Builder struct {
	policy Policy
}

// NewBuilder validates policy and returns a Builder for it.
func NewBuilder(policy Policy) (*Builder, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	slots := make([]Slot, len(policy.Slots))
	copy(slots, policy.Slots)
	policy.Slots = slots
	return &Builder{policy: policy}, nil
}


// Build lays candidates (in ranked order) out over the inclusive range
// [start, end]. It fails with ErrInvalidRange when end precedes start.
func (b *Builder) Build(start, end time.Time, candidates []attractions.Attraction) ([]Day, error) {
	numDays, err := DayCount(start, end)
	if err != nil {
		return nil, err
	}

	perDay := len(b.policy.Slots)
	pool := capacityPool(candidates, numDays*perDay)
	placed := make([]bool, len(pool))

	first := truncateDay(start)
	days := make([]Day, numDays)
	for d := range days {
		day := Day{
			Date:   FormatDate(first.AddDate(0, 0, d)),
			Visits: make([]Visit, 0, perDay),
		}
		group := b.groupDay(pool, placed, perDay)
		for i, idx := range walk(pool, group) {
			day.Visits = append(day.Visits, Visit{Slot: b.policy.Slots[i], Attraction: pool[idx]})
		}
		days[d] = day
	}

	return days, nil
}

// capacityPool drops repeated attractions and keeps at most capacity of the
// highest-ranked remainder.
func capacityPool(candidates []attractions.Attraction, capacity int) []attractions.Attraction {
	seen := make(map[attractions.Key]bool, len(candidates))
	pool := make([]attractions.Attraction, 0, min(len(candidates), capacity))
	for _, c := range candidates {
		if len(pool) == capacity {
			break
		}
		if seen[c.Key()] {
			continue
		}
		seen[c.Key()] = true
		pool = append(pool, c)
	}
	return pool
}

// groupDay picks up to size unplaced pool indexes for one day. The group is
// seeded with the best-ranked unplaced attraction and grown with the
// best-ranked attraction near any member; when nothing is near, the
// attraction closest to the seed is taken so days fill before the next begins.
func (b *Builder) groupDay(pool []attractions.Attraction, placed []bool, size int) []int {
	seed := -1
	for i := range pool {
		if !placed[i] {
			seed = i
			break
		}
	}
	if seed < 0 {
		return nil
	}

	placed[seed] = true
	group := []int{seed}
	for len(group) < size {
		next := b.nearestRanked(pool, placed, group)
		if next < 0 {
			next = closestTo(pool, placed, pool[seed].Location)
		}
		if next < 0 {
			break
		}
		placed[next] = true
		group = append(group, next)
	}
	return group
}

// nearestRanked returns the first unplaced index within the proximity
// threshold of any group member, or -1.
func (b *Builder) nearestRanked(pool []attractions.Attraction, placed []bool, group []int) int {
	for i := range pool {
		if placed[i] {
			continue
		}
		for _, g := range group {
			if pool[i].Location.DistanceKm(pool[g].Location) <= b.policy.ProximityKm {
				return i
			}
		}
	}
	return -1
}

// closestTo returns the unplaced index nearest to loc, lower index on ties, or -1.
func closestTo(pool []attractions.Attraction, placed []bool, loc attractions.Location) int {
	best, bestDist := -1, 0.0
	for i := range pool {
		if placed[i] {
			continue
		}
		if d := loc.DistanceKm(pool[i].Location); best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// walk orders a group as a nearest-neighbour path starting at its seed.
func walk(pool []attractions.Attraction, group []int) []int {
	if len(group) == 0 {
		return nil
	}

	remaining := make([]int, len(group)-1)
	copy(remaining, group[1:])
	order := []int{group[0]}
	for len(remaining) > 0 {
		cur := pool[order[len(order)-1]].Location
		bi := 0
		for i := 1; i < len(remaining); i++ {
			di := cur.DistanceKm(pool[remaining[i]].Location)
			db := cur.DistanceKm(pool[remaining[bi]].Location)
			if di < db || (di == db && remaining[i] < remaining[bi]) {
				bi = i
			}
		}
		order = append(order, remaining[bi])
		remaining = append(remaining[:bi], remaining[bi+1:]...)
	}
	return order
}
