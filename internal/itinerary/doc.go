// Package itinerary allocates ranked attractions into day/time slots.
//
// Building is a pure function of the date range, the candidate list and the
// Policy (daily slot template plus proximity threshold):
//   - every day of the inclusive range gets a Day, possibly with no visits
//   - an attraction is placed at most once per itinerary
//   - candidates beyond the range's slot capacity are dropped lowest-rank first
//   - visits inside a day are grouped by proximity and walked nearest-first
package itinerary
