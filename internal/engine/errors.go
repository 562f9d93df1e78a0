package engine

import (
	"errors"

	"github.com/danieljhkim/travelbuddy/internal/attractions"
	"github.com/danieljhkim/travelbuddy/internal/itinerary"
	"github.com/danieljhkim/travelbuddy/internal/memory"
)

var (
	// ErrValidation indicates a malformed request.
	ErrValidation = errors.New("validation failed")

	// ErrStorage indicates the memory document could not be read or written.
	ErrStorage = memory.ErrStorage

	// ErrSourceUnavailable indicates the attraction source could not be reached.
	ErrSourceUnavailable = attractions.ErrSourceUnavailable

	// ErrInvalidRange indicates an end date before the start date.
	ErrInvalidRange = itinerary.ErrInvalidRange

	// ErrInvalidDate indicates a date not in YYYY-MM-DD form.
	ErrInvalidDate = itinerary.ErrInvalidDate
)
