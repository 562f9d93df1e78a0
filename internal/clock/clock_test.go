package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	clk := &RealClock{}

	before := time.Now()
	actual := clk.Now()
	after := time.Now()

	assert.False(t, actual.Before(before) || actual.After(after), "Now() outside [%v, %v]: %v", before, after, actual)
	assert.Equal(t, time.UTC, actual.Location())
}

func TestFakeClock(t *testing.T) {
	start := time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)

	t.Run("returns fixed time", func(t *testing.T) {
		clk := NewFakeClock(start)
		assert.True(t, clk.Now().Equal(start))
		assert.True(t, clk.Now().Equal(clk.Now()))
	})

	t.Run("advances accumulate", func(t *testing.T) {
		clk := NewFakeClock(start)
		clk.Advance(time.Hour)
		clk.Advance(30 * time.Minute)
		assert.True(t, clk.Now().Equal(start.Add(90*time.Minute)))
	})
}
