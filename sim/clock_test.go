package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualClock(t *testing.T) {
	var c ManualClock
	assert.Zero(t, c.Now())

	c.Advance(time.Second)
	c.Advance(500 * time.Millisecond)
	assert.Equal(t, 1500*time.Millisecond, c.Now())

	c.Set(time.Minute)
	assert.Equal(t, time.Minute, c.Now())
}

func TestWallClockIsMonotonic(t *testing.T) {
	c := NewWallClock()
	first := c.Now()
	assert.GreaterOrEqual(t, c.Now(), first)
}
