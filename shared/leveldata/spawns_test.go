package leveldata

import (
	"math/rand"
	"testing"

	"github.com/automoto/inkbrawl/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func slotsOf(n int, w, h float64) []Footprint {
	slots := make([]Footprint, n)
	for i := range slots {
		slots[i] = Footprint{W: w, H: h}
	}
	return slots
}

func TestPlaceEnemiesKeepsBuffer(t *testing.T) {
	lvl := DefaultLevel(550, 100, 200)

	for seed := int64(0); seed < 20; seed++ {
		placed := PlaceEnemies(rand.New(rand.NewSource(seed)), lvl, slotsOf(8, 50, 50), 20)
		require.NotEmpty(t, placed)

		for i := range placed {
			a := placed[i].Rect
			grown := gamemath.Rect{X: a.X - 20, Y: a.Y - 20, W: a.W + 40, H: a.H + 40}
			for j := i + 1; j < len(placed); j++ {
				assert.False(t, grown.Overlaps(placed[j].Rect), "seed %d: %d and %d too close", seed, i, j)
			}
		}
	}
}

func TestPlaceEnemiesStandsOnSurfaces(t *testing.T) {
	lvl := DefaultLevel(550, 100, 200)
	placed := PlaceEnemies(testRNG(), lvl, slotsOf(8, 50, 50), 20)

	for _, p := range placed {
		if p.Platform < 0 {
			assert.Equal(t, lvl.GroundY, p.Rect.Bottom())
			continue
		}
		platform := lvl.Platforms[p.Platform]
		assert.Equal(t, platform.Y, p.Rect.Bottom())
		assert.GreaterOrEqual(t, p.Rect.X, platform.X)
		assert.LessOrEqual(t, p.Rect.Right(), platform.Right())
	}
}

func TestPlaceEnemiesSkipsSlotWithoutRoom(t *testing.T) {
	lvl := Level{GroundY: 550, Boundaries: Boundaries{Left: -100, Right: 200}}

	// Each slot only has a ground candidate and a footprint wide enough to
	// cover the other slot's candidate.
	placed := PlaceEnemies(testRNG(), lvl, slotsOf(2, 2000, 50), 20)

	require.Len(t, placed, 1)
	assert.Equal(t, 0, placed[0].Slot)
	assert.Equal(t, -1, placed[0].Platform)
}

func TestPlaceEnemiesIgnoresNarrowPlatforms(t *testing.T) {
	lvl := Level{
		GroundY: 550,
		Platforms: []Platform{
			{Rect: gamemath.Rect{X: 0, Y: 300, W: 60, H: 20}},
		},
		Boundaries: Boundaries{Left: -100, Right: 4000},
	}

	placed := PlaceEnemies(testRNG(), lvl, slotsOf(4, 50, 50), 20)
	for _, p := range placed {
		assert.Equal(t, -1, p.Platform)
	}
}
