package leveldata

import (
	"math/rand"

	"github.com/automoto/inkbrawl/shared/gamemath"
)

// candidate is a possible top-left spawn position.
type candidate struct {
	x, y     float64
	platform int
}

// PlaceEnemies picks a spawn rectangle for each slot. Every slot gets one
// ground candidate spread along the world plus one candidate on each platform
// wide enough to hold it; candidates within buffer of an already placed enemy
// are discarded and a random survivor is taken. Slots with no survivor are
// skipped, so the result may be shorter than slots.
func PlaceEnemies(rng *rand.Rand, lvl Level, slots []Footprint, buffer float64) []Placement {
	var placed []Placement
	n := len(slots)

	for i, fp := range slots {
		candidates := []candidate{groundCandidate(rng, lvl, i, n, fp)}
		for pi, p := range lvl.Platforms {
			if p.W < fp.W+buffer {
				continue
			}
			candidates = append(candidates, candidate{
				x:        p.X + rng.Float64()*(p.W-fp.W),
				y:        p.Y - fp.H,
				platform: pi,
			})
		}

		free := candidates[:0]
		for _, c := range candidates {
			if !overlapsPlaced(gamemath.Rect{X: c.x, Y: c.y, W: fp.W, H: fp.H}, placed, buffer) {
				free = append(free, c)
			}
		}
		if len(free) == 0 {
			continue
		}

		c := free[rng.Intn(len(free))]
		placed = append(placed, Placement{
			Slot:     i,
			Rect:     gamemath.Rect{X: c.x, Y: c.y, W: fp.W, H: fp.H},
			Platform: c.platform,
		})
	}
	return placed
}

// groundCandidate spreads the first half of the slots from the left boundary
// and the second half across the right side.
func groundCandidate(rng *rand.Rand, lvl Level, i, n int, fp Footprint) candidate {
	var x float64
	if i < n/2 {
		x = lvl.Boundaries.Left + 100 + float64(i)*300 + rng.Float64()*100
	} else {
		x = 400 + float64(i-n/2)*500 + rng.Float64()*200
	}
	return candidate{x: x, y: lvl.GroundY - fp.H, platform: -1}
}

func overlapsPlaced(r gamemath.Rect, placed []Placement, buffer float64) bool {
	for _, p := range placed {
		o := p.Rect
		if r.X < o.Right()+buffer &&
			r.Right()+buffer > o.X &&
			r.Y < o.Bottom()+buffer &&
			r.Bottom()+buffer > o.Y {
			return true
		}
	}
	return false
}
