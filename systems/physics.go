package systems

import (
	"github.com/automoto/inkbrawl/shared/gamemath"
	"github.com/automoto/inkbrawl/shared/leveldata"
)

// landBody resolves a falling body against the platforms, in list order with
// the first match winning, then against the ground, which always wins. It
// returns whether the body is supported and the index of the platform it
// stands on, or -1.
func landBody(b *gamemath.Rect, vy *float64, platforms []leveldata.Platform, groundY float64) (landed bool, platform int) {
	platform = -1
	if *vy >= 0 {
		for i, p := range platforms {
			if gamemath.LandsOn(*b, *vy, p.Rect) {
				b.Y = p.Y - b.H
				*vy = 0
				landed = true
				platform = i
				break
			}
		}
	}
	if b.Bottom() > groundY {
		b.Y = groundY - b.H
		*vy = 0
		landed = true
		platform = -1
	}
	return landed, platform
}

// integrateGravity applies one tick of gravity to a body.
func integrateGravity(b *gamemath.Rect, vy *float64, gravity float64) {
	*vy += gravity
	b.Y += *vy
}
