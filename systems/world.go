package systems

import (
	"math/rand"
	"time"

	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/tags"
	"github.com/yohamta/donburi"
)

func gameEntry(w donburi.World) *donburi.Entry {
	return tags.Game.MustFirst(w)
}

func now(w donburi.World) time.Duration {
	return components.Clock.Get(gameEntry(w)).Now
}

func level(w donburi.World) *components.LevelData {
	return components.Level.Get(gameEntry(w))
}

func random(w donburi.World) *rand.Rand {
	return components.RNG.Get(gameEntry(w)).Rand
}

func session(w donburi.World) *components.SessionData {
	return components.Session.Get(gameEntry(w))
}

func cameraX(w donburi.World) float64 {
	cam, ok := components.Camera.First(w)
	if !ok {
		return 0
	}
	return components.Camera.Get(cam).Position.X
}
