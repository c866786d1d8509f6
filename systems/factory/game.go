package factory

import (
	"math/rand"
	"time"

	"github.com/automoto/inkbrawl/archetypes"
	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CreateGame spawns the run-wide singletons: clock, level, rng and session.
func CreateGame(w donburi.World, lvl leveldata.Level, rng *rand.Rand, now time.Duration, character string, run int, viewportW, viewportH float64) *donburi.Entry {
	game := archetypes.Game.Spawn(w)

	components.Clock.Set(game, &components.ClockData{Now: now})
	components.Level.Set(game, &components.LevelData{
		Name:           lvl.Name,
		GroundY:        lvl.GroundY,
		Boundaries:     lvl.Boundaries,
		Platforms:      lvl.Platforms,
		ViewportWidth:  viewportW,
		ViewportHeight: viewportH,
	})
	components.RNG.Set(game, &components.RNGData{Rand: rng})
	components.Session.Set(game, &components.SessionData{
		Character: character,
		Run:       run,
	})
	return game
}
