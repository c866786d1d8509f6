package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/config"
	"github.com/automoto/inkbrawl/shared/leveldata"
	"github.com/automoto/inkbrawl/systems/factory"
	"github.com/automoto/inkbrawl/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	testViewportW = 800
	testViewportH = 600
	testStart     = time.Minute
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// newTestWorld builds the default level with its singletons, platforms and a
// camera at x = 0. The clock starts at testStart.
func newTestWorld(t *testing.T) donburi.World {
	t.Helper()
	w := donburi.NewWorld()
	lvl := leveldata.DefaultLevel(config.World.GroundY, config.World.LeftMargin, config.World.RightMargin)

	factory.CreateGame(w, lvl, testRNG(), testStart, config.CharacterSharpshooter, 1, testViewportW, testViewportH)
	factory.CreateSpace(w, lvl, testViewportH, config.World.CellSize)
	factory.CreatePlatforms(w, lvl.Platforms)
	factory.CreateCamera(w, 0)
	return w
}

// run executes systems once, in order, over w.
func run(w donburi.World, systems ...func(*ecs.ECS)) {
	e := ecs.NewECS(w)
	for _, system := range systems {
		system(e)
	}
}

func advance(w donburi.World, d time.Duration) {
	components.Clock.Get(tags.Game.MustFirst(w)).Now += d
}

func addPlayer(t *testing.T, w donburi.World, character string) *donburi.Entry {
	t.Helper()
	abilities, ok := config.Character(character)
	require.True(t, ok)
	return factory.CreatePlayer(w, character, abilities)
}

// moveTo places e with its top-left corner at (x, y).
func moveTo(w donburi.World, e *donburi.Entry, x, y float64) {
	b := components.Bounds.Get(e)
	b.X, b.Y = x, y
	SyncObject(w, e)
}

// standOnGround puts the player on the ground at x, landed and at rest.
func standOnGround(w donburi.World, player *donburi.Entry, x float64) {
	b := components.Bounds.Get(player)
	moveTo(w, player, x, config.World.GroundY-b.H)
	p := components.Player.Get(player)
	p.VelocityY = 0
	p.Airborne = false
}

func countProjectiles(w donburi.World, match func(*components.ProjectileData) bool) int {
	n := 0
	components.Projectile.Each(w, func(e *donburi.Entry) {
		if match == nil || match(components.Projectile.Get(e)) {
			n++
		}
	})
	return n
}

func countNumbers(w donburi.World, kind components.DamageNumberKind) int {
	n := 0
	components.DamageNumber.Each(w, func(e *donburi.Entry) {
		if components.DamageNumber.Get(e).Kind == kind {
			n++
		}
	})
	return n
}
