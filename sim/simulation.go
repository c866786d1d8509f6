// Package sim owns the game world and advances it one frame at a time.
package sim

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/config"
	"github.com/automoto/inkbrawl/shared/leveldata"
	"github.com/automoto/inkbrawl/systems"
	"github.com/automoto/inkbrawl/systems/factory"
	"github.com/automoto/inkbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrUnknownCharacter = errors.New("unknown character")

// pipeline is the fixed frame order.
var pipeline = []func(*ecs.ECS){
	systems.UpdatePlayer,
	systems.UpdateProjectiles,
	systems.UpdateEnemies,
	systems.UpdatePickups,
	systems.UpdateCamera,
	systems.UpdateTimers,
	systems.UpdateDamageNumbers,
	systems.ProcessEvents,
}

// Simulation is the engine controller. It is not safe for concurrent use;
// Step and Snapshot are meant to be called from the same game loop.
type Simulation struct {
	clock Clock
	rng   *rand.Rand
	level leveldata.Level

	viewportW float64
	viewportH float64

	ecs       *ecs.ECS
	character string
	run       int

	gameOverHandlers []func()
}

// New prepares a simulation. The level is loaded immediately; if it cannot
// be read the built-in platform layout is used instead.
func New(opts Options) *Simulation {
	opts = opts.withDefaults()

	lvl, err := leveldata.LoadLevel(opts.LevelFS, opts.LevelPath, config.World.LeftMargin, config.World.RightMargin)
	if err != nil {
		log.Printf("Falling back to default level: %v", err)
		lvl = leveldata.DefaultLevel(config.World.GroundY, config.World.LeftMargin, config.World.RightMargin)
	}

	return &Simulation{
		clock:     opts.Clock,
		rng:       opts.Rand,
		level:     lvl,
		viewportW: opts.ViewportWidth,
		viewportH: opts.ViewportHeight,
	}
}

// StartRun begins a fresh run with the given character.
func (s *Simulation) StartRun(character string) error {
	if _, ok := config.Character(character); !ok {
		return fmt.Errorf("start run %q: %w", character, ErrUnknownCharacter)
	}
	s.character = character
	s.run++
	s.ecs = s.buildWorld()
	return nil
}

// Restart begins a new run with the current character. Player stats,
// projectiles, pickups and damage numbers are reset and enemies are placed
// again.
func (s *Simulation) Restart() {
	if s.character == "" {
		return
	}
	log.Printf("Restarting with %s", s.character)
	s.run++
	s.ecs = s.buildWorld()
}

// OnGameOver registers fn to be called once per run, after the step in
// which the player loses the last life.
func (s *Simulation) OnGameOver(fn func()) {
	s.gameOverHandlers = append(s.gameOverHandlers, fn)
}

// Running reports whether a run is in progress and not over.
func (s *Simulation) Running() bool {
	return s.ecs != nil && !components.Session.Get(components.Session.MustFirst(s.ecs.World)).GameOver
}

// Step advances the world one frame with the given input. It does nothing
// before StartRun or after game over.
func (s *Simulation) Step(intent components.IntentData) {
	if !s.Running() {
		return
	}
	w := s.ecs.World

	game := tags.Game.MustFirst(w)
	clock := components.Clock.Get(game)
	clock.Now = s.clock.Now()
	clock.Frame++

	if player, ok := tags.Player.First(w); ok {
		*components.Intent.Get(player) = intent
	}

	s.ecs.Update()
}

// World exposes the live world for tests and debugging tools.
func (s *Simulation) World() donburi.World {
	if s.ecs == nil {
		return nil
	}
	return s.ecs.World
}

func (s *Simulation) buildWorld() *ecs.ECS {
	w := donburi.NewWorld()
	t := s.clock.Now()

	game := factory.CreateGame(w, s.level, s.rng, t, s.character, s.run, s.viewportW, s.viewportH)
	factory.CreateSpace(w, s.level, s.viewportH, config.World.CellSize)
	factory.CreatePlatforms(w, s.level.Platforms)

	abilities, _ := config.Character(s.character)
	player := factory.CreatePlayer(w, s.character, abilities)
	start := components.Bounds.Get(player).X - s.viewportW/2
	factory.CreateCamera(w, systems.ClampCamera(start, components.Level.Get(game)))

	placed := s.spawnEnemies(w)

	systems.GameOver.Subscribe(w, s.handleGameOver)
	systems.EnemyKilled.Subscribe(w, logEnemyKilled)

	log.Printf("Run %d started: character=%s level=%s enemies=%d platforms=%d",
		s.run, s.character, s.level.Name, placed, len(s.level.Platforms))

	e := ecs.NewECS(w)
	for _, system := range pipeline {
		e.AddSystem(system)
	}
	return e
}

// spawnEnemies rolls a kind for each slot and places them on the level.
func (s *Simulation) spawnEnemies(w donburi.World) int {
	count := config.Enemy.Count
	kinds := make([]components.EnemyKind, count)
	slots := make([]leveldata.Footprint, count)
	for i := range kinds {
		if s.rng.Float64() < config.Enemy.OctolingChance {
			kinds[i] = components.EnemyOctoling
		}
		fw, fh := factory.EnemyFootprint(kinds[i])
		slots[i] = leveldata.Footprint{W: fw, H: fh}
	}

	placements := leveldata.PlaceEnemies(s.rng, s.level, slots, config.Enemy.SpawnBuffer)
	if skipped := count - len(placements); skipped > 0 {
		log.Printf("Skipped %d enemy spawn slots: no free position", skipped)
	}

	for _, p := range placements {
		switch kinds[p.Slot] {
		case components.EnemyOctoling:
			factory.CreateOctoling(w, p.Rect.X, p.Rect.Y, p.Platform)
		default:
			factory.CreateOctoSlob(w, p.Rect.X, p.Rect.Y)
		}
	}
	return len(placements)
}

func (s *Simulation) handleGameOver(w donburi.World, e systems.GameOverEvent) {
	for _, fn := range s.gameOverHandlers {
		fn()
	}
}

func logEnemyKilled(w donburi.World, e systems.EnemyKilledEvent) {
	log.Printf("%s defeated at (%.0f, %.0f)", e.Kind, e.X, e.Y)
}
