package sim

import (
	"image/color"

	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/shared/gamemath"
	"github.com/automoto/inkbrawl/shared/leveldata"
	"github.com/automoto/inkbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// Mutating it has no effect on the simulation.
type Snapshot struct {
	Run      int
	Frame    uint64
	GameOver bool
	Kills    int

	Camera     float64
	Viewport   gamemath.Rect
	GroundY    float64
	Boundaries leveldata.Boundaries
	Platforms  []leveldata.Platform

	Player        PlayerView
	Enemies       []EnemyView
	Projectiles   []ProjectileView
	Pickups       []PickupView
	DamageNumbers []DamageNumberView
}

// PlayerView doubles as the HUD read model.
type PlayerView struct {
	Character    string
	Bounds       gamemath.Rect
	Facing       float64
	Health       float64
	MaxHealth    float64
	Armor        float64
	Lives        int
	MaxLives     int
	Invulnerable bool
	Charging     bool
	ChargeLevel  float64
	Barraging    bool
	AuraActive   bool
	Color        color.RGBA
}

type EnemyView struct {
	Kind      components.EnemyKind
	Bounds    gamemath.Rect
	Facing    float64
	Health    float64
	MaxHealth float64
	Damaged   bool
	Chasing   bool
}

type ProjectileView struct {
	Kind    components.ProjectileKind
	Bounds  gamemath.Rect
	Color   color.RGBA
	Hostile bool
}

type PickupView struct {
	Kind   components.PickupKind
	Bounds gamemath.Rect
	Pulse  float64
	Color  color.RGBA
}

type DamageNumberView struct {
	Value float64
	X, Y  float64
	Color color.RGBA
	Alpha float64
}

var enemyQuery = donburi.NewQuery(filter.Contains(tags.Enemy, components.Enemy, components.Health, components.Bounds))

// Snapshot copies the current world state. It returns the zero Snapshot
// before the first run.
func (s *Simulation) Snapshot() Snapshot {
	if s.ecs == nil {
		return Snapshot{}
	}
	w := s.ecs.World
	game := tags.Game.MustFirst(w)
	lvl := components.Level.Get(game)
	session := components.Session.Get(game)

	snap := Snapshot{
		Run:        session.Run,
		Frame:      components.Clock.Get(game).Frame,
		GameOver:   session.GameOver,
		Kills:      session.Kills,
		GroundY:    lvl.GroundY,
		Boundaries: lvl.Boundaries,
		Platforms:  append([]leveldata.Platform(nil), lvl.Platforms...),
	}
	if cam, ok := components.Camera.First(w); ok {
		snap.Camera = components.Camera.Get(cam).Position.X
	}
	snap.Viewport = gamemath.Rect{X: snap.Camera, W: lvl.ViewportWidth, H: lvl.ViewportHeight}

	if player, ok := tags.Player.First(w); ok {
		snap.Player = playerView(player)
	}

	enemyQuery.Each(w, func(e *donburi.Entry) {
		d := components.Enemy.Get(e)
		hp := components.Health.Get(e)
		v := EnemyView{
			Kind:      d.Kind,
			Bounds:    components.Bounds.Get(e).Rect,
			Facing:    d.Facing,
			Health:    hp.Current,
			MaxHealth: hp.Max,
			Damaged:   d.Damaged,
		}
		if e.HasComponent(components.Octoling) {
			v.Chasing = components.Octoling.Get(e).Mode == components.ModeChasing
		}
		snap.Enemies = append(snap.Enemies, v)
	})

	components.Projectile.Each(w, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			Kind:    p.Kind,
			Bounds:  components.Bounds.Get(e).Rect,
			Color:   p.Color,
			Hostile: p.Hostile,
		})
	})

	components.Pickup.Each(w, func(e *donburi.Entry) {
		p := components.Pickup.Get(e)
		snap.Pickups = append(snap.Pickups, PickupView{
			Kind:   p.Kind,
			Bounds: components.Bounds.Get(e).Rect,
			Pulse:  float64(p.Pulse),
			Color:  p.Color,
		})
	})

	components.DamageNumber.Each(w, func(e *donburi.Entry) {
		n := components.DamageNumber.Get(e)
		snap.DamageNumbers = append(snap.DamageNumbers, DamageNumberView{
			Value: n.Value,
			X:     n.X,
			Y:     n.Y,
			Color: n.Color,
			Alpha: float64(n.Alpha),
		})
	})

	return snap
}

func playerView(e *donburi.Entry) PlayerView {
	p := components.Player.Get(e)
	hp := components.Health.Get(e)
	lives := components.Lives.Get(e)

	v := PlayerView{
		Character:    p.Character,
		Bounds:       components.Bounds.Get(e).Rect,
		Facing:       p.Facing,
		Health:       hp.Current,
		MaxHealth:    hp.Max,
		Armor:        hp.Armor,
		Lives:        lives.Lives,
		MaxLives:     lives.MaxLives,
		Invulnerable: p.Invulnerable,
		Charging:     p.Charge.Charging,
		Barraging:    p.Charge.Barraging,
		AuraActive:   p.Contact.Active,
		Color:        p.Abilities.Color,
	}
	if p.Charge.Charging {
		v.ChargeLevel = p.Charge.Level
	}
	return v
}
