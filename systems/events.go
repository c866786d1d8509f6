package systems

import (
	"github.com/automoto/inkbrawl/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// GameOverEvent is published when the player loses the last life.
type GameOverEvent struct {
	Run       int
	Character string
}

// EnemyKilledEvent is published when a dead enemy is removed.
type EnemyKilledEvent struct {
	Kind components.EnemyKind
	X, Y float64
}

// PickupCollectedEvent is published when the player collects a pickup.
type PickupCollectedEvent struct {
	Kind   components.PickupKind
	Amount float64
}

var (
	GameOver        = events.NewEventType[GameOverEvent]()
	EnemyKilled     = events.NewEventType[EnemyKilledEvent]()
	PickupCollected = events.NewEventType[PickupCollectedEvent]()
)

// ProcessEvents delivers queued events to their subscribers.
func ProcessEvents(ecs *ecs.ECS) {
	w := ecs.World
	GameOver.ProcessEvents(w)
	EnemyKilled.ProcessEvents(w)
	PickupCollected.ProcessEvents(w)
}
