package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type EnemyKind int

const (
	EnemyOctoSlob EnemyKind = iota
	EnemyOctoling
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyOctoSlob:
		return "OctoSlob"
	case EnemyOctoling:
		return "Octoling"
	}
	return "Unknown"
}

type EnemyData struct {
	Kind       EnemyKind
	Facing     float64
	SpawnIndex int // ordering for hit tie-breaks, later spawns win

	Damaged   bool
	DamagedAt time.Duration
	LastShot  time.Duration
}

var Enemy = donburi.NewComponentType[EnemyData]()

type OctolingMode int

const (
	ModePatrolling OctolingMode = iota
	ModeChasing
)

func (m OctolingMode) String() string {
	if m == ModeChasing {
		return "chasing"
	}
	return "patrolling"
}

// OctolingData is the extra movement and AI state of a mobile enemy.
type OctolingData struct {
	VelocityY float64
	Airborne  bool
	Platform  int // index of the platform stood on, -1 on the ground or in the air

	PatrolAnchorX   float64
	PatrolDirection float64
	MovementRange   float64
	LastJump        time.Duration

	Mode           OctolingMode
	NextModeSwitch time.Duration
}

var Octoling = donburi.NewComponentType[OctolingData]()
