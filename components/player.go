package components

import (
	"time"

	"github.com/automoto/inkbrawl/config"
	"github.com/yohamta/donburi"
)

// ChargeData is the charge/barrage state machine. Charging and Barraging are
// never both set.
type ChargeData struct {
	Charging    bool
	ChargeStart time.Duration
	Level       float64 // 0..1, recomputed while the action is held

	Barraging       bool
	BarrageStart    time.Duration
	BarrageDuration time.Duration
	LastBarrageEnd  time.Duration
}

// ContactAuraData tracks the self-cycling melee aura.
type ContactAuraData struct {
	Active     bool
	Start      time.Duration
	LastActive time.Duration
}

type PlayerData struct {
	Character string
	Abilities config.CharacterConfig

	Facing    float64
	Speed     float64
	JumpForce float64
	VelocityY float64
	Airborne  bool

	LastShot time.Duration
	Charge   ChargeData
	Contact  ContactAuraData

	Invulnerable      bool
	InvulnerableUntil time.Duration
}

var Player = donburi.NewComponentType[PlayerData]()
