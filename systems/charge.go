package systems

import (
	"time"

	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/config"
	"github.com/automoto/inkbrawl/shared/gamemath"
)

// StepCharge advances the charge/barrage state machine by one tick:
//
//	Idle -> Charging -> Barraging -> (global cooldown) -> Idle
//
// held is the action intent and lastShot the time of the previous barrage
// shot. It reports whether a barrage shot is due and its damage multiplier.
func StepCharge(c *components.ChargeData, held bool, now, lastShot time.Duration) (fire bool, multiplier float64) {
	if c.Barraging {
		if now-c.BarrageStart > c.BarrageDuration {
			c.Barraging = false
			c.Level = 0
			c.LastBarrageEnd = now
			return false, 0
		}
		if now-lastShot > config.Player.BarrageInterval {
			return true, BarrageMultiplier(c.BarrageDuration)
		}
		return false, 0
	}

	inCooldown := now-c.LastBarrageEnd < config.Player.GlobalCooldown
	if inCooldown && !c.Charging {
		return false, 0
	}

	switch {
	case held && !c.Charging:
		c.Charging = true
		c.ChargeStart = now
	case held:
		c.Level = gamemath.Clamp(float64(now-c.ChargeStart)/float64(config.Player.MaxChargeTime), 0, 1)
	case c.Charging:
		c.Charging = false
		if d := BarrageDuration(c.Level); d > 0 {
			c.Barraging = true
			c.BarrageStart = now
			c.BarrageDuration = d
		}
		c.Level = 0
	}
	return false, 0
}

// BarrageDuration maps the charge level at release to how long the barrage
// lasts. Any charge above zero earns the shortest barrage.
func BarrageDuration(level float64) time.Duration {
	if level <= 0 {
		return 0
	}
	for _, step := range config.Charge.DurationSteps {
		if level >= step.MinLevel {
			return step.Duration
		}
	}
	return config.Charge.MinBarrage
}

// BarrageMultiplier maps a barrage's duration to the damage multiplier of
// its shots.
func BarrageMultiplier(d time.Duration) float64 {
	for _, step := range config.Charge.MultiplierSteps {
		if d >= step.MinDuration {
			return step.Multiplier
		}
	}
	return 1
}
