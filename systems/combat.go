package systems

import (
	"log"
	"math"

	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/config"
	"github.com/automoto/inkbrawl/systems/factory"
	"github.com/yohamta/donburi"
)

// DamageResult reports what one damage application did to the player.
type DamageResult struct {
	AbsorbedByArmor float64
	HealthLost      float64
	LifeLost        bool
	GameOver        bool
}

// ApplyPlayerDamage runs the player damage pipeline: armor absorbs first,
// the rest comes off health, and emptying health costs a life. Any positive
// amount starts the invulnerability window, even if armor took all of it.
// A player with no lives left ignores damage.
func ApplyPlayerDamage(w donburi.World, player *donburi.Entry, amount float64) DamageResult {
	var res DamageResult
	if amount <= 0 {
		return res
	}
	lives := components.Lives.Get(player)
	if lives.Lives <= 0 {
		return res
	}

	hp := components.Health.Get(player)
	pd := components.Player.Get(player)
	b := components.Bounds.Get(player)
	rng := random(w)
	t := now(w)

	remaining := amount
	if hp.Armor > 0 {
		absorbed := math.Min(hp.Armor, remaining)
		hp.Armor -= absorbed
		remaining -= absorbed
		res.AbsorbedByArmor = absorbed
		factory.CreateDamageNumber(w, rng, components.NumberArmor, b.CenterX(), b.Y, absorbed)
	}

	if remaining > 0 {
		before := hp.Current
		hp.Current = math.Max(0, hp.Current-remaining)
		res.HealthLost = before - hp.Current
		factory.CreateDamageNumber(w, rng, components.NumberPlayerDamage, b.CenterX(), b.Y, remaining)

		if hp.Current <= 0 {
			lives.Lives--
			res.LifeLost = true
			if lives.Lives > 0 {
				hp.Current = hp.Max
				hp.Armor = 0
				log.Printf("Player lost a life, %d remaining", lives.Lives)
			} else {
				res.GameOver = true
				triggerGameOver(w)
			}
		}
	}

	pd.Invulnerable = true
	pd.InvulnerableUntil = t + config.Player.InvulnDuration
	return res
}

func triggerGameOver(w donburi.World) {
	s := session(w)
	if s.GameOver {
		return
	}
	s.GameOver = true
	log.Printf("Game over: run %d, character %s, %d kills", s.Run, s.Character, s.Kills)
	GameOver.Publish(w, GameOverEvent{Run: s.Run, Character: s.Character})
}

// HealPlayer restores health up to the maximum and returns the amount gained.
func HealPlayer(w donburi.World, player *donburi.Entry, amount float64) float64 {
	hp := components.Health.Get(player)
	before := hp.Current
	hp.Current = math.Min(hp.Max, hp.Current+amount)
	gained := hp.Current - before

	b := components.Bounds.Get(player)
	factory.CreateDamageNumber(w, random(w), components.NumberHeal, b.CenterX(), b.Y, gained)
	return gained
}

// AddArmor adds temporary armor. Armor has no cap.
func AddArmor(w donburi.World, player *donburi.Entry, amount float64) {
	if amount <= 0 {
		return
	}
	hp := components.Health.Get(player)
	hp.Armor += amount

	b := components.Bounds.Get(player)
	factory.CreateDamageNumber(w, random(w), components.NumberArmor, b.CenterX(), b.Y, amount)
}

// ApplyEnemyDamage subtracts amount from an enemy's health, floored at zero,
// and starts its hit flash. The damage number shows the health actually
// removed at (x, y). Dead enemies are removed by UpdateEnemies.
func ApplyEnemyDamage(w donburi.World, enemy *donburi.Entry, amount, x, y float64) float64 {
	hp := components.Health.Get(enemy)
	before := hp.Current
	hp.Current = math.Max(0, hp.Current-amount)
	dealt := before - hp.Current

	e := components.Enemy.Get(enemy)
	e.Damaged = true
	e.DamagedAt = now(w)

	factory.CreateDamageNumber(w, random(w), components.NumberEnemyDamage, x, y, dealt)
	return dealt
}
