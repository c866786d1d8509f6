package systems

import (
	"testing"

	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestApplyPlayerDamageArmorFirst(t *testing.T) {
	tests := []struct {
		name          string
		armor, amount float64
		wantArmor     float64
		wantHealth    float64
		wantAbsorbed  float64
		wantNumbers   map[components.DamageNumberKind]int
	}{
		{
			name: "armor partly absorbs", armor: 10, amount: 15,
			wantArmor: 0, wantHealth: 70, wantAbsorbed: 10,
			wantNumbers: map[components.DamageNumberKind]int{components.NumberArmor: 1, components.NumberPlayerDamage: 1},
		},
		{
			name: "armor absorbs everything", armor: 50, amount: 15,
			wantArmor: 35, wantHealth: 75, wantAbsorbed: 15,
			wantNumbers: map[components.DamageNumberKind]int{components.NumberArmor: 1, components.NumberPlayerDamage: 0},
		},
		{
			name: "no armor", armor: 0, amount: 15,
			wantArmor: 0, wantHealth: 60, wantAbsorbed: 0,
			wantNumbers: map[components.DamageNumberKind]int{components.NumberArmor: 0, components.NumberPlayerDamage: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			player := addPlayer(t, w, config.CharacterSharpshooter)
			components.Health.Get(player).Armor = tt.armor

			res := ApplyPlayerDamage(w, player, tt.amount)

			hp := components.Health.Get(player)
			assert.Equal(t, tt.wantArmor, hp.Armor)
			assert.Equal(t, tt.wantHealth, hp.Current)
			assert.Equal(t, tt.wantAbsorbed, res.AbsorbedByArmor)
			assert.Equal(t, tt.amount-tt.wantAbsorbed, res.HealthLost)
			assert.False(t, res.LifeLost)

			p := components.Player.Get(player)
			assert.True(t, p.Invulnerable)
			assert.Equal(t, testStart+config.Player.InvulnDuration, p.InvulnerableUntil)

			for kind, want := range tt.wantNumbers {
				assert.Equal(t, want, countNumbers(w, kind), "number kind %d", kind)
			}
		})
	}
}

func TestApplyPlayerDamageLosesLife(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, config.CharacterSharpshooter)
	hp := components.Health.Get(player)
	hp.Current = 10
	hp.Armor = 0

	res := ApplyPlayerDamage(w, player, 15)

	assert.True(t, res.LifeLost)
	assert.False(t, res.GameOver)
	assert.Equal(t, config.Player.StartingLives-1, components.Lives.Get(player).Lives)
	assert.Equal(t, hp.Max, hp.Current, "health resets after a lost life")
	assert.Zero(t, hp.Armor)
}

func TestApplyPlayerDamageGameOverOnce(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, config.CharacterSharpshooter)
	components.Lives.Get(player).Lives = 1
	components.Health.Get(player).Current = 5

	fired := 0
	GameOver.Subscribe(w, func(w donburi.World, e GameOverEvent) {
		fired++
	})

	first := ApplyPlayerDamage(w, player, 20)
	second := ApplyPlayerDamage(w, player, 20)
	run(w, ProcessEvents)

	assert.True(t, first.GameOver)
	assert.Equal(t, DamageResult{}, second, "a player without lives ignores damage")
	assert.Equal(t, 1, fired)
	assert.True(t, session(w).GameOver)
	assert.Zero(t, components.Lives.Get(player).Lives)
	assert.Zero(t, components.Health.Get(player).Current)
}

func TestApplyPlayerDamageIgnoresNonPositive(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, config.CharacterSharpshooter)

	ApplyPlayerDamage(w, player, 0)

	assert.False(t, components.Player.Get(player).Invulnerable)
	assert.Equal(t, config.Player.MaxHealth, components.Health.Get(player).Current)
}

func TestHealPlayerCapsAtMax(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, config.CharacterSharpshooter)
	components.Health.Get(player).Current = 70

	gained := HealPlayer(w, player, 20)

	assert.Equal(t, 5.0, gained)
	assert.Equal(t, config.Player.MaxHealth, components.Health.Get(player).Current)
	assert.Equal(t, 1, countNumbers(w, components.NumberHeal))
}

func TestHealPlayerAtFullHealthShowsNothing(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, config.CharacterSharpshooter)

	assert.Zero(t, HealPlayer(w, player, 20))
	assert.Zero(t, countNumbers(w, components.NumberHeal))
}

func TestAddArmorIsUncapped(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, config.CharacterSharpshooter)
	components.Health.Get(player).Armor = 100

	AddArmor(w, player, 15)

	assert.Equal(t, 115.0, components.Health.Get(player).Armor)
}

func TestApplyEnemyDamageFloorsAtZero(t *testing.T) {
	w := newTestWorld(t)
	enemy := createOctoSlobForTest(t, w, 120)

	dealt := ApplyEnemyDamage(w, enemy, 150, 0, 0)

	require.Equal(t, config.OctoSlob.Health, dealt)
	assert.Zero(t, components.Health.Get(enemy).Current)
	e := components.Enemy.Get(enemy)
	assert.True(t, e.Damaged)
	assert.Equal(t, testStart, e.DamagedAt)
}
