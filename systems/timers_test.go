package systems

import (
	"testing"
	"time"

	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/config"
	"github.com/automoto/inkbrawl/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestInvulnerabilityExpires(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, config.CharacterSharpshooter)
	ApplyPlayerDamage(w, player, 5)
	p := components.Player.Get(player)
	require.True(t, p.Invulnerable)

	advance(w, config.Player.InvulnDuration)
	run(w, UpdateTimers)
	assert.True(t, p.Invulnerable)

	advance(w, time.Millisecond)
	run(w, UpdateTimers)
	assert.False(t, p.Invulnerable)
}

func TestDamageNumbersDriftFadeAndExpire(t *testing.T) {
	w := newTestWorld(t)
	n := factory.CreateDamageNumber(w, testRNG(), components.NumberEnemyDamage, 100, 200, 25)
	nID := n.Entity()
	require.NotNil(t, n)
	d := components.DamageNumber.Get(n)
	assert.Equal(t, config.Red, d.Color)
	y := d.Y

	run(w, UpdateDamageNumbers)
	assert.Equal(t, y+config.DamageNumber.RiseSpeed, d.Y)
	assert.Less(t, d.Alpha, float32(1))

	for i := 1; i < config.DamageNumber.Lifespan-1; i++ {
		run(w, UpdateDamageNumbers)
	}
	require.True(t, w.Valid(nID))

	run(w, UpdateDamageNumbers)
	assert.False(t, w.Valid(nID))
	remaining := 0
	components.DamageNumber.Each(w, func(*donburi.Entry) { remaining++ })
	assert.Zero(t, remaining)
}

func TestNumberColor(t *testing.T) {
	assert.Equal(t, config.Yellow, factory.NumberColor(components.NumberEnemyDamage, 5))
	assert.Equal(t, config.Orange, factory.NumberColor(components.NumberEnemyDamage, 10))
	assert.Equal(t, config.Red, factory.NumberColor(components.NumberEnemyDamage, 20))
	assert.Equal(t, config.Green, factory.NumberColor(components.NumberHeal, 5))
	assert.Equal(t, config.White, factory.NumberColor(components.NumberArmor, 5))
}
