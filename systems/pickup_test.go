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

func TestPickupBouncesToRest(t *testing.T) {
	w := newTestWorld(t)
	pickup := factory.CreatePickup(w, components.PickupHealth, 150, 300, testStart)
	p := components.Pickup.Get(pickup)

	bounced := false
	for i := 0; i < 600 && !p.Resting; i++ {
		run(w, UpdatePickups)
		if p.VelocityY < 0 && components.Bounds.Get(pickup).Bottom() == config.World.GroundY {
			bounced = true
		}
	}

	require.True(t, p.Resting)
	assert.True(t, bounced)
	assert.Zero(t, p.VelocityY)
	assert.Equal(t, config.World.GroundY, components.Bounds.Get(pickup).Bottom())

	run(w, UpdatePickups)
	assert.Equal(t, config.World.GroundY, components.Bounds.Get(pickup).Bottom(), "resting pickups stay put")
}

func TestPickupPulseAdvances(t *testing.T) {
	w := newTestWorld(t)
	pickup := factory.CreatePickup(w, components.PickupArmor, 150, 300, testStart)

	run(w, UpdatePickups)

	pulse := components.Pickup.Get(pickup).Pulse
	assert.Greater(t, pulse, float32(0))
	assert.Less(t, pulse, float32(1))
}

func TestHealthPickupCollected(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, config.CharacterSharpshooter)
	standOnGround(w, player, 120)
	components.Health.Get(player).Current = 50
	pickup := factory.CreatePickup(w, components.PickupHealth, 155, 515, testStart)
	pickupID := pickup.Entity()

	var collected []PickupCollectedEvent
	PickupCollected.Subscribe(w, func(w donburi.World, e PickupCollectedEvent) {
		collected = append(collected, e)
	})

	run(w, UpdatePickups)
	run(w, ProcessEvents)

	assert.False(t, w.Valid(pickupID))
	assert.Equal(t, 50+config.Pickup.Health.Amount, components.Health.Get(player).Current)
	require.Len(t, collected, 1)
	assert.Equal(t, components.PickupHealth, collected[0].Kind)
	assert.Equal(t, config.Pickup.Health.Amount, collected[0].Amount)
	assert.Equal(t, 1, countNumbers(w, components.NumberHeal))
}

func TestArmorPickupCollectedUncapped(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, config.CharacterSharpshooter)
	standOnGround(w, player, 120)
	components.Health.Get(player).Armor = 100
	factory.CreatePickup(w, components.PickupArmor, 155, 515, testStart)

	run(w, UpdatePickups)

	assert.Equal(t, 100+config.Pickup.Armor.Amount, components.Health.Get(player).Armor)
	assert.Equal(t, config.Player.MaxHealth, components.Health.Get(player).Current)
	assert.Equal(t, 1, countNumbers(w, components.NumberArmor))
}

func TestPickupOutOfReachIsKept(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, config.CharacterSharpshooter)
	standOnGround(w, player, 120)
	pickup := factory.CreatePickup(w, components.PickupHealth, 1200, 515, testStart)
	pickupID := pickup.Entity()

	run(w, UpdatePickups)

	assert.True(t, w.Valid(pickupID))
}

func TestPickupLifetime(t *testing.T) {
	saved := config.Pickup.Lifetime
	t.Cleanup(func() { config.Pickup.Lifetime = saved })

	t.Run("forever by default", func(t *testing.T) {
		config.Pickup.Lifetime = 0
		w := newTestWorld(t)
		pickup := factory.CreatePickup(w, components.PickupHealth, 150, 300, testStart)
		pickupID := pickup.Entity()

		advance(w, time.Hour)
		run(w, UpdatePickups)

		assert.True(t, w.Valid(pickupID))
	})

	t.Run("expires when configured", func(t *testing.T) {
		config.Pickup.Lifetime = 5 * time.Second
		w := newTestWorld(t)
		pickup := factory.CreatePickup(w, components.PickupHealth, 150, 300, testStart)
		pickupID := pickup.Entity()

		advance(w, 5*time.Second-time.Millisecond)
		run(w, UpdatePickups)
		require.True(t, w.Valid(pickupID))

		advance(w, time.Millisecond)
		run(w, UpdatePickups)
		assert.False(t, w.Valid(pickupID))
	})
}
