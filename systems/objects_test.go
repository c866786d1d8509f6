package systems

import (
	"testing"

	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/config"
	"github.com/automoto/inkbrawl/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncObjectFollowsBounds(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, config.CharacterSharpshooter)
	standOnGround(w, player, 120)
	enemy := createOctoSlobForTest(t, w, 1500)

	assert.Empty(t, nearbyEnemies(player, tags.ResolvEnemy))

	// Bounds alone do not move the proxy.
	components.Bounds.Get(enemy).X = 130
	assert.Empty(t, nearbyEnemies(player, tags.ResolvEnemy))

	SyncObject(w, enemy)
	found := nearbyEnemies(player, tags.ResolvEnemy)
	require.Len(t, found, 1)
	assert.Equal(t, enemy.Entity(), found[0].Entity())

	space := components.Space.Get(components.Space.MustFirst(w))
	obj := components.Object.Get(enemy)
	assert.Equal(t, 130-space.OriginX, obj.X)
}

func TestDestroyRemovesProxy(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, config.CharacterSharpshooter)
	standOnGround(w, player, 120)
	enemy := createOctoSlobForTest(t, w, 130)
	id := enemy.Entity()
	require.Len(t, nearbyEnemies(player, tags.ResolvEnemy), 1)

	destroy(w, enemy)

	assert.False(t, w.Valid(id))
	assert.Empty(t, nearbyEnemies(player, tags.ResolvEnemy))
}
