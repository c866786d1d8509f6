package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreTuning(t *testing.T) {
	saved := CurrentTuning()
	t.Cleanup(func() { ApplyTuning(saved) })
}

func TestParseTuningOverridesOnlyGivenKeys(t *testing.T) {
	restoreTuning(t)

	tuning, err := ParseTuning([]byte(`
player:
  speed: 7
  invulnduration: 1.5s
pickup:
  lifetime: 30s
`))
	require.NoError(t, err)

	assert.Equal(t, 7.0, tuning.Player.Speed)
	assert.Equal(t, 1500*time.Millisecond, tuning.Player.InvulnDuration)
	assert.Equal(t, 30*time.Second, tuning.Pickup.Lifetime)
	assert.Equal(t, Player.JumpForce, tuning.Player.JumpForce)
	assert.Equal(t, Projectile.Capacity, tuning.Projectile.Capacity)

	// Parsing alone leaves the live values untouched.
	assert.Equal(t, 5.0, Player.Speed)
}

func TestParseTuningRejectsInvalidValues(t *testing.T) {
	restoreTuning(t)

	_, err := ParseTuning([]byte("projectile:\n  capacity: 0\ncamera:\n  followsmoothing: 2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "projectile.capacity")
	assert.Contains(t, err.Error(), "camera.followsmoothing")
}

func TestParseTuningRejectsMalformedYAML(t *testing.T) {
	_, err := ParseTuning([]byte("player: [1, 2"))
	require.Error(t, err)
}

func TestLoadTuningAppliesFile(t *testing.T) {
	restoreTuning(t)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemy:\n  count: 3\n"), 0o644))

	require.NoError(t, LoadTuning(path))
	assert.Equal(t, 3, Enemy.Count)
}

func TestLoadTuningMissingFile(t *testing.T) {
	err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultCharacters(t *testing.T) {
	c, ok := Character(CharacterSharpshooter)
	require.True(t, ok)
	assert.True(t, c.CanShoot)
	assert.Equal(t, 350*time.Millisecond, c.ShootCooldown)

	c, ok = Character(CharacterSplatter)
	require.True(t, ok)
	assert.True(t, c.CanSplat)
	assert.True(t, c.HasContactDamage)

	_, ok = Character("nobody")
	assert.False(t, ok)
}
