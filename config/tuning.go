package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the part of the configuration that can be overridden from a YAML
// file. Keys are the lowercased field names, durations use Go syntax
// ("350ms", "1.5s"). Omitted keys keep their current value.
type Tuning struct {
	Physics      PhysicsConfig      `yaml:"physics"`
	World        WorldConfig        `yaml:"world"`
	Player       PlayerConfig       `yaml:"player"`
	Shot         ShotConfig         `yaml:"shot"`
	Splat        SplatConfig        `yaml:"splat"`
	Charge       ChargeConfig       `yaml:"charge"`
	OctoSlob     OctoSlobConfig     `yaml:"octoslob"`
	Octoling     OctolingConfig     `yaml:"octoling"`
	Enemy        EnemyConfig        `yaml:"enemy"`
	Projectile   ProjectileConfig   `yaml:"projectile"`
	Pickup       PickupConfig       `yaml:"pickup"`
	Camera       CameraConfig       `yaml:"camera"`
	DamageNumber DamageNumberConfig `yaml:"damagenumber"`
}

// CurrentTuning captures the live configuration values.
func CurrentTuning() Tuning {
	return Tuning{
		Physics:      Physics,
		World:        World,
		Player:       Player,
		Shot:         Shot,
		Splat:        Splat,
		Charge:       Charge,
		OctoSlob:     OctoSlob,
		Octoling:     Octoling,
		Enemy:        Enemy,
		Projectile:   Projectile,
		Pickup:       Pickup,
		Camera:       Camera,
		DamageNumber: DamageNumber,
	}
}

// ApplyTuning replaces the live configuration values with t.
func ApplyTuning(t Tuning) {
	Physics = t.Physics
	World = t.World
	Player = t.Player
	Shot = t.Shot
	Splat = t.Splat
	Charge = t.Charge
	OctoSlob = t.OctoSlob
	Octoling = t.Octoling
	Enemy = t.Enemy
	Projectile = t.Projectile
	Pickup = t.Pickup
	Camera = t.Camera
	DamageNumber = t.DamageNumber
}

// ParseTuning decodes data on top of the live configuration and validates
// the result. The live configuration is not modified.
func ParseTuning(data []byte) (Tuning, error) {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("tuning: unmarshal: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// LoadTuning reads a YAML override file and applies it.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("tuning: load %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return fmt.Errorf("tuning: %s: %w", path, err)
	}
	ApplyTuning(t)
	return nil
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	if t.Player.MaxHealth <= 0 {
		errs = append(errs, errors.New("player.maxhealth must be positive"))
	}
	if t.Player.StartingLives <= 0 {
		errs = append(errs, errors.New("player.startinglives must be positive"))
	}
	if t.Player.MaxChargeTime <= 0 {
		errs = append(errs, errors.New("player.maxchargetime must be positive"))
	}
	if t.Projectile.Capacity <= 0 {
		errs = append(errs, errors.New("projectile.capacity must be positive"))
	}
	if t.Camera.FollowSmoothing <= 0 || t.Camera.FollowSmoothing > 1 {
		errs = append(errs, errors.New("camera.followsmoothing must be in (0, 1]"))
	}
	if t.World.CellSize <= 0 {
		errs = append(errs, errors.New("world.cellsize must be positive"))
	}
	if t.Pickup.Lifetime < 0 {
		errs = append(errs, errors.New("pickup.lifetime must not be negative"))
	}
	return errors.Join(errs...)
}
