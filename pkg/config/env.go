package config

import (
	"fmt"
	"os"
	"strconv"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "ASTEROIDS_"

// ApplyEnvOverrides updates config from ASTEROIDS_* environment variables.
// Unset variables leave the current value alone.
func ApplyEnvOverrides(config *GameConfig) error {
	floats := []struct {
		name string
		dst  *float64
	}{
		{"ROTATION_SPEED", &config.Physics.RotationSpeed},
		{"THRUST_POWER", &config.Physics.ThrustPower},
		{"DRAG", &config.Physics.Drag},
		{"WRAP_BOUND", &config.Physics.WrapBound},
		{"MAX_FRAME_DELTA", &config.Physics.MaxFrameDelta},
		{"BULLET_TTL", &config.Weapon.BulletTTL},
		{"BULLET_SPEED", &config.Weapon.BulletSpeed},
	}
	for _, f := range floats {
		if err := overrideFloat(EnvPrefix+f.name, f.dst); err != nil {
			return err
		}
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"LIVES", &config.Ship.Lives},
		{"ASTEROID_COUNT", &config.Asteroids.InitialCount},
		{"WINDOW_WIDTH", &config.Window.Width},
		{"WINDOW_HEIGHT", &config.Window.Height},
	}
	for _, i := range ints {
		if err := overrideInt(EnvPrefix+i.name, i.dst); err != nil {
			return err
		}
	}

	if v, ok := os.LookupEnv(EnvPrefix + "SEED"); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %sSEED %q: %w", EnvPrefix, v, err)
		}
		config.Asteroids.Seed = seed
	}

	return nil
}

// LoadConfigFromEnv returns the default configuration with environment
// overrides applied and validated.
func LoadConfigFromEnv() (*GameConfig, error) {
	config := DefaultConfig()
	if err := ApplyEnvOverrides(config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func overrideFloat(key string, dst *float64) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = f
	return nil
}

func overrideInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = i
	return nil
}
