// Package config holds every tunable of the simulation in one structure
// that is loaded from JSON, adjusted from the environment and passed
// explicitly to the engine and frontends.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// GameConfig contains the complete configuration for a game.
type GameConfig struct {
	Physics   PhysicsConfig   `json:"physics"`
	Ship      ShipConfig      `json:"ship"`
	Weapon    WeaponConfig    `json:"weapon"`
	Asteroids AsteroidsConfig `json:"asteroids"`
	Render    RenderConfig    `json:"render"`
	Window    WindowConfig    `json:"window"`
}

// PhysicsConfig contains movement tuning shared by every entity.
type PhysicsConfig struct {
	RotationSpeed float64 `json:"rotationSpeed"` // degrees per second
	ThrustPower   float64 `json:"thrustPower"`   // units per second squared
	Drag          float64 `json:"drag"`          // velocity multiplier per tick
	DragTickRate  float64 `json:"dragTickRate"`  // ticks per second drag is calibrated for
	WrapBound     float64 `json:"wrapBound"`
	MaxFrameDelta float64 `json:"maxFrameDelta"` // seconds
}

// ShipConfig describes the player ship.
type ShipConfig struct {
	Radius float64 `json:"radius"`
	Lives  int     `json:"lives"`
}

// WeaponConfig describes bullets fired by the ship.
type WeaponConfig struct {
	BulletTTL    float64 `json:"bulletTTL"`   // seconds
	BulletSpeed  float64 `json:"bulletSpeed"` // units per second
	BulletRadius float64 `json:"bulletRadius"`
	NoseOffset   float64 `json:"noseOffset"` // spawn distance ahead of the ship
}

// AsteroidsConfig controls the asteroid field.
type AsteroidsConfig struct {
	InitialCount   int     `json:"initialCount"`
	MinRadius      float64 `json:"minRadius"`
	MaxRadius      float64 `json:"maxRadius"`
	MinSpeed       float64 `json:"minSpeed"`
	MaxSpeed       float64 `json:"maxSpeed"`
	MaxSpin        float64 `json:"maxSpin"` // degrees per second
	SafeDistance   float64 `json:"safeDistance"`
	SplitFactor    float64 `json:"splitFactor"`
	MinSplitRadius float64 `json:"minSplitRadius"`
	Points         int     `json:"points"`
	Seed           uint64  `json:"seed"`
}

// RenderConfig holds visual tuning consumed by the renderers.
type RenderConfig struct {
	ShipScale   float64      `json:"shipScale"`
	FlameOffset float64      `json:"flameOffset"`
	FlameLayers []FlameLayer `json:"flameLayers"`
	Background  RGB          `json:"background"`
}

// FlameLayer is one flickering triangle drawn behind a thrusting ship.
type FlameLayer struct {
	ScaleBase           float64 `json:"scaleBase"`
	Color               RGB     `json:"color"`
	FlickerSpeed        float64 `json:"flickerSpeed"`
	FlickerMagnitude    float64 `json:"flickerMagnitude"`
	FlickerPosMagnitude float64 `json:"flickerPosMagnitude"`
}

// RGB is a colour with channels in [0, 1].
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// RGBA converts the colour to an opaque color.RGBA, clamping each channel.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 255}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// WindowConfig is used by the GUI frontends.
type WindowConfig struct {
	Title  string `json:"title"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ControlConfig is the subset of tuning the input translator needs.
type ControlConfig struct {
	RotationSpeed float64
	ThrustPower   float64
	Drag          float64
	DragTickRate  float64
}

// Control projects the translator's tuning out of the full configuration.
func (c *GameConfig) Control() ControlConfig {
	return ControlConfig{
		RotationSpeed: c.Physics.RotationSpeed,
		ThrustPower:   c.Physics.ThrustPower,
		Drag:          c.Physics.Drag,
		DragTickRate:  c.Physics.DragTickRate,
	}
}

// LoadConfig reads a JSON configuration from path. Fields missing from the
// file keep their default values.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig writes config to path as indented JSON.
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Physics: PhysicsConfig{
			RotationSpeed: 180,
			ThrustPower:   3.0,
			Drag:          0.995,
			DragTickRate:  60,
			WrapBound:     1.05,
			MaxFrameDelta: 1.0 / 15,
		},
		Ship: ShipConfig{
			Radius: 0.08,
			Lives:  3,
		},
		Weapon: WeaponConfig{
			BulletTTL:    1.5,
			BulletSpeed:  2.0,
			BulletRadius: 0.01,
			NoseOffset:   0.2,
		},
		Asteroids: AsteroidsConfig{
			InitialCount:   5,
			MinRadius:      0.08,
			MaxRadius:      0.16,
			MinSpeed:       0.05,
			MaxSpeed:       0.25,
			MaxSpin:        90,
			SafeDistance:   0.5,
			SplitFactor:    0.5,
			MinSplitRadius: 0.06,
			Points:         100,
			Seed:           1,
		},
		Render: RenderConfig{
			ShipScale:   0.5,
			FlameOffset: 0.3,
			FlameLayers: []FlameLayer{
				{ScaleBase: 0.45, Color: RGB{R: 1.0, G: 0.2, B: 0.0}, FlickerSpeed: 7, FlickerMagnitude: 0.10, FlickerPosMagnitude: 0.02},
				{ScaleBase: 0.35, Color: RGB{R: 1.0, G: 0.6, B: 0.0}, FlickerSpeed: 12, FlickerMagnitude: 0.12, FlickerPosMagnitude: 0.03},
				{ScaleBase: 0.25, Color: RGB{R: 1.0, G: 1.0, B: 0.3}, FlickerSpeed: 20, FlickerMagnitude: 0.15, FlickerPosMagnitude: 0.04},
			},
			Background: RGB{R: 0.12, G: 0.12, B: 0.16},
		},
		Window: WindowConfig{
			Title:  "Go Asteroids",
			Width:  800,
			Height: 600,
		},
	}
}

// Validate checks that the configuration describes a playable game.
func (c *GameConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	p := c.Physics
	check(p.RotationSpeed >= 0, "physics.rotationSpeed must not be negative, got %v", p.RotationSpeed)
	check(p.ThrustPower >= 0, "physics.thrustPower must not be negative, got %v", p.ThrustPower)
	check(p.Drag > 0 && p.Drag <= 1, "physics.drag must be in (0, 1], got %v", p.Drag)
	check(p.DragTickRate > 0, "physics.dragTickRate must be positive, got %v", p.DragTickRate)
	check(p.WrapBound > 0, "physics.wrapBound must be positive, got %v", p.WrapBound)
	check(p.MaxFrameDelta > 0, "physics.maxFrameDelta must be positive, got %v", p.MaxFrameDelta)

	check(c.Ship.Radius > 0, "ship.radius must be positive, got %v", c.Ship.Radius)
	check(c.Ship.Lives > 0, "ship.lives must be positive, got %d", c.Ship.Lives)

	w := c.Weapon
	check(w.BulletTTL > 0, "weapon.bulletTTL must be positive, got %v", w.BulletTTL)
	check(w.BulletSpeed >= 0, "weapon.bulletSpeed must not be negative, got %v", w.BulletSpeed)
	check(w.BulletRadius > 0, "weapon.bulletRadius must be positive, got %v", w.BulletRadius)
	check(w.NoseOffset >= 0, "weapon.noseOffset must not be negative, got %v", w.NoseOffset)

	a := c.Asteroids
	check(a.InitialCount >= 0, "asteroids.initialCount must not be negative, got %d", a.InitialCount)
	check(a.MinRadius > 0 && a.MinRadius <= a.MaxRadius,
		"asteroids radius range [%v, %v] is invalid", a.MinRadius, a.MaxRadius)
	check(a.MinSpeed >= 0 && a.MinSpeed <= a.MaxSpeed,
		"asteroids speed range [%v, %v] is invalid", a.MinSpeed, a.MaxSpeed)
	check(a.MaxSpin >= 0, "asteroids.maxSpin must not be negative, got %v", a.MaxSpin)
	check(a.SplitFactor > 0 && a.SplitFactor < 1, "asteroids.splitFactor must be in (0, 1), got %v", a.SplitFactor)
	check(a.SafeDistance < 2*p.WrapBound, "asteroids.safeDistance %v leaves no room on the field", a.SafeDistance)

	check(c.Window.Width > 0 && c.Window.Height > 0,
		"window size %dx%d is invalid", c.Window.Width, c.Window.Height)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
