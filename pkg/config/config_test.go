package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"rotation_speed", cfg.Physics.RotationSpeed, 180},
		{"thrust_power", cfg.Physics.ThrustPower, 3.0},
		{"drag", cfg.Physics.Drag, 0.995},
		{"wrap_bound", cfg.Physics.WrapBound, 1.05},
		{"bullet_ttl", cfg.Weapon.BulletTTL, 1.5},
		{"bullet_speed", cfg.Weapon.BulletSpeed, 2.0},
		{"nose_offset", cfg.Weapon.NoseOffset, 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, expected %v", tt.got, tt.expected)
			}
		})
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
	if len(cfg.Render.FlameLayers) != 3 {
		t.Errorf("expected 3 flame layers, got %d", len(cfg.Render.FlameLayers))
	}
}

func TestControl(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Physics.Drag = 0.8

	c := cfg.Control()
	if c.RotationSpeed != 180 || c.ThrustPower != 3.0 || c.Drag != 0.8 || c.DragTickRate != 60 {
		t.Errorf("Control() = %+v", c)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asteroids.json")

	cfg := DefaultConfig()
	cfg.Physics.Drag = 0.8
	cfg.Asteroids.InitialCount = 9
	cfg.Window.Title = "custom"

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig() failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if loaded.Physics.Drag != 0.8 || loaded.Asteroids.InitialCount != 9 || loaded.Window.Title != "custom" {
		t.Errorf("LoadConfig() lost values: %+v", loaded)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	if err := os.WriteFile(path, []byte(`{"physics": {"drag": 0.9}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.Physics.Drag != 0.9 {
		t.Errorf("Drag = %v, expected 0.9", cfg.Physics.Drag)
	}
	if cfg.Physics.RotationSpeed != 180 {
		t.Errorf("RotationSpeed = %v, expected default 180", cfg.Physics.RotationSpeed)
	}
	if cfg.Weapon.BulletTTL != 1.5 {
		t.Errorf("BulletTTL = %v, expected default 1.5", cfg.Weapon.BulletTTL)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("LoadConfig() error = %v, expected wrapped ErrNotExist", err)
		}
	})

	t.Run("bad_json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadConfig(path)
		if err == nil || !strings.Contains(err.Error(), "failed to parse config file") {
			t.Errorf("LoadConfig() error = %v, expected parse failure", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GameConfig)
		wantErr string
	}{
		{"drag_zero", func(c *GameConfig) { c.Physics.Drag = 0 }, "physics.drag"},
		{"drag_above_one", func(c *GameConfig) { c.Physics.Drag = 1.2 }, "physics.drag"},
		{"negative_wrap", func(c *GameConfig) { c.Physics.WrapBound = -1 }, "physics.wrapBound"},
		{"zero_frame_delta", func(c *GameConfig) { c.Physics.MaxFrameDelta = 0 }, "physics.maxFrameDelta"},
		{"zero_bullet_ttl", func(c *GameConfig) { c.Weapon.BulletTTL = 0 }, "weapon.bulletTTL"},
		{"no_lives", func(c *GameConfig) { c.Ship.Lives = 0 }, "ship.lives"},
		{"inverted_radius", func(c *GameConfig) { c.Asteroids.MinRadius = 0.5 }, "asteroids radius range"},
		{"split_factor", func(c *GameConfig) { c.Asteroids.SplitFactor = 1 }, "asteroids.splitFactor"},
		{"window", func(c *GameConfig) { c.Window.Width = 0 }, "window size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, expected ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, expected mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Physics.Drag = 0
	cfg.Ship.Lives = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil")
	}
	if !strings.Contains(err.Error(), "physics.drag") || !strings.Contains(err.Error(), "ship.lives") {
		t.Errorf("Validate() = %q, expected both problems", err)
	}
}

func TestRGB_RGBA(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want color.RGBA
	}{
		{"in_range", RGB{R: 1, G: 0.5, B: 0}, color.RGBA{255, 128, 0, 255}},
		{"clamped", RGB{R: -1, G: 2, B: 0.2}, color.RGBA{0, 255, 51, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.RGBA(); got != tt.want {
				t.Errorf("RGBA() = %v, want %v", got, tt.want)
			}
		})
	}
}
