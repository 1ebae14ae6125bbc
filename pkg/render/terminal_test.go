package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// newTestScreen returns an 80x21 simulation screen: a 20 row field plus
// the HUD row.
func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 21)
	return screen
}

func runeAt(screen tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func rowText(screen tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		b.WriteRune(runeAt(screen, x, y))
	}
	return b.String()
}

func TestTerminalRenderer_FieldSize(t *testing.T) {
	r := NewTerminalRenderer(newTestScreen(t), config.DefaultConfig().Render)

	if r.width != 80 || r.height != 20 {
		t.Errorf("field = %dx%d, want 80x20", r.width, r.height)
	}
}

func TestTerminalRenderer_ShipGlyph(t *testing.T) {
	tests := []struct {
		name      string
		angle     float64
		thrusting bool
		want      rune
		flameX    int
		flameY    int
	}{
		{"up", 0, false, '^', -1, -1},
		{"up_thrusting", 0, true, '^', 40, 11},
		{"left_thrusting", 90, true, '<', 41, 10},
		{"down_thrusting", 180, true, 'v', 40, 9},
		{"right", 270, false, '>', -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newTestScreen(t)
			r := NewTerminalRenderer(screen, config.DefaultConfig().Render)
			ship := engine.EntityView{Kind: entity.Ship, Angle: tt.angle, Radius: 0.08}

			Draw(r, engine.Snapshot{Entities: []engine.EntityView{ship}, Thrusting: tt.thrusting})

			if got := runeAt(screen, 40, 10); got != tt.want {
				t.Errorf("ship glyph = %q, want %q", got, tt.want)
			}
			if tt.flameX >= 0 {
				if got := runeAt(screen, tt.flameX, tt.flameY); got != flameGlyph {
					t.Errorf("flame cell (%d,%d) = %q", tt.flameX, tt.flameY, got)
				}
			}
			if !tt.thrusting && strings.ContainsRune(rowText(screen, 9, 80)+rowText(screen, 11, 80), flameGlyph) {
				t.Error("flame drawn without thrust")
			}
		})
	}
}

func TestTerminalRenderer_AsteroidAndBullet(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, config.DefaultConfig().Render)
	snap := engine.Snapshot{Entities: []engine.EntityView{
		{Kind: entity.Asteroid, Position: physics.Vector2D{X: 0.5, Y: 0.5}, Radius: 0.1},
		{Kind: entity.Bullet, Position: physics.Vector2D{X: -0.5, Y: -0.5}, Radius: 0.01},
		{Kind: entity.Asteroid, Position: physics.Vector2D{X: -0.5, Y: 0.5}, Radius: entity.DeadRadius},
	}}

	Draw(r, snap)

	if got := runeAt(screen, 60, 5); got != asteroidGlyph {
		t.Errorf("asteroid center = %q", got)
	}
	if got := runeAt(screen, 70, 5); got != ' ' {
		t.Errorf("cell outside asteroid = %q", got)
	}
	if got := runeAt(screen, 20, 15); got != bulletGlyph {
		t.Errorf("bullet cell = %q", got)
	}
	if got := runeAt(screen, 20, 5); got != ' ' {
		t.Errorf("dead asteroid drawn: %q", got)
	}
}

func TestTerminalRenderer_OffScreenIgnored(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, config.DefaultConfig().Render)
	snap := engine.Snapshot{Entities: []engine.EntityView{
		{Kind: entity.Bullet, Position: physics.Vector2D{X: 1.04}, Radius: 0.01},
		{Kind: entity.Ship, Position: physics.Vector2D{Y: -1.04}, Radius: 0.08},
		{Kind: entity.Asteroid, Position: physics.Vector2D{X: -1.04, Y: 1.04}, Radius: 0.16},
	}}

	Draw(r, snap)

	if strings.ContainsAny(rowText(screen, 20, 80), "^.") {
		t.Error("entity drawn over the HUD row")
	}
}

func TestTerminalRenderer_HUD(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, config.DefaultConfig().Render)

	Draw(r, engine.Snapshot{Score: 1200, Lives: 2, Wave: 3, Over: true})

	hud := rowText(screen, 20, 80)
	if !strings.HasPrefix(hud, "SCORE 1200  LIVES 2  WAVE 3  GAME OVER") {
		t.Errorf("HUD = %q", hud)
	}
}

func TestShipGlyph(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{0, '^'},
		{44, '^'},
		{46, '<'},
		{180, 'v'},
		{269, '>'},
		{359, '^'},
		{-90, '>'},
	}
	for _, tt := range tests {
		if got := ShipGlyph(tt.angle); got != tt.want {
			t.Errorf("ShipGlyph(%v) = %q, want %q", tt.angle, got, tt.want)
		}
	}
}

func TestHUDText(t *testing.T) {
	if got := HUDText(engine.Snapshot{Score: 5, Lives: 1, Wave: 1}); got != "SCORE 5  LIVES 1  WAVE 1" {
		t.Errorf("HUDText() = %q", got)
	}
}
