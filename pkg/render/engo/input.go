package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-asteroids/pkg/engine"
)

// Button names registered with engo.
const (
	buttonThrust    = "thrust"
	buttonTurnLeft  = "turnLeft"
	buttonTurnRight = "turnRight"
	buttonFire      = "fire"
	buttonRestart   = "restart"
	buttonQuit      = "quit"
)

// buttons reads named button state.
type buttons interface {
	Down(name string) bool
	JustPressed(name string) bool
}

// engoButtons reads from engo's global input manager.
type engoButtons struct{}

func (engoButtons) Down(name string) bool        { return engo.Input.Button(name).Down() }
func (engoButtons) JustPressed(name string) bool { return engo.Input.Button(name).JustPressed() }

// InputSystem samples the keyboard once per frame.
type InputSystem struct {
	buttons buttons
	state   engine.Input
	restart bool
	quit    bool
}

// NewInputSystem creates an input system reading engo's buttons. The
// bindings must be registered with SetupInputBindings first.
func NewInputSystem() *InputSystem {
	return &InputSystem{buttons: engoButtons{}}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Update samples the held keys.
func (is *InputSystem) Update(dt float32) {
	is.state = engine.Input{
		RotateLeft:  is.buttons.Down(buttonTurnLeft),
		RotateRight: is.buttons.Down(buttonTurnRight),
		Thrust:      is.buttons.Down(buttonThrust),
		// Held state; the controller detects the press edge.
		Fire: is.buttons.Down(buttonFire),
	}
	is.restart = is.buttons.JustPressed(buttonRestart)
	is.quit = is.buttons.JustPressed(buttonQuit)
}

// State returns the input sampled by the last Update.
func (is *InputSystem) State() engine.Input {
	return is.state
}

// Restart reports whether the restart key was pressed this frame.
func (is *InputSystem) Restart() bool {
	return is.restart
}

// Quit reports whether the quit key was pressed this frame.
func (is *InputSystem) Quit() bool {
	return is.quit
}

// SetupInputBindings sets up the key bindings for the game
func SetupInputBindings() {
	engo.Input.RegisterButton(buttonThrust, engo.KeyW, engo.KeyArrowUp)
	engo.Input.RegisterButton(buttonTurnLeft, engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton(buttonTurnRight, engo.KeyD, engo.KeyArrowRight)
	engo.Input.RegisterButton(buttonFire, engo.KeySpace)
	engo.Input.RegisterButton(buttonRestart, engo.KeyR)
	engo.Input.RegisterButton(buttonQuit, engo.KeyEscape, engo.KeyQ)
}
