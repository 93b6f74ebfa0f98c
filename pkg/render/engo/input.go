// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-asteroids/pkg/engine"
)

// Button names registered with engo.
const (
	ButtonThrust      = "thrust"
	ButtonBackThrust  = "backThrust"
	ButtonRotateLeft  = "rotateLeft"
	ButtonRotateRight = "rotateRight"
	ButtonFire        = "fire"
	ButtonRestart     = "restart"
	ButtonQuit        = "quit"
)

// ButtonReader reports the state of named buttons.
type ButtonReader interface {
	Down(name string) bool
	JustPressed(name string) bool
}

// EngoButtons reads buttons from engo's global input.
type EngoButtons struct{}

// Down reports whether the button is held.
func (EngoButtons) Down(name string) bool {
	return engo.Input.Button(name).Down()
}

// JustPressed reports whether the button went down this frame.
func (EngoButtons) JustPressed(name string) bool {
	return engo.Input.Button(name).JustPressed()
}

// InputSystem turns button state into per-frame simulation input.
type InputSystem struct {
	buttons ButtonReader

	// Edge-triggered presses wait here until a simulation frame runs.
	fire    bool
	restart bool
	quit    bool
}

// NewInputSystem creates an input system reading from buttons.
func NewInputSystem(buttons ButtonReader) *InputSystem {
	return &InputSystem{buttons: buttons}
}

// Poll latches one-shot presses. It runs once per rendered frame so a
// press is not lost when no simulation frame is due.
func (is *InputSystem) Poll() {
	is.fire = is.fire || is.buttons.JustPressed(ButtonFire)
	is.restart = is.restart || is.buttons.JustPressed(ButtonRestart)
	is.quit = is.quit || is.buttons.JustPressed(ButtonQuit)
}

// Sample returns the input for one simulation frame and consumes latched
// presses.
func (is *InputSystem) Sample() engine.Input {
	in := engine.Input{
		Thrust:      is.buttons.Down(ButtonThrust),
		BackThrust:  is.buttons.Down(ButtonBackThrust),
		RotateLeft:  is.buttons.Down(ButtonRotateLeft),
		RotateRight: is.buttons.Down(ButtonRotateRight),
		Fire:        is.fire,
		Restart:     is.restart,
		Quit:        is.quit,
	}
	is.fire, is.restart, is.quit = false, false, false
	return in
}

// SetupInputBindings registers the key bindings for the game.
func SetupInputBindings() {
	engo.Input.RegisterButton(ButtonThrust, engo.KeyArrowUp)
	engo.Input.RegisterButton(ButtonBackThrust, engo.KeyArrowDown)
	engo.Input.RegisterButton(ButtonRotateLeft, engo.KeyArrowLeft)
	engo.Input.RegisterButton(ButtonRotateRight, engo.KeyArrowRight)
	engo.Input.RegisterButton(ButtonFire, engo.KeySpace)
	engo.Input.RegisterButton(ButtonRestart, engo.KeyR)
	engo.Input.RegisterButton(ButtonQuit, engo.KeyEscape)
}
