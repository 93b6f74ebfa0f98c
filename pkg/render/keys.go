// pkg/render/keys.go
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-asteroids/pkg/engine"
)

// Control is a player action bound to a key.
type Control int

const (
	ControlNone Control = iota
	ControlThrust
	ControlBackThrust
	ControlRotateLeft
	ControlRotateRight
	ControlFire
	ControlRestart
	ControlQuit
)

// ControlForKey maps a terminal key event to a control.
func ControlForKey(ev *tcell.EventKey) Control {
	switch ev.Key() {
	case tcell.KeyUp:
		return ControlThrust
	case tcell.KeyDown:
		return ControlBackThrust
	case tcell.KeyLeft:
		return ControlRotateLeft
	case tcell.KeyRight:
		return ControlRotateRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ControlQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return ControlFire
		case 'r', 'R':
			return ControlRestart
		case 'q', 'Q':
			return ControlQuit
		}
	}
	return ControlNone
}

// KeyState turns terminal key presses into per-frame input.
//
// Terminals report presses and auto-repeats but no releases, so a steering
// key counts as held for HoldFrames frames after its last press. Fire,
// Restart and Quit fire once per press.
type KeyState struct {
	HoldFrames uint64

	frame     uint64
	lastPress map[Control]uint64
	pending   map[Control]bool
}

// NewKeyState creates a KeyState that holds steering keys for holdFrames.
func NewKeyState(holdFrames uint64) *KeyState {
	if holdFrames == 0 {
		holdFrames = 1
	}
	return &KeyState{
		HoldFrames: holdFrames,
		lastPress:  make(map[Control]uint64),
		pending:    make(map[Control]bool),
	}
}

// HandleKey records a key press. It returns false for unbound keys.
func (k *KeyState) HandleKey(ev *tcell.EventKey) bool {
	control := ControlForKey(ev)
	switch control {
	case ControlNone:
		return false
	case ControlFire, ControlRestart, ControlQuit:
		k.pending[control] = true
	default:
		k.lastPress[control] = k.frame + 1
	}
	return true
}

// Sample returns the input for the next frame and advances the frame count.
func (k *KeyState) Sample() engine.Input {
	k.frame++

	in := engine.Input{
		Thrust:      k.held(ControlThrust),
		BackThrust:  k.held(ControlBackThrust),
		RotateLeft:  k.held(ControlRotateLeft),
		RotateRight: k.held(ControlRotateRight),
		Fire:        k.pending[ControlFire],
		Restart:     k.pending[ControlRestart],
		Quit:        k.pending[ControlQuit],
	}
	clear(k.pending)
	return in
}

func (k *KeyState) held(c Control) bool {
	pressed, ok := k.lastPress[c]
	return ok && k.frame >= pressed && k.frame-pressed < k.HoldFrames
}
