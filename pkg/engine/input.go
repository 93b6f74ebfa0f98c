// pkg/engine/input.go
package engine

// Input is the player's controls for one frame. Fire is expected to be set
// only on the frame the fire key goes down.
type Input struct {
	Thrust      bool
	BackThrust  bool
	RotateLeft  bool
	RotateRight bool
	Fire        bool
	Quit        bool
	Restart     bool
}

const (
	bitThrust uint8 = 1 << iota
	bitBackThrust
	bitRotateLeft
	bitRotateRight
	bitFire
	bitQuit
	bitRestart
)

// Bits packs the input into one byte.
func (in Input) Bits() uint8 {
	var b uint8
	set := func(on bool, bit uint8) {
		if on {
			b |= bit
		}
	}
	set(in.Thrust, bitThrust)
	set(in.BackThrust, bitBackThrust)
	set(in.RotateLeft, bitRotateLeft)
	set(in.RotateRight, bitRotateRight)
	set(in.Fire, bitFire)
	set(in.Quit, bitQuit)
	set(in.Restart, bitRestart)
	return b
}

// InputFromBits is the inverse of Input.Bits.
func InputFromBits(b uint8) Input {
	return Input{
		Thrust:      b&bitThrust != 0,
		BackThrust:  b&bitBackThrust != 0,
		RotateLeft:  b&bitRotateLeft != 0,
		RotateRight: b&bitRotateRight != 0,
		Fire:        b&bitFire != 0,
		Quit:        b&bitQuit != 0,
		Restart:     b&bitRestart != 0,
	}
}
