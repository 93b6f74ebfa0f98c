// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Camera maps the simulation field onto the window. The field is always
// shown whole; a ship hit shakes the view for a few frames.
type Camera struct {
	world  physics.Bounds
	width  float32
	height float32

	shakeFrames    int
	shakeAmplitude float32
	shakeStep      int
}

// Shake tuning.
const (
	DefaultShakeFrames    = 12
	DefaultShakeAmplitude = 6
)

// NewCamera creates a camera that fits world into a width x height window.
func NewCamera(world physics.Bounds, width, height float32) *Camera {
	return &Camera{
		world:          world,
		width:          width,
		height:         height,
		shakeAmplitude: DefaultShakeAmplitude,
	}
}

// Resize updates the window size.
func (c *Camera) Resize(width, height float32) {
	c.width = width
	c.height = height
}

// Scale returns the window units per world unit on each axis.
func (c *Camera) Scale() (float32, float32) {
	if c.world.Width <= 0 || c.world.Height <= 0 {
		return 1, 1
	}
	return c.width / float32(c.world.Width), c.height / float32(c.world.Height)
}

// WorldToScreen converts world coordinates to window coordinates.
func (c *Camera) WorldToScreen(p physics.Vector2D) engo.Point {
	sx, sy := c.Scale()
	ox, oy := c.offset()
	return engo.Point{
		X: float32(p.X)*sx + ox,
		Y: float32(p.Y)*sy + oy,
	}
}

// ScreenToWorld converts window coordinates back to world coordinates,
// ignoring any shake.
func (c *Camera) ScreenToWorld(p engo.Point) physics.Vector2D {
	sx, sy := c.Scale()
	return physics.Vector2D{
		X: float64(p.X / sx),
		Y: float64(p.Y / sy),
	}
}

// Shake starts a shake lasting frames frames.
func (c *Camera) Shake(frames int) {
	if frames > c.shakeFrames {
		c.shakeFrames = frames
	}
}

// Shaking reports whether a shake is in progress.
func (c *Camera) Shaking() bool {
	return c.shakeFrames > 0
}

// Advance moves the shake on by one frame.
func (c *Camera) Advance() {
	if c.shakeFrames > 0 {
		c.shakeFrames--
		c.shakeStep++
	}
	if c.shakeFrames == 0 {
		c.shakeStep = 0
	}
}

// offset alternates sides each frame and fades as the shake runs out.
func (c *Camera) offset() (float32, float32) {
	if c.shakeFrames == 0 {
		return 0, 0
	}
	amp := c.shakeAmplitude * float32(c.shakeFrames) / DefaultShakeFrames
	if amp > c.shakeAmplitude {
		amp = c.shakeAmplitude
	}
	if c.shakeStep%2 == 1 {
		amp = -amp
	}
	return amp, -amp / 2
}

// Subscribe shakes the camera whenever the ship is hit.
func (c *Camera) Subscribe(bus *event.Bus) *event.Subscription {
	return bus.Subscribe(event.ShipAsteroidCollision, func(event.Event) {
		c.Shake(DefaultShakeFrames)
	})
}
