// pkg/physics/bounds.go
package physics

// Bounds is the playfield size. The origin is the top-left corner.
type Bounds struct {
	Width  float64
	Height float64
}

// Center returns the middle of the playfield.
func (b Bounds) Center() Vector2D {
	return Vector2D{X: b.Width / 2, Y: b.Height / 2}
}

// Contains reports whether p lies inside [0,Width]x[0,Height], edges included.
func (b Bounds) Contains(p Vector2D) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

// Reflect wraps each axis by offsetting from the opposite edge:
// below zero becomes max-c, above max becomes c-max.
// A negative coordinate ends up above max; callers rely on the next
// frame to bring it back in.
func (b Bounds) Reflect(p Vector2D) Vector2D {
	return Vector2D{
		X: reflectAxis(p.X, b.Width),
		Y: reflectAxis(p.Y, b.Height),
	}
}

// Teleport wraps each axis by snapping to the opposite edge.
func (b Bounds) Teleport(p Vector2D) Vector2D {
	return Vector2D{
		X: teleportAxis(p.X, b.Width),
		Y: teleportAxis(p.Y, b.Height),
	}
}

func reflectAxis(c, max float64) float64 {
	if c < 0 {
		return max - c
	} else if c > max {
		return c - max
	}
	return c
}

func teleportAxis(c, max float64) float64 {
	if c < 0 {
		return max
	} else if c > max {
		return 0
	}
	return c
}
