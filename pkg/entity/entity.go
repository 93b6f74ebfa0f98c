// pkg/entity/entity.go
package entity

import (
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Entity is the base interface for all simulated objects.
type Entity interface {
	GetPosition() physics.Vector2D
	// Update advances the entity by one frame.
	Update()
	// CheckCollision tests against other and may change the receiver's
	// own state when a hit is detected.
	CheckCollision(other Entity) bool
	// GetSize returns the collision radius. Zero means the entity is
	// never a collision target.
	GetSize() float64
	Render(r Renderer)
}

// Rand is the random source used for spawning. *math/rand/v2.Rand
// satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// BaseEntity contains common functionality for all entities
type BaseEntity struct {
	Position physics.Vector2D
	Velocity physics.Vector2D
	Rotation float64
	Bounds   physics.Bounds
}

// GetPosition returns the entity's position
func (e *BaseEntity) GetPosition() physics.Vector2D {
	return e.Position
}

// SetPosition moves the entity without touching its velocity.
func (e *BaseEntity) SetPosition(p physics.Vector2D) {
	e.Position = p
}

// GetVelocity returns the entity's velocity per frame.
func (e *BaseEntity) GetVelocity() physics.Vector2D {
	return e.Velocity
}

// Update moves the entity by its velocity.
func (e *BaseEntity) Update() {
	e.Position = e.Position.Add(e.Velocity)
}

// CheckCollision never reports a hit by default.
func (e *BaseEntity) CheckCollision(other Entity) bool {
	return false
}

// GetSize returns 0: a base entity has no collision radius.
func (e *BaseEntity) GetSize() float64 {
	return 0
}

// Render does nothing; concrete entities dispatch to the renderer.
func (e *BaseEntity) Render(r Renderer) {}

func (s *Spaceship) Render(r Renderer) {
	r.RenderSpaceship(s)
}

func (a *Asteroid) Render(r Renderer) {
	r.RenderAsteroid(a)
}

func (m *Missile) Render(r Renderer) {
	r.RenderMissile(m)
}
