// pkg/entity/spaceship.go
package entity

import (
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Spaceship tuning constants.
const (
	MaxSpeed      = 50.0
	MinSpeed      = 0.05
	Acceleration  = 10.0
	RotationSpeed = 0.05
	Friction      = 0.99
	InitialShield = 3
	ShipRadius    = 15.0

	// thrustStep scales Acceleration to one frame.
	thrustStep = 0.0168
)

// Spaceship is the player's ship. It is never removed: a shield at or below
// zero marks it destroyed.
type Spaceship struct {
	BaseEntity
	Shield int
}

// NewSpaceship creates a ship at rest in the middle of the screen.
func NewSpaceship(bounds physics.Bounds) *Spaceship {
	return &Spaceship{
		BaseEntity: BaseEntity{
			Position: bounds.Center(),
			Bounds:   bounds,
		},
		Shield: InitialShield,
	}
}

// GetOrientation returns the heading in radians; 0 points up.
func (s *Spaceship) GetOrientation() float64 {
	return s.Rotation
}

// ActivateThrust accelerates along the current heading, capped at MaxSpeed.
func (s *Spaceship) ActivateThrust() {
	s.Velocity = s.Velocity.Add(physics.FromHeading(s.Rotation, Acceleration*thrustStep))

	if s.Velocity.Length() > MaxSpeed {
		s.Velocity = s.Velocity.Normalize().Scale(MaxSpeed)
	}
}

// BackThrust brakes by one friction step.
func (s *Spaceship) BackThrust() {
	s.Velocity = s.Velocity.Scale(Friction)
}

// RotateLeft turns the ship counter-clockwise.
func (s *Spaceship) RotateLeft() {
	s.Rotation -= RotationSpeed
}

// RotateRight turns the ship clockwise.
func (s *Spaceship) RotateRight() {
	s.Rotation += RotationSpeed
}

// Update applies drag, moves the ship and wraps it to the opposite edge.
func (s *Spaceship) Update() {
	s.Velocity = s.Velocity.Scale(Friction)

	// Keep a drifting ship from crawling forever at vanishing speed,
	// while a ship at rest stays at rest.
	if speed := s.Velocity.Length(); speed > 0 && speed < MinSpeed {
		s.Velocity = s.Velocity.Normalize().Scale(MinSpeed)
	}

	s.Position = s.Bounds.Teleport(s.Position.Add(s.Velocity))
}

// GetSize returns the ship's collision radius.
func (s *Spaceship) GetSize() float64 {
	return ShipRadius
}

// CheckCollision tests the ship against other. On a hit the ship loses one
// shield point and restarts at rest in the middle of the screen.
func (s *Spaceship) CheckCollision(other Entity) bool {
	hull := physics.Circle{Center: s.Position, Radius: ShipRadius}
	target := physics.Circle{Center: other.GetPosition(), Radius: other.GetSize()}
	if !hull.Collides(target) {
		return false
	}

	s.Position = s.Bounds.Center()
	s.Velocity = physics.Vector2D{}
	s.Rotation = 0
	s.DecreaseShield()
	return true
}

// DecreaseShield removes one shield point.
func (s *Spaceship) DecreaseShield() {
	s.Shield--
}

// IsDestroyed reports whether the shield is exhausted.
func (s *Spaceship) IsDestroyed() bool {
	return s.Shield <= 0
}
