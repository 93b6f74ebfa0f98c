// pkg/entity/missile.go
package entity

import (
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

const (
	// MissileSpeed is the missile speed in units per second.
	MissileSpeed = 80.0
	// missileStep scales velocity to one frame of travel.
	missileStep = 0.04
)

// Missile flies in a straight line until it leaves the screen or hits
// something. An inactive missile stays inactive.
type Missile struct {
	BaseEntity
	Active bool
}

// NewMissile creates an active missile heading along orientation.
func NewMissile(position physics.Vector2D, orientation float64, bounds physics.Bounds) *Missile {
	return &Missile{
		BaseEntity: BaseEntity{
			Position: position,
			Velocity: physics.FromHeading(orientation, MissileSpeed),
			Rotation: orientation,
			Bounds:   bounds,
		},
		Active: true,
	}
}

// IsActive reports whether the missile is still in flight.
func (m *Missile) IsActive() bool {
	return m.Active
}

// Update moves the missile and deactivates it once it leaves the screen.
func (m *Missile) Update() {
	if !m.Active {
		return
	}

	m.Position = m.Position.Add(m.Velocity.Scale(missileStep))
	if !m.Bounds.Contains(m.Position) {
		m.Active = false
	}
}

// CheckCollision reports a hit when the missile is inside other's radius.
// A hit consumes the missile.
func (m *Missile) CheckCollision(other Entity) bool {
	if !m.Active {
		return false
	}

	target := physics.Circle{Center: other.GetPosition(), Radius: other.GetSize()}
	if target.ContainsPoint(m.Position) {
		m.Active = false
		return true
	}
	return false
}
