// pkg/entity/asteroid.go
package entity

import (
	"math"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Asteroid size tiers. Splitting moves exactly one tier down.
const (
	LargeAsteroidSize  = 50.0
	MediumAsteroidSize = 25.0
	SmallAsteroidSize  = 12.5
)

// Fragment placement relative to the parent asteroid.
var (
	splitOffsetA = physics.Vector2D{X: 50, Y: 50}
	splitOffsetB = physics.Vector2D{X: 50, Y: -50}
)

// Asteroid drifts one unit per frame and wraps around the screen edges.
type Asteroid struct {
	BaseEntity
	Size float64

	rng Rand
}

// NewAsteroid creates an asteroid of the given size near a random screen edge,
// drifting in a random direction.
func NewAsteroid(size float64, bounds physics.Bounds, rng Rand) *Asteroid {
	return &Asteroid{
		BaseEntity: BaseEntity{
			Position: edgePosition(bounds, rng),
			Velocity: physics.FromAngle(rng.Float64()*2*math.Pi, 1),
			Bounds:   bounds,
		},
		Size: size,
		rng:  rng,
	}
}

// edgePosition picks one of the four edges and places a point between half
// and one large-asteroid size away from it.
func edgePosition(bounds physics.Bounds, rng Rand) physics.Vector2D {
	inset := LargeAsteroidSize/2 + rng.Float64()*LargeAsteroidSize/2

	var pos physics.Vector2D
	switch rng.IntN(4) {
	case 0: // top
		pos.X = rng.Float64() * bounds.Width
		pos.Y = inset
	case 1: // right
		pos.X = bounds.Width - inset
		pos.Y = rng.Float64() * bounds.Height
	case 2: // bottom
		pos.X = rng.Float64() * bounds.Width
		pos.Y = bounds.Height - inset
	default: // left
		pos.X = inset
		pos.Y = rng.Float64() * bounds.Height
	}
	return pos
}

// Update moves the asteroid and wraps it by reflection offset.
func (a *Asteroid) Update() {
	a.Position = a.Bounds.Reflect(a.Position.Add(a.Velocity))
}

// GetSize returns the asteroid's collision radius.
func (a *Asteroid) GetSize() float64 {
	return a.Size
}

// Split returns two fragments one tier smaller. The fragments get fresh
// spawn velocities and are then placed next to the parent.
// ok is false for the smallest tier.
func (a *Asteroid) Split() (first, second *Asteroid, ok bool) {
	size, ok := nextTier(a.Size)
	if !ok {
		return nil, nil, false
	}

	first = NewAsteroid(size, a.Bounds, a.rng)
	second = NewAsteroid(size, a.Bounds, a.rng)
	first.SetPosition(a.Position.Add(splitOffsetA))
	second.SetPosition(a.Position.Add(splitOffsetB))
	return first, second, true
}

// CanSplit reports whether Split would produce fragments.
func (a *Asteroid) CanSplit() bool {
	_, ok := nextTier(a.Size)
	return ok
}

func nextTier(size float64) (float64, bool) {
	switch size {
	case LargeAsteroidSize:
		return MediumAsteroidSize, true
	case MediumAsteroidSize:
		return SmallAsteroidSize, true
	default:
		return 0, false
	}
}
