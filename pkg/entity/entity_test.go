// pkg/entity/entity_test.go
package entity

import (
	"math/rand/v2"
	"testing"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

var testBounds = physics.Bounds{Width: 800, Height: 600}

// scriptedRand replays fixed values so spawn placement can be asserted exactly.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// stubEntity is a collision target with a fixed position and radius.
type stubEntity struct {
	BaseEntity
	size float64
}

func (s *stubEntity) GetSize() float64 { return s.size }

func newStub(x, y, size float64) *stubEntity {
	return &stubEntity{BaseEntity: BaseEntity{Position: physics.Vector2D{X: x, Y: y}}, size: size}
}

func TestBaseEntity_Defaults(t *testing.T) {
	e := &BaseEntity{
		Position: physics.Vector2D{X: 1, Y: 2},
		Velocity: physics.Vector2D{X: 3, Y: 4},
	}

	if e.GetSize() != 0 {
		t.Errorf("GetSize() = %v, expected 0", e.GetSize())
	}
	if e.CheckCollision(newStub(1, 2, 100)) {
		t.Error("default CheckCollision should never report a hit")
	}

	e.Update()
	if e.GetPosition() != (physics.Vector2D{X: 4, Y: 6}) {
		t.Errorf("Update() moved to %v, expected (4, 6)", e.GetPosition())
	}
}

// recordingRenderer counts the dispatch calls made by Entity.Render.
type recordingRenderer struct {
	ships, asteroids, missiles int
}

func (r *recordingRenderer) RenderSpaceship(*Spaceship) { r.ships++ }
func (r *recordingRenderer) RenderAsteroid(*Asteroid)   { r.asteroids++ }
func (r *recordingRenderer) RenderMissile(*Missile)     { r.missiles++ }
func (r *recordingRenderer) Clear()                     {}
func (r *recordingRenderer) Present()                   {}

func TestEntity_RenderDispatch(t *testing.T) {
	r := &recordingRenderer{}
	entities := []Entity{
		NewSpaceship(testBounds),
		NewAsteroid(LargeAsteroidSize, testBounds, newTestRand(1)),
		NewMissile(physics.Vector2D{X: 10, Y: 10}, 0, testBounds),
	}
	for _, e := range entities {
		e.Render(r)
	}

	if r.ships != 1 || r.asteroids != 1 || r.missiles != 1 {
		t.Errorf("Render dispatch = %+v, expected one call each", *r)
	}
}
