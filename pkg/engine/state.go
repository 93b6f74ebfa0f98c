// pkg/engine/state.go
package engine

import (
	"time"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// GameState represents a snapshot of the game state
type GameState struct {
	Tick      uint64
	Status    GameStatus
	Elapsed   time.Duration
	Ship      ShipState
	Asteroids []AsteroidState
	Missiles  []MissileState
	Stats     Stats
}

// ShipState represents the state of the spaceship
type ShipState struct {
	Position physics.Vector2D
	Velocity physics.Vector2D
	Rotation float64
	Shield   int
}

// AsteroidState represents the state of an asteroid
type AsteroidState struct {
	Position physics.Vector2D
	Velocity physics.Vector2D
	Size     float64
}

// MissileState represents the state of a missile
type MissileState struct {
	Position physics.Vector2D
	Rotation float64
	Active   bool
}

// GetGameState returns a snapshot of the current game state
func (g *Game) GetGameState() *GameState {
	state := &GameState{
		Tick:    g.CurrentTick,
		Status:  g.Status,
		Elapsed: g.Elapsed(),
		Ship: ShipState{
			Position: g.Ship.Position,
			Velocity: g.Ship.Velocity,
			Rotation: g.Ship.Rotation,
			Shield:   g.Ship.Shield,
		},
		Asteroids: make([]AsteroidState, 0, len(g.Asteroids)),
		Missiles:  make([]MissileState, 0, len(g.Missiles)),
		Stats:     g.Stats,
	}

	for _, a := range g.Asteroids {
		state.Asteroids = append(state.Asteroids, AsteroidState{
			Position: a.Position,
			Velocity: a.Velocity,
			Size:     a.Size,
		})
	}
	for _, m := range g.Missiles {
		state.Missiles = append(state.Missiles, MissileState{
			Position: m.Position,
			Rotation: m.Rotation,
			Active:   m.Active,
		})
	}

	return state
}
