// pkg/engine/step.go
package engine

import (
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/event"
)

// Step advances the simulation by one frame and returns the events it
// published, in order.
//
// Each asteroid moves, then is tested against the ship and, only if the ship
// missed it, against the active missiles. A hit asteroid is replaced by its
// fragments. When the ship's shield runs out the remaining asteroids are not
// carried into the next frame. Missiles advance once, after the scan.
func (g *Game) Step() []event.Event {
	var published []event.Event
	publish := func(e event.Event) {
		g.EventBus.Publish(e)
		published = append(published, e)
	}

	next := make([]*entity.Asteroid, 0, len(g.Asteroids)+2)
	for _, asteroid := range g.Asteroids {
		asteroid.Update()

		if g.Ship.CheckCollision(asteroid) {
			g.Stats.ShipHits++
			publish(event.NewCollisionEvent(event.ShipAsteroidCollision, g,
				asteroid.Position, asteroid.Size, g.Ship.Shield))
			next = g.splitAsteroid(next, asteroid, publish)

			if g.Ship.IsDestroyed() {
				publish(&event.BaseEvent{EventType: event.ShipDestroyed, Source: g})
				break
			}
			continue
		}

		if g.missileHit(asteroid) {
			g.Stats.AsteroidsDestroyed++
			publish(event.NewCollisionEvent(event.MissileAsteroidCollision, g,
				asteroid.Position, asteroid.Size, g.Ship.Shield))
			next = g.splitAsteroid(next, asteroid, publish)
			continue
		}

		next = append(next, asteroid)
	}

	g.updateMissiles()
	g.Asteroids = next
	g.Ship.Update()
	g.CurrentTick++

	return published
}

// missileHit reports whether any active missile hits the asteroid. The
// first hit consumes its missile and ends the scan.
func (g *Game) missileHit(asteroid *entity.Asteroid) bool {
	for _, missile := range g.Missiles {
		if missile.CheckCollision(asteroid) {
			return true
		}
	}
	return false
}

// splitAsteroid appends the asteroid's fragments to next, if it has any.
func (g *Game) splitAsteroid(next []*entity.Asteroid, asteroid *entity.Asteroid, publish func(event.Event)) []*entity.Asteroid {
	first, second, ok := asteroid.Split()
	if !ok {
		return next
	}

	publish(event.NewCollisionEvent(event.AsteroidSplit, g,
		asteroid.Position, asteroid.Size, g.Ship.Shield))
	return append(next, first, second)
}

// updateMissiles advances every missile and drops the inactive ones.
func (g *Game) updateMissiles() {
	live := g.Missiles[:0]
	for _, missile := range g.Missiles {
		missile.Update()
		if missile.IsActive() {
			live = append(live, missile)
		}
	}
	clear(g.Missiles[len(live):])
	g.Missiles = live
}
