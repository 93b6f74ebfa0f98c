// pkg/entity/renderer.go
package entity

// Renderer handles drawing game entities
type Renderer interface {
	RenderSpaceship(ship *Spaceship)
	RenderAsteroid(asteroid *Asteroid)
	RenderMissile(missile *Missile)
	Clear()
	Present()
}
