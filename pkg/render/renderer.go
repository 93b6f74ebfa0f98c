// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/logging"
)

// NullRenderer is an entity.Renderer that only logs at debug level.
// Headless tools use it to exercise the draw path without a display.
type NullRenderer struct {
	logger *logging.Logger
	frames uint64
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	return &NullRenderer{
		logger: logger,
	}
}

// Frames returns how many frames have been presented.
func (d *NullRenderer) Frames() uint64 {
	return d.frames
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	d.frames++
	d.logger.Debug(context.Background(), "frame presented", "frame", d.frames)
}

// RenderSpaceship implements entity.Renderer.
func (d *NullRenderer) RenderSpaceship(ship *entity.Spaceship) {
	if ship == nil {
		return
	}
	d.logger.Debug(context.Background(), "RenderSpaceship called",
		"x", ship.Position.X,
		"y", ship.Position.Y,
		"rotation", ship.Rotation,
		"shield", ship.Shield,
	)
}

// RenderAsteroid implements entity.Renderer.
func (d *NullRenderer) RenderAsteroid(asteroid *entity.Asteroid) {
	if asteroid == nil {
		return
	}
	d.logger.Debug(context.Background(), "RenderAsteroid called",
		"x", asteroid.Position.X,
		"y", asteroid.Position.Y,
		"size", asteroid.Size,
	)
}

// RenderMissile implements entity.Renderer.
func (d *NullRenderer) RenderMissile(missile *entity.Missile) {
	if missile == nil || !missile.IsActive() {
		return
	}
	d.logger.Debug(context.Background(), "RenderMissile called",
		"x", missile.Position.X,
		"y", missile.Position.Y,
	)
}

// HUDRenderer is implemented by renderers that draw status text.
type HUDRenderer interface {
	RenderHUD(state *engine.GameState)
}

// DrawGame renders one complete frame of the game. The HUD is drawn last
// when the renderer supports it.
func DrawGame(r entity.Renderer, g *engine.Game) {
	r.Clear()
	for _, asteroid := range g.Asteroids {
		asteroid.Render(r)
	}
	for _, missile := range g.Missiles {
		missile.Render(r)
	}
	g.Ship.Render(r)
	if hud, ok := r.(HUDRenderer); ok {
		hud.RenderHUD(g.GetGameState())
	}
	r.Present()
}
