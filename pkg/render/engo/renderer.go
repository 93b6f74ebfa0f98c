// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/render"
)

// Draw order.
const (
	zAsteroid = 1
	zMissile  = 2
	zShip     = 3
	zHUD      = 10
)

// SpriteSink receives new sprites. *common.RenderSystem satisfies it.
type SpriteSink interface {
	Add(basic *ecs.BasicEntity, rc *common.RenderComponent, sc *common.SpaceComponent)
}

type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// spritePool hands out sprites frame by frame. Sprites are never removed
// from the render system; the ones a frame does not use are hidden.
type spritePool struct {
	sink     SpriteSink
	drawable func() common.Drawable
	color    color.Color
	z        float32

	sprites []*sprite
	used    int
}

func (p *spritePool) reset() {
	p.used = 0
}

func (p *spritePool) next() *sprite {
	if p.used == len(p.sprites) {
		s := &sprite{BasicEntity: ecs.NewBasic()}
		s.RenderComponent = common.RenderComponent{
			Drawable:    p.drawable(),
			Color:       p.color,
			StartZIndex: p.z,
		}
		p.sink.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
		p.sprites = append(p.sprites, s)
	}
	s := p.sprites[p.used]
	s.Hidden = false
	p.used++
	return s
}

func (p *spritePool) hideUnused() {
	for _, s := range p.sprites[p.used:] {
		s.Hidden = true
	}
}

// visible counts the sprites drawn this frame.
func (p *spritePool) visible() int {
	return p.used
}

// EngoRenderer implements entity.Renderer on top of engo's render system.
type EngoRenderer struct {
	camera *Camera
	assets *AssetManager

	ship      *spritePool
	asteroids *spritePool
	missiles  *spritePool
	hud       *HUDSystem

	thrusting bool
}

// NewEngoRenderer creates a renderer that adds its sprites to sink.
func NewEngoRenderer(sink SpriteSink, camera *Camera, assets *AssetManager) *EngoRenderer {
	return &EngoRenderer{
		camera: camera,
		assets: assets,
		ship: &spritePool{
			sink: sink, drawable: assets.ShipDrawable, color: shipColor, z: zShip,
		},
		asteroids: &spritePool{
			sink: sink, drawable: assets.AsteroidDrawable, color: color.Transparent, z: zAsteroid,
		},
		missiles: &spritePool{
			sink: sink, drawable: assets.MissileDrawable, color: missileColor, z: zMissile,
		},
		hud: NewHUDSystem(sink, assets),
	}
}

// SetThrusting tints the ship while the thrust button is held.
func (r *EngoRenderer) SetThrusting(on bool) {
	r.thrusting = on
}

// Clear implements entity.Renderer
func (r *EngoRenderer) Clear() {
	r.ship.reset()
	r.asteroids.reset()
	r.missiles.reset()
}

// Present implements entity.Renderer
func (r *EngoRenderer) Present() {
	r.ship.hideUnused()
	r.asteroids.hideUnused()
	r.missiles.hideUnused()
	r.camera.Advance()
}

// RenderSpaceship implements entity.Renderer
func (r *EngoRenderer) RenderSpaceship(ship *entity.Spaceship) {
	s := r.ship.next()
	sx, sy := r.camera.Scale()
	s.Width = shipWidth * sx
	s.Height = shipHeight * sy
	s.Rotation = float32(ship.GetOrientation() * 180 / math.Pi)
	s.SetCenter(r.camera.WorldToScreen(ship.GetPosition()))

	if r.thrusting {
		s.Color = thrustColor
	} else {
		s.Color = shipColor
	}
}

// RenderAsteroid implements entity.Renderer
func (r *EngoRenderer) RenderAsteroid(asteroid *entity.Asteroid) {
	s := r.asteroids.next()
	sx, sy := r.camera.Scale()
	d := float32(asteroid.GetSize() * 2)
	s.Width = d * sx
	s.Height = d * sy
	s.SetCenter(r.camera.WorldToScreen(asteroid.GetPosition()))
}

// RenderMissile implements entity.Renderer
func (r *EngoRenderer) RenderMissile(missile *entity.Missile) {
	if !missile.IsActive() {
		return
	}
	s := r.missiles.next()
	sx, sy := r.camera.Scale()
	s.Width = missileRadius * 2 * sx
	s.Height = missileRadius * 2 * sy
	s.SetCenter(r.camera.WorldToScreen(missile.GetPosition()))
}

// RenderHUD implements render.HUDRenderer
func (r *EngoRenderer) RenderHUD(state *engine.GameState) {
	r.hud.Update(state, engo.Point{X: r.camera.width, Y: r.camera.height})
}

var (
	_ entity.Renderer    = (*EngoRenderer)(nil)
	_ render.HUDRenderer = (*EngoRenderer)(nil)
)
