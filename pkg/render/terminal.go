// pkg/render/terminal.go
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

var (
	styleDefault  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleShip     = styleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleThrust   = styleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleAsteroid = styleDefault.Foreground(tcell.ColorSilver)
	styleMissile  = styleDefault.Foreground(tcell.ColorYellow)
	styleHUD      = styleDefault.Foreground(tcell.ColorLime)
	styleBanner   = styleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

// shipGlyphs are indexed by heading in eighths of a turn, clockwise from up.
var shipGlyphs = []rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// asteroidGlyphs maps each size tier to its fill character.
var asteroidGlyphs = map[float64]rune{
	entity.LargeAsteroidSize:  '#',
	entity.MediumAsteroidSize: '%',
	entity.SmallAsteroidSize:  'o',
}

// TerminalRenderer draws the playfield on a tcell screen, scaling world
// coordinates to the terminal's current size.
type TerminalRenderer struct {
	screen    tcell.Screen
	bounds    physics.Bounds
	thrusting bool
}

// NewTerminalRenderer creates a terminal renderer for a playfield of the
// given bounds.
func NewTerminalRenderer(screen tcell.Screen, bounds physics.Bounds) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		bounds: bounds,
	}
}

// SetThrusting selects the ship's thrust colour for the next frame.
func (r *TerminalRenderer) SetThrusting(on bool) {
	r.thrusting = on
}

// worldToScreen converts world coordinates to a terminal cell.
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	w, h := r.screen.Size()
	x := int(pos.X / r.bounds.Width * float64(w))
	y := int(pos.Y / r.bounds.Height * float64(h))
	return x, y
}

// cellScale returns the world size of one cell on each axis.
func (r *TerminalRenderer) cellScale() (float64, float64) {
	w, h := r.screen.Size()
	if w == 0 || h == 0 {
		return 0, 0
	}
	return r.bounds.Width / float64(w), r.bounds.Height / float64(h)
}

func (r *TerminalRenderer) setCell(x, y int, ch rune, style tcell.Style) {
	w, h := r.screen.Size()
	if x >= 0 && x < w && y >= 0 && y < h {
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.setCell(x, y, ch, style)
		x++
	}
}

// Clear implements entity.Renderer
func (r *TerminalRenderer) Clear() {
	r.screen.SetStyle(styleDefault)
	r.screen.Fill(' ', styleDefault)
}

// Present implements entity.Renderer
func (r *TerminalRenderer) Present() {
	r.screen.Show()
}

// RenderSpaceship implements entity.Renderer
func (r *TerminalRenderer) RenderSpaceship(ship *entity.Spaceship) {
	x, y := r.worldToScreen(ship.Position)

	style := styleShip
	if r.thrusting {
		style = styleThrust
	}
	r.setCell(x, y, shipGlyph(ship.GetOrientation()), style)
}

// shipGlyph picks the arrow closest to the heading.
func shipGlyph(heading float64) rune {
	turn := math.Mod(heading, 2*math.Pi)
	if turn < 0 {
		turn += 2 * math.Pi
	}
	idx := int(math.Round(turn/(math.Pi/4))) % len(shipGlyphs)
	return shipGlyphs[idx]
}

// RenderAsteroid implements entity.Renderer. Asteroids are filled
// ellipses so they keep their shape in non-square cells.
func (r *TerminalRenderer) RenderAsteroid(asteroid *entity.Asteroid) {
	glyph, ok := asteroidGlyphs[asteroid.Size]
	if !ok {
		glyph = 'o'
	}

	cx, cy := r.worldToScreen(asteroid.Position)
	sx, sy := r.cellScale()
	if sx == 0 || sy == 0 {
		return
	}
	rx := asteroid.Size / sx
	ry := asteroid.Size / sy
	if rx < 1 || ry < 1 {
		r.setCell(cx, cy, glyph, styleAsteroid)
		return
	}

	for dy := -int(ry); dy <= int(ry); dy++ {
		for dx := -int(rx); dx <= int(rx); dx++ {
			nx, ny := float64(dx)/rx, float64(dy)/ry
			if nx*nx+ny*ny <= 1 {
				r.setCell(cx+dx, cy+dy, glyph, styleAsteroid)
			}
		}
	}
}

// RenderMissile implements entity.Renderer
func (r *TerminalRenderer) RenderMissile(missile *entity.Missile) {
	if !missile.IsActive() {
		return
	}
	x, y := r.worldToScreen(missile.Position)
	r.setCell(x, y, '•', styleMissile)
}

// RenderHUD draws the shield and timer, plus the end-of-session banner.
func (r *TerminalRenderer) RenderHUD(state *engine.GameState) {
	for i, line := range HUDLines(state) {
		r.drawText(1, i, line, styleHUD)
	}

	banner := BannerLines(state.Status)
	if banner == nil {
		return
	}
	w, h := r.screen.Size()
	top := h/2 - len(banner)/2
	for i, line := range banner {
		r.drawText(w/2-len([]rune(line))/2, top+i, line, styleBanner)
	}
}
