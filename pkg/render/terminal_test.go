// pkg/render/terminal_test.go
package render

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

var testBounds = physics.Bounds{Width: 800, Height: 600}

func newSimulationScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func cellAt(screen tcell.Screen, x, y int) rune {
	ch, _, _, _ := screen.GetContent(x, y)
	return ch
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		sb.WriteRune(cellAt(screen, x, y))
	}
	return sb.String()
}

func TestTerminalRenderer_WorldToScreen(t *testing.T) {
	screen := newSimulationScreen(t)
	renderer := NewTerminalRenderer(screen, testBounds)

	tests := []struct {
		name  string
		pos   physics.Vector2D
		wantX int
		wantY int
	}{
		{"origin", physics.Vector2D{X: 0, Y: 0}, 0, 0},
		{"center", physics.Vector2D{X: 400, Y: 300}, 40, 12},
		{"near far corner", physics.Vector2D{X: 799, Y: 599}, 79, 23},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := renderer.worldToScreen(tt.pos)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("worldToScreen(%v) = (%d, %d), want (%d, %d)", tt.pos, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestTerminalRenderer_DrawsShipAndMissile(t *testing.T) {
	screen := newSimulationScreen(t)
	renderer := NewTerminalRenderer(screen, testBounds)

	renderer.Clear()
	ship := entity.NewSpaceship(testBounds)
	renderer.RenderSpaceship(ship)
	renderer.RenderMissile(entity.NewMissile(physics.Vector2D{X: 100, Y: 100}, 0, testBounds))
	renderer.Present()

	if got := cellAt(screen, 40, 12); got != '↑' {
		t.Errorf("ship cell = %q, want '↑'", got)
	}
	if got := cellAt(screen, 10, 4); got != '•' {
		t.Errorf("missile cell = %q, want '•'", got)
	}
}

func TestTerminalRenderer_ThrustChangesShipColour(t *testing.T) {
	screen := newSimulationScreen(t)
	renderer := NewTerminalRenderer(screen, testBounds)
	ship := entity.NewSpaceship(testBounds)

	renderer.SetThrusting(true)
	renderer.RenderSpaceship(ship)

	_, _, style, _ := screen.GetContent(40, 12)
	if style != styleThrust {
		t.Error("expected thrust style while thrusting")
	}
}

func TestTerminalRenderer_SkipsInactiveMissile(t *testing.T) {
	screen := newSimulationScreen(t)
	renderer := NewTerminalRenderer(screen, testBounds)
	renderer.Clear()

	missile := entity.NewMissile(physics.Vector2D{X: 100, Y: 100}, 0, testBounds)
	missile.Active = false
	renderer.RenderMissile(missile)

	if got := cellAt(screen, 10, 4); got == '•' {
		t.Error("inactive missile should not be drawn")
	}
}

func TestTerminalRenderer_AsteroidFillsEllipse(t *testing.T) {
	screen := newSimulationScreen(t)
	renderer := NewTerminalRenderer(screen, testBounds)
	renderer.Clear()

	// One cell is 10x25 world units, so a large asteroid spans 5x2 cells
	// either side of its centre.
	asteroid := entity.NewAsteroid(entity.LargeAsteroidSize, testBounds, rngStub{})
	asteroid.SetPosition(physics.Vector2D{X: 400, Y: 300})
	renderer.RenderAsteroid(asteroid)

	for _, cell := range [][2]int{{40, 12}, {45, 12}, {35, 12}, {40, 14}, {40, 10}} {
		if got := cellAt(screen, cell[0], cell[1]); got != '#' {
			t.Errorf("cell %v = %q, want '#'", cell, got)
		}
	}
	if got := cellAt(screen, 46, 12); got == '#' {
		t.Error("asteroid drawn past its radius")
	}
}

func TestTerminalRenderer_ClipsOffscreen(t *testing.T) {
	screen := newSimulationScreen(t)
	renderer := NewTerminalRenderer(screen, testBounds)

	asteroid := entity.NewAsteroid(entity.LargeAsteroidSize, testBounds, rngStub{})
	asteroid.SetPosition(physics.Vector2D{X: 1200, Y: -50})
	renderer.RenderAsteroid(asteroid)
	renderer.RenderSpaceship(&entity.Spaceship{BaseEntity: entity.BaseEntity{Position: physics.Vector2D{X: -10, Y: -10}}})
}

func TestTerminalRenderer_RenderHUD(t *testing.T) {
	screen := newSimulationScreen(t)
	renderer := NewTerminalRenderer(screen, testBounds)
	renderer.Clear()

	state := &engine.GameState{Status: engine.StatusLost}
	state.Ship.Shield = 0
	renderer.RenderHUD(state)

	if got := rowText(screen, 0); !strings.HasPrefix(got, " Shield: 0") {
		t.Errorf("row 0 = %q", got)
	}
	if got := rowText(screen, 1); !strings.HasPrefix(got, " Time: 00:00") {
		t.Errorf("row 1 = %q", got)
	}
	if got := rowText(screen, 11); !strings.Contains(got, "GAME OVER") {
		t.Errorf("banner row = %q", got)
	}
	if got := rowText(screen, 12); !strings.Contains(got, RestartHint) {
		t.Errorf("hint row = %q", got)
	}
}

func TestShipGlyph(t *testing.T) {
	tests := []struct {
		heading float64
		want    rune
	}{
		{0, '↑'},
		{math.Pi / 2, '→'},
		{math.Pi, '↓'},
		{-math.Pi / 2, '←'},
		{2 * math.Pi, '↑'},
		{math.Pi / 4, '↗'},
		{-0.1, '↑'},
	}
	for _, tt := range tests {
		if got := shipGlyph(tt.heading); got != tt.want {
			t.Errorf("shipGlyph(%v) = %q, want %q", tt.heading, got, tt.want)
		}
	}
}

// rngStub always returns zero.
type rngStub struct{}

func (rngStub) Float64() float64 { return 0 }
func (rngStub) IntN(int) int     { return 0 }
