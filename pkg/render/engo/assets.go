// pkg/render/engo/assets.go
package engo

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font/gofont/gomono"
)

// hudFontURL is the virtual file name the embedded font is registered under.
const hudFontURL = "gomono.ttf"

// Palette colours.
var (
	shipColor     = color.RGBA{255, 255, 255, 255}
	thrustColor   = color.RGBA{255, 165, 0, 255}
	asteroidColor = color.RGBA{160, 160, 160, 255}
	missileColor  = color.RGBA{255, 255, 0, 255}
	hudColor      = color.RGBA{255, 255, 255, 255}
	bannerColor   = color.RGBA{255, 80, 80, 255}
)

// Sprite dimensions in world units.
const (
	shipWidth     = 20
	shipHeight    = 30
	missileRadius = 4
)

// AssetManager owns the drawables shared by every sprite.
type AssetManager struct {
	font     *common.Font
	fontSize float64
}

// NewAssetManager creates an asset manager for the given HUD font size.
func NewAssetManager(fontSize float64) *AssetManager {
	if fontSize <= 0 {
		fontSize = 20
	}
	return &AssetManager{fontSize: fontSize}
}

// LoadAssets registers the embedded font with engo and prepares it. It
// needs a live GL context, so it only runs from the scene's Preload.
func (am *AssetManager) LoadAssets() error {
	if err := engo.Files.LoadReaderData(hudFontURL, bytes.NewReader(gomono.TTF)); err != nil {
		return fmt.Errorf("failed to load HUD font: %w", err)
	}

	font := &common.Font{
		URL:  hudFontURL,
		FG:   hudColor,
		Size: am.fontSize,
	}
	if err := font.CreatePreloaded(); err != nil {
		return fmt.Errorf("failed to prepare HUD font: %w", err)
	}
	am.font = font
	return nil
}

// Font returns the HUD font, or nil before LoadAssets succeeds.
func (am *AssetManager) Font() *common.Font {
	return am.font
}

// ShipDrawable is an isosceles triangle with its apex at the top of the
// sprite box, matching the ship outline (0,-15) (10,15) (-10,15).
func (am *AssetManager) ShipDrawable() common.Drawable {
	return common.Triangle{TriangleType: common.TriangleIsosceles}
}

// AsteroidDrawable is an outlined circle.
func (am *AssetManager) AsteroidDrawable() common.Drawable {
	return common.Circle{BorderWidth: 2, BorderColor: asteroidColor}
}

// MissileDrawable is a filled circle.
func (am *AssetManager) MissileDrawable() common.Drawable {
	return common.Circle{}
}

// TextDrawable returns a text drawable in the HUD font.
func (am *AssetManager) TextDrawable(text string) common.Drawable {
	return common.Text{Font: am.font, Text: text}
}
