// pkg/render/engo/hud.go
package engo

import (
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/render"
)

// HUD layout in window units.
const (
	hudMargin     = 10
	hudLineHeight = 24
	hudCharWidth  = 12
)

// HUDSystem draws the status lines and the end-of-session banner as text
// sprites.
type HUDSystem struct {
	assets *AssetManager
	status *spritePool
	banner *spritePool
}

// NewHUDSystem creates a HUD whose text sprites go to sink.
func NewHUDSystem(sink SpriteSink, assets *AssetManager) *HUDSystem {
	text := func() common.Drawable { return assets.TextDrawable("") }
	return &HUDSystem{
		assets: assets,
		status: &spritePool{sink: sink, drawable: text, color: hudColor, z: zHUD},
		banner: &spritePool{sink: sink, drawable: text, color: bannerColor, z: zHUD},
	}
}

// Update lays out the HUD for state in a window of the given size.
func (hud *HUDSystem) Update(state *engine.GameState, window engo.Point) {
	hud.status.reset()
	hud.banner.reset()

	// No font means nothing can be drawn.
	if hud.assets.Font() == nil {
		hud.status.hideUnused()
		hud.banner.hideUnused()
		return
	}

	for i, line := range render.HUDLines(state) {
		hud.place(hud.status.next(), line, engo.Point{
			X: hudMargin,
			Y: hudMargin + float32(i)*hudLineHeight,
		})
	}

	lines := render.BannerLines(state.Status)
	top := window.Y/2 - float32(len(lines))*hudLineHeight/2
	for i, line := range lines {
		w := float32(len(line)) * hudCharWidth
		hud.place(hud.banner.next(), line, engo.Point{
			X: (window.X - w) / 2,
			Y: top + float32(i)*hudLineHeight,
		})
	}

	hud.status.hideUnused()
	hud.banner.hideUnused()
}

func (hud *HUDSystem) place(s *sprite, text string, at engo.Point) {
	s.Drawable = hud.assets.TextDrawable(text)
	s.Position = at
	s.Width = float32(len(text)) * hudCharWidth
	s.Height = hudLineHeight
}

// StatusLines returns the number of status lines currently shown.
func (hud *HUDSystem) StatusLines() int {
	return hud.status.visible()
}

// BannerShown reports whether the end-of-session banner is visible.
func (hud *HUDSystem) BannerShown() bool {
	return hud.banner.visible() > 0
}
