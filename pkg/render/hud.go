// pkg/render/hud.go
package render

import (
	"fmt"
	"time"

	"github.com/opd-ai/go-asteroids/pkg/engine"
)

// RestartHint is shown under the end-of-session banner.
const RestartHint = "Press 'R' to Restart"

// FormatElapsed renders a duration as "Time: mm:ss". Minutes keep counting
// past 59.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("Time: %02d:%02d", secs/60, secs%60)
}

// FormatShield renders the shield level.
func FormatShield(shield int) string {
	return fmt.Sprintf("Shield: %d", shield)
}

// HUDLines returns the status lines drawn in the top-left corner.
func HUDLines(state *engine.GameState) []string {
	return []string{
		FormatShield(state.Ship.Shield),
		FormatElapsed(state.Elapsed),
	}
}

// BannerLines returns the centered overlay text for a finished session,
// or nil while it is still running.
func BannerLines(status engine.GameStatus) []string {
	switch status {
	case engine.StatusWon:
		return []string{"YOU WIN", RestartHint}
	case engine.StatusLost:
		return []string{"GAME OVER", RestartHint}
	default:
		return nil
	}
}
