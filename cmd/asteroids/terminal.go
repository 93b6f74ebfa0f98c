// cmd/asteroids/terminal.go
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/render"
	"github.com/opd-ai/go-asteroids/pkg/resource"
)

// terminalOptions configures the terminal frame loop.
type terminalOptions struct {
	FrameRate  int
	HoldFrames uint64
	OnInput    func(engine.Input)
	Logger     *logging.Logger
}

// runTerminal plays game on screen until the player quits or ctx is
// cancelled. The caller owns the screen's Init and Fini.
func runTerminal(ctx context.Context, screen tcell.Screen, game *engine.Game, opts terminalOptions) error {
	if opts.FrameRate <= 0 {
		opts.FrameRate = 60
	}

	workers := resource.NewManager(ctx, 1, 0, opts.Logger)
	defer workers.Shutdown(context.Background())

	events := make(chan tcell.Event, 32)
	if err := workers.Go("terminal-events", func(ctx context.Context) {
		screen.ChannelEvents(events, ctx.Done())
	}); err != nil {
		return fmt.Errorf("failed to start terminal event reader: %w", err)
	}

	renderer := render.NewTerminalRenderer(screen, game.Bounds)
	keys := render.NewKeyState(opts.HoldFrames)

	ticker := time.NewTicker(time.Second / time.Duration(opts.FrameRate))
	defer ticker.Stop()

	render.DrawGame(renderer, game)
	for game.Running {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				keys.HandleKey(ev)
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			in := keys.Sample()
			if opts.OnInput != nil {
				opts.OnInput(in)
			}
			renderer.SetThrusting(in.Thrust)
			game.Update(in)
			if game.Running {
				render.DrawGame(renderer, game)
			}
		}
	}
	return nil
}
