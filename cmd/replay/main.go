// cmd/replay/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/render"
	"github.com/opd-ai/go-asteroids/pkg/replay"
)

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	replayPath := flag.String("file", "", "Replay file to play back")
	stateOut := flag.String("state", "", "Write the final game state as JSON to this file ('-' for stdout)")
	flag.Parse()

	if *replayPath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay -file session.replay [-state out.json]")
		os.Exit(2)
	}

	f, err := os.Open(*replayPath)
	if err != nil {
		logger.Error(ctx, "Failed to open replay", err, "path", *replayPath)
		os.Exit(1)
	}
	defer f.Close()

	game, frames, err := playReplay(f, logger)
	if err != nil {
		logger.Error(ctx, "Replay failed", err, "path", *replayPath)
		os.Exit(1)
	}

	state := game.GetGameState()
	logger.Info(ctx, "Replay finished",
		"path", *replayPath,
		"frames", frames,
		"tick", state.Tick,
		"status", state.Status.String(),
		"shield", state.Ship.Shield,
		"asteroids_left", len(state.Asteroids),
		"asteroids_destroyed", state.Stats.AsteroidsDestroyed,
	)

	if *stateOut != "" {
		if err := writeState(state, *stateOut); err != nil {
			logger.Error(ctx, "Failed to write final state", err, "path", *stateOut)
			os.Exit(1)
		}
	}
}

// playReplay runs a recording through a fresh game, drawing every frame
// with the null renderer. It returns the final game and the number of
// frames drawn.
func playReplay(r io.Reader, logger *logging.Logger) (*engine.Game, uint64, error) {
	player, err := replay.NewPlayer(r)
	if err != nil {
		return nil, 0, err
	}

	null := render.NewNullRenderer(logger)
	game, err := player.Run(time.Unix(0, 0), func(g *engine.Game) {
		render.DrawGame(null, g)
	})
	return game, null.Frames(), err
}

// writeState encodes state as indented JSON to path, or stdout for "-".
func writeState(state *engine.GameState, path string) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	data = append(data, '\n')

	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
