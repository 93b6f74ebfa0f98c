// cmd/asteroids/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EngoEngine/engo"
	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-asteroids/pkg/audio"
	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/render"
	engorender "github.com/opd-ai/go-asteroids/pkg/render/engo"
	"github.com/opd-ai/go-asteroids/pkg/replay"
	"github.com/opd-ai/go-asteroids/pkg/store"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	renderer := flag.String("renderer", "engo", "Renderer type: 'engo', 'terminal' or 'null'")
	seed := flag.Uint64("seed", 0, "Random seed (overrides config, 0 keeps config)")
	recordPath := flag.String("record", "", "Write a replay of the session to this file")
	logPath := flag.String("log", "asteroids.log", "Log file for the terminal renderer")
	frames := flag.Uint64("frames", 3600, "Frames to simulate (null renderer only)")
	history := flag.Int("history", 0, "Print the last N recorded sessions and exit")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode (engo only)")
	flag.Parse()

	logger := logging.NewLogger()
	var logFile *os.File
	if *renderer == "terminal" {
		// The terminal owns stdout; logs go to a file.
		logger = logging.NewLoggerWithWriter(io.Discard)
		if *logPath != "" {
			f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
				os.Exit(1)
			}
			logFile = f
			logger = logging.NewLoggerWithWriter(f)
		}
	}
	ctx := logging.WithCorrelationID(context.Background(), logging.GenerateCorrelationID())

	// Create default configuration file if requested
	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	gameConfig, err := loadConfig(ctx, logger, *configPath)
	if err != nil {
		os.Exit(1)
	}

	if *history > 0 {
		if err := printHistory(ctx, gameConfig.StorePath, *history); err != nil {
			logger.Error(ctx, "Failed to read session history", err)
			os.Exit(1)
		}
		return
	}

	if *seed != 0 {
		gameConfig.Seed = *seed
	}
	if gameConfig.Seed == 0 {
		gameConfig.Seed = uint64(time.Now().UnixNano())
	}
	if *fullscreen {
		gameConfig.Window.Fullscreen = true
	}

	game := engine.NewGame(gameConfig, engine.NewRand(gameConfig.Seed))
	logger.Info(ctx, "Session starting",
		"seed", gameConfig.Seed,
		"renderer", *renderer,
		"asteroids", len(game.Asteroids),
	)

	// Session history
	if gameConfig.StorePath != "" {
		db, err := store.OpenDB(gameConfig.StorePath)
		if err != nil {
			logger.Warn(ctx, "Session history disabled", "error", err.Error())
		} else {
			defer db.Close()
			db.Subscribe(game.EventBus, gameConfig.Seed, logger)
		}
	}

	// Sound effects
	if gameConfig.Audio.Enabled && *renderer != "null" {
		sounds := audio.NewSoundManager(gameConfig.Audio.Volume)
		if err := sounds.Initialize(); err != nil {
			logger.Warn(ctx, "Audio disabled", "error", err.Error())
		} else {
			defer sounds.Cleanup()
			sounds.Subscribe(game.EventBus)
		}
	}

	// Replay recording
	var onInput func(engine.Input)
	if *recordPath != "" {
		f, err := os.Create(*recordPath)
		if err != nil {
			logger.Error(ctx, "Failed to create replay file", err, "path", *recordPath)
			os.Exit(1)
		}
		defer f.Close()

		recorder, err := replay.NewRecorder(f, replay.NewHeader(gameConfig, gameConfig.Seed))
		if err != nil {
			logger.Error(ctx, "Failed to start replay", err, "path", *recordPath)
			os.Exit(1)
		}
		onInput = func(in engine.Input) {
			if recorder == nil {
				return
			}
			if err := recorder.Record(in); err != nil {
				logger.Error(ctx, "Replay recording stopped", err)
				recorder = nil
			}
		}
		defer func() {
			if recorder != nil {
				logger.Info(ctx, "Replay written", "path", *recordPath, "frames", recorder.Frames())
			}
		}()
	}

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch *renderer {
	case "terminal":
		err = startTerminalRenderer(ctx, game, gameConfig, onInput, logger)
	case "null":
		startNullRenderer(ctx, game, *frames, onInput, logger)
	case "engo":
		startEngoRenderer(ctx, game, gameConfig, onInput, logger)
	default:
		err = fmt.Errorf("unknown renderer %q", *renderer)
	}
	if err != nil {
		logger.Error(ctx, "Frontend failed", err, "renderer", *renderer)
	}

	logger.Info(ctx, "Session finished",
		"status", game.Status.String(),
		"frames", game.CurrentTick,
		"asteroids_destroyed", game.Stats.AsteroidsDestroyed,
		"missiles_fired", game.Stats.MissilesFired,
	)
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration file if present and applies
// environment overrides.
func loadConfig(ctx context.Context, logger *logging.Logger, path string) (*config.GameConfig, error) {
	var gameConfig *config.GameConfig

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(path)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err,
				"config_path", path,
			)
			return nil, err
		}
	}

	if err := config.ApplyEnvironmentOverrides(gameConfig); err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		return nil, err
	}
	return gameConfig, nil
}

// startEngoRenderer runs the windowed frontend. It returns when the window
// closes.
func startEngoRenderer(ctx context.Context, game *engine.Game, cfg *config.GameConfig, onInput func(engine.Input), logger *logging.Logger) {
	scene := engorender.NewGameScene(game, engorender.SceneOptions{
		FrameRate: cfg.FrameRate,
		OnInput:   onInput,
		Logger:    logger,
	})

	go func() {
		<-ctx.Done()
		engo.Exit()
	}()

	opts := engo.RunOptions{
		Title:      cfg.Window.Title,
		Width:      int(cfg.Screen.Width),
		Height:     int(cfg.Screen.Height),
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      true,
	}
	engo.Run(opts, scene)
}

// startTerminalRenderer runs the tcell frontend.
func startTerminalRenderer(ctx context.Context, game *engine.Game, cfg *config.GameConfig, onInput func(engine.Input), logger *logging.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	// Terminals send no key release; a quarter second of repeats keeps a
	// steering key held.
	hold := uint64(cfg.FrameRate / 4)

	return runTerminal(ctx, screen, game, terminalOptions{
		FrameRate:  cfg.FrameRate,
		HoldFrames: hold,
		OnInput:    onInput,
		Logger:     logger,
	})
}

// startNullRenderer runs the simulation headless with no input until the
// session ends or frames have elapsed.
func startNullRenderer(ctx context.Context, game *engine.Game, frames uint64, onInput func(engine.Input), logger *logging.Logger) {
	null := render.NewNullRenderer(logger)
	for game.Running && game.Status == engine.StatusActive && game.CurrentTick < frames {
		if ctx.Err() != nil {
			return
		}
		var in engine.Input
		if onInput != nil {
			onInput(in)
		}
		game.Update(in)
		render.DrawGame(null, game)
	}
}

// printHistory writes the most recent sessions and the best winning time
// to stdout.
func printHistory(ctx context.Context, path string, limit int) error {
	if path == "" {
		return fmt.Errorf("session history is disabled (no store path)")
	}
	db, err := store.OpenDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := db.RecentSessions(ctx, limit)
	if err != nil {
		return err
	}
	for _, s := range sessions {
		fmt.Printf("%4d  %-4s  %s  %s  destroyed=%d fired=%d seed=%d\n",
			s.ID, s.Outcome, s.CreatedAt.Local().Format(time.DateTime),
			render.FormatElapsed(s.Duration), s.AsteroidsDestroyed, s.MissilesFired, s.Seed)
	}

	summary, err := db.Summary(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("played=%d won=%d lost=%d\n", summary.Played, summary.Won, summary.Lost)

	best, ok, err := db.BestWinTime(ctx)
	if err != nil {
		return err
	}
	if ok {
		fmt.Printf("best win: %s\n", render.FormatElapsed(best))
	}
	return nil
}
