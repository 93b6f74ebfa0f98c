// pkg/render/engo/scene.go
package engo

import (
	"context"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/render"
)

// maxStepsPerUpdate bounds catch-up after a stall.
const maxStepsPerUpdate = 5

// GameSystem advances the simulation at a fixed frame rate and draws it.
type GameSystem struct {
	// OnInput, if set, sees every frame's input before it is applied.
	OnInput func(engine.Input)

	game     *engine.Game
	input    *InputSystem
	renderer *EngoRenderer

	frameTime float32
	acc       float32

	exit   func()
	exited bool
}

// NewGameSystem creates a system running game at frameRate frames per
// second. exit is called once when the game stops running.
func NewGameSystem(game *engine.Game, input *InputSystem, renderer *EngoRenderer, frameRate int, exit func()) *GameSystem {
	if frameRate <= 0 {
		frameRate = 60
	}
	return &GameSystem{
		game:      game,
		input:     input,
		renderer:  renderer,
		frameTime: 1 / float32(frameRate),
		exit:      exit,
	}
}

// Remove satisfies the ecs.System interface
func (gs *GameSystem) Remove(basic ecs.BasicEntity) {}

// Update runs every simulation frame due since the last call, then draws.
func (gs *GameSystem) Update(dt float32) {
	if gs.exited {
		return
	}

	gs.input.Poll()
	gs.acc += dt

	steps := 0
	for gs.acc >= gs.frameTime && steps < maxStepsPerUpdate {
		in := gs.input.Sample()
		if gs.OnInput != nil {
			gs.OnInput(in)
		}
		gs.renderer.SetThrusting(in.Thrust)
		gs.game.Update(in)
		gs.acc -= gs.frameTime
		steps++

		if !gs.game.Running {
			break
		}
	}
	if steps == maxStepsPerUpdate {
		gs.acc = 0
	}

	if !gs.game.Running {
		gs.exited = true
		gs.exit()
		return
	}

	render.DrawGame(gs.renderer, gs.game)
}

// SceneOptions configures a GameScene.
type SceneOptions struct {
	FrameRate int
	FontSize  float64
	OnInput   func(engine.Input)
	Logger    *logging.Logger
}

// GameScene represents the main game scene in Engo
type GameScene struct {
	game   *engine.Game
	opts   SceneOptions
	logger *logging.Logger

	world    *ecs.World
	assets   *AssetManager
	camera   *Camera
	renderer *EngoRenderer
	system   *GameSystem

	shakeSub *event.Subscription
}

// NewGameScene creates a scene that plays game.
func NewGameScene(game *engine.Game, opts SceneOptions) *GameScene {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewLogger()
	}
	return &GameScene{
		game:   game,
		opts:   opts,
		logger: logger,
		assets: NewAssetManager(opts.FontSize),
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "GameScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {
	if err := scene.assets.LoadAssets(); err != nil {
		scene.logger.Warn(context.Background(), "HUD disabled", "error", err.Error())
	}
}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world, _ := u.(*ecs.World)
	scene.world = world

	common.SetBackground(color.Black)

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	scene.camera = NewCamera(scene.game.Bounds, engo.GameWidth(), engo.GameHeight())
	scene.shakeSub = scene.camera.Subscribe(scene.game.EventBus)

	scene.renderer = NewEngoRenderer(renderSystem, scene.camera, scene.assets)

	SetupInputBindings()
	scene.system = NewGameSystem(
		scene.game,
		NewInputSystem(EngoButtons{}),
		scene.renderer,
		scene.opts.FrameRate,
		engo.Exit,
	)
	scene.system.OnInput = scene.opts.OnInput
	world.AddSystem(scene.system)

	scene.logger.Info(context.Background(), "scene ready",
		"width", scene.game.Bounds.Width,
		"height", scene.game.Bounds.Height,
		"asteroids", len(scene.game.Asteroids),
	)
}

// Exit is called when the scene is exiting
func (scene *GameScene) Exit() {
	if scene.shakeSub != nil {
		scene.shakeSub.Cancel()
		scene.shakeSub = nil
	}
	scene.logger.Info(context.Background(), "scene exiting",
		"status", scene.game.Status.String(),
		"frames", scene.game.CurrentTick,
	)
}
