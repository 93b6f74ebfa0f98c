// pkg/engine/game.go
package engine

import (
	"math/rand/v2"
	"time"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// GameStatus is the outcome state of the current session
type GameStatus int

const (
	StatusActive GameStatus = iota
	StatusWon
	StatusLost
)

func (s GameStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Stats counts what happened during a session
type Stats struct {
	MissilesFired      int
	AsteroidsDestroyed int
	ShipHits           int
}

// Game owns the ship, asteroids and missiles of one session and advances
// them frame by frame. It is not safe for concurrent use.
type Game struct {
	Config    *config.GameConfig
	Bounds    physics.Bounds
	Ship      *entity.Spaceship
	Asteroids []*entity.Asteroid
	Missiles  []*entity.Missile

	Status      GameStatus
	Running     bool
	CurrentTick uint64
	StartTime   time.Time
	EndTime     time.Time
	Stats       Stats
	EventBus    *event.Bus

	// Now is the clock used for elapsed time. Defaults to time.Now.
	Now func() time.Time

	rng entity.Rand
}

// NewGame creates a game with the specified configuration and starts the
// first session. A nil config uses the defaults.
func NewGame(cfg *config.GameConfig, rng entity.Rand) *Game {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	game := &Game{
		Config: cfg,
		Bounds: physics.Bounds{
			Width:  cfg.Screen.Width,
			Height: cfg.Screen.Height,
		},
		Running:  true,
		EventBus: event.NewEventBus(),
		Now:      time.Now,
		rng:      rng,
	}
	game.Reset()

	return game
}

// Reset discards the current session and starts a new one: a fresh ship in
// the middle of the screen, a new field of large asteroids and no missiles.
func (g *Game) Reset() {
	g.Ship = entity.NewSpaceship(g.Bounds)
	g.Asteroids = g.spawnAsteroids()
	g.Missiles = nil
	g.Status = StatusActive
	g.CurrentTick = 0
	g.Stats = Stats{}
	g.StartTime = g.Now()
	g.EndTime = time.Time{}

	g.EventBus.Publish(&event.BaseEvent{EventType: event.GameStarted, Source: g})
}

// spawnAsteroids creates between Min and Max large asteroids inclusive.
func (g *Game) spawnAsteroids() []*entity.Asteroid {
	lo, hi := g.Config.Asteroids.Min, g.Config.Asteroids.Max
	count := lo
	if hi > lo {
		count += g.rng.IntN(hi - lo + 1)
	}

	asteroids := make([]*entity.Asteroid, 0, count)
	for i := 0; i < count; i++ {
		asteroids = append(asteroids, entity.NewAsteroid(entity.LargeAsteroidSize, g.Bounds, g.rng))
	}
	return asteroids
}

// Stop ends the frame loop. Frontends exit once Running is false.
func (g *Game) Stop() {
	g.Running = false
}

// Fire launches a missile from the ship's position along its heading.
func (g *Game) Fire() {
	missile := entity.NewMissile(g.Ship.GetPosition(), g.Ship.GetOrientation(), g.Bounds)
	g.Missiles = append(g.Missiles, missile)
	g.Stats.MissilesFired++

	g.EventBus.Publish(event.NewMissileEvent(g, missile.Position, missile.Rotation))
}

// HandleInput applies one frame of player controls to the ship.
func (g *Game) HandleInput(in Input) {
	if g.Status != StatusActive {
		return
	}

	if in.Thrust {
		g.Ship.ActivateThrust()
	}
	if in.BackThrust {
		g.Ship.BackThrust()
	}
	if in.RotateLeft {
		g.Ship.RotateLeft()
	}
	if in.RotateRight {
		g.Ship.RotateRight()
	}
	if in.Fire {
		g.Fire()
	}
}

// Update runs one frame: controls, simulation and outcome detection while
// the session is active. After the session ends only Restart and Quit are
// honored.
func (g *Game) Update(in Input) {
	if in.Quit {
		g.Stop()
		return
	}

	if g.Status != StatusActive {
		if in.Restart {
			g.Reset()
		}
		return
	}

	g.HandleInput(in)
	g.Step()
	g.checkOutcome()
}

// checkOutcome ends the session when the ship is destroyed or the field
// is cleared.
func (g *Game) checkOutcome() {
	switch {
	case g.Ship.IsDestroyed():
		g.endGame(StatusLost)
	case len(g.Asteroids) == 0:
		g.endGame(StatusWon)
	}
}

func (g *Game) endGame(status GameStatus) {
	g.Status = status
	g.EndTime = g.Now()

	outcome := event.OutcomeLost
	if status == StatusWon {
		outcome = event.OutcomeWon
	}
	g.EventBus.Publish(event.NewGameEndedEvent(g, outcome, g.Elapsed(), g.CurrentTick,
		g.Stats.AsteroidsDestroyed, g.Stats.MissilesFired))
}

// SetClock replaces the clock and restarts the session timer from it.
func (g *Game) SetClock(now func() time.Time) {
	g.Now = now
	g.StartTime = now()
	if g.Status != StatusActive {
		g.EndTime = g.StartTime
	}
}

// Elapsed returns the session's running time, frozen once it has ended.
func (g *Game) Elapsed() time.Duration {
	if g.Status != StatusActive {
		return g.EndTime.Sub(g.StartTime)
	}
	return g.Now().Sub(g.StartTime)
}

// NewRand returns the session random source for seed. Frontends and the
// replay player must agree on it for recordings to reproduce.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
