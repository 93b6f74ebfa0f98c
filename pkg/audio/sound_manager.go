// Package audio plays synthesized sound effects for game events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/opd-ai/go-asteroids/pkg/event"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundType identifies a sound effect
type SoundType int

const (
	SoundMissile SoundType = iota
	SoundMissileHit
	SoundShipHit
	SoundGameOver
	SoundVictory
)

// SoundManager manages all game audio. Until Initialize succeeds every
// Play is a no-op, so a machine without an audio device still runs.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	played      map[SoundType]int
}

// NewSoundManager creates a new sound manager. volume is a gain offset in
// base-2 steps; 0 leaves the effects unchanged.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		played: make(map[SoundType]int),
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play starts a sound effect
func (sm *SoundManager) Play(sound SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := soundEffect(sound)
	if streamer == nil {
		return
	}
	if sm.volume != 0 {
		streamer = &effects.Volume{Streamer: streamer, Base: 2, Volume: sm.volume}
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played[sound]++
}

// Played returns how many times sound has been started.
func (sm *SoundManager) Played(sound SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[sound]
}

func soundEffect(sound SoundType) beep.Streamer {
	switch sound {
	case SoundMissile:
		return CreateMissileSound(sampleRate)
	case SoundMissileHit:
		return CreateMissileHitSound(sampleRate)
	case SoundShipHit:
		return CreateShipHitSound(sampleRate)
	case SoundGameOver:
		return CreateGameOverSound(sampleRate)
	case SoundVictory:
		return CreateVictorySound(sampleRate)
	default:
		return nil
	}
}

// Subscribe plays the matching effect for game events on bus. Cancel the
// returned subscriptions to stop.
func (sm *SoundManager) Subscribe(bus *event.Bus) []*event.Subscription {
	return []*event.Subscription{
		bus.Subscribe(event.MissileFired, func(event.Event) { sm.Play(SoundMissile) }),
		bus.Subscribe(event.MissileAsteroidCollision, func(event.Event) { sm.Play(SoundMissileHit) }),
		bus.Subscribe(event.ShipAsteroidCollision, func(event.Event) { sm.Play(SoundShipHit) }),
		bus.Subscribe(event.GameEnded, func(e event.Event) {
			if ended, ok := e.(*event.GameEndedEvent); ok && ended.Outcome == event.OutcomeWon {
				sm.Play(SoundVictory)
				return
			}
			sm.Play(SoundGameOver)
		}),
	}
}
