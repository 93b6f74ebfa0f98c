package audio

import (
	"testing"

	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

func TestSoundManager_UninitializedIsSilent(t *testing.T) {
	sm := NewSoundManager(0)
	sm.Play(SoundMissile)
	sm.Cleanup()

	if sm.Played(SoundMissile) != 0 {
		t.Error("Play before Initialize should do nothing")
	}
}

func TestSoundManager_SubscribeMapsEvents(t *testing.T) {
	sm := NewSoundManager(-1)
	sm.initialized = true // skip opening the audio device

	bus := event.NewEventBus()
	subs := sm.Subscribe(bus)

	bus.Publish(event.NewMissileEvent(nil, physics.Vector2D{}, 0))
	bus.Publish(event.NewCollisionEvent(event.MissileAsteroidCollision, nil, physics.Vector2D{}, 50, 3))
	bus.Publish(event.NewCollisionEvent(event.ShipAsteroidCollision, nil, physics.Vector2D{}, 50, 2))
	bus.Publish(event.NewGameEndedEvent(nil, event.OutcomeLost, 0, 0, 0, 0))
	bus.Publish(event.NewGameEndedEvent(nil, event.OutcomeWon, 0, 0, 0, 0))

	tests := []struct {
		sound SoundType
		want  int
	}{
		{SoundMissile, 1},
		{SoundMissileHit, 1},
		{SoundShipHit, 1},
		{SoundGameOver, 1},
		{SoundVictory, 1},
	}
	for _, tt := range tests {
		if got := sm.Played(tt.sound); got != tt.want {
			t.Errorf("Played(%d) = %d, want %d", tt.sound, got, tt.want)
		}
	}
	if sm.mixer.Len() != 5 {
		t.Errorf("mixer has %d streamers, want 5", sm.mixer.Len())
	}

	for _, sub := range subs {
		sub.Cancel()
	}
	bus.Publish(event.NewMissileEvent(nil, physics.Vector2D{}, 0))
	if sm.Played(SoundMissile) != 1 {
		t.Error("cancelled subscription still plays")
	}
}
