package replay

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"testing"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/engine"
)

var start = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func scriptedInput(frame int) engine.Input {
	return engine.Input{
		Thrust:      frame%4 == 0,
		BackThrust:  frame%90 > 80,
		RotateLeft:  frame%120 < 20,
		RotateRight: frame%200 < 7,
		Fire:        frame%12 == 0,
		Restart:     frame%300 == 299,
	}
}

// recordSession plays frames of scripted input and records them to buf.
func recordSession(t *testing.T, buf *bytes.Buffer, seed uint64, frames int) *engine.GameState {
	t.Helper()
	cfg := config.DefaultConfig()
	now := start
	game := engine.NewGame(cfg, engine.NewRand(seed))
	game.SetClock(func() time.Time { return now })

	rec, err := NewRecorder(buf, NewHeader(cfg, seed))
	if err != nil {
		t.Fatalf("NewRecorder failed: %v", err)
	}
	for i := 0; i < frames; i++ {
		in := scriptedInput(i)
		if err := rec.Record(in); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
		game.Update(in)
		now = now.Add(time.Second / time.Duration(cfg.FrameRate))
	}
	if rec.Frames() != uint64(frames) {
		t.Errorf("Frames() = %d, want %d", rec.Frames(), frames)
	}
	return game.GetGameState()
}

func TestReplay_ReproducesSession(t *testing.T) {
	var buf bytes.Buffer
	want := recordSession(t, &buf, 1234, 1500)

	player, err := NewPlayer(&buf)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	if player.Header.Seed != 1234 || player.Header.Width != 800 {
		t.Errorf("unexpected header %+v", player.Header)
	}

	frames := 0
	game, err := player.Run(start, func(*engine.Game) { frames++ })
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if frames != 1500 {
		t.Errorf("replayed %d frames, want 1500", frames)
	}
	if got := game.GetGameState(); !reflect.DeepEqual(got, want) {
		t.Errorf("replayed state differs:\n got %+v\nwant %+v", got, want)
	}
}

func TestReplay_StopsAtQuit(t *testing.T) {
	var buf bytes.Buffer
	rec, err := NewRecorder(&buf, NewHeader(config.DefaultConfig(), 1))
	if err != nil {
		t.Fatalf("NewRecorder failed: %v", err)
	}
	rec.Record(engine.Input{})
	rec.Record(engine.Input{Quit: true})
	rec.Record(engine.Input{Fire: true})

	player, err := NewPlayer(&buf)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	game, err := player.Run(start, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if game.Running || game.Stats.MissilesFired != 0 {
		t.Error("frames after quit should not be played")
	}
}

func TestPlayer_NextReturnsEOF(t *testing.T) {
	var buf bytes.Buffer
	rec, _ := NewRecorder(&buf, NewHeader(config.DefaultConfig(), 1))
	rec.Record(engine.Input{Thrust: true})

	player, err := NewPlayer(&buf)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	in, err := player.Next()
	if err != nil || !in.Thrust {
		t.Fatalf("Next() = %+v, %v", in, err)
	}
	if _, err := player.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestNewPlayer_RejectsUnknownVersion(t *testing.T) {
	var buf bytes.Buffer
	header := NewHeader(config.DefaultConfig(), 1)
	header.Version = 99
	if err := msgpack.NewEncoder(&buf).Encode(&header); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if _, err := NewPlayer(&buf); !errors.Is(err, ErrVersion) {
		t.Errorf("expected ErrVersion, got %v", err)
	}
}

func TestNewPlayer_EmptyInput(t *testing.T) {
	if _, err := NewPlayer(bytes.NewReader(nil)); err == nil {
		t.Error("expected error for empty recording")
	}
}

func TestPlayer_RejectsOutOfOrderFrames(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	header := NewHeader(config.DefaultConfig(), 1)
	enc.Encode(&header)
	enc.Encode(&Frame{Tick: 0})
	enc.Encode(&Frame{Tick: 2})

	player, err := NewPlayer(&buf)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	if _, err := player.Next(); err != nil {
		t.Fatalf("first frame: %v", err)
	}
	if _, err := player.Next(); err == nil {
		t.Error("expected error for skipped tick")
	}
}

func TestHeader_ConfigRoundTrip(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Screen.Width, cfg.Screen.Height = 1024, 768
	cfg.Asteroids.Min, cfg.Asteroids.Max = 2, 3
	cfg.FrameRate = 30

	got := NewHeader(cfg, 77).Config()
	if got.Screen != cfg.Screen || got.Asteroids != cfg.Asteroids || got.FrameRate != 30 || got.Seed != 77 {
		t.Errorf("Config() = %+v", got)
	}
}
