// Package replay records per-frame player input to a msgpack stream and
// plays it back through a fresh game.
package replay

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/engine"
)

// FormatVersion is written into every header.
const FormatVersion = 1

// ErrVersion is returned for recordings made by an incompatible format.
var ErrVersion = errors.New("unsupported replay version")

// Header describes the session a recording belongs to.
type Header struct {
	Version      int     `msgpack:"v"`
	Seed         uint64  `msgpack:"seed"`
	Width        float64 `msgpack:"w"`
	Height       float64 `msgpack:"h"`
	MinAsteroids int     `msgpack:"amin"`
	MaxAsteroids int     `msgpack:"amax"`
	FrameRate    int     `msgpack:"fps"`
}

// Frame is one frame of input.
type Frame struct {
	Tick    uint64 `msgpack:"t"`
	Buttons uint8  `msgpack:"b"`
}

// NewHeader captures the settings a replay needs from cfg.
func NewHeader(cfg *config.GameConfig, seed uint64) Header {
	return Header{
		Version:      FormatVersion,
		Seed:         seed,
		Width:        cfg.Screen.Width,
		Height:       cfg.Screen.Height,
		MinAsteroids: cfg.Asteroids.Min,
		MaxAsteroids: cfg.Asteroids.Max,
		FrameRate:    cfg.FrameRate,
	}
}

// Config rebuilds the game configuration recorded in the header.
func (h Header) Config() *config.GameConfig {
	cfg := config.DefaultConfig()
	cfg.Screen.Width = h.Width
	cfg.Screen.Height = h.Height
	cfg.Asteroids.Min = h.MinAsteroids
	cfg.Asteroids.Max = h.MaxAsteroids
	cfg.Seed = h.Seed
	if h.FrameRate > 0 {
		cfg.FrameRate = h.FrameRate
	}
	return cfg
}

// Recorder writes a header followed by one frame per Record call.
type Recorder struct {
	enc  *msgpack.Encoder
	tick uint64
}

// NewRecorder writes the header to w.
func NewRecorder(w io.Writer, header Header) (*Recorder, error) {
	enc := msgpack.NewEncoder(w)
	enc.UseCompactInts(true)
	if err := enc.Encode(&header); err != nil {
		return nil, fmt.Errorf("failed to write replay header: %w", err)
	}
	return &Recorder{enc: enc}, nil
}

// Record appends one frame of input.
func (r *Recorder) Record(in engine.Input) error {
	frame := Frame{Tick: r.tick, Buttons: in.Bits()}
	if err := r.enc.Encode(&frame); err != nil {
		return fmt.Errorf("failed to write replay frame %d: %w", r.tick, err)
	}
	r.tick++
	return nil
}

// Frames returns how many frames have been recorded.
func (r *Recorder) Frames() uint64 {
	return r.tick
}

// Player reads a recording back.
type Player struct {
	Header Header

	dec  *msgpack.Decoder
	next uint64
}

// NewPlayer reads and checks the header from r.
func NewPlayer(r io.Reader) (*Player, error) {
	dec := msgpack.NewDecoder(r)

	var header Header
	if err := dec.Decode(&header); err != nil {
		return nil, fmt.Errorf("failed to read replay header: %w", err)
	}
	if header.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersion, header.Version)
	}
	return &Player{Header: header, dec: dec}, nil
}

// Next returns the next frame's input, or io.EOF after the last frame.
func (p *Player) Next() (engine.Input, error) {
	var frame Frame
	if err := p.dec.Decode(&frame); err != nil {
		if errors.Is(err, io.EOF) {
			return engine.Input{}, io.EOF
		}
		return engine.Input{}, fmt.Errorf("failed to read replay frame %d: %w", p.next, err)
	}
	if frame.Tick != p.next {
		return engine.Input{}, fmt.Errorf("replay frame out of order: got tick %d, want %d", frame.Tick, p.next)
	}
	p.next++
	return engine.InputFromBits(frame.Buttons), nil
}

// Run replays the whole recording into a new game and returns it. The game
// clock advances one frame period per frame, starting at start. onFrame,
// if set, is called after every frame.
func (p *Player) Run(start time.Time, onFrame func(*engine.Game)) (*engine.Game, error) {
	cfg := p.Header.Config()
	now := start
	game := engine.NewGame(cfg, engine.NewRand(p.Header.Seed))
	game.SetClock(func() time.Time { return now })

	period := time.Second / time.Duration(cfg.FrameRate)
	for game.Running {
		in, err := p.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return game, err
		}

		game.Update(in)
		now = now.Add(period)
		if onFrame != nil {
			onFrame(game)
		}
	}
	return game, nil
}
