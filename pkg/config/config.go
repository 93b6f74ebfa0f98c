// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// GameConfig contains configuration for an asteroids session and its frontends
type GameConfig struct {
	Screen    ScreenConfig   `json:"screen"`
	Asteroids AsteroidConfig `json:"asteroids"`
	// Seed for the session random source. Zero picks a seed at startup.
	Seed      uint64       `json:"seed"`
	FrameRate int          `json:"frameRate"`
	Audio     AudioConfig  `json:"audio"`
	Window    WindowConfig `json:"window"`
	// StorePath is the SQLite session history file. Empty disables history.
	StorePath string `json:"storePath"`
}

// ScreenConfig is the playfield size in world units
type ScreenConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// AsteroidConfig bounds the number of large asteroids created per session
type AsteroidConfig struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// AudioConfig contains sound effect settings
type AudioConfig struct {
	Enabled bool `json:"enabled"`
	// Volume is a gain offset in beep's base-2 scale; 0 is unchanged.
	Volume float64 `json:"volume"`
}

// WindowConfig contains windowed frontend settings
type WindowConfig struct {
	Title      string `json:"title"`
	Fullscreen bool   `json:"fullscreen"`
}

// ValidationError reports a configuration field with an unusable value
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed for %s: %s", e.Field, e.Message)
}

// LoadConfig loads a configuration from a file. Fields missing from the
// file keep their default values.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	if config == nil {
		return errors.New("config is nil")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a default game configuration
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
		},
		Asteroids: AsteroidConfig{
			Min: 4,
			Max: 8,
		},
		Seed:      0,
		FrameRate: 60,
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0,
		},
		Window: WindowConfig{
			Title:      "Asteroids",
			Fullscreen: false,
		},
		StorePath: "asteroids.db",
	}
}

// Validate checks that the configuration can start a session
func (c *GameConfig) Validate() error {
	if c.Screen.Width <= 0 {
		return &ValidationError{Field: "Screen.Width", Message: "must be positive"}
	}
	if c.Screen.Height <= 0 {
		return &ValidationError{Field: "Screen.Height", Message: "must be positive"}
	}
	if c.Asteroids.Min < 1 {
		return &ValidationError{Field: "Asteroids.Min", Message: "must be at least 1"}
	}
	if c.Asteroids.Max < c.Asteroids.Min {
		return &ValidationError{Field: "Asteroids.Max", Message: "must not be less than Asteroids.Min"}
	}
	if c.FrameRate < 1 || c.FrameRate > 240 {
		return &ValidationError{Field: "FrameRate", Message: "must be between 1 and 240"}
	}
	return nil
}
