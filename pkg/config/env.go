// pkg/config/env.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by ApplyEnvironmentOverrides.
const (
	EnvScreenWidth  = "ASTEROIDS_SCREEN_WIDTH"
	EnvScreenHeight = "ASTEROIDS_SCREEN_HEIGHT"
	EnvMinAsteroids = "ASTEROIDS_MIN_ASTEROIDS"
	EnvMaxAsteroids = "ASTEROIDS_MAX_ASTEROIDS"
	EnvSeed         = "ASTEROIDS_SEED"
	EnvFrameRate    = "ASTEROIDS_FRAME_RATE"
	EnvAudio        = "ASTEROIDS_AUDIO"
	EnvStorePath    = "ASTEROIDS_STORE_PATH"
)

// LoadConfigFromEnv returns the default configuration with environment
// overrides applied and validated.
func LoadConfigFromEnv() (*GameConfig, error) {
	config := DefaultConfig()
	if err := ApplyEnvironmentOverrides(config); err != nil {
		return nil, err
	}
	return config, nil
}

// ApplyEnvironmentOverrides applies environment variable overrides to a
// game configuration. Unparseable values keep the current setting.
func ApplyEnvironmentOverrides(config *GameConfig) error {
	config.Screen.Width = getEnvAsFloatOrDefault(EnvScreenWidth, config.Screen.Width)
	config.Screen.Height = getEnvAsFloatOrDefault(EnvScreenHeight, config.Screen.Height)
	config.Asteroids.Min = getEnvAsIntOrDefault(EnvMinAsteroids, config.Asteroids.Min)
	config.Asteroids.Max = getEnvAsIntOrDefault(EnvMaxAsteroids, config.Asteroids.Max)
	config.Seed = getEnvAsUintOrDefault(EnvSeed, config.Seed)
	config.FrameRate = getEnvAsIntOrDefault(EnvFrameRate, config.FrameRate)
	config.Audio.Enabled = getEnvAsBoolOrDefault(EnvAudio, config.Audio.Enabled)
	config.StorePath = getEnvOrDefault(EnvStorePath, config.StorePath)

	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid environment configuration: %w", err)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsUintOrDefault(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if uintValue, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uintValue
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
