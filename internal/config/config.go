// Package config provides configuration for the chessengine command.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/save"
)

// Config holds all program configuration.
type Config struct {
	Storage *StorageConfig
	Game    *GameConfig
	Display *DisplayConfig

	// Workers is the number of goroutines used to audit archived games.
	Workers int

	Verbosity int // 0=errors only, 1=info, 2=debug

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// GameConfig holds settings for starting or resuming a game.
type GameConfig struct {
	// ClockSeconds is the time each side starts with.
	ClockSeconds int

	// ForceNew ignores any saved game.
	ForceNew bool
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{ClockSeconds: save.DefaultClockSeconds}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if g.ClockSeconds <= 0 {
		return fmt.Errorf("clock seconds (%d) must be positive: %w", g.ClockSeconds, errors.ErrInvalidConfig)
	}
	return nil
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Storage:    NewStorageConfig(),
		Game:       NewGameConfig(),
		Display:    NewDisplayConfig(),
		Workers:    runtime.NumCPU(),
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer the board and reports go to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity (%d) must be 0, 1 or 2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	return c.Game.Validate()
}
