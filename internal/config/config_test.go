package config

import (
	"bytes"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/save"
)

// TestConfig_Defaults verifies NewConfig has sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Storage.SavePath != save.DefaultPath() {
		t.Errorf("SavePath = %q, want %q", cfg.Storage.SavePath, save.DefaultPath())
	}
	if cfg.Storage.ArchivePath != "" {
		t.Errorf("ArchivePath = %q, want empty", cfg.Storage.ArchivePath)
	}
	if cfg.Game.ClockSeconds != 600 {
		t.Errorf("ClockSeconds = %d, want 600", cfg.Game.ClockSeconds)
	}
	if cfg.Game.ForceNew {
		t.Error("ForceNew should be false by default")
	}
	if !cfg.Display.UseColor {
		t.Error("UseColor should be true by default")
	}
	if !cfg.Display.ShowBoard {
		t.Error("ShowBoard should be true by default")
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

// TestConfig_Validate verifies config validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"archive enabled", func(c *Config) { c.Storage.ArchivePath = "/tmp/archive.db" }, false},
		{"zero workers", func(c *Config) { c.Workers = 0 }, true},
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }, true},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"empty save path", func(c *Config) { c.Storage.SavePath = "" }, true},
		{"archive is the save file", func(c *Config) {
			c.Storage.SavePath = "/tmp/game/save.txt"
			c.Storage.ArchivePath = "/tmp/game/../game/save.txt"
		}, true},
		{"zero clock", func(c *Config) { c.Game.ClockSeconds = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithSavePath("/tmp/save.txt").
		WithArchive("/tmp/archive.db").
		WithClock(300).
		WithNewGame(true).
		WithColor(false).
		WithJSON(true).
		WithWorkers(3).
		WithOutput(buf).
		WithVerbosity(2).
		Build()

	if cfg.Storage.SavePath != "/tmp/save.txt" {
		t.Errorf("SavePath = %q, want /tmp/save.txt", cfg.Storage.SavePath)
	}
	if cfg.Storage.ArchivePath != "/tmp/archive.db" {
		t.Errorf("ArchivePath = %q, want /tmp/archive.db", cfg.Storage.ArchivePath)
	}
	if cfg.Game.ClockSeconds != 300 {
		t.Errorf("ClockSeconds = %d, want 300", cfg.Game.ClockSeconds)
	}
	if !cfg.Game.ForceNew {
		t.Error("ForceNew should be true")
	}
	if cfg.Display.UseColor {
		t.Error("UseColor should be false")
	}
	if !cfg.Display.JSON {
		t.Error("JSON should be true")
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Workers)
	}
	if cfg.OutputFile != buf {
		t.Error("WithOutput did not set OutputFile")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("built config is invalid: %v", err)
	}
}
