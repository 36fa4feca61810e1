package config

import (
	"fmt"
	"path/filepath"

	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/save"
)

// StorageConfig holds the locations games are saved to.
type StorageConfig struct {
	// SavePath is the single-slot save file.
	SavePath string

	// ArchivePath is the sqlite database of named snapshots; empty disables it.
	ArchivePath string
}

// NewStorageConfig creates a StorageConfig pointing at the default save file.
func NewStorageConfig() *StorageConfig {
	return &StorageConfig{SavePath: save.DefaultPath()}
}

// Validate checks that the storage paths can be used together.
func (s *StorageConfig) Validate() error {
	if s.SavePath == "" {
		return fmt.Errorf("save path is empty: %w", errors.ErrInvalidConfig)
	}
	if s.ArchivePath != "" && filepath.Clean(s.ArchivePath) == filepath.Clean(s.SavePath) {
		return fmt.Errorf("archive and save file are both %q: %w", s.SavePath, errors.ErrInvalidConfig)
	}
	return nil
}
