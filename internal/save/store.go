package save

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

const (
	appDir   = "chessengine"
	saveFile = "save.txt"
)

// DefaultPath returns <user config dir>/chessengine/save.txt, or the same
// file under the temp dir when the platform has no config dir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, appDir, saveFile)
}

// FileStore keeps a single snapshot in a text file.
type FileStore struct {
	Path string
	log  zerolog.Logger
}

// NewFileStore returns a store at path, or at DefaultPath when path is empty.
func NewFileStore(path string, log zerolog.Logger) *FileStore {
	if path == "" {
		path = DefaultPath()
	}
	return &FileStore{Path: path, log: log.With().Str("path", path).Logger()}
}

// Load reads the saved snapshot. A missing file yields an error wrapping
// errors.ErrNoSavedGame; unreadable contents wrap errors.ErrMalformedSaveData.
func (s *FileStore) Load() (*Snapshot, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Debug().Msg("no save file")
			return nil, errors.Wrap(errors.ErrNoSavedGame, s.Path)
		}
		return nil, errors.Wrap(err, "reading save file")
	}

	snap, err := Decode(string(data))
	if err != nil {
		var parseErr *errors.ParseError
		if errors.As(err, &parseErr) && parseErr.File == "" {
			parseErr.File = s.Path
		}
		s.log.Warn().Err(err).Msg("save file is malformed")
		return nil, err
	}
	s.log.Debug().Bool("white_turn", snap.WhiteTurn).Msg("loaded save")
	return snap, nil
}

// Save writes snap, creating parent directories. The file is replaced
// atomically so a failed write never leaves a truncated save behind.
func (s *FileStore) Save(snap *Snapshot) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "creating save directory")
	}

	tmp, err := os.CreateTemp(dir, saveFile+".*")
	if err != nil {
		return errors.Wrap(err, "creating save file")
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(Encode(snap)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "writing save file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "writing save file")
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "replacing save file")
	}

	s.log.Info().Msg("game saved")
	return nil
}

// Remove deletes the save file. Removing a missing file is not an error.
func (s *FileStore) Remove() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(err, "removing save file")
	}
	s.log.Debug().Msg("save removed")
	return nil
}
