package session

import (
	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/save"
)

// Loader supplies a saved snapshot.
type Loader interface {
	Load() (*save.Snapshot, error)
}

// LoadOrNew resumes the game held by store. A missing or malformed save
// starts a new game instead; resumed reports which happened. Other load
// failures are returned.
func LoadOrNew(store Loader, clockSeconds int, log zerolog.Logger) (g *Game, resumed bool, err error) {
	snap, err := store.Load()
	switch {
	case err == nil:
		return FromSnapshot(snap, log), true, nil
	case errors.Is(err, errors.ErrNoSavedGame):
		log.Debug().Msg("starting a new game")
	case errors.Is(err, errors.ErrMalformedSaveData):
		log.Warn().Err(err).Msg("ignoring malformed save")
	default:
		return nil, false, err
	}
	return New(clockSeconds, log), false, nil
}
