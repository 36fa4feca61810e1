package save

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id       TEXT PRIMARY KEY,
	label    TEXT NOT NULL,
	saved_at INTEGER NOT NULL,
	data     TEXT NOT NULL
)`

// Entry describes one archived snapshot without decoding it.
type Entry struct {
	ID      string
	Label   string
	SavedAt time.Time
}

// Archive stores many named snapshots in a sqlite database.
type Archive struct {
	db  *sql.DB
	log zerolog.Logger
	now func() time.Time
}

// OpenArchive opens or creates the archive database at path.
func OpenArchive(ctx context.Context, path string, log zerolog.Logger) (*Archive, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, archiveErr("open", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, archiveErr("create schema", err)
	}
	log = log.With().Str("archive", path).Logger()
	log.Debug().Msg("archive opened")
	return &Archive{db: db, log: log, now: time.Now}, nil
}

// Put stores snap under label and returns its new ID.
func (a *Archive) Put(ctx context.Context, label string, snap *Snapshot) (string, error) {
	id := uuid.New().String()
	_, err := a.db.ExecContext(ctx,
		"INSERT INTO snapshots (id, label, saved_at, data) VALUES (?, ?, ?, ?)",
		id, label, a.now().UnixNano(), Encode(snap))
	if err != nil {
		return "", archiveErr("put", err)
	}
	a.log.Info().Str("id", id).Str("label", label).Msg("snapshot archived")
	return id, nil
}

// Get loads the snapshot with the given ID. An unknown ID yields an error
// wrapping errors.ErrNoSavedGame.
func (a *Archive) Get(ctx context.Context, id string) (*Snapshot, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("snapshot id %q: %w", id, errors.ErrNoSavedGame)
	}

	var data string
	err := a.db.QueryRowContext(ctx, "SELECT data FROM snapshots WHERE id = ?", id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("snapshot %s: %w", id, errors.ErrNoSavedGame)
	}
	if err != nil {
		return nil, archiveErr("get", err)
	}

	snap, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "snapshot %s", id)
	}
	return snap, nil
}

// List returns every entry, oldest first.
func (a *Archive) List(ctx context.Context) ([]Entry, error) {
	rows, err := a.db.QueryContext(ctx, "SELECT id, label, saved_at FROM snapshots ORDER BY saved_at, rowid")
	if err != nil {
		return nil, archiveErr("list", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var savedAt int64
		if err := rows.Scan(&e.ID, &e.Label, &savedAt); err != nil {
			return nil, archiveErr("list", err)
		}
		e.SavedAt = time.Unix(0, savedAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, archiveErr("list", err)
	}
	return entries, nil
}

// Delete removes the snapshot with the given ID.
func (a *Archive) Delete(ctx context.Context, id string) error {
	res, err := a.db.ExecContext(ctx, "DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return archiveErr("delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return archiveErr("delete", err)
	}
	if n == 0 {
		return fmt.Errorf("snapshot %s: %w", id, errors.ErrNoSavedGame)
	}
	a.log.Info().Str("id", id).Msg("snapshot deleted")
	return nil
}

// Close closes the database.
func (a *Archive) Close() error {
	return a.db.Close()
}

func archiveErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", errors.ErrArchive, op, err)
}
