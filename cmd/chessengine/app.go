// app.go - Game actions behind the command-line flags
package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/output"
	"github.com/lgbarn/chess-engine-go/internal/render"
	"github.com/lgbarn/chess-engine-go/internal/save"
	"github.com/lgbarn/chess-engine-go/internal/session"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// app carries what every action needs.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	out     io.Writer
	store   *save.FileStore
	archive *save.Archive
}

// run loads or starts a game, performs the requested actions, prints the
// result and saves the game if it changed.
func run(ctx context.Context, cfg *config.Config, req request, log zerolog.Logger) error {
	a := &app{
		cfg:   cfg,
		log:   log,
		out:   cfg.OutputFile,
		store: save.NewFileStore(cfg.Storage.SavePath, log),
	}

	if cfg.Storage.ArchivePath != "" {
		archive, err := save.OpenArchive(ctx, cfg.Storage.ArchivePath, log)
		if err != nil {
			return err
		}
		defer archive.Close()
		a.archive = archive
	} else if req.Store != "" || req.List || req.Restore != "" || req.Delete != "" || req.Audit {
		return fmt.Errorf("-store, -list, -restore, -delete and -audit need -archive: %w", errors.ErrInvalidConfig)
	}

	game, changed, err := a.openGame(ctx, req.Restore)
	if err != nil {
		return err
	}

	if applyPrefs(&game.Prefs, req) {
		changed = true
	}

	if req.Elapse > 0 {
		game.Elapse(req.Elapse)
		changed = true
	}

	var highlights []chess.Square
	if req.MovesOf != "" {
		if highlights, err = a.showMoves(game, req.MovesOf); err != nil {
			return err
		}
	}

	if req.Move != "" {
		from, to, err := parseMove(req.Move)
		if err != nil {
			return err
		}
		if err := game.Play(from, to, chess.Promote(req.Promotion)); err != nil {
			return err
		}
		changed = true
	}

	if cfg.Display.ShowBoard {
		if err := a.printBoard(game, highlights); err != nil {
			return err
		}
	}
	if cfg.Display.ShowFEN {
		if err := a.printFEN(game); err != nil {
			return err
		}
	}

	if req.Store != "" {
		id, err := a.archive.Put(ctx, req.Store, game.Snapshot())
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Stored %q as %s\n", req.Store, id)
	}
	if req.Delete != "" {
		if err := a.archive.Delete(ctx, req.Delete); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Deleted %s\n", req.Delete)
	}

	doc := &output.JSONOutput{}
	if req.List {
		if err := a.listArchive(ctx, doc); err != nil {
			return err
		}
	}
	if req.Audit {
		if err := a.auditArchive(ctx, doc); err != nil {
			return err
		}
	}
	if cfg.Display.JSON && (req.List || req.Audit) {
		if err := output.Write(a.out, doc); err != nil {
			return err
		}
	}

	if changed {
		return a.store.Save(game.Snapshot())
	}
	return nil
}

// openGame restores an archived game, starts a new one or resumes the save
// file. changed reports whether the save file no longer matches the game.
func (a *app) openGame(ctx context.Context, restoreID string) (game *session.Game, changed bool, err error) {
	switch {
	case restoreID != "":
		snap, err := a.archive.Get(ctx, restoreID)
		if err != nil {
			return nil, false, err
		}
		a.log.Info().Str("id", restoreID).Msg("restored archived game")
		return session.FromSnapshot(snap, a.log), true, nil
	case a.cfg.Game.ForceNew:
		if err := a.store.Remove(); err != nil {
			return nil, false, err
		}
		a.log.Info().Str("path", a.store.Path).Msg("discarded saved game")
		return session.New(a.cfg.Game.ClockSeconds, a.log), true, nil
	}

	game, resumed, err := session.LoadOrNew(a.store, a.cfg.Game.ClockSeconds, a.log)
	if err != nil {
		return nil, false, err
	}
	return game, !resumed, nil
}

func (a *app) showMoves(game *session.Game, squareText string) ([]chess.Square, error) {
	sq, err := chess.ParseSquare(squareText)
	if err != nil {
		return nil, err
	}
	moves, err := game.Moves(sq)
	if err != nil {
		return nil, err
	}

	texts := make([]string, 0, len(moves))
	for _, m := range moves {
		texts = append(texts, m.String())
	}
	if len(texts) == 0 {
		fmt.Fprintf(a.out, "No moves from %s\n", sq)
	} else {
		fmt.Fprintf(a.out, "Moves from %s: %s\n", sq, strings.Join(texts, " "))
	}
	if !game.Prefs.VisualAssists {
		return nil, nil
	}
	return moves, nil
}

func (a *app) printBoard(game *session.Game, highlights []chess.Square) error {
	opts := render.Options{
		Theme:      render.ThemeFor(game.Prefs.ColorContrast, game.Prefs.LightMode),
		Highlights: highlights,
		Color:      a.cfg.Display.UseColor,
	}
	if err := render.Board(a.out, game.Board, opts); err != nil {
		return err
	}
	_, err := fmt.Fprintf(a.out, "%s  (White %s, Black %s)\n", game.Outcome(),
		formatClock(game.Clock(chess.White)), formatClock(game.Clock(chess.Black)))
	return err
}

func (a *app) printFEN(game *session.Game) error {
	fmt.Fprintln(a.out, engine.ToFEN(game.Board, game.ToMove()))
	ng, err := engine.ToNotnilGame(game.Board, game.ToMove())
	if err != nil {
		a.log.Debug().Err(err).Msg("no diagram")
		return nil
	}
	_, err = fmt.Fprint(a.out, ng.Position().Board().Draw())
	return err
}

func (a *app) listArchive(ctx context.Context, doc *output.JSONOutput) error {
	entries, err := a.archive.List(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if a.cfg.Display.JSON {
			doc.Entries = append(doc.Entries, output.EntryToJSON(e))
			continue
		}
		fmt.Fprintf(a.out, "%s  %s  %s\n", e.ID, e.SavedAt.Format("2006-01-02 15:04:05"), e.Label)
	}
	return nil
}

func (a *app) auditArchive(ctx context.Context, doc *output.JSONOutput) error {
	entries, err := a.archive.List(ctx)
	if err != nil {
		return err
	}

	items := make([]worker.WorkItem, 0, len(entries))
	for _, e := range entries {
		snap, err := a.archive.Get(ctx, e.ID)
		if err != nil {
			a.log.Warn().Err(err).Str("id", e.ID).Msg("skipping unreadable snapshot")
			continue
		}
		items = append(items, worker.WorkItem{ID: e.ID, Snapshot: snap})
	}

	report, err := worker.AuditAll(ctx, items, a.cfg.Workers)
	if a.cfg.Display.JSON {
		doc.Summary = output.SummaryToJSON(report)
	}
	for _, res := range report.Results {
		if a.cfg.Display.JSON {
			doc.Audits = append(doc.Audits, output.AuditToJSON(res))
			continue
		}
		if res.Error != nil {
			fmt.Fprintf(a.out, "%s  error: %v\n", res.ID, res.Error)
			continue
		}
		fmt.Fprintf(a.out, "%s  %s to move, %s, %d moves\n", res.ID, res.ToMove, res.Status, res.Moves)
		for _, issue := range res.Issues {
			fmt.Fprintf(a.out, "    %s\n", issue)
		}
		if res.DuplicateOf != "" {
			fmt.Fprintf(a.out, "    same position as %s\n", res.DuplicateOf)
		}
	}
	if !a.cfg.Display.JSON {
		fmt.Fprintf(a.out, "%d audited, %d distinct positions, %d duplicates\n",
			len(report.Results), report.Unique, report.Duplicates)
	}
	return err
}

// applyPrefs copies the preference flags that were given into prefs and
// reports whether any was.
func applyPrefs(prefs *session.Preferences, req request) bool {
	set := false
	for _, p := range []struct {
		flag  *bool
		field *bool
	}{
		{req.Assists, &prefs.VisualAssists},
		{req.Contrast, &prefs.ColorContrast},
		{req.Light, &prefs.LightMode},
	} {
		if p.flag != nil {
			*p.field = *p.flag
			set = true
		}
	}
	return set
}

// formatClock renders seconds as m:ss.
func formatClock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
