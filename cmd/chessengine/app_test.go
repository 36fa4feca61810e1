package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/save"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

// testEnv is a config writing to a buffer with a save file in a temp dir.
type testEnv struct {
	cfg *config.Config
	out *bytes.Buffer
	dir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	out := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().
		WithSavePath(filepath.Join(dir, "save.txt")).
		WithColor(false).
		WithWorkers(2).
		WithOutput(out).
		Build()
	return &testEnv{cfg: cfg, out: out, dir: dir}
}

// run executes one invocation and returns its output.
func (e *testEnv) run(t *testing.T, req request) (string, error) {
	t.Helper()
	e.out.Reset()
	err := run(context.Background(), e.cfg, req, zerolog.Nop())
	return e.out.String(), err
}

func (e *testEnv) mustRun(t *testing.T, req request) string {
	t.Helper()
	out, err := e.run(t, req)
	if err != nil {
		t.Fatalf("run(%+v) error: %v", req, err)
	}
	return out
}

func (e *testEnv) saved(t *testing.T) *save.Snapshot {
	t.Helper()
	snap, err := save.NewFileStore(e.cfg.Storage.SavePath, zerolog.Nop()).Load()
	testutil.AssertNoError(t, err)
	return snap
}

func TestRunStartsAndSavesNewGame(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, request{})
	testutil.AssertContains(t, out, "h  R  N  B  Q  K  B  N  R")
	testutil.AssertContains(t, out, "White to move  (White 10:00, Black 10:00)")

	snap := env.saved(t)
	testutil.AssertTrue(t, snap.WhiteTurn)
	testutil.AssertTrue(t, snap.Board.Equal(chess.NewBoard(true)))
}

func TestRunPlaysAcrossInvocations(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, request{Move: "g4-e4", Promotion: chess.Queen})
	testutil.AssertContains(t, out, "Black to move")
	testutil.AssertFalse(t, env.saved(t).WhiteTurn)

	out = env.mustRun(t, request{Move: "b3-d3", Promotion: chess.Queen})
	testutil.AssertContains(t, out, "White to move")

	snap := env.saved(t)
	testutil.AssertTrue(t, snap.WhiteTurn)
	testutil.AssertEqual(t, snap.Board.Piece(chess.MustSquare("e4")).Side(), chess.White)
	testutil.AssertEqual(t, snap.Board.Piece(chess.MustSquare("d3")).Side(), chess.Black)
}

func TestRunRejectsIllegalMove(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, request{})
	before, err := os.ReadFile(env.cfg.Storage.SavePath)
	testutil.AssertNoError(t, err)

	_, err = env.run(t, request{Move: "g4-c4"})
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)

	_, err = env.run(t, request{Move: "b3-d3"})
	testutil.AssertErrorIs(t, err, errors.ErrWrongTurn)

	_, err = env.run(t, request{Move: "g4e4"})
	if err == nil {
		t.Error("run() accepted a move without a dash")
	}

	after, err := os.ReadFile(env.cfg.Storage.SavePath)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, string(after), string(before))
}

func TestRunShowsMoves(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, request{MovesOf: "g4"})
	testutil.AssertContains(t, out, "Moves from g4: f4 e4")

	out = env.mustRun(t, request{MovesOf: "h0"})
	testutil.AssertContains(t, out, "No moves from h0")

	_, err := env.run(t, request{MovesOf: "d4"})
	testutil.AssertErrorIs(t, err, errors.ErrEmptySquare)

	_, err = env.run(t, request{MovesOf: "k9"})
	testutil.AssertErrorIs(t, err, errors.ErrInvalidSquare)
}

func TestRunNewGameDiscardsSave(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, request{Move: "g4-e4"})

	env.cfg.Game.ForceNew = true
	env.cfg.Game.ClockSeconds = 300
	out := env.mustRun(t, request{})
	testutil.AssertContains(t, out, "White to move  (White 5:00, Black 5:00)")
	testutil.AssertTrue(t, env.saved(t).WhiteTurn)

	// The old save is gone even when the run fails before saving.
	env.mustRun(t, request{Move: "g4-e4"})
	_, err := env.run(t, request{Move: "g3-c3"})
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	_, err = os.Stat(env.cfg.Storage.SavePath)
	testutil.AssertErrorIs(t, err, os.ErrNotExist)
}

func TestRunMalformedSaveStartsOver(t *testing.T) {
	env := newTestEnv(t)
	testutil.AssertNoError(t, os.WriteFile(env.cfg.Storage.SavePath, []byte("garbage\n"), 0o644))

	out := env.mustRun(t, request{})
	testutil.AssertContains(t, out, "White to move")
	testutil.AssertEqual(t, save.Encode(env.saved(t)), save.Encode(save.NewSnapshot(600)))
}

func TestRunElapseAndPrefs(t *testing.T) {
	env := newTestEnv(t)
	on := true

	out := env.mustRun(t, request{Elapse: 75, Light: &on, Assists: &on})
	testutil.AssertContains(t, out, "(White 8:45, Black 10:00)")

	snap := env.saved(t)
	testutil.AssertEqual(t, snap.WhiteSeconds, 525)
	testutil.AssertTrue(t, snap.LightMode)
	testutil.AssertTrue(t, snap.VisualAssists)
	testutil.AssertFalse(t, snap.ColorContrast)

	out = env.mustRun(t, request{Elapse: 600})
	testutil.AssertContains(t, out, "Black wins on time")

	_, err := env.run(t, request{Move: "g4-e4"})
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)
}

func TestRunFEN(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.Display.ShowBoard = false
	env.cfg.Display.ShowFEN = true

	out := env.mustRun(t, request{})
	testutil.AssertContains(t, out, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1")
	testutil.AssertContains(t, out, "A B C D E F G H")
	testutil.AssertFalse(t, strings.Contains(out, "White to move"), "board printed with -board=false")
}

func TestRunArchiveNeedsPath(t *testing.T) {
	env := newTestEnv(t)
	for _, req := range []request{{Store: "x"}, {List: true}, {Restore: "id"}, {Delete: "id"}, {Audit: true}} {
		_, err := env.run(t, req)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
	}
}

func TestRunArchive(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.Storage.ArchivePath = filepath.Join(env.dir, "archive.db")
	env.cfg.Display.ShowBoard = false

	out := env.mustRun(t, request{Store: "start"})
	testutil.AssertContains(t, out, `Stored "start" as `)
	startID := strings.TrimSpace(out[strings.LastIndex(out, " ")+1:])

	env.mustRun(t, request{Move: "g4-e4", Store: "after e-pawn"})

	out = env.mustRun(t, request{List: true})
	testutil.AssertContains(t, out, startID)
	testutil.AssertContains(t, out, "after e-pawn")

	out = env.mustRun(t, request{Audit: true})
	testutil.AssertContains(t, out, startID+"  White to move, Ongoing, 20 moves")
	testutil.AssertContains(t, out, "Black to move, Ongoing, 20 moves")

	env.mustRun(t, request{Restore: startID})
	snap := env.saved(t)
	testutil.AssertTrue(t, snap.WhiteTurn)
	testutil.AssertTrue(t, snap.Board.Equal(chess.NewBoard(true)))

	out = env.mustRun(t, request{Store: "again"})
	againID := strings.TrimSpace(out[strings.LastIndex(out, " ")+1:])
	out = env.mustRun(t, request{Audit: true})
	testutil.AssertContains(t, out, "same position as "+startID)
	testutil.AssertContains(t, out, "3 audited, 2 distinct positions, 1 duplicates")

	env.cfg.Display.JSON = true
	out = env.mustRun(t, request{List: true, Audit: true})
	testutil.AssertContains(t, out, `"entries": [`)
	testutil.AssertContains(t, out, `"label": "after e-pawn"`)
	testutil.AssertContains(t, out, `"duplicateOf": "`+startID+`"`)
	testutil.AssertContains(t, out, `"duplicates": 1`)
	env.cfg.Display.JSON = false

	out = env.mustRun(t, request{Delete: againID, List: true})
	testutil.AssertContains(t, out, "Deleted "+againID)
	testutil.AssertFalse(t, strings.Contains(out, "again"), "deleted entry still listed")

	_, err := env.run(t, request{Delete: againID})
	testutil.AssertErrorIs(t, err, errors.ErrNoSavedGame)

	_, err = env.run(t, request{Restore: "00000000-0000-0000-0000-000000000000"})
	testutil.AssertErrorIs(t, err, errors.ErrNoSavedGame)
}
