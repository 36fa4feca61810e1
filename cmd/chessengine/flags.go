// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
)

var (
	// Game options
	savePath     = flag.String("save", "", "Save file (default: <config dir>/chessengine/save.txt)")
	newGame      = flag.Bool("new", false, "Start a new game, deleting the save file")
	clockSeconds = flag.Int("time", 600, "Seconds on each clock for a new game")
	elapsed      = flag.Int("elapse", 0, "Take N seconds off the clock of the side to move")

	// Actions
	movesOf   = flag.String("moves", "", "List the safe moves of the piece on this square (e.g. g4)")
	moveSpec  = flag.String("move", "", "Play a move given as <from>-<to> (e.g. g4-e4)")
	promoteTo = flag.String("promote", "q", "Promotion choice: q, r, b, n or none")

	// Display
	showFEN   = flag.Bool("fen", false, "Print the position as FEN with a diagram")
	showBoard = flag.Bool("board", true, "Print the board")
	noColor   = flag.Bool("nocolor", false, "Disable coloured output")
	outFile   = flag.String("o", "", "Output file (default: stdout)")
	jsonOut   = flag.Bool("json", false, "Write -list and -audit results as JSON")
	assists   = flag.Bool("assists", false, "Highlight the squares listed by -moves (saved with the game)")
	contrast  = flag.Bool("contrast", false, "Use high-contrast colours (saved with the game)")
	lightMode = flag.Bool("light", false, "Use colours for light terminals (saved with the game)")

	// Archive
	archivePath  = flag.String("archive", "", "sqlite archive of saved games")
	storeLabel   = flag.String("store", "", "Store the current game in the archive under this label")
	listArchive  = flag.Bool("list", false, "List the games in the archive")
	restoreID    = flag.String("restore", "", "Continue the archived game with this ID")
	deleteID     = flag.String("delete", "", "Delete the archived game with this ID")
	auditArchive = flag.Bool("audit", false, "Audit every archived game")
	workers      = flag.Int("workers", 0, "Number of audit workers (0 = auto-detect based on CPU cores)")

	// Logging
	logFile   = flag.String("log", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 1, "Log verbosity: 0=warnings, 1=info, 2=debug")

	// Other options
	help    = flag.Bool("help", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// request is what the command was asked to do besides configuration.
type request struct {
	MovesOf   string
	Move      string
	Promotion chess.Kind
	Elapse    int
	Store     string
	List      bool
	Restore   string
	Delete    string
	Audit     bool

	// Preference changes; nil leaves the saved value alone.
	Assists  *bool
	Contrast *bool
	Light    *bool
}

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	if *savePath != "" {
		cfg.Storage.SavePath = *savePath
	}
	cfg.Storage.ArchivePath = *archivePath

	cfg.Game.ClockSeconds = *clockSeconds
	cfg.Game.ForceNew = *newGame

	cfg.Display.UseColor = !*noColor
	cfg.Display.ShowFEN = *showFEN
	cfg.Display.ShowBoard = *showBoard
	cfg.Display.JSON = *jsonOut

	if *workers > 0 {
		cfg.Workers = *workers
	}
	cfg.Verbosity = *verbosity
}

// requestFromFlags collects the requested actions.
func requestFromFlags() (request, error) {
	kind, err := parsePromotion(*promoteTo)
	if err != nil {
		return request{}, err
	}
	req := request{
		MovesOf:   *movesOf,
		Move:      *moveSpec,
		Promotion: kind,
		Elapse:    *elapsed,
		Store:     *storeLabel,
		List:      *listArchive,
		Restore:   *restoreID,
		Delete:    *deleteID,
		Audit:     *auditArchive,
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "assists":
			req.Assists = assists
		case "contrast":
			req.Contrast = contrast
		case "light":
			req.Light = lightMode
		}
	})
	return req, nil
}

// parseMove splits "<from>-<to>" into two squares.
func parseMove(s string) (from, to chess.Square, err error) {
	fromText, toText, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return from, to, fmt.Errorf("move %q: want <from>-<to>", s)
	}
	if from, err = chess.ParseSquare(fromText); err != nil {
		return from, to, err
	}
	if to, err = chess.ParseSquare(toText); err != nil {
		return from, to, err
	}
	return from, to, nil
}

// parsePromotion converts the -promote value. "none" declines promotion.
func parsePromotion(s string) (chess.Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "none" {
		return chess.NoKind, nil
	}
	if len(s) == 1 {
		if kind := chess.KindFromLetter(s[0]); kind.Promotable() {
			return kind, nil
		}
	}
	return chess.NoKind, fmt.Errorf("promotion %q: want q, r, b, n or none", s)
}
