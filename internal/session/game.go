// Package session runs a single local game on top of the rules engine:
// turn order, status after each move, clocks and display preferences.
package session

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/save"
)

// Preferences are the display settings stored with a game.
type Preferences struct {
	VisualAssists bool
	ColorContrast bool
	LightMode     bool
}

// Game is one game in progress. It is not safe for concurrent use.
type Game struct {
	ID    uuid.UUID
	Board *chess.Board
	Prefs Preferences

	toMove   chess.Side
	clocks   [2]int
	status   engine.Status
	timedOut bool
	log      zerolog.Logger
}

// New starts a game from the initial position with White to move.
func New(clockSeconds int, log zerolog.Logger) *Game {
	return FromSnapshot(save.NewSnapshot(clockSeconds), log)
}

// FromSnapshot resumes a saved game. The snapshot's board is used directly.
// A side to move with no time left has already lost.
func FromSnapshot(s *save.Snapshot, log zerolog.Logger) *Game {
	g := &Game{
		ID:    uuid.New(),
		Board: s.Board,
		Prefs: Preferences{
			VisualAssists: s.VisualAssists,
			ColorContrast: s.ColorContrast,
			LightMode:     s.LightMode,
		},
		toMove: chess.Black,
	}
	if s.WhiteTurn {
		g.toMove = chess.White
	}
	g.clocks[chess.White] = s.WhiteSeconds
	g.clocks[chess.Black] = s.BlackSeconds
	g.timedOut = g.clocks[g.toMove] <= 0
	g.log = log.With().Str("game", g.ID.String()).Logger()
	g.refresh()
	return g
}

// Snapshot captures the game for saving. The board is cloned.
func (g *Game) Snapshot() *save.Snapshot {
	return &save.Snapshot{
		Board:         g.Board.Clone(),
		WhiteSeconds:  g.clocks[chess.White],
		BlackSeconds:  g.clocks[chess.Black],
		WhiteTurn:     g.toMove == chess.White,
		VisualAssists: g.Prefs.VisualAssists,
		ColorContrast: g.Prefs.ColorContrast,
		LightMode:     g.Prefs.LightMode,
	}
}

// ToMove returns the side whose turn it is.
func (g *Game) ToMove() chess.Side { return g.toMove }

// Clock returns the seconds left for side.
func (g *Game) Clock(side chess.Side) int { return g.clocks[side] }

// Status returns the position status for the side to move.
func (g *Game) Status() engine.Status { return g.status }

// TimedOut reports whether the side to move ran out of time.
func (g *Game) TimedOut() bool { return g.timedOut }

// Over reports whether the game has ended by checkmate or time.
func (g *Game) Over() bool {
	return g.status == engine.Checkmate || g.timedOut
}

// Winner returns the winning side once the game is over.
func (g *Game) Winner() (chess.Side, bool) {
	if !g.Over() {
		return chess.White, false
	}
	return g.toMove.Opposite(), true
}

// Outcome describes the game state in one line.
func (g *Game) Outcome() string {
	winner, over := g.Winner()
	switch {
	case over && g.timedOut:
		return fmt.Sprintf("%s wins on time", winner)
	case over:
		return fmt.Sprintf("%s wins by checkmate", winner)
	case g.status == engine.Check:
		return fmt.Sprintf("Check, %s to move", g.toMove)
	}
	return fmt.Sprintf("%s to move", g.toMove)
}

// Moves returns the safe destinations of the piece on sq, which must belong
// to the side to move.
func (g *Game) Moves(sq chess.Square) ([]chess.Square, error) {
	moves, err := engine.MovesFrom(g.Board, sq, true)
	if err != nil {
		return nil, err
	}
	if p := g.Board.Piece(sq); p.Side() != g.toMove {
		return nil, &errors.SquareError{Op: "moves", Square: sq.String(), Err: errors.ErrWrongTurn}
	}
	return moves, nil
}

// Play moves the piece on from to to if that is a safe move for the side to
// move, then passes the turn and updates the status. choose is asked when a
// pawn reaches its promotion line.
func (g *Game) Play(from, to chess.Square, choose chess.PromotionChooser) error {
	if g.Over() {
		return errors.ErrGameOver
	}

	moves, err := g.Moves(from)
	if err != nil {
		return err
	}
	if !containsSquare(moves, to) {
		return &errors.SquareError{Op: "move " + from.String(), Square: to.String(), Err: errors.ErrIllegalMove}
	}

	if err := g.Board.Move(from, to, choose); err != nil {
		return err
	}
	g.log.Info().
		Stringer("side", g.toMove).
		Stringer("from", from).
		Stringer("to", to).
		Msg("move played")

	g.toMove = g.toMove.Opposite()
	g.refresh()
	return nil
}

// Elapse takes seconds off the clock of the side to move. It reports
// whether that ended the game.
func (g *Game) Elapse(seconds int) bool {
	if g.Over() || seconds <= 0 {
		return false
	}
	g.clocks[g.toMove] -= seconds
	if g.clocks[g.toMove] > 0 {
		return false
	}
	g.clocks[g.toMove] = 0
	g.timedOut = true
	g.log.Info().Stringer("side", g.toMove).Msg("flag fell")
	return true
}

func (g *Game) refresh() {
	g.status = engine.StatusOf(g.Board, g.toMove)
	switch g.status {
	case engine.Checkmate:
		g.log.Info().Stringer("side", g.toMove).Msg("checkmate")
	case engine.Check:
		g.log.Debug().Stringer("side", g.toMove).Msg("check")
	}
}

func containsSquare(squares []chess.Square, sq chess.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
