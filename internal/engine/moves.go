// Package engine provides move generation and check detection on top of the
// chess board model.
package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Direction tables. Order here is the order moves are reported in.
var (
	diagonalDirs = []chess.Square{{File: 1, Rank: 1}, {File: 1, Rank: -1}, {File: -1, Rank: -1}, {File: -1, Rank: 1}}
	straightDirs = []chess.Square{{File: 1, Rank: 0}, {File: -1, Rank: 0}, {File: 0, Rank: 1}, {File: 0, Rank: -1}}
	queenDirs    = append(append([]chess.Square{}, straightDirs...), diagonalDirs...)
	kingDirs     = []chess.Square{
		{File: 0, Rank: 1}, {File: 0, Rank: -1}, {File: -1, Rank: 0}, {File: 1, Rank: 0},
		{File: 1, Rank: 1}, {File: 1, Rank: -1}, {File: -1, Rank: -1}, {File: -1, Rank: 1},
	}
	knightDirs = []chess.Square{
		{File: 2, Rank: 1}, {File: 2, Rank: -1}, {File: -2, Rank: 1}, {File: -2, Rank: -1},
		{File: 1, Rank: 2}, {File: 1, Rank: -2}, {File: -1, Rank: 2}, {File: -1, Rank: -2},
	}
)

// PossibleMoves returns the destinations available to p on b. With
// filterSafe set, moves that would leave p's own King in check are dropped.
// The result is nil when p is not on the board or has no moves, never an
// empty non-nil slice.
func PossibleMoves(b *chess.Board, p *chess.Piece, filterSafe bool) []chess.Square {
	from, ok := b.PositionOf(p)
	if !ok {
		return nil
	}
	moves := candidateMoves(b, p, from)
	if filterSafe {
		moves = safeMoves(b, p.Side(), from, moves)
	}
	if len(moves) == 0 {
		return nil
	}
	return moves
}

// MovesFrom is PossibleMoves for the piece standing on sq.
func MovesFrom(b *chess.Board, sq chess.Square, filterSafe bool) ([]chess.Square, error) {
	if !sq.InBounds() {
		return nil, &errors.SquareError{Op: "moves", Square: sq.String(), Err: errors.ErrInvalidSquare}
	}
	p := b.Piece(sq)
	if p == nil {
		return nil, &errors.SquareError{Op: "moves", Square: sq.String(), Err: errors.ErrEmptySquare}
	}
	return PossibleMoves(b, p, filterSafe), nil
}

// candidateMoves generates moves for p standing on from, ignoring whether
// they expose the King.
func candidateMoves(b *chess.Board, p *chess.Piece, from chess.Square) []chess.Square {
	switch p.Kind() {
	case chess.Pawn:
		return pawnMoves(b, p, from)
	case chess.Knight:
		return stepMoves(b, p.Side(), from, knightDirs)
	case chess.King:
		return stepMoves(b, p.Side(), from, kingDirs)
	case chess.Bishop:
		return slideMoves(b, p.Side(), from, diagonalDirs)
	case chess.Rook:
		return slideMoves(b, p.Side(), from, straightDirs)
	case chess.Queen:
		return slideMoves(b, p.Side(), from, queenDirs)
	}
	return nil
}

// stepMoves takes exactly one step in each direction.
func stepMoves(b *chess.Board, side chess.Side, from chess.Square, dirs []chess.Square) []chess.Square {
	var moves []chess.Square
	for _, d := range dirs {
		to := from.Add(d)
		if canLand(b, side, to) {
			moves = append(moves, to)
		}
	}
	return moves
}

// slideMoves walks each direction until the edge or the first occupied
// square, which is included only when it holds an enemy piece.
func slideMoves(b *chess.Board, side chess.Side, from chess.Square, dirs []chess.Square) []chess.Square {
	var moves []chess.Square
	for _, d := range dirs {
		for i := 1; ; i++ {
			to := from.Add(d.Scale(i))
			if !to.InBounds() {
				break
			}
			target := b.Piece(to)
			if target == nil {
				moves = append(moves, to)
				continue
			}
			if target.Side() != side {
				moves = append(moves, to)
			}
			break // Blocked
		}
	}
	return moves
}

// canLand reports whether a piece of side may end a step on to.
func canLand(b *chess.Board, side chess.Side, to chess.Square) bool {
	if !to.InBounds() {
		return false
	}
	target := b.Piece(to)
	return target == nil || target.Side() != side
}
