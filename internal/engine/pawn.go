package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// doubleStepFile is the origin file whose pawns advance toward higher files.
// Every other pawn advances toward lower files.
const doubleStepFile = 1

// pawnDirection returns the file step of a pawn with the given origin.
func pawnDirection(origin chess.Square) int {
	if origin.File == doubleStepFile {
		return 1
	}
	return -1
}

// pawnMoves generates pawn advances and captures. Pawns only capture
// diagonally forward and never move diagonally onto an empty square.
func pawnMoves(b *chess.Board, p *chess.Piece, from chess.Square) []chess.Square {
	var moves []chess.Square
	forward := chess.Sq(pawnDirection(p.Origin()), 0)

	ahead := from.Add(forward)
	if ahead.InBounds() && b.Piece(ahead) == nil {
		moves = append(moves, ahead)

		// Double step from the exact origin square only
		if from == p.Origin() {
			twoAhead := from.Add(forward.Scale(2))
			if twoAhead.InBounds() && b.Piece(twoAhead) == nil {
				moves = append(moves, twoAhead)
			}
		}
	}

	for _, side := range []int{-1, 1} {
		to := ahead.Add(chess.Sq(0, side))
		if !to.InBounds() {
			continue
		}
		if target := b.Piece(to); target != nil && target.Side() != p.Side() {
			moves = append(moves, to)
		}
	}
	return moves
}
