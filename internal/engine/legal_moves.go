package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// HasSafeMoves returns true if at least one piece of side has a safe move.
func HasSafeMoves(b *chess.Board, side chess.Side) bool {
	for _, p := range b.PiecesOf(side) {
		if PossibleMoves(b, p, true) != nil {
			return true
		}
	}
	return false
}

// safeMoves keeps the candidates that, played on a copy of the board, leave
// side's King out of check. Promotion is not offered on the copy.
func safeMoves(b *chess.Board, side chess.Side, from chess.Square, candidates []chess.Square) []chess.Square {
	var safe []chess.Square
	for _, to := range candidates {
		if tryMove(b, side, from, to) {
			safe = append(safe, to)
		}
	}
	return safe
}

// tryMove makes a move on a cloned board and checks if it leaves the King in check.
func tryMove(b *chess.Board, side chess.Side, from, to chess.Square) bool {
	testBoard := b.Clone()
	if err := testBoard.Move(from, to, nil); err != nil {
		return false
	}
	return !InCheck(testBoard, side)
}
