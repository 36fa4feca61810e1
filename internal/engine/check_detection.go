package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// InCheck returns true if the given side's King is attacked. A side with no
// King on the board is never in check.
func InCheck(b *chess.Board, side chess.Side) bool {
	king := b.KingOf(side)
	if king == nil {
		return false
	}
	kingSq, _ := b.PositionOf(king)
	return isSquareAttacked(b, kingSq, side.Opposite())
}

// isSquareAttacked returns true if any piece of bySide has target among its
// unfiltered moves.
func isSquareAttacked(b *chess.Board, target chess.Square, bySide chess.Side) bool {
	for _, from := range chess.AllSquares() {
		p := b.Piece(from)
		if p == nil || p.Side() != bySide {
			continue
		}
		for _, to := range candidateMoves(b, p, from) {
			if to == target {
				return true
			}
		}
	}
	return false
}
