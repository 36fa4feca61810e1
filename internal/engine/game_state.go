package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Status summarises a position from the point of view of the side to move.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	}
	return "Ongoing"
}

// IsCheckmate returns true if no piece of side has a safe move.
//
// A side that is not in check but has no safe move is also reported here;
// stalemate is not told apart from checkmate.
func IsCheckmate(b *chess.Board, side chess.Side) bool {
	return !HasSafeMoves(b, side)
}

// StatusOf reports Checkmate when toMove has no safe move, Check when either
// King is attacked, and Ongoing otherwise.
func StatusOf(b *chess.Board, toMove chess.Side) Status {
	if IsCheckmate(b, toMove) {
		return Checkmate
	}
	if InCheck(b, chess.White) || InCheck(b, chess.Black) {
		return Check
	}
	return Ongoing
}
