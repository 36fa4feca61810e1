package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

// movesOf returns the sorted move texts of the piece on square.
func movesOf(t *testing.T, b *chess.Board, square string, filterSafe bool) []string {
	t.Helper()
	moves, err := MovesFrom(b, chess.MustSquare(square), filterSafe)
	if err != nil {
		t.Fatalf("MovesFrom(%s) error: %v", square, err)
	}
	return testutil.SquareTexts(moves)
}

func TestSlidingMoves(t *testing.T) {
	tests := []struct {
		name       string
		placements []string
		from       string
		want       []string
	}{
		{
			name:       "rook on empty board",
			placements: []string{"d3:wr"},
			from:       "d3",
			want:       []string{"a3", "b3", "c3", "d0", "d1", "d2", "d4", "d5", "d6", "d7", "e3", "f3", "g3", "h3"},
		},
		{
			name:       "rook blocked by friend and enemy",
			placements: []string{"d3:wr", "d6:wpg6", "f3:bn"},
			from:       "d3",
			want:       []string{"a3", "b3", "c3", "d0", "d1", "d2", "d4", "d5", "e3", "f3"},
		},
		{
			name:       "bishop on empty board",
			placements: []string{"c2:bb"},
			from:       "c2",
			want:       []string{"a0", "a4", "b1", "b3", "d1", "d3", "e0", "e4", "f5", "g6", "h7"},
		},
		{
			name:       "bishop stops at enemy",
			placements: []string{"c2:bb", "e4:wn", "b1:bpb1"},
			from:       "c2",
			want:       []string{"a4", "b3", "d1", "d3", "e0", "e4"},
		},
		{
			name:       "queen in the corner",
			placements: []string{"a0:wq"},
			from:       "a0",
			want: []string{
				"a1", "a2", "a3", "a4", "a5", "a6", "a7",
				"b0", "b1", "c0", "c2", "d0", "d3", "e0", "e4", "f0", "f5", "g0", "g6", "h0", "h7",
			},
		},
		{
			name:       "queen boxed in by friends",
			placements: []string{"a0:wq", "a1:wn", "b0:wn", "b1:wb"},
			from:       "a0",
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.Board(t, tt.placements...)
			testutil.AssertEqual(t, movesOf(t, b, tt.from, false), tt.want)
		})
	}
}

// TestSlidingNeverPassesBlocker walks every sliding piece of a crowded board
// and checks no move lies beyond the first occupied square in its direction.
func TestSlidingNeverPassesBlocker(t *testing.T) {
	b := chess.NewBoard(true)
	testutil.AssertNoError(t, b.Move(chess.MustSquare("g3"), chess.MustSquare("e3"), nil))
	testutil.AssertNoError(t, b.Move(chess.MustSquare("b4"), chess.MustSquare("d4"), nil))
	testutil.AssertNoError(t, b.Move(chess.MustSquare("h3"), chess.MustSquare("d7"), nil))

	for _, from := range chess.AllSquares() {
		p := b.Piece(from)
		if p == nil || (p.Kind() != chess.Rook && p.Kind() != chess.Bishop && p.Kind() != chess.Queen) {
			continue
		}
		for _, to := range PossibleMoves(b, p, false) {
			step := chess.Sq(sign(to.File-from.File), sign(to.Rank-from.Rank))
			for sq := from.Add(step); sq != to; sq = sq.Add(step) {
				if b.Piece(sq) != nil {
					t.Errorf("%v on %v reaches %v past blocker on %v", p, from, to, sq)
				}
			}
			if target := b.Piece(to); target != nil && target.Side() == p.Side() {
				t.Errorf("%v on %v lands on friendly %v", p, from, to)
			}
		}
	}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func TestSteppingMoves(t *testing.T) {
	tests := []struct {
		name       string
		placements []string
		from       string
		want       []string
	}{
		{"knight in corner", []string{"a0:bn"}, "a0", []string{"b2", "c1"}},
		{"knight in centre", []string{"d3:wn"}, "d3", []string{"b2", "b4", "c1", "c5", "e1", "e5", "f2", "f4"}},
		{"knight skips friend, takes enemy", []string{"d3:wn", "f4:wr", "b2:bq"}, "d3", []string{"b2", "b4", "c1", "c5", "e1", "e5", "f2"}},
		{"king on home file", []string{"h4:wk"}, "h4", []string{"g3", "g4", "g5", "h3", "h5"}},
		{"king hemmed in", []string{"a4:bk", "a3:bq", "a5:bb", "b3:bpb3", "b4:bpb4", "b5:wpg5"}, "a4", []string{"b5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.Board(t, tt.placements...)
			testutil.AssertEqual(t, movesOf(t, b, tt.from, false), tt.want)
		})
	}
}

func TestPawnMoves(t *testing.T) {
	tests := []struct {
		name       string
		placements []string
		from       string
		want       []string
	}{
		{"white pawn on origin", []string{"g3:wpg3"}, "g3", []string{"e3", "f3"}},
		{"black pawn on origin", []string{"b5:bpb5"}, "b5", []string{"c5", "d5"}},
		{"double step needs empty destination", []string{"g3:wpg3", "e3:bn"}, "g3", []string{"f3"}},
		{"blocked pawn cannot jump", []string{"g3:wpg3", "f3:bn"}, "g3", nil},
		{"no double step away from origin", []string{"f3:wpg3"}, "f3", []string{"e3"}},
		{"no double step for a relocated pawn", []string{"g2:wpg3"}, "g2", []string{"f2"}},
		{"captures enemies diagonally", []string{"g3:wpg3", "f2:bn", "f4:br"}, "g3", []string{"e3", "f2", "f3", "f4"}},
		{"never captures friends", []string{"g3:wpg3", "f2:wn", "f4:wr"}, "g3", []string{"e3", "f3"}},
		{"no diagonal onto empty squares", []string{"d4:bpb4"}, "d4", []string{"e4"}},
		{"edge rank capture", []string{"g0:bpb0", "h1:wr"}, "g0", []string{"h0", "h1"}},
		{"stuck on last file", []string{"h3:bpb3"}, "h3", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.Board(t, tt.placements...)
			testutil.AssertEqual(t, movesOf(t, b, tt.from, false), tt.want)
		})
	}
}

// TestPawnDoubleStepGating checks that pawns away from their origin never
// offer a two-square advance.
func TestPawnDoubleStepGating(t *testing.T) {
	for _, origin := range []string{"b0", "b4", "g2", "g7"} {
		originSq := chess.MustSquare(origin)
		dir := pawnDirection(originSq)
		for file := 0; file < chess.BoardSize; file++ {
			from := chess.Sq(file, originSq.Rank)
			if from == originSq {
				continue
			}
			side := chess.White
			if originSq.File == 1 {
				side = chess.Black
			}
			b := chess.NewBoard(false)
			pawn := chess.NewPawn(side, originSq)
			testutil.AssertNoError(t, b.Place(from, pawn))

			for _, to := range PossibleMoves(b, pawn, false) {
				if to.File-from.File == 2*dir {
					t.Errorf("pawn from %s on %v offers double step to %v", origin, from, to)
				}
			}
		}
	}
}

func TestPossibleMovesReturnsNil(t *testing.T) {
	b := testutil.Board(t, "a0:wq", "a1:wn", "b0:wn", "b1:wb")
	if moves := PossibleMoves(b, b.Piece(chess.MustSquare("a0")), true); moves != nil {
		t.Errorf("PossibleMoves() = %v; want nil", moves)
	}
	if moves := PossibleMoves(b, chess.NewPiece(chess.White, chess.Rook), false); moves != nil {
		t.Errorf("PossibleMoves() for a piece off the board = %v; want nil", moves)
	}
}

func TestMovesFromErrors(t *testing.T) {
	b := chess.NewBoard(true)

	_, err := MovesFrom(b, chess.MustSquare("d4"), true)
	testutil.AssertErrorIs(t, err, errors.ErrEmptySquare)

	_, err = MovesFrom(b, chess.Sq(9, 9), true)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidSquare)
}

func TestInitialPositionMoves(t *testing.T) {
	b := chess.NewBoard(true)
	testutil.AssertEqual(t, movesOf(t, b, "h1", true), []string{"f0", "f2"})
	testutil.AssertEqual(t, movesOf(t, b, "g4", true), []string{"e4", "f4"})
	testutil.AssertEqual(t, movesOf(t, b, "a3", true), []string(nil))
	testutil.AssertEqual(t, movesOf(t, b, "b7", true), []string{"c7", "d7"})
}
