package testutil

import (
	"sort"
	"strings"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Board builds a board from placements of the form "square:code", where code
// is a side letter and a kind letter, plus the origin square for pawns:
//
//	testutil.Board(t, "h4:wk", "a0:br", "c3:wpg3")
//
// It calls t.Fatal on malformed placements.
func Board(t *testing.T, placements ...string) *chess.Board {
	t.Helper()
	b := chess.NewBoard(false)
	for _, placement := range placements {
		sqText, code, ok := strings.Cut(placement, ":")
		if !ok || len(code) < 2 {
			t.Fatalf("bad placement %q", placement)
		}
		sq, err := chess.ParseSquare(sqText)
		if err != nil {
			t.Fatalf("bad placement %q: %v", placement, err)
		}

		side := chess.White
		if code[0] == 'b' {
			side = chess.Black
		}
		kind := chess.KindFromLetter(code[1])

		var piece *chess.Piece
		switch {
		case kind == chess.Pawn:
			if len(code) != 4 {
				t.Fatalf("pawn placement %q needs an origin square", placement)
			}
			origin, err := chess.ParseSquare(code[2:])
			if err != nil {
				t.Fatalf("bad pawn origin in %q: %v", placement, err)
			}
			piece = chess.NewPawn(side, origin)
		case kind != chess.NoKind:
			piece = chess.NewPiece(side, kind)
		default:
			t.Fatalf("unknown kind in placement %q", placement)
		}

		if err := b.Place(sq, piece); err != nil {
			t.Fatalf("placing %q: %v", placement, err)
		}
	}
	return b
}

// Squares parses square texts, calling t.Fatal on any invalid one.
func Squares(t *testing.T, texts ...string) []chess.Square {
	t.Helper()
	squares := make([]chess.Square, 0, len(texts))
	for _, text := range texts {
		sq, err := chess.ParseSquare(text)
		if err != nil {
			t.Fatalf("Squares(%q): %v", text, err)
		}
		squares = append(squares, sq)
	}
	return squares
}

// SquareTexts renders squares as sorted text for order-insensitive comparison.
func SquareTexts(squares []chess.Square) []string {
	texts := make([]string, 0, len(squares))
	for _, sq := range squares {
		texts = append(texts, sq.String())
	}
	sort.Strings(texts)
	return texts
}
