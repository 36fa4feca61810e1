package chess

import "github.com/lgbarn/chess-engine-go/internal/errors"

// Board maps the 64 squares to pieces. A nil entry is an empty square.
//
// The axes are transposed relative to conventional notation: Black starts on
// files 'a' and 'b', White on files 'g' and 'h', and pawns advance along the
// file-letter axis.
type Board struct {
	// Squares in row-major order, indexed by Square.Index().
	squares [BoardSize * BoardSize]*Piece
}

// backRank is the piece order along ranks 0..7 on both home files.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Home files for the starting layout.
const (
	blackBackFile = 0
	blackPawnFile = 1
	whitePawnFile = 6
	whiteBackFile = 7
)

// NewBoard creates a board, empty or filled with the starting layout.
func NewBoard(filled bool) *Board {
	b := &Board{}
	if filled {
		b.SetupInitialPosition()
	}
	return b
}

// SetupInitialPosition clears the board and places the 32 starting pieces.
func (b *Board) SetupInitialPosition() {
	b.squares = [BoardSize * BoardSize]*Piece{}
	for rank := 0; rank < BoardSize; rank++ {
		b.set(Sq(blackBackFile, rank), NewPiece(Black, backRank[rank]))
		b.set(Sq(blackPawnFile, rank), NewPawn(Black, Sq(blackPawnFile, rank)))
		b.set(Sq(whitePawnFile, rank), NewPawn(White, Sq(whitePawnFile, rank)))
		b.set(Sq(whiteBackFile, rank), NewPiece(White, backRank[rank]))
	}
}

// Piece returns the piece on sq, or nil if the square is empty or off the board.
func (b *Board) Piece(sq Square) *Piece {
	if !sq.InBounds() {
		return nil
	}
	return b.squares[sq.Index()]
}

// At returns the piece on the square named by text.
func (b *Board) At(text string) (*Piece, error) {
	sq, err := ParseSquare(text)
	if err != nil {
		return nil, err
	}
	return b.squares[sq.Index()], nil
}

// Place puts p on sq, replacing anything there. A nil piece clears the square.
// Pieces that could not be written as a board record are rejected.
func (b *Board) Place(sq Square, p *Piece) error {
	if err := checkSquare("place", sq); err != nil {
		return err
	}
	if p != nil {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	b.set(sq, p)
	return nil
}

// set stores p on an in-bounds square.
func (b *Board) set(sq Square, p *Piece) {
	b.squares[sq.Index()] = p
}

// Move takes the piece on from and puts it on to, overwriting any piece
// there. A pawn reaching its promotion line is replaced by the piece choose
// returns; a nil chooser leaves it unpromoted.
func (b *Board) Move(from, to Square, choose PromotionChooser) error {
	if err := checkSquare("move", from); err != nil {
		return err
	}
	if err := checkSquare("move", to); err != nil {
		return err
	}
	piece := b.squares[from.Index()]
	if piece == nil {
		return &errors.SquareError{Op: "move", Square: from.String(), Err: errors.ErrEmptySourceMove}
	}
	piece = CheckPromotion(piece, to, choose)
	b.squares[from.Index()] = nil
	b.squares[to.Index()] = piece
	return nil
}

// PositionOf returns the first square, in row-major order, holding p.
func (b *Board) PositionOf(p *Piece) (Square, bool) {
	if p == nil {
		return Square{}, false
	}
	for i, q := range b.squares {
		if q == p {
			return SquareAt(i), true
		}
	}
	return Square{}, false
}

// PiecesOf returns all pieces of side in row-major order.
func (b *Board) PiecesOf(side Side) []*Piece {
	var pieces []*Piece
	for _, p := range b.squares {
		if p != nil && p.side == side {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// KingOf returns the first King of side in row-major order, or nil.
func (b *Board) KingOf(side Side) *Piece {
	for _, p := range b.squares {
		if p != nil && p.side == side && p.kind == King {
			return p
		}
	}
	return nil
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for _, p := range b.squares {
		if p != nil {
			n++
		}
	}
	return n
}

// Clone returns a board with an independent square mapping. Pieces are
// immutable and are shared with the original.
func (b *Board) Clone() *Board {
	clone := &Board{}
	*clone = *b
	return clone
}

// Equal reports whether both boards hold the same kind of piece, by value,
// on every square.
func (b *Board) Equal(other *Board) bool {
	for i := range b.squares {
		if !b.squares[i].Same(other.squares[i]) {
			return false
		}
	}
	return true
}
