package chess

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Piece is one piece on the board. Pieces are immutable and handled by
// pointer; the pointer is the piece's identity, so two white rooks are
// distinct pieces even though their fields match. A piece never records its
// own square.
type Piece struct {
	side Side
	kind Kind
	// origin is where a pawn was created. Unused for other kinds.
	origin Square
}

// NewPiece creates a non-pawn piece.
func NewPiece(side Side, kind Kind) *Piece {
	return &Piece{side: side, kind: kind}
}

// NewPawn creates a pawn whose origin square is fixed for its lifetime.
func NewPawn(side Side, origin Square) *Piece {
	return &Piece{side: side, kind: Pawn, origin: origin}
}

// Validate reports whether the piece can be written as a board record: a
// known side, a real kind and, for pawns, an origin on the board.
func (p *Piece) Validate() error {
	if p.side != White && p.side != Black {
		return fmt.Errorf("side %d: %w", p.side, errors.ErrInvalidPiece)
	}
	if p.kind < Pawn || p.kind > King {
		return fmt.Errorf("%s %s: %w", p.side, p.kind, errors.ErrInvalidPiece)
	}
	if p.kind == Pawn {
		if err := checkSquare("pawn origin", p.origin); err != nil {
			return err
		}
	}
	return nil
}

// Side returns the owner of the piece.
func (p *Piece) Side() Side { return p.side }

// Kind returns the piece type.
func (p *Piece) Kind() Kind { return p.kind }

// Origin returns the square a pawn started on.
func (p *Piece) Origin() Square { return p.origin }

// Code returns the four-byte record code: side letter, kind letter and
// either the pawn origin or two spaces of fill.
func (p *Piece) Code() string {
	if p == nil {
		return emptyCode
	}
	code := []byte{p.side.Letter(), p.kind.Letter(), ' ', ' '}
	if p.kind == Pawn {
		origin := p.origin.String()
		code[2], code[3] = origin[0], origin[1]
	}
	return string(code)
}

// String implements fmt.Stringer, e.g. "White Queen".
func (p *Piece) String() string {
	if p == nil {
		return "empty"
	}
	return p.side.String() + " " + p.kind.String()
}

// Same reports whether p and q have the same side, kind and (for pawns) origin.
// It compares value, not identity.
func (p *Piece) Same(q *Piece) bool {
	if p == nil || q == nil {
		return p == q
	}
	if p.side != q.side || p.kind != q.kind {
		return false
	}
	return p.kind != Pawn || p.origin == q.origin
}
