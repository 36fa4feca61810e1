package chess

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Constants for board dimensions and square text.
const (
	BoardSize = 8

	FileBase  = 'a'
	RankBase  = '0'
	FirstFile = FileBase
	LastFile  = FileBase + BoardSize - 1
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
)

// Square is a board coordinate. File is the letter axis ('a'..'h' as 0..7)
// and Rank the digit axis ('0'..'7' as 0..7).
//
// The same type doubles as a direction vector during move generation, so a
// Square value may lie off the board; only in-bounds squares are stored.
type Square struct {
	File int
	Rank int
}

// Sq builds a square or vector from its components.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Add returns the component-wise sum of s and v.
func (s Square) Add(v Square) Square {
	return Square{File: s.File + v.File, Rank: s.Rank + v.Rank}
}

// Scale returns s with both components multiplied by k.
func (s Square) Scale(k int) Square {
	return Square{File: s.File * k, Rank: s.Rank * k}
}

// InBounds reports whether both components lie in [0,7].
func (s Square) InBounds() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Index returns the row-major index of an in-bounds square (a0=0, a1=1, ..., h7=63).
func (s Square) Index() int {
	return s.File*BoardSize + s.Rank
}

// SquareAt converts a row-major index back to a square.
func SquareAt(index int) Square {
	return Square{File: index / BoardSize, Rank: index % BoardSize}
}

// Text returns the two-character form of the square, e.g. "c5".
// Squares off the board are rejected rather than rendered.
func (s Square) Text() (string, error) {
	if !s.InBounds() {
		return "", &errors.SquareError{
			Op:     "format",
			Square: fmt.Sprintf("(%d,%d)", s.File, s.Rank),
			Err:    errors.ErrInvalidSquare,
		}
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase + s.Rank)}), nil
}

// String implements fmt.Stringer.
func (s Square) String() string {
	text, err := s.Text()
	if err != nil {
		return "[invalid square]"
	}
	return text
}

// ValidSquareText reports whether text has the lexical form [a-h][0-7].
func ValidSquareText(text string) bool {
	return len(text) == 2 &&
		text[0] >= FirstFile && text[0] <= LastFile &&
		text[1] >= FirstRank && text[1] <= LastRank
}

// ParseSquare converts square text such as "h4" to a Square.
func ParseSquare(text string) (Square, error) {
	if !ValidSquareText(text) {
		return Square{}, &errors.SquareError{Op: "parse", Square: text, Err: errors.ErrInvalidSquare}
	}
	return Square{File: int(text[0] - FileBase), Rank: int(text[1] - RankBase)}, nil
}

// MustSquare is like ParseSquare but panics on invalid input.
// It is meant for literals in tables and tests.
func MustSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// AllSquares returns the 64 squares in row-major order, a0 through h7.
func AllSquares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for i := 0; i < BoardSize*BoardSize; i++ {
		squares = append(squares, SquareAt(i))
	}
	return squares
}

// checkSquare validates sq for the named operation.
func checkSquare(op string, sq Square) error {
	if sq.InBounds() {
		return nil
	}
	return &errors.SquareError{
		Op:     op,
		Square: fmt.Sprintf("(%d,%d)", sq.File, sq.Rank),
		Err:    errors.ErrInvalidSquare,
	}
}
