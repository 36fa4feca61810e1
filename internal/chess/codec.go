package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Board record layout: two bytes of square text followed by a four-byte
// piece code, one record per line.
const (
	RecordLen = 6
	codeLen   = 4
	emptyCode = "    "
)

// Serialize writes one record per square, a0 through h7, each followed by a
// newline. Empty squares carry four spaces.
func (b *Board) Serialize() string {
	var sb strings.Builder
	sb.Grow(len(b.squares) * (RecordLen + 1))
	for i, p := range b.squares {
		sb.WriteString(SquareAt(i).String())
		sb.WriteString(p.Code())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard builds a board from records written by Serialize.
func ParseBoard(text string) (*Board, error) {
	b := NewBoard(false)
	if err := b.Deserialize(text); err != nil {
		return nil, err
	}
	return b, nil
}

// Deserialize replaces the board contents with the records in text.
// Blank lines are skipped and squares without a record are empty. If any
// record is malformed the board is left untouched.
func (b *Board) Deserialize(text string) error {
	var squares [BoardSize * BoardSize]*Piece
	var seen [BoardSize * BoardSize]bool
	var kings [2]int

	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		lineNum := n + 1

		if len(line) != RecordLen {
			return malformed(lineNum, "6-byte record", line)
		}
		sq, err := ParseSquare(line[:2])
		if err != nil {
			return malformed(lineNum, "square [a-h][0-7]", line[:2])
		}
		if seen[sq.Index()] {
			return malformed(lineNum, "one record per square", line[:2])
		}
		seen[sq.Index()] = true

		piece, err := parseCode(line[2:])
		if err != nil {
			return &errors.ParseError{Err: err, Line: lineNum}
		}
		if piece != nil && piece.kind == King {
			kings[piece.side]++
			if kings[piece.side] > 1 {
				return malformed(lineNum, fmt.Sprintf("at most one %s King", piece.side), line)
			}
		}
		squares[sq.Index()] = piece
	}

	b.squares = squares
	return nil
}

// parseCode converts a four-byte piece code to a piece. Four spaces is an
// empty square and yields nil.
func parseCode(code string) (*Piece, error) {
	if code == emptyCode {
		return nil, nil
	}
	side, ok := sideFromLetter(code[0])
	if !ok {
		return nil, fmt.Errorf("side letter %q: %w", code[0], errors.ErrMalformedSaveData)
	}
	kind := KindFromLetter(code[1])
	if kind == NoKind || code[1] < 'a' {
		return nil, fmt.Errorf("kind letter %q: %w", code[1], errors.ErrMalformedSaveData)
	}
	if kind == Pawn {
		origin, err := ParseSquare(code[2:])
		if err != nil {
			return nil, fmt.Errorf("pawn origin %q: %w", code[2:], errors.ErrMalformedSaveData)
		}
		return NewPawn(side, origin), nil
	}
	if code[2:] != "  " {
		return nil, fmt.Errorf("piece fill %q: %w", code[2:], errors.ErrMalformedSaveData)
	}
	return NewPiece(side, kind), nil
}

// malformed builds the ParseError used for bad board records.
func malformed(line int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrMalformedSaveData,
		Line:     line,
		Expected: expected,
		Got:      got,
	}
}
