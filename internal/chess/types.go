// Package chess provides the board model of the engine: squares, sides,
// pieces, the board mapping and its text record format.
package chess

// Side represents the owner of a piece.
type Side int

const (
	White Side = iota
	Black
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// Letter returns the side letter used in board records.
func (s Side) Letter() byte {
	if s == White {
		return 'w'
	}
	return 'b'
}

// sideFromLetter is the inverse of Side.Letter.
func sideFromLetter(c byte) (Side, bool) {
	switch c {
	case 'w':
		return White, true
	case 'b':
		return Black, true
	}
	return White, false
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the lowercase kind letter used in board records.
func (k Kind) Letter() byte {
	letters := []byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a record or promotion letter to a kind.
// Upper and lower case are accepted.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'p', 'P':
		return Pawn
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	case 'k', 'K':
		return King
	}
	return NoKind
}

// Promotable reports whether a pawn may be promoted to k.
func (k Kind) Promotable() bool {
	return k == Queen || k == Bishop || k == Rook || k == Knight
}
