package engine

import (
	"fmt"
	"strings"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// FEN piece characters (always English, uppercase for White).
var fenPieceChars = map[chess.Kind]byte{
	chess.Pawn:   'P',
	chess.Knight: 'N',
	chess.Bishop: 'B',
	chess.Rook:   'R',
	chess.Queen:  'Q',
	chess.King:   'K',
}

// pieceToFENLetter returns the FEN letter for a piece.
func pieceToFENLetter(p *chess.Piece) byte {
	letter, ok := fenPieceChars[p.Kind()]
	if !ok {
		return '?'
	}
	if p.Side() == chess.Black {
		letter += 'a' - 'A'
	}
	return letter
}

// ToFEN converts a board to a conventional FEN string.
//
// The board's file-letter axis runs between the two home lines, so it maps
// to FEN ranks: file 'a' is rank 8 and file 'h' is rank 1. Ranks '0'..'7'
// map to FEN files a..h. Castling and en passant are not part of this
// engine and are always "-".
func ToFEN(b *chess.Board, toMove chess.Side) string {
	var sb strings.Builder

	for file := 0; file < chess.BoardSize; file++ {
		emptyCount := 0
		for rank := 0; rank < chess.BoardSize; rank++ {
			p := b.Piece(chess.Sq(file, rank))
			if p == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(pieceToFENLetter(p))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if file < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteString(" - - 0 1")
	return sb.String()
}

// ToNotnilGame converts the board to a github.com/notnil/chess game for
// display and interop. Both sides need a King for the conversion to succeed.
func ToNotnilGame(b *chess.Board, toMove chess.Side) (*notnil.Game, error) {
	for _, side := range []chess.Side{chess.White, chess.Black} {
		if b.KingOf(side) == nil {
			return nil, fmt.Errorf("no %s King on the board: %w", side, errors.ErrIllegalMove)
		}
	}
	fen := ToFEN(b, toMove)
	opt, err := notnil.FEN(fen)
	if err != nil {
		return nil, errors.Wrapf(err, "converting %q", fen)
	}
	return notnil.NewGame(opt), nil
}
