// Package render draws a board for the terminal.
package render

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// Theme holds the colours used for squares and pieces.
type Theme struct {
	Light     color.Attribute // light square background
	Dark      color.Attribute // dark square background
	Highlight color.Attribute // background of a move target
	Check     color.Attribute // background of a King in check
	White     color.Attribute // White piece foreground
	Black     color.Attribute // Black piece foreground
	Label     color.Attribute // coordinate labels
}

var (
	// DefaultTheme is used when no preference is set.
	DefaultTheme = Theme{
		Light:     color.BgYellow,
		Dark:      color.BgGreen,
		Highlight: color.BgCyan,
		Check:     color.BgRed,
		White:     color.FgHiWhite,
		Black:     color.FgBlack,
		Label:     color.FgHiBlack,
	}

	// LightTheme suits terminals with a light background.
	LightTheme = Theme{
		Light:     color.BgHiWhite,
		Dark:      color.BgWhite,
		Highlight: color.BgHiCyan,
		Check:     color.BgHiRed,
		White:     color.FgBlue,
		Black:     color.FgBlack,
		Label:     color.FgBlack,
	}

	// HighContrastTheme maximises the difference between squares and pieces.
	HighContrastTheme = Theme{
		Light:     color.BgHiWhite,
		Dark:      color.BgBlack,
		Highlight: color.BgHiYellow,
		Check:     color.BgHiRed,
		White:     color.FgHiBlue,
		Black:     color.FgHiRed,
		Label:     color.FgHiWhite,
	}
)

// ThemeFor picks the theme matching the display preferences. High contrast
// wins over light mode.
func ThemeFor(highContrast, lightMode bool) Theme {
	switch {
	case highContrast:
		return HighContrastTheme
	case lightMode:
		return LightTheme
	}
	return DefaultTheme
}

// Options control what is drawn besides the pieces.
type Options struct {
	Theme      Theme
	Highlights []chess.Square // squares to mark, e.g. the moves of a selected piece
	Color      bool           // emit ANSI colours
}

const emptyGlyph = '.'

// Board writes the board to w: one row per file letter from 'a' (Black's
// home line) to 'h', ranks 0..7 left to right. Kings in check are marked.
func Board(w io.Writer, b *chess.Board, opts Options) error {
	_, err := io.WriteString(w, String(b, opts))
	return err
}

// String renders the board as Board does.
func String(b *chess.Board, opts Options) string {
	marks := squareMarks(b, opts.Highlights)
	label := paint(opts, opts.Theme.Label)

	var sb strings.Builder
	sb.WriteString("  ")
	for rank := 0; rank < chess.BoardSize; rank++ {
		sb.WriteString(label.Sprint(" " + string(rune(chess.RankBase+rank)) + " "))
	}
	sb.WriteByte('\n')

	for file := 0; file < chess.BoardSize; file++ {
		sb.WriteString(label.Sprint(string(rune(chess.FileBase+file)) + " "))
		for rank := 0; rank < chess.BoardSize; rank++ {
			sq := chess.Sq(file, rank)
			p := b.Piece(sq)
			cell := paint(opts, cellAttrs(opts.Theme, sq, p, marks[sq.Index()])...)
			sb.WriteString(cell.Sprint(" " + string(glyph(p)) + " "))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

type mark int

const (
	noMark mark = iota
	highlighted
	checked
)

// squareMarks records highlighted squares and the squares of Kings in check.
func squareMarks(b *chess.Board, highlights []chess.Square) [chess.BoardSize * chess.BoardSize]mark {
	var marks [chess.BoardSize * chess.BoardSize]mark
	for _, sq := range highlights {
		if sq.InBounds() {
			marks[sq.Index()] = highlighted
		}
	}
	for _, side := range []chess.Side{chess.White, chess.Black} {
		if !engine.InCheck(b, side) {
			continue
		}
		if sq, ok := b.PositionOf(b.KingOf(side)); ok {
			marks[sq.Index()] = checked
		}
	}
	return marks
}

// cellAttrs returns the background and, for occupied squares, the
// foreground of a square.
func cellAttrs(t Theme, sq chess.Square, p *chess.Piece, m mark) []color.Attribute {
	bg := t.Dark
	if (sq.File+sq.Rank)%2 == 0 {
		bg = t.Light
	}
	switch m {
	case highlighted:
		bg = t.Highlight
	case checked:
		bg = t.Check
	}

	fg := t.Black
	if p != nil && p.Side() == chess.White {
		fg = t.White
	}
	return []color.Attribute{bg, fg}
}

func paint(opts Options, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if opts.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// glyph is the piece letter, upper case for White.
func glyph(p *chess.Piece) byte {
	if p == nil {
		return emptyGlyph
	}
	letter := p.Kind().Letter()
	if p.Side() == chess.White {
		letter -= 'a' - 'A'
	}
	return letter
}
