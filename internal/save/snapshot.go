// Package save persists games: the text snapshot format, a single-slot file
// store and a sqlite archive of named snapshots.
package save

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// TimersMarker separates the board block from the clocks and preferences.
const TimersMarker = "#Timers"

// DefaultClockSeconds is the starting time on each side's clock.
const DefaultClockSeconds = 600

// prefCount is the number of boolean lines after the timers.
const prefCount = 4

// Snapshot is everything a save file carries: the board, both clocks, the
// side to move and the display preferences.
type Snapshot struct {
	Board         *chess.Board
	WhiteSeconds  int
	BlackSeconds  int
	WhiteTurn     bool
	VisualAssists bool
	ColorContrast bool
	LightMode     bool
}

// NewSnapshot returns a snapshot of a fresh game with White to move.
func NewSnapshot(clockSeconds int) *Snapshot {
	return &Snapshot{
		Board:        chess.NewBoard(true),
		WhiteSeconds: clockSeconds,
		BlackSeconds: clockSeconds,
		WhiteTurn:    true,
	}
}

// Encode renders a snapshot in the save file format. A nil board is
// written as an empty one.
func Encode(s *Snapshot) string {
	board := s.Board
	if board == nil {
		board = chess.NewBoard(false)
	}
	var sb strings.Builder
	sb.WriteString(board.Serialize())
	sb.WriteString(TimersMarker)
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "w %d \n", s.WhiteSeconds)
	fmt.Fprintf(&sb, "b %d \n", s.BlackSeconds)
	for _, v := range []bool{s.WhiteTurn, s.VisualAssists, s.ColorContrast, s.LightMode} {
		sb.WriteString(strconv.FormatBool(v))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Decode parses text written by Encode.
//
// Timer lines may appear in either order; the four preference lines follow
// them in a fixed order. Every error wraps errors.ErrMalformedSaveData.
func Decode(text string) (*Snapshot, error) {
	lines := strings.Split(text, "\n")
	marker := -1
	for i, line := range lines {
		if strings.TrimSuffix(line, "\r") == TimersMarker {
			marker = i
			break
		}
	}
	if marker < 0 {
		return nil, &errors.ParseError{Err: errors.ErrMalformedSaveData, Expected: TimersMarker + " line"}
	}

	board, err := chess.ParseBoard(strings.Join(lines[:marker], "\n"))
	if err != nil {
		return nil, err
	}
	s := &Snapshot{Board: board}

	var haveWhite, haveBlack bool
	var prefs []bool
	for i := marker + 1; i < len(lines); i++ {
		line := strings.TrimSuffix(lines[i], "\r")
		lineNum := i + 1
		if strings.TrimSpace(line) == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "w ") || strings.HasPrefix(line, "b "):
			if len(prefs) > 0 {
				return nil, malformed(lineNum, "preference value", line)
			}
			secs, err := parseTimer(line)
			if err != nil {
				return nil, malformed(lineNum, "<side> <seconds>", line)
			}
			if line[0] == 'w' {
				s.WhiteSeconds, haveWhite = secs, true
			} else {
				s.BlackSeconds, haveBlack = secs, true
			}
		default:
			if len(prefs) == prefCount {
				return nil, malformed(lineNum, "end of file", line)
			}
			v, err := parseBool(line)
			if err != nil {
				return nil, malformed(lineNum, "true or false", line)
			}
			prefs = append(prefs, v)
		}
	}

	switch {
	case !haveWhite:
		return nil, malformed(0, "white timer line", "")
	case !haveBlack:
		return nil, malformed(0, "black timer line", "")
	case len(prefs) != prefCount:
		return nil, malformed(0, fmt.Sprintf("%d preference lines", prefCount), strconv.Itoa(len(prefs)))
	}
	s.WhiteTurn, s.VisualAssists, s.ColorContrast, s.LightMode = prefs[0], prefs[1], prefs[2], prefs[3]
	return s, nil
}

func parseTimer(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, errors.ErrMalformedSaveData
	}
	secs, err := strconv.Atoi(fields[1])
	if err != nil || secs < 0 {
		return 0, errors.ErrMalformedSaveData
	}
	return secs, nil
}

// parseBool accepts only the exact words Encode writes.
func parseBool(line string) (bool, error) {
	switch strings.TrimSpace(line) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, errors.ErrMalformedSaveData
}

func malformed(line int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrMalformedSaveData,
		Line:     line,
		Expected: expected,
		Got:      got,
	}
}
