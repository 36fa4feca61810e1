// Package errors provides sentinel errors and error types for the chess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSquare indicates a coordinate or square text outside the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrEmptySourceMove indicates a move whose source square holds no piece.
	ErrEmptySourceMove = errors.New("no piece on source square")

	// ErrEmptySquare indicates a query about a piece on an empty square.
	ErrEmptySquare = errors.New("empty square")

	// ErrMalformedSaveData indicates persistence text that does not parse.
	ErrMalformedSaveData = errors.New("malformed save data")

	// ErrNoSavedGame indicates there is no saved game to load.
	ErrNoSavedGame = errors.New("no saved game")

	// ErrWrongTurn indicates an attempt to move a piece of the side not on move.
	ErrWrongTurn = errors.New("not this side's turn")

	// ErrIllegalMove indicates a destination outside the piece's safe moves.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates a move attempted after the game has ended.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrArchive indicates a failure in the saved-game archive.
	ErrArchive = errors.New("archive failure")

	// ErrInvalidPiece indicates a piece with no kind or an unknown side.
	ErrInvalidPiece = errors.New("invalid piece")
)

// SquareError wraps errors with the operation and square that caused them.
type SquareError struct {
	Op     string // Operation name, e.g. "move" or "parse"
	Square string // Square text or coordinates as given by the caller
	Err    error  // The underlying error
}

// Error returns a formatted error message including the operation and square.
func (e *SquareError) Error() string {
	var parts []string
	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Square != "" {
		parts = append(parts, fmt.Sprintf("square %q", e.Square))
	}
	context := strings.Join(parts, " ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the SquareError wrapper.
func (e *SquareError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with file location context.
// It's used for board records and save files.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	// Add location
	switch {
	case e.File != "" && e.Line > 0:
		parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
	case e.File != "":
		parts = append(parts, e.File)
	case e.Line > 0:
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	// Add expected/got context
	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %q", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
