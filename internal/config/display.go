package config

// DisplayConfig holds settings related to drawing the board.
type DisplayConfig struct {
	// UseColor enables ANSI colours.
	UseColor bool

	// ShowFEN prints the position as FEN with a notnil/chess diagram.
	ShowFEN bool

	// ShowBoard prints the board after the requested action.
	ShowBoard bool

	// JSON writes archive listings and audits as a JSON document.
	JSON bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		UseColor:  true,
		ShowBoard: true,
	}
}
