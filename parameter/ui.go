package parameter

// Terminal layout
const (
	// CellWidth is the number of terminal columns per grid cell, two keeps cells visually square
	CellWidth = 2

	// BorderSize is the frame thickness around the play field
	BorderSize = 1

	// StatusBarHeight is the number of rows reserved below the play field
	StatusBarHeight = 1
)

// Glyphs
const (
	GlyphSegment  = '█'
	GlyphApple    = '●'
	GlyphBorderH  = '─'
	GlyphBorderV  = '│'
	GlyphCornerTL = '┌'
	GlyphCornerTR = '┐'
	GlyphCornerBL = '└'
	GlyphCornerBR = '┘'
)
