package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/byrax15/snake-gl/component"
	"github.com/byrax15/snake-gl/engine/fsm"
	"github.com/byrax15/snake-gl/game"
	"github.com/byrax15/snake-gl/parameter"
	"github.com/byrax15/snake-gl/parameter/visual"
)

// pausedDim darkens the field while the simulation is paused
const pausedDim = 0.4

// Renderer draws snapshots on a tcell screen
// Grid y grows upward, terminal rows grow downward
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// FieldSize returns the terminal footprint of a dim x dim field including border and status bar
func FieldSize(dim int) (width, height int) {
	width = dim*parameter.CellWidth + 2*parameter.BorderSize
	height = dim + 2*parameter.BorderSize + parameter.StatusBarHeight
	return width, height
}

// CellOrigin returns the terminal column and row of the left half of grid cell (x, y)
func CellOrigin(dim, x, y int) (col, row int) {
	half := dim / 2
	col = parameter.BorderSize + (x+half)*parameter.CellWidth
	row = parameter.BorderSize + (half - 1 - y)
	return col, row
}

// Draw renders one frame and flushes it to the terminal
func (r *Renderer) Draw(snap game.Snapshot) {
	r.screen.Clear()

	r.drawBorder(snap.Dim)

	paused := snap.Mode != fsm.Running
	for _, e := range snap.Entities {
		if e.Position.X < -snap.Dim/2 || e.Position.X >= snap.Dim/2 ||
			e.Position.Y < -snap.Dim/2 || e.Position.Y >= snap.Dim/2 {
			continue // Head past the wall on the collision tick
		}

		c := e.Color
		if paused {
			c = Dim(c, pausedDim)
		}
		style := tcell.StyleDefault.Foreground(ToTcell(c))
		col, row := CellOrigin(snap.Dim, e.Position.X, e.Position.Y)

		switch e.Role {
		case component.RoleApple:
			r.screen.SetContent(col, row, parameter.GlyphApple, nil, style)
			r.screen.SetContent(col+1, row, ' ', nil, tcell.StyleDefault)
		default:
			for i := 0; i < parameter.CellWidth; i++ {
				r.screen.SetContent(col+i, row, parameter.GlyphSegment, nil, style)
			}
		}
	}

	r.drawStatus(snap)
	r.screen.Show()
}

func (r *Renderer) drawBorder(dim int) {
	style := tcell.StyleDefault.Foreground(ToTcell(visual.GridColor))
	w, h := FieldSize(dim)
	right := w - 1
	bottom := h - 1 - parameter.StatusBarHeight

	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 0, parameter.GlyphBorderH, nil, style)
		r.screen.SetContent(x, bottom, parameter.GlyphBorderH, nil, style)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, parameter.GlyphBorderV, nil, style)
		r.screen.SetContent(right, y, parameter.GlyphBorderV, nil, style)
	}
	r.screen.SetContent(0, 0, parameter.GlyphCornerTL, nil, style)
	r.screen.SetContent(right, 0, parameter.GlyphCornerTR, nil, style)
	r.screen.SetContent(0, bottom, parameter.GlyphCornerBL, nil, style)
	r.screen.SetContent(right, bottom, parameter.GlyphCornerBR, nil, style)
}

// StatusText returns the status line for a snapshot
func StatusText(snap game.Snapshot) string {
	state := snap.Mode.String()
	switch {
	case snap.Crashed:
		state = "crashed | r to restart"
	case snap.Mode == fsm.Paused:
		state = "paused | space to resume"
	}
	return fmt.Sprintf("%s | score %d | length %d", state, snap.Score, snap.Length)
}

func (r *Renderer) drawStatus(snap game.Snapshot) {
	w, h := FieldSize(snap.Dim)
	row := h - parameter.StatusBarHeight

	color := visual.StatusColor
	if snap.Mode != fsm.Running {
		color = visual.PausedColor
	}
	style := tcell.StyleDefault.Foreground(ToTcell(color))

	text := runewidth.Truncate(StatusText(snap), w, "…")
	col := 0
	for _, ch := range text {
		r.screen.SetContent(col, row, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
