package renderer

import (
	"fmt"
	"io"
	"math"

	"artillery/internal/ansii"
	"artillery/internal/artillery"
)

// Heights below this are drawn on a fixed scale so that low shots don't
// fill the whole screen.
const defaultCeiling = 60.0

const (
	minRows = 4
	minCols = 20
)

// Frame is one picture of the field: the game and, optionally, the trail of
// the last shot.
type Frame struct {
	Game  *artillery.Game
	Trail []artillery.Point
	Rows  int
	Cols  int
}

type view struct {
	rows, cols int
	ground     int
	ceiling    float64
}

func newView(f Frame) view {
	rows := max(f.Rows, minRows)
	cols := max(f.Cols, minCols)

	ceiling := defaultCeiling
	for _, p := range f.Trail {
		ceiling = max(ceiling, p.Y)
	}

	// last row is the status line, the one above it the ground
	return view{rows: rows, cols: cols, ground: rows - 2, ceiling: ceiling}
}

func (v view) column(x float64) int {
	frac := (x - artillery.FieldLower) / (artillery.FieldUpper - artillery.FieldLower)
	return int(math.Round(frac * float64(v.cols-1)))
}

// row maps a height to a screen row. Height 0 sits just above the ground line.
func (v view) row(y float64) int {
	usable := float64(v.ground - 1)
	return v.ground - 1 - int(math.Round(y/v.ceiling*usable))
}

func (v view) width(size float64) int {
	return max(1, int(math.Round(size/(artillery.FieldUpper-artillery.FieldLower)*float64(v.cols))))
}

func (v view) height(size float64) int {
	return max(1, int(math.Round(size/v.ceiling*float64(v.ground-1))))
}

// Draw paints the frame onto a new canvas.
func Draw(f Frame) *ansii.Canvas {
	v := newView(f)
	canvas := ansii.NewCanvas(v.cols, v.rows)

	for x := range v.cols {
		canvas.DrawPixelStyle(ansii.Offset{X: x, Y: v.ground}, ansii.Blocks.Ground, ansii.Colors.Green)
	}

	g := f.Game
	p0, p1 := g.Players()
	for _, p := range []*artillery.Player{p0, p1} {
		w := v.width(g.CannonSize())
		h := v.height(g.CannonSize())
		left := v.column(p.X()) - w/2
		canvas.DrawBox(ansii.Offset{X: left, Y: v.ground - h}, h, w, ansii.Named(p.Color()))
	}

	for i, pt := range f.Trail {
		glyph, style := ansii.Blocks.Trail, ansii.Colors.Yellow
		if i == len(f.Trail)-1 {
			glyph, style = ansii.Blocks.Impact, ansii.Styles.Bold
		}
		canvas.DrawPixelStyle(ansii.Offset{X: v.column(pt.X), Y: v.row(pt.Y)}, glyph, style)
	}

	canvas.DrawRow(ansii.Offset{X: 0, Y: v.rows - 1}, Status(g), ansii.Styles.Plain)
	return canvas
}

// Status is the one line summary shown under the field.
func Status(g *artillery.Game) string {
	p0, p1 := g.Players()
	return fmt.Sprintf("wind %+.1f | %s %d - %d %s | %s to fire",
		g.CurrentWind(),
		p0.Color(), p0.Score(),
		p1.Score(), p1.Color(),
		g.CurrentPlayer().Color(),
	)
}

// Render clears the screen and writes the frame to w.
func Render(w io.Writer, f Frame) error {
	out := string(ansii.Screen.ClearScreen) + string(ansii.Screen.PlaceCursor(1, 1)) + Draw(f).String()
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}
	return nil
}
