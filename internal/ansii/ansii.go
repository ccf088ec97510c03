package ansii

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type ANSI string

const (
	reset       ANSI = "\033[0m"
	plain       ANSI = ""
	bold        ANSI = "\033[1m"
	underline   ANSI = "\033[4m"
	red         ANSI = "\033[31m"
	green       ANSI = "\033[32m"
	yellow      ANSI = "\033[33m"
	blue        ANSI = "\033[34m"
	purple      ANSI = "\033[35m"
	cyan        ANSI = "\033[36m"
	white       ANSI = "\033[37m"
	clearScreen ANSI = "\033[2J"
	hideCursor  ANSI = "\033[?25l"
	showCursor  ANSI = "\033[?25h"
)

var ErrNotTerminal = errors.New("stdout is not a terminal")

type Offset struct {
	X int
	Y int
}

type style struct {
	Reset     ANSI
	Plain     ANSI
	Bold      ANSI
	Underline ANSI
}

type color struct {
	Red    ANSI
	Green  ANSI
	Yellow ANSI
	Blue   ANSI
	Purple ANSI
	Cyan   ANSI
	White  ANSI
}

type screen struct {
	ClearScreen ANSI
	HideCursor  ANSI
	ShowCursor  ANSI
}

type ascii struct {
	Block  string
	Ground string
	Trail  string
	Impact string
}

var (
	Styles = style{Bold: bold, Underline: underline, Reset: reset, Plain: plain}
	Colors = color{Red: red, Green: green, Yellow: yellow, Blue: blue, Purple: purple, Cyan: cyan, White: white}
	Screen = screen{ClearScreen: clearScreen, HideCursor: hideCursor, ShowCursor: showCursor}
	Blocks = ascii{Block: "█", Ground: "▔", Trail: "•", Impact: "✱"}
)

// Named maps a player color name to its escape code. Unknown names are white.
func Named(name string) ANSI {
	switch strings.ToLower(name) {
	case "red":
		return Colors.Red
	case "green":
		return Colors.Green
	case "yellow":
		return Colors.Yellow
	case "blue":
		return Colors.Blue
	case "purple":
		return Colors.Purple
	case "cyan":
		return Colors.Cyan
	default:
		return Colors.White
	}
}

// GetTermSize returns the size of the terminal attached to stdout.
func GetTermSize() (width int, height int, err error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, ErrNotTerminal
	}
	width, height, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("get terminal size: %w", err)
	}
	return width, height, nil
}

func (s screen) PlaceCursor(X, Y int) ANSI {
	return ANSI(fmt.Sprintf("\033[%d;%dH", Y, X))
}

type cell struct {
	glyph string
	style ANSI
}

// Canvas is a fixed grid of styled cells. Offset (0, 0) is the top left
// cell. Anything drawn outside the grid is clipped.
type Canvas struct {
	width  int
	height int
	cells  [][]cell
}

func NewCanvas(width, height int) *Canvas {
	cells := make([][]cell, height)
	for y := range cells {
		cells[y] = make([]cell, width)
		for x := range cells[y] {
			cells[y][x] = cell{glyph: " "}
		}
	}
	return &Canvas{width: width, height: height, cells: cells}
}

func (c *Canvas) Width() int {
	return c.width
}

func (c *Canvas) Height() int {
	return c.height
}

// DrawPixelStyle places a single glyph at offset.
func (c *Canvas) DrawPixelStyle(offset Offset, glyph string, style ANSI) {
	if offset.X < 0 || offset.X >= c.width || offset.Y < 0 || offset.Y >= c.height {
		return
	}
	c.cells[offset.Y][offset.X] = cell{glyph: glyph, style: style}
}

// DrawBox fills a box of dimensions `height` and `width` at `offset`, the
// top left cell of the box.
func (c *Canvas) DrawBox(offset Offset, height int, width int, style ANSI) {
	for hIdx := range height {
		for wIdx := range width {
			c.DrawPixelStyle(Offset{X: offset.X + wIdx, Y: offset.Y + hIdx}, Blocks.Block, style)
		}
	}
}

// DrawRow writes text left to right starting at offset.
func (c *Canvas) DrawRow(offset Offset, text string, style ANSI) {
	x := offset.X
	for _, r := range text {
		c.DrawPixelStyle(Offset{X: x, Y: offset.Y}, string(r), style)
		x++
	}
}

// At returns the glyph at offset, or "" when it is off the canvas.
func (c *Canvas) At(offset Offset) string {
	if offset.X < 0 || offset.X >= c.width || offset.Y < 0 || offset.Y >= c.height {
		return ""
	}
	return c.cells[offset.Y][offset.X].glyph
}

// String renders the canvas row by row. Style changes are only emitted
// between cells that differ, and every styled run ends with a reset.
func (c *Canvas) String() string {
	var builder strings.Builder
	for _, row := range c.cells {
		current := plain
		for _, cl := range row {
			if cl.style != current {
				if current != plain {
					builder.WriteString(string(Styles.Reset))
				}
				builder.WriteString(string(cl.style))
				current = cl.style
			}
			builder.WriteString(cl.glyph)
		}
		if current != plain {
			builder.WriteString(string(Styles.Reset))
		}
		builder.WriteString("\n")
	}
	return builder.String()
}
