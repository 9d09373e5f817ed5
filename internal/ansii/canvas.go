package ansii

import "strings"

type RGB struct {
	R, G, B uint8
}

// Scale multiplies every channel by f, clamped to [0, 255].
func (c RGB) Scale(f float64) RGB {
	return RGB{R: clampByte(float64(c.R) * f), G: clampByte(float64(c.G) * f), B: clampByte(float64(c.B) * f)}
}

// Blend mixes o over c with opacity alpha in [0, 1].
func (c RGB) Blend(o RGB, alpha float64) RGB {
	mix := func(a, b uint8) uint8 {
		return clampByte(float64(a)*(1-alpha) + float64(b)*alpha)
	}
	return RGB{R: mix(c.R, o.R), G: mix(c.G, o.G), B: mix(c.B, o.B)}
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}

// Cell is one terminal character. A zero Rune is an empty cell.
type Cell struct {
	Rune rune
	FG   RGB
}

// Canvas is a grid of cells drawn front to back; later writes win.
type Canvas struct {
	Width  int
	Height int
	cells  []Cell
}

func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	c.Width, c.Height = width, height
	if cap(c.cells) >= width*height {
		c.cells = c.cells[:width*height]
	} else {
		c.cells = make([]Cell, width*height)
	}
	c.Clear()
}

func (c *Canvas) Clear() {
	clear(c.cells)
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.Width && y < c.Height
}

// Set writes a cell. Cells off the canvas are clipped.
func (c *Canvas) Set(x, y int, r rune, fg RGB) {
	if !c.inside(x, y) {
		return
	}
	c.cells[y*c.Width+x] = Cell{Rune: r, FG: fg}
}

func (c *Canvas) At(x, y int) Cell {
	if !c.inside(x, y) {
		return Cell{}
	}
	return c.cells[y*c.Width+x]
}

// Text writes s starting at x, y.
func (c *Canvas) Text(x, y int, s string, fg RGB) {
	for _, r := range s {
		c.Set(x, y, r, fg)
		x++
	}
}

// Map applies f to the color of every non-empty cell in row y.
func (c *Canvas) Map(y int, f func(RGB) RGB) {
	if y < 0 || y >= c.Height {
		return
	}
	row := c.cells[y*c.Width : (y+1)*c.Width]
	for i := range row {
		if row[i].Rune != 0 {
			row[i].FG = f(row[i].FG)
		}
	}
}

// DrawBox fills a height x width block of cells whose top left cell is x, y.
// Blocks that would be placed off screen are clipped.
func DrawBox(c *Canvas, x, y, height, width int, glyph rune, fg RGB) {
	for hIdx := 0; hIdx < height; hIdx++ {
		for wIdx := 0; wIdx < width; wIdx++ {
			c.Set(x+wIdx, y+hIdx, glyph, fg)
		}
	}
}

// Flush renders the canvas as a full frame of escape sequences, only
// emitting a color change when the color differs from the previous cell.
func (c *Canvas) Flush(builder *strings.Builder) {
	builder.Grow(c.Width * c.Height * 4)
	builder.WriteString(string(Screen.CursorHome))

	for y := 0; y < c.Height; y++ {
		builder.WriteString(string(Screen.PlaceCursor(1, y+1)))
		var current RGB
		colored := false
		for x := 0; x < c.Width; x++ {
			cell := c.cells[y*c.Width+x]
			if cell.Rune == 0 {
				if colored {
					builder.WriteString(string(Styles.Reset))
					colored = false
				}
				builder.WriteByte(' ')
				continue
			}
			if !colored || cell.FG != current {
				builder.WriteString(string(Foreground(cell.FG)))
				current, colored = cell.FG, true
			}
			builder.WriteRune(cell.Rune)
		}
		if colored {
			builder.WriteString(string(Styles.Reset))
		}
	}
}
