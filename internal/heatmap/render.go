package heatmap

import "fmt"

// Canvas is the terminal surface a projection is drawn onto. Coordinates are
// zero-based character cells. The real implementation lives in internal/term;
// tests use a recorder.
type Canvas interface {
	Clear()
	MoveTo(x, y int)
	WriteCell(c RGB)
	Blank(x, y int)
	Flush() error
}

// RGB is a truecolor cell color.
type RGB struct {
	R, G, B uint8
}

// Scale dims the color to the given intensity, 255 being the color itself.
func (c RGB) Scale(intensity uint8) RGB {
	return RGB{
		R: uint8(int(c.R) * int(intensity) / 255),
		G: uint8(int(c.G) * int(intensity) / 255),
		B: uint8(int(c.B) * int(intensity) / 255),
	}
}

// ParseRGB parses a "#rrggbb" hex color.
func ParseRGB(s string) (RGB, error) {
	var c RGB
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return RGB{}, fmt.Errorf("invalid color %q (want #rrggbb): %w", s, err)
	}
	return c, nil
}

// Render draws a projection: marks first, then the future-day blanks, then
// parks the cursor below the grid and flushes. Output before a failed flush
// is best effort, not transactional.
func Render(c Canvas, p Projection, base RGB) error {
	c.Clear()
	for _, cell := range p.Cells {
		c.MoveTo(cell.X, cell.Y)
		c.WriteCell(base.Scale(cell.Intensity))
	}
	for _, b := range p.Blanks {
		c.Blank(b.X, b.Y)
	}
	c.MoveTo(0, 8)
	return c.Flush()
}
