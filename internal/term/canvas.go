// Package term is the terminal side of the graph view: a cursor-addressable
// truecolor canvas and the window-size query.
package term

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/wirving/rhabits/internal/heatmap"
)

// Canvas draws heatmap cells via ANSI cursor addressing. Writes are buffered
// until Flush; a failure mid-render leaves partial output on screen, which is
// acceptable for a best-effort visual tool.
type Canvas struct {
	buf *bufio.Writer
	out *termenv.Output
}

func NewCanvas(w io.Writer) *Canvas {
	buf := bufio.NewWriter(w)
	return &Canvas{
		buf: buf,
		out: termenv.NewOutput(buf, termenv.WithProfile(termenv.TrueColor)),
	}
}

func (c *Canvas) Clear() {
	c.out.ClearScreen()
}

// MoveTo positions the cursor at a zero-based (x, y) character cell.
func (c *Canvas) MoveTo(x, y int) {
	c.out.MoveCursor(y+1, x+1)
}

// WriteCell paints one cell at the current cursor position.
func (c *Canvas) WriteCell(col heatmap.RGB) {
	color := c.out.Color(fmt.Sprintf("#%02x%02x%02x", col.R, col.G, col.B))
	fmt.Fprint(c.buf, c.out.String(" ").Background(color).String())
}

// Blank erases a cell and its spacer.
func (c *Canvas) Blank(x, y int) {
	c.MoveTo(x, y)
	fmt.Fprint(c.buf, "  ")
}

func (c *Canvas) Flush() error {
	return c.buf.Flush()
}

var _ heatmap.Canvas = (*Canvas)(nil)

// Width reports the terminal width in character cells. An unavailable size
// (not a terminal, or the query fails) is an error the caller treats as
// fatal: the graph geometry depends on it.
func Width() (int, error) {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, fmt.Errorf("couldn't get terminal size: %w", err)
	}
	return w, nil
}
