// Package heatmap maps habit histories onto terminal cells for a
// contribution-graph style view: one column per ISO week with the current
// week rightmost, weekdays Monday through Sunday top to bottom. The mapping
// is pure; writing the cells is the Canvas implementation's job.
package heatmap

import (
	"fmt"
	"sort"
	"time"

	"github.com/wirving/rhabits/internal/dates"
)

// DayCount is one distinct calendar day and the number of selected habits
// completed on it.
type DayCount struct {
	Day   string
	Count int
}

// Cell is a terminal position plus the brightness of the mark there.
type Cell struct {
	X, Y      int
	Intensity uint8
}

// Projection is the full render plan for one graph: marks to draw and cells
// in the current week column to blank because they are in the future.
type Projection struct {
	Cells  []Cell
	Blanks []Cell
}

// Merge combines the selected habits' histories into per-day completion
// counts, sorted ascending by day.
func Merge(histories [][]string) []DayCount {
	counts := map[string]int{}
	for _, h := range histories {
		for _, day := range dates.Normalize(h) {
			counts[day]++
		}
	}

	out := make([]DayCount, 0, len(counts))
	for day, n := range counts {
		out = append(out, DayCount{Day: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// Blend scales fractional completion across the selected habits to a
// brightness in [0,255]. A day done by every habit is full brightness; a day
// done by one of N habits is 1/N brightness, truncated.
func Blend(count, habitCount int) uint8 {
	if habitCount <= 0 {
		return 0
	}
	return uint8(float64(count) / float64(habitCount) * 255)
}

// Project maps merged day counts onto cells for a terminal of the given
// width. Columns are two characters wide to keep cells roughly square.
// For a day d, the week bucket counted from the right edge is
// (daysAgo + weekday - 1) / 7, so buckets align with ISO weeks rather than
// rolling 7-day windows. Days are scanned newest-first and projection stops
// at the first day that falls off the left edge; everything older is out of
// the window too.
func Project(days []DayCount, habitCount int, today time.Time, width int) (Projection, error) {
	cols := width / 2
	var p Projection

	for i := len(days) - 1; i >= 0; i-- {
		d, err := dates.ParseDay(days[i].Day)
		if err != nil {
			return Projection{}, fmt.Errorf("project heatmap: %w", err)
		}
		weekday := dates.ISOWeekday(d)
		bucket := (dates.DaysBetween(d, today) + weekday - 1) / 7
		x := 2*cols - 2*(bucket+1)
		if x < 0 {
			break
		}
		p.Cells = append(p.Cells, Cell{
			X:         x,
			Y:         weekday - 1,
			Intensity: Blend(days[i].Count, habitCount),
		})
	}

	// Weekday rows after today's in the rightmost column are future days and
	// must never show a mark.
	for row := dates.ISOWeekday(today); row < 7; row++ {
		p.Blanks = append(p.Blanks, Cell{X: 2*cols - 2, Y: row})
	}

	return p, nil
}
