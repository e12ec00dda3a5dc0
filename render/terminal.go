// Package render implements the two external rendering consumers named in
// spec §6: a terminal pretty-printer and a raster sprite compositor. Both
// are pure functions of a kennel.DiskView snapshot; neither package
// mutates a kennel or holds one by reference.
package render

import (
	"fmt"
	"io"

	"github.com/a1ts-a1t/kennelclub/kennel"
)

// PrettyPrint renders snap onto a cols x rows character grid, one cell per
// screen position, each cell showing the count of creatures bucketed into
// it ('+' for 10 or more, '·' for none). Grounded on
// original_source/src/kennel.rs's pretty_print, with terminal size taken
// as an explicit parameter instead of queried live so this function stays
// pure and testable; cmd/kennelclub is the one caller that resolves the
// real terminal size via golang.org/x/term.
func PrettyPrint(w io.Writer, snap []kennel.DiskView, cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}

	counts := make(map[int]int, len(snap))
	cellWidth := 1.0 / float64(cols)
	cellHeight := 1.0 / float64(rows)
	for _, d := range snap {
		ix := int(d.Position.X / cellWidth)
		iy := int(d.Position.Y / cellHeight)
		ix = clamp(ix, 0, cols-1)
		iy = clamp(iy, 0, rows-1)
		counts[iy*cols+ix]++
	}

	fmt.Fprint(w, "\x1b[2J\x1b[H") // clear the screen
	for index := 0; index < cols*rows; index++ {
		if index > 0 && index%cols == 0 {
			fmt.Fprintln(w)
		}
		switch count := counts[index]; {
		case count >= 10:
			fmt.Fprint(w, "+")
		case count > 0:
			fmt.Fprintf(w, "%d", count)
		default:
			fmt.Fprint(w, "·")
		}
	}
	fmt.Fprintln(w)
}

// Print renders snap as one line per creature: id, position, sprite state.
// Grounded on original_source/src/kennel.rs's print.
func Print(w io.Writer, snap []kennel.DiskView) {
	fmt.Fprint(w, "\x1b[2J\x1b[H")
	for _, d := range snap {
		fmt.Fprintf(w, "%-5s (%.4f, %.4f) - %s\n", d.ID, d.Position.X, d.Position.Y, d.SpriteState)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
