package layout

import (
	"slices"

	"github.com/ortfo/gui/pkg/core/grid"
	"github.com/ortfo/gui/pkg/errors"
)

// Row is one row of a layout.
type Row []Cell

// Layout is a layout descriptor: rows of cell tokens.
type Layout []Row

// Width returns the row capacity of l: the least common multiple of all row
// lengths. Empty rows are ignored; a layout without cells has capacity 0.
func Width(l Layout) int {
	widths := make([]int, 0, len(l))
	for _, row := range l {
		if len(row) > 0 {
			widths = append(widths, len(row))
		}
	}
	return grid.LCM(widths...)
}

// Expand stretches row to width cells by repeating each cell width/len(row)
// times. An empty row expands to width spacers. width must be a multiple of
// the row length.
func Expand(row Row, width int) (Row, error) {
	if len(row) == 0 {
		return Row(grid.Repeat(width, Null)), nil
	}
	if width <= 0 || width%len(row) != 0 {
		return nil, errors.New(errors.ErrCodeIntegrity,
			"row of %d cells cannot stretch to a capacity of %d", len(row), width)
	}
	factor := width / len(row)
	out := make(Row, 0, width)
	for _, c := range row {
		out = append(out, grid.Repeat(factor, c)...)
	}
	return out, nil
}

// Clone returns a deep copy of l.
func (l Layout) Clone() Layout {
	if l == nil {
		return nil
	}
	out := make(Layout, len(l))
	for i, row := range l {
		out[i] = slices.Clone(row)
	}
	return out
}

// Equal reports whether l and other hold the same rows.
func (l Layout) Equal(other Layout) bool {
	return slices.EqualFunc(l, other, func(a, b Row) bool { return slices.Equal(a, b) })
}

// Cells returns the distinct non-null cells of l in reading order.
func (l Layout) Cells() []Cell {
	seen := make(map[Cell]bool)
	var out []Cell
	for _, row := range l {
		for _, c := range row {
			if c.IsNull() || seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
