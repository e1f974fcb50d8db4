package blocks

import (
	"slices"

	"github.com/ortfo/gui/pkg/core/content"
	"github.com/ortfo/gui/pkg/core/grid"
	"github.com/ortfo/gui/pkg/errors"
)

// FromPositioned turns a placed unit of lang into a block on a grid of the
// given capacity.
//
// The block's rectangle is the bounding box of the unit's positions. When the
// positions do not fill that box (see [Contiguous]) the block covers the
// whole box anyway.
func FromPositioned(lang string, p content.Positioned, capacity int) (Block, error) {
	if p.Unit == nil {
		return Block{}, errors.New(errors.ErrCodeInvalidBlock, "positioned unit %d has no content", p.LayoutIndex)
	}
	id := ID{Kind: p.Kind(), Index: p.LayoutIndex}
	if p.LayoutIndex < 0 {
		return Block{}, errors.New(errors.ErrCodeInvalidBlock, "unit %s has a negative layout index", id)
	}

	rows, cols := p.Rows(), p.Columns()
	height, err := grid.Distance(rows)
	if err != nil {
		return Block{}, errors.Wrap(errors.ErrCodeInvalidBlock, err, "unit %s has no positions", id)
	}
	width, err := grid.Distance(cols)
	if err != nil {
		return Block{}, errors.Wrap(errors.ErrCodeInvalidBlock, err, "unit %s has no positions", id)
	}

	return Block{
		Key: stableKey(lang, id),
		ID:  id,
		Positions: map[int]Placement{
			capacity: NewPlacement(slices.Min(cols), slices.Min(rows), width+1, height+1),
		},
		Data: p.Unit,
	}, nil
}

// Contiguous reports whether positions exactly fill their bounding box.
// Duplicate positions are counted once. An empty set is not contiguous.
func Contiguous(positions []content.Position) bool {
	if len(positions) == 0 {
		return false
	}
	minRow, maxRow := positions[0].Row, positions[0].Row
	minCol, maxCol := positions[0].Column, positions[0].Column
	seen := make(map[content.Position]bool, len(positions))
	for _, pos := range positions {
		seen[pos] = true
		minRow, maxRow = min(minRow, pos.Row), max(maxRow, pos.Row)
		minCol, maxCol = min(minCol, pos.Column), max(maxCol, pos.Column)
	}
	return len(seen) == (maxRow-minRow+1)*(maxCol-minCol+1)
}
