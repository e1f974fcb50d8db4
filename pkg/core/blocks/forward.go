package blocks

import (
	"maps"
	"slices"

	"github.com/ortfo/gui/pkg/core/grid"
	"github.com/ortfo/gui/pkg/core/layout"
	"github.com/ortfo/gui/pkg/errors"
)

// ToLayout rebuilds the normalized layout descriptor of one language's
// blocks on a grid of the given capacity.
//
// Every block covers the cells of its rectangle. Each distinct row that holds
// at least one cell becomes one layout row, top to bottom; rows no block
// reaches are skipped. Uncovered cells of an emitted row are spacers.
//
// The blocks must not overlap and must fit in the capacity: either fault is
// reported as an error rather than repaired. No blocks yield an empty layout,
// whatever the capacity.
func ToLayout(blocks []Block, capacity int) (layout.Layout, error) {
	if len(blocks) == 0 {
		return layout.Layout{}, nil
	}
	if err := errors.ValidateCapacity(capacity); err != nil {
		return nil, err
	}

	rows := make(map[int]layout.Row)
	owners := make(map[[2]int]ID)
	for _, b := range blocks {
		if err := b.validate(); err != nil {
			return nil, err
		}
		p, ok := b.Placement(capacity)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidBlock,
				"block %s has no placement for a capacity of %d", b.ID, capacity)
		}
		if p.W < 1 || p.H < 1 {
			return nil, errors.New(errors.ErrCodeInvalidBlock,
				"block %s has an empty %dx%d rectangle", b.ID, p.W, p.H)
		}
		if p.X < 0 || p.Y < 0 || p.X+p.W > capacity {
			return nil, errors.New(errors.ErrCodeIntegrity,
				"block %s at (%d,%d) size %dx%d does not fit a capacity of %d", b.ID, p.X, p.Y, p.W, p.H, capacity)
		}

		for _, y := range grid.Range(p.Y, p.Y+p.H) {
			row, ok := rows[y]
			if !ok {
				row = layout.Row(grid.Repeat(capacity, layout.Null))
				rows[y] = row
			}
			for _, x := range grid.Range(p.X, p.X+p.W) {
				if owner, taken := owners[[2]int{y, x}]; taken {
					return nil, errors.New(errors.ErrCodeOverlap,
						"blocks %s and %s both cover row %d, column %d", owner, b.ID, y, x)
				}
				owners[[2]int{y, x}] = b.ID
				row[x] = b.ID.Cell()
			}
		}
	}

	raw := make(layout.Layout, 0, len(rows))
	for _, y := range slices.Sorted(maps.Keys(rows)) {
		raw = append(raw, rows[y])
	}
	return layout.Normalize(raw, capacity)
}
