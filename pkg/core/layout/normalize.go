package layout

import (
	"github.com/ortfo/gui/pkg/core/grid"
	"github.com/ortfo/gui/pkg/errors"
	"github.com/ortfo/gui/pkg/observability"
)

// Normalize returns the canonical form of l for the given row capacity.
//
// Rows are processed top to bottom:
//
//  1. Bare tokens get the next index of their kind. An explicit index moves
//     the running counter of its kind to that index, so "p4", "p" reads as
//     "p4", "p5". Spacers never touch the counters.
//  2. Every maximal run of equal cells is divided by the largest factor
//     shared by all runs of the row: with capacity 6, [l1 l1 l1 m2 m2 m2]
//     becomes [l1 m2]. A row whose runs share no factor is left untouched.
//
// Capacity is not bounded above: no row is stretched to it here.
// Each non-empty row must evenly divide capacity; a row that does not is a
// [errors.ErrCodeIntegrity] fault and aborts the normalization. Empty rows
// pass through as empty rows. One-cell rows serialize as bare tokens (see
// [Row.MarshalJSON]), which completes the canonical form.
func Normalize(l Layout, capacity int) (Layout, error) {
	out, err := normalize(l, capacity)
	observability.Codec().OnNormalize(len(l), capacity, err)
	return out, err
}

func normalize(l Layout, capacity int) (Layout, error) {
	if capacity < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "row capacity cannot be negative (got %d)", capacity)
	}

	counters := make(indexCounters, len(Kinds))
	out := make(Layout, 0, len(l))
	for y, row := range l {
		indexed, err := counters.assign(row)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "row %d", y)
		}
		compressed, err := compress(indexed, capacity)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeIntegrity, err, "row %d", y)
		}
		out = append(out, compressed)
	}
	return out, nil
}

// indexCounters holds the latest index seen per kind during one traversal.
type indexCounters map[Kind]int

func (ic indexCounters) assign(row Row) (Row, error) {
	out := make(Row, len(row))
	for x, c := range row {
		switch {
		case c.IsNull():
			out[x] = c
		case !c.Kind.Valid():
			return nil, errors.New(errors.ErrCodeInvalidToken, "cell %d has unknown kind %q", x, c.Kind)
		case c.Indexed():
			ic[c.Kind] = c.Index
			out[x] = c
		default:
			ic[c.Kind]++
			out[x] = Token(c.Kind, ic[c.Kind])
		}
	}
	return out, nil
}

func compress(row Row, capacity int) (Row, error) {
	if len(row) == 0 {
		return Row{}, nil
	}
	if capacity == 0 || capacity%len(row) != 0 {
		return nil, errors.New(errors.ErrCodeIntegrity,
			"%d cells do not divide the row capacity %d", len(row), capacity)
	}

	runs := grid.ConsecutiveRepeats(row)
	factor := 0
	for _, run := range runs {
		factor = grid.GCD(factor, run.Length)
	}

	out := make(Row, 0, len(row)/factor)
	for _, run := range runs {
		out = append(out, grid.Repeat(run.Length/factor, run.Value)...)
	}
	if len(out)*factor != len(row) {
		return nil, errors.New(errors.ErrCodeIntegrity,
			"compressing %d cells by %d left %d cells", len(row), factor, len(out))
	}
	return out, nil
}
