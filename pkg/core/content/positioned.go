package content

import (
	"encoding/json"

	"github.com/ortfo/gui/pkg/core/layout"
	"github.com/ortfo/gui/pkg/errors"
)

// Position is one grid cell, in row-capacity coordinates.
type Position struct {
	Row    int
	Column int
}

// MarshalJSON writes the position as a [row, column] pair.
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.Row, p.Column})
}

// UnmarshalJSON reads a [row, column] pair.
func (p *Position) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return errors.New(errors.ErrCodeInvalidFormat, "position must be a [row, column] pair, got %d values", len(pair))
	}
	p.Row, p.Column = pair[0], pair[1]
	return nil
}

// Positioned is a unit annotated with the cells a layout computation placed
// it on. LayoutIndex is the 0-based index of the unit within its kind.
type Positioned struct {
	Unit        Unit
	LayoutIndex int
	Positions   []Position
}

// Kind returns the kind of the wrapped unit.
func (p Positioned) Kind() layout.Kind {
	if p.Unit == nil {
		return ""
	}
	return p.Unit.Kind()
}

// Rows returns the row of every position, in order.
func (p Positioned) Rows() []int {
	out := make([]int, len(p.Positions))
	for i, pos := range p.Positions {
		out[i] = pos.Row
	}
	return out
}

// Columns returns the column of every position, in order.
func (p Positioned) Columns() []int {
	out := make([]int, len(p.Positions))
	for i, pos := range p.Positions {
		out[i] = pos.Column
	}
	return out
}

type positionedWire struct {
	unitWire
	LayoutIndex int        `json:"layoutindex"`
	Positions   []Position `json:"positions"`
}

// MarshalJSON writes the flat wire form: the unit's own fields next to
// "type", "layoutindex" and "positions".
func (p Positioned) MarshalJSON() ([]byte, error) {
	w, err := toWire(p.Unit)
	if err != nil {
		return nil, err
	}
	positions := p.Positions
	if positions == nil {
		positions = []Position{}
	}
	return json.Marshal(positionedWire{unitWire: w, LayoutIndex: p.LayoutIndex, Positions: positions})
}

// UnmarshalJSON reads the flat wire form. Fields the layout service adds for
// its own use, such as "generalcontenttype" or "metadata", are ignored.
func (p *Positioned) UnmarshalJSON(data []byte) error {
	var w positionedWire
	if err := json.Unmarshal(data, &w); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode positioned unit")
	}
	u, err := w.unit()
	if err != nil {
		return err
	}
	*p = Positioned{Unit: u, LayoutIndex: w.LayoutIndex, Positions: w.Positions}
	return nil
}
