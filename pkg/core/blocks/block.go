package blocks

import (
	"encoding/json"
	"slices"
	"strconv"

	"github.com/google/uuid"

	"github.com/ortfo/gui/pkg/core/content"
	"github.com/ortfo/gui/pkg/core/layout"
	"github.com/ortfo/gui/pkg/errors"
)

// Size is an optional width/height bound. Zero means unbounded.
type Size struct {
	W int `json:"w,omitempty"`
	H int `json:"h,omitempty"`
}

// Placement is the rectangle of a block on the grid, along with the
// behavior flags of the grid widget.
type Placement struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`

	Fixed         bool `json:"fixed"`
	Resizable     bool `json:"resizable"`
	Draggable     bool `json:"draggable"`
	CustomDragger bool `json:"customDragger"`
	CustomResizer bool `json:"customResizer"`
	Min           Size `json:"min"`
	Max           Size `json:"max"`
}

// NewPlacement returns a movable, resizable rectangle that uses the editor's
// own drag and resize handles.
func NewPlacement(x, y, w, h int) Placement {
	return Placement{
		X:             x,
		Y:             y,
		W:             w,
		H:             h,
		Resizable:     true,
		Draggable:     true,
		CustomDragger: true,
		CustomResizer: true,
		Min:           Size{W: 1, H: 1},
	}
}

// Block is a content unit positioned on the editor grid.
type Block struct {
	// Key is a stable handle for the grid widget. It does not take part in
	// layout conversions.
	Key uuid.UUID
	ID  ID
	// Positions holds the placement of the block keyed by row capacity.
	Positions map[int]Placement
	Data      content.Unit
}

// Placement returns the rectangle of b in a grid of the given capacity.
func (b Block) Placement(capacity int) (Placement, bool) {
	p, ok := b.Positions[capacity]
	return p, ok
}

var keySpace = uuid.MustParse("6f72a7f0-6c61-4f75-8c6f-7274666f2e67")

// stableKey derives the grid widget key of a block from its id, so that the
// same unit keeps its key across layout computations.
func stableKey(lang string, id ID) uuid.UUID {
	return uuid.NewSHA1(keySpace, []byte(lang+"/"+id.String()))
}

// NewBlock creates a block holding the blank unit of kind, as done when
// content is added from the editor. The block gets a fresh random key.
func NewBlock(kind layout.Kind, index, capacity int, p Placement) (Block, error) {
	unit, err := content.Empty(kind)
	if err != nil {
		return Block{}, errors.Wrap(errors.ErrCodeInvalidBlock, err, "new block")
	}
	if index < 0 {
		return Block{}, errors.New(errors.ErrCodeInvalidBlock, "block index cannot be negative (got %d)", index)
	}
	if err := errors.ValidateCapacity(capacity); err != nil {
		return Block{}, err
	}
	return Block{
		Key:       uuid.New(),
		ID:        ID{Kind: kind, Index: index},
		Positions: map[int]Placement{capacity: p},
		Data:      unit,
	}, nil
}

// NextIndex returns the layout index a new block of kind should take.
func NextIndex(blocks []Block, kind layout.Kind) int {
	next := 0
	for _, b := range blocks {
		if b.ID.Kind == kind && b.ID.Index >= next {
			next = b.ID.Index + 1
		}
	}
	return next
}

// Reindex renumbers the blocks of each kind to consecutive indices starting
// at 0, keeping their relative order. Blocks sharing an index keep sharing
// it. The input is not modified.
func Reindex(blocks []Block) []Block {
	ranks := make(map[layout.Kind]map[int]int, len(layout.Kinds))
	for _, kind := range layout.Kinds {
		var indices []int
		for _, b := range blocks {
			if b.ID.Kind == kind {
				indices = append(indices, b.ID.Index)
			}
		}
		slices.Sort(indices)
		indices = slices.Compact(indices)
		rank := make(map[int]int, len(indices))
		for r, index := range indices {
			rank[index] = r
		}
		ranks[kind] = rank
	}

	out := make([]Block, len(blocks))
	for i, b := range blocks {
		if rank, ok := ranks[b.ID.Kind][b.ID.Index]; ok {
			b.ID.Index = rank
		}
		out[i] = b
	}
	return out
}

// MarshalJSON writes the grid widget shape:
//
//	{"id": "paragraph:0", "key": "...", "12": {"x": 0, ...}, "data": {"type": "paragraph", ...}}
func (b Block) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(b.Positions)+3)
	var err error
	if fields["id"], err = json.Marshal(b.ID); err != nil {
		return nil, err
	}
	if b.Key != uuid.Nil {
		if fields["key"], err = json.Marshal(b.Key); err != nil {
			return nil, err
		}
	}
	for capacity, p := range b.Positions {
		if fields[strconv.Itoa(capacity)], err = json.Marshal(p); err != nil {
			return nil, err
		}
	}
	if fields["data"], err = content.EncodeUnit(b.Data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidBlock, err, "block %s", b.ID)
	}
	return json.Marshal(fields)
}

// UnmarshalJSON reads the shape written by [Block.MarshalJSON]. Keys other
// than "id", "key", "data" and integers are ignored.
func (b *Block) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode block")
	}

	var out Block
	raw, ok := fields["id"]
	if !ok {
		return errors.New(errors.ErrCodeInvalidBlock, "block has no id")
	}
	if err := json.Unmarshal(raw, &out.ID); err != nil {
		return err
	}
	if raw, ok := fields["key"]; ok {
		if err := json.Unmarshal(raw, &out.Key); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidBlock, err, "block %s key", out.ID)
		}
	}
	raw, ok = fields["data"]
	if !ok {
		return errors.New(errors.ErrCodeInvalidBlock, "block %s has no data", out.ID)
	}
	unit, err := content.DecodeUnit(raw)
	if err != nil {
		return err
	}
	out.Data = unit

	out.Positions = make(map[int]Placement)
	for key, raw := range fields {
		capacity, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		var p Placement
		if err := json.Unmarshal(raw, &p); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidBlock, err, "block %s placement %q", out.ID, key)
		}
		out.Positions[capacity] = p
	}
	*b = out
	return nil
}

// validate checks that b can take part in a layout conversion.
func (b Block) validate() error {
	if !b.ID.Kind.Valid() {
		return errors.New(errors.ErrCodeInvalidBlock, "block %s has unknown kind", b.ID)
	}
	if b.ID.Index < 0 {
		return errors.New(errors.ErrCodeInvalidBlock, "block %s has a negative index", b.ID)
	}
	if b.Data != nil && b.Data.Kind() != b.ID.Kind {
		return errors.New(errors.ErrCodeInvalidBlock, "block %s holds a %s", b.ID, b.Data.Kind())
	}
	return nil
}
