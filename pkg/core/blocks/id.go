package blocks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ortfo/gui/pkg/core/layout"
	"github.com/ortfo/gui/pkg/errors"
)

// ID identifies a block by the kind and 0-based layout index of its unit.
type ID struct {
	Kind  layout.Kind
	Index int
}

// String renders "{kind}:{index}".
func (id ID) String() string {
	return fmt.Sprintf("%s:%d", id.Kind, id.Index)
}

// Cell returns the layout token referring to the same unit.
func (id ID) Cell() layout.Cell {
	return layout.Token(id.Kind, id.Index+1)
}

// ParseID parses "{kind}:{index}".
func ParseID(s string) (ID, error) {
	kind, index, ok := strings.Cut(s, ":")
	if !ok {
		return ID{}, errors.New(errors.ErrCodeInvalidBlock, "block id %q has no ':' separator", s)
	}
	k := layout.Kind(kind)
	if !k.Valid() {
		return ID{}, errors.New(errors.ErrCodeInvalidBlock, "block id %q has unknown kind", s)
	}
	n, err := strconv.Atoi(index)
	if err != nil || n < 0 {
		return ID{}, errors.New(errors.ErrCodeInvalidBlock, "block id %q has an invalid index", s)
	}
	return ID{Kind: k, Index: n}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
