package layout

import (
	"strconv"

	"github.com/ortfo/gui/pkg/errors"
)

// Kind is the content kind a cell refers to.
type Kind string

// Content kinds. The zero Kind marks a null (spacer) cell.
const (
	KindParagraph Kind = "paragraph"
	KindMedia     Kind = "media"
	KindLink      Kind = "link"
)

// Kinds lists every content kind in canonical order.
var Kinds = []Kind{KindParagraph, KindMedia, KindLink}

var kindLetters = map[Kind]byte{
	KindParagraph: 'p',
	KindMedia:     'm',
	KindLink:      'l',
}

// Valid reports whether k is one of the three content kinds.
func (k Kind) Valid() bool {
	_, ok := kindLetters[k]
	return ok
}

// Letter returns the token letter of k, or 0 for an invalid kind.
func (k Kind) Letter() byte {
	return kindLetters[k]
}

// ParseKind accepts a kind name ("paragraph") or its token letter ("p").
func ParseKind(s string) (Kind, error) {
	for k, letter := range kindLetters {
		if s == string(k) || s == string(letter) {
			return k, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidToken, "unknown content kind %q", s)
}

// Cell is one token of a layout row.
// The zero Cell is the null spacer; an Index of 0 marks an unindexed token.
type Cell struct {
	Kind  Kind
	Index int
}

// Null is the empty spacer cell.
var Null = Cell{}

// Token returns the cell referring to the index-th (1-based) unit of kind.
func Token(kind Kind, index int) Cell {
	return Cell{Kind: kind, Index: index}
}

// IsNull reports whether c is a spacer.
func (c Cell) IsNull() bool { return c.Kind == "" }

// Indexed reports whether c carries an explicit index.
func (c Cell) Indexed() bool { return c.Index > 0 }

// String renders the token ("p1", "m", or "null").
func (c Cell) String() string {
	if c.IsNull() {
		return "null"
	}
	s := string(c.Kind.Letter())
	if c.Indexed() {
		s += strconv.Itoa(c.Index)
	}
	return s
}

// ParseCell parses a token matching ^[pml][0-9]*$.
// The literal "null" and the empty string parse to [Null].
func ParseCell(s string) (Cell, error) {
	if s == "" || s == "null" {
		return Null, nil
	}
	kind, err := ParseKind(s[:1])
	if err != nil {
		return Null, errors.New(errors.ErrCodeInvalidToken, "invalid cell token %q", s)
	}
	if len(s) == 1 {
		return Cell{Kind: kind}, nil
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return Null, errors.New(errors.ErrCodeInvalidToken, "invalid cell token %q", s)
		}
	}
	index, err := strconv.Atoi(s[1:])
	if err != nil || index < 1 {
		return Null, errors.New(errors.ErrCodeInvalidToken, "invalid index in cell token %q", s)
	}
	return Cell{Kind: kind, Index: index}, nil
}
