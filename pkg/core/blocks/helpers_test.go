package blocks

import (
	"context"
	"testing"

	"github.com/ortfo/gui/pkg/core/content"
	"github.com/ortfo/gui/pkg/core/layout"
)

// blockGenerator returns a constructor for blocks placed on a grid of the
// given capacity.
func blockGenerator(capacity int) func(x, y, w, h int, kind layout.Kind, index int) Block {
	return func(x, y, w, h int, kind layout.Kind, index int) Block {
		unit, _ := content.Empty(kind)
		return Block{
			ID:        ID{Kind: kind, Index: index},
			Positions: map[int]Placement{capacity: NewPlacement(x, y, w, h)},
			Data:      unit,
		}
	}
}

const (
	par = layout.KindParagraph
	med = layout.KindMedia
	lnk = layout.KindLink
)

func complexBlocks() []Block {
	block := blockGenerator(12)
	return []Block{
		block(0, 0, 12, 1, par, 0),
		block(0, 1, 4, 2, med, 0),
		block(4, 1, 4, 1, med, 1),
		block(8, 1, 4, 1, med, 2),
		block(4, 2, 8, 1, lnk, 0),
		block(0, 3, 6, 1, lnk, 1),
		block(6, 3, 6, 1, par, 1),
		block(0, 4, 3, 1, lnk, 2),
		block(3, 4, 3, 1, lnk, 3),
		block(6, 4, 3, 1, lnk, 4),
		block(9, 4, 3, 1, lnk, 5),
	}
}

const complexLayout = `["p1",["m1","m2","m3"],["m1","l1","l1"],["l2","p2"],["l3","l4","l5","l6"]]`

// echoService positions every unit on the cells its layout token covers,
// acting as the identity on block geometry.
type echoService struct {
	blocks content.Translated[Block]
	err    error
	calls  int
}

func (s *echoService) Layout(_ context.Context, _ content.Description) (content.Translated[content.Positioned], error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return content.Map(s.blocks, func(_ string, b Block) content.Positioned {
		var pl Placement
		for _, placement := range b.Positions {
			pl = placement
		}
		var positions []content.Position
		for y := pl.Y; y < pl.Y+pl.H; y++ {
			for x := pl.X; x < pl.X+pl.W; x++ {
				positions = append(positions, content.Position{Row: y, Column: x})
			}
		}
		return content.Positioned{Unit: b.Data, LayoutIndex: b.ID.Index, Positions: positions}
	}), nil
}

func mustLayout(t *testing.T, s string) layout.Layout {
	t.Helper()
	l, err := layout.Parse([]byte(s))
	if err != nil {
		t.Fatalf("layout.Parse(%s): %v", s, err)
	}
	return l
}
