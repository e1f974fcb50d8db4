// Package local lays descriptions out in process.
//
// The layout descriptor is normalized, stretched to its row capacity and
// walked cell by cell: each cell adds its (row, column) to the unit its token
// refers to. Units no cell refers to are placed below the grid, one
// full-width row each, in kind order (paragraphs, then media, then links).
// A description without a descriptor therefore gets one row per unit.
package local

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/ortfo/gui/pkg/core/blocks"
	"github.com/ortfo/gui/pkg/core/content"
	"github.com/ortfo/gui/pkg/core/layout"
	"github.com/ortfo/gui/pkg/errors"
)

// Name identifies the in-process service in cache keys.
const Name = "local"

// Service is the in-process [blocks.LayoutService].
type Service struct {
	Logger *log.Logger
}

// New creates a service. A nil logger selects log.Default().
func New(logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{Logger: logger}
}

// Layout places the units of every language of d. Languages are laid out
// concurrently; the first failure cancels the others.
func (s *Service) Layout(ctx context.Context, d content.Description) (content.Translated[content.Positioned], error) {
	g, err := newGrid(d)
	if err != nil {
		return nil, err
	}

	languages := d.Languages()
	results := make([][]content.Positioned, len(languages))
	eg, ctx := errgroup.WithContext(ctx)
	for i, lang := range languages {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			placed, err := g.place(d.Units(lang))
			if err != nil {
				return fmt.Errorf("language %q: %w", lang, err)
			}
			results[i] = placed
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make(content.Translated[content.Positioned], len(languages))
	for i, lang := range languages {
		out[lang] = results[i]
	}
	s.Logger.Debug("laid out description", "work", d.ID, "languages", len(languages), "rows", len(g.rows), "capacity", g.width)
	return out, nil
}

// grid is a normalized layout stretched to its capacity.
type grid struct {
	rows  []layout.Row
	width int
}

func newGrid(d content.Description) (grid, error) {
	l, err := d.Layout()
	if err != nil {
		return grid{}, err
	}
	width, err := blocks.Capacity(d)
	if err != nil {
		return grid{}, err
	}
	if err := errors.ValidateCapacity(width); err != nil {
		return grid{}, err
	}

	normalized, err := layout.Normalize(l, width)
	if err != nil {
		return grid{}, err
	}
	rows := make([]layout.Row, len(normalized))
	for y, row := range normalized {
		if rows[y], err = layout.Expand(row, width); err != nil {
			return grid{}, errors.Wrap(errors.ErrCodeIntegrity, err, "row %d", y)
		}
	}
	return grid{rows: rows, width: width}, nil
}

func (g grid) place(units map[layout.Kind][]content.Unit) ([]content.Positioned, error) {
	cells := make(map[layout.Cell][]content.Position)
	for y, row := range g.rows {
		for x, c := range row {
			if c.IsNull() {
				continue
			}
			if c.Index > len(units[c.Kind]) {
				return nil, errors.New(errors.ErrCodeInvalidLayout,
					"cell (%d, %d) refers to %s but there are only %d %s units", y, x, c, len(units[c.Kind]), c.Kind)
			}
			cells[c] = append(cells[c], content.Position{Row: y, Column: x})
		}
	}

	next := len(g.rows)
	var out []content.Positioned
	for _, kind := range layout.Kinds {
		for i, u := range units[kind] {
			positions, ok := cells[layout.Token(kind, i+1)]
			if !ok {
				positions = fullRow(next, g.width)
				next++
			}
			out = append(out, content.Positioned{Unit: u, LayoutIndex: i, Positions: positions})
		}
	}
	return out, nil
}

func fullRow(y, width int) []content.Position {
	out := make([]content.Position, width)
	for x := range out {
		out[x] = content.Position{Row: y, Column: x}
	}
	return out
}

var _ blocks.LayoutService = (*Service)(nil)
