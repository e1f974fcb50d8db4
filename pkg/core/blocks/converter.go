package blocks

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ortfo/gui/pkg/core/content"
	"github.com/ortfo/gui/pkg/core/layout"
	"github.com/ortfo/gui/pkg/errors"
	"github.com/ortfo/gui/pkg/observability"
)

// DefaultTimeout bounds a layout computation when the converter is not given
// a timeout.
const DefaultTimeout = 10 * time.Second

// LayoutService places the units of a description on the grid described by
// its layout descriptor.
//
// For every language of the description, the result lists the units of that
// language with their layout index and the (row, column) cells they occupy.
// Implementations must return an error, not a partial result, when the
// description cannot be laid out.
type LayoutService interface {
	Layout(ctx context.Context, d content.Description) (content.Translated[content.Positioned], error)
}

// LayoutFunc adapts a function to [LayoutService].
type LayoutFunc func(ctx context.Context, d content.Description) (content.Translated[content.Positioned], error)

// Layout calls f.
func (f LayoutFunc) Layout(ctx context.Context, d content.Description) (content.Translated[content.Positioned], error) {
	return f(ctx, d)
}

// Converter turns descriptions into editor blocks through a [LayoutService].
// It is safe for concurrent use if its service is.
type Converter struct {
	Service LayoutService
	Timeout time.Duration
	Logger  *log.Logger
}

// NewConverter creates a converter backed by svc.
// A non-positive timeout selects [DefaultTimeout]; a nil logger selects
// log.Default().
func NewConverter(svc LayoutService, timeout time.Duration, logger *log.Logger) *Converter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Converter{
		Service: svc,
		Timeout: timeout,
		Logger:  logger,
	}
}

// Capacity returns the row capacity blocks of d are expressed in: the width
// of its layout descriptor, or 1 when it has none (or an empty one).
func Capacity(d content.Description) (int, error) {
	l, err := d.Layout()
	if err != nil {
		return 0, err
	}
	if w := layout.Width(l); w > 0 {
		return w, nil
	}
	return 1, nil
}

// ToBlocks lays out d and returns the blocks of every language along with
// the row capacity they are expressed in.
//
// Failures are not returned: when the layout cannot be computed (bad
// descriptor, service error, timeout or cancellation of ctx) ToBlocks logs
// the cause and returns an empty collection with a capacity of 0. Callers
// that need to tell "no content" from "failure" should check the capacity,
// which is at least 1 on success.
func (c *Converter) ToBlocks(ctx context.Context, d content.Description) (content.Translated[Block], int) {
	blocks, capacity, err := c.toBlocks(ctx, d)
	if err != nil {
		c.Logger.Warn("layout computation failed", "work", d.ID, "err", err)
		return content.Translated[Block]{}, 0
	}
	return blocks, capacity
}

func (c *Converter) toBlocks(ctx context.Context, d content.Description) (content.Translated[Block], int, error) {
	capacity, err := Capacity(d)
	if err != nil {
		return nil, 0, err
	}
	if c.Service == nil {
		return nil, 0, errors.New(errors.ErrCodeLayoutService, "no layout service configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	languages := len(d.Languages())
	hooks := observability.Codec()
	hooks.OnLayoutStart(ctx, languages)
	start := time.Now()

	positioned, err := c.Service.Layout(ctx, d)
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = errors.Wrap(errors.ErrCodeTimeout, err, "layout computation exceeded %s", c.Timeout)
		}
		hooks.OnLayoutComplete(ctx, languages, time.Since(start), err)
		return nil, 0, err
	}

	blocks, err := content.MapErr(positioned, func(lang string, p content.Positioned) (Block, error) {
		if !Contiguous(p.Positions) && len(p.Positions) > 0 {
			c.Logger.Warn("unit does not fill its bounding box",
				"language", lang, "unit", ID{Kind: p.Kind(), Index: p.LayoutIndex}, "positions", len(p.Positions))
		}
		return FromPositioned(lang, p, capacity)
	})
	hooks.OnLayoutComplete(ctx, languages, time.Since(start), err)
	if err != nil {
		return nil, 0, err
	}

	c.Logger.Debug("laid out blocks", "work", d.ID, "languages", len(blocks), "blocks", blocks.Len(), "capacity", capacity)
	return blocks, capacity, nil
}
