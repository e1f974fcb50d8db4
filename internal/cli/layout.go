package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ortfo/gui/pkg/config"
	"github.com/ortfo/gui/pkg/core/layout"
	"github.com/ortfo/gui/pkg/errors"
	"github.com/ortfo/gui/pkg/layoutsvc/local"
	"github.com/ortfo/gui/pkg/layoutsvc/remote"
)

// normalizeCommand creates the normalize command.
func (c *CLI) normalizeCommand() *cobra.Command {
	var (
		files    docFlags
		capacity int
	)

	cmd := &cobra.Command{
		Use:   "normalize [file]",
		Short: "Rewrite a layout descriptor in canonical form",
		Long: `Rewrite a layout descriptor in canonical form.

Bare tokens get explicit indices, repeated cells are compressed by the
largest factor their row allows and one-cell rows become bare tokens.
Rows must evenly divide the capacity, which defaults to the width of the
layout. The layout is read from file, or standard input when omitted or "-".

When a remote layout service is configured with --service, the service
normalizes the layout.`,
		Example: `  ortfo-layout normalize layout.json
  echo '[["p","p"],"m"]' | ortfo-layout normalize --capacity 2
  ortfo-layout normalize layout.yaml -o layout.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fileArg(args)
			l, err := files.readLayout(cmd, path)
			if err != nil {
				return err
			}

			normalized, used, err := c.normalize(cmd.Context(), l, capacity)
			if err != nil {
				return err
			}
			if err := files.writeLayout(cmd, normalized); err != nil {
				return err
			}

			if files.output != "" {
				stderr := cmd.ErrOrStderr()
				printSuccess(stderr, "Normalized %s at capacity %d", displayName(path), used)
				printFile(stderr, files.output)
			}
			return nil
		},
	}

	files.register(cmd)
	cmd.Flags().IntVarP(&capacity, "capacity", "c", 0, "row capacity (default: width of the layout)")

	return cmd
}

// normalize normalizes l at capacity, or at the width of l when capacity is
// zero, and returns the capacity used.
func (c *CLI) normalize(ctx context.Context, l layout.Layout, capacity int) (layout.Layout, int, error) {
	if err := errors.ValidateCapacity(capacity); err != nil {
		return nil, 0, err
	}

	if c.Config.Layout.Service != config.ServiceLocal {
		client, err := remote.New(c.Config.Layout.Service, nil)
		if err != nil {
			return nil, 0, err
		}
		c.Logger.Debug("normalizing remotely", "service", client.Name())
		return client.Normalize(ctx, l, capacity)
	}

	if capacity == 0 {
		capacity = layout.Width(l)
	}
	normalized, err := layout.Normalize(l, capacity)
	if err != nil {
		return nil, 0, err
	}
	return normalized, capacity, nil
}

// widthCommand creates the width command.
func (c *CLI) widthCommand() *cobra.Command {
	var files docFlags

	cmd := &cobra.Command{
		Use:   "width [file]",
		Short: "Print the width of a layout descriptor",
		Long: `Print the width of a layout descriptor: the least common multiple of the
lengths of its non-empty rows. This is the row capacity blocks of the
layout are expressed in.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := files.readLayout(cmd, fileArg(args))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), layout.Width(l))
			return nil
		},
	}

	cmd.Flags().StringVarP(&files.format, "format", "f", "json", "format of standard input (json or yaml)")

	return cmd
}

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	var (
		files       docFlags
		description bool
	)

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a layout descriptor or the layout of a description",
		Long: `Check that a layout descriptor is well formed and normalizes at its width.

With --description the file is a work description: its layout descriptor
is checked, then laid out against the description's content so that
references to missing paragraphs, media or links are reported.`,
		Example: `  ortfo-layout validate layout.json
  ortfo-layout validate --description work.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fileArg(args)
			if description {
				return c.validateDescription(cmd, files, path)
			}

			l, err := files.readLayout(cmd, path)
			if err != nil {
				return err
			}
			width := layout.Width(l)
			if _, err := layout.Normalize(l, width); err != nil {
				return err
			}

			stdout := cmd.OutOrStdout()
			printSuccess(stdout, "%s is a valid layout", displayName(path))
			printKeyValue(stdout, "rows", strconv.Itoa(len(l)))
			printKeyValue(stdout, "width", strconv.Itoa(width))
			return nil
		},
	}

	cmd.Flags().StringVarP(&files.format, "format", "f", "json", "format of standard input (json or yaml)")
	cmd.Flags().BoolVarP(&description, "description", "d", false, "the file is a work description")

	return cmd
}

func (c *CLI) validateDescription(cmd *cobra.Command, files docFlags, path string) error {
	d, err := files.readDescription(cmd, path)
	if err != nil {
		return err
	}

	// The local service reports unresolvable references instead of
	// degrading to an empty result like the converter does.
	positioned, err := local.New(c.Logger).Layout(cmd.Context(), d)
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	printSuccess(stdout, "%s has a valid layout", displayName(path))
	if !d.HasLayout() {
		printWarning(stdout, "no layout descriptor, every unit gets its own row")
	}
	printKeyValue(stdout, "languages", strconv.Itoa(len(positioned)))
	printKeyValue(stdout, "units", strconv.Itoa(positioned.Len()))
	return nil
}
