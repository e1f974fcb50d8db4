package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ortfo/gui/pkg/core/blocks"
	"github.com/ortfo/gui/pkg/core/content"
	"github.com/ortfo/gui/pkg/errors"
	pkgio "github.com/ortfo/gui/pkg/io"
)

// blocksCommand creates the blocks command.
func (c *CLI) blocksCommand() *cobra.Command {
	var (
		files docFlags
		langs []string
	)

	cmd := &cobra.Command{
		Use:   "blocks [description]",
		Short: "Lay out a description as editor blocks",
		Long: `Lay out a work description and write its editor blocks.

Every paragraph, media embed and link of every language becomes a block
positioned on a grid whose row capacity is the width of the description's
layout. The result is a JSON block document that "rebuild" turns back into
a description.`,
		Example: `  ortfo-layout blocks work.yaml -o blocks.json
  ortfo-layout blocks work.json --lang en --lang fr`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fileArg(args)
			d, err := files.readDescription(cmd, path)
			if err != nil {
				return err
			}

			doc, err := c.layOut(cmd, d)
			if err != nil {
				return err
			}
			if len(langs) > 0 {
				doc.Blocks, err = keepLanguages(doc.Blocks, langs)
				if err != nil {
					return err
				}
			}

			if err := files.writeBlocks(cmd, doc); err != nil {
				return err
			}

			if files.output != "" {
				stderr := cmd.ErrOrStderr()
				printSuccess(stderr, "Laid out %s", displayName(path))
				printStats(stderr, len(doc.Blocks), doc.Blocks.Len(), doc.Capacity)
				printFile(stderr, files.output)
				printNextStep(stderr, "Rebuild the description", fmt.Sprintf("%s rebuild %s --base %s", appName, files.output, path))
			}
			return nil
		},
	}

	files.register(cmd)
	cmd.Flags().StringSliceVarP(&langs, "lang", "l", nil, "only keep blocks of these languages")

	return cmd
}

// layOut runs the configured layout service on d.
func (c *CLI) layOut(cmd *cobra.Command, d content.Description) (pkgio.BlocksDocument, error) {
	ctx := cmd.Context()
	svc, err := c.newService(ctx)
	if err != nil {
		return pkgio.BlocksDocument{}, err
	}
	defer svc.Close()

	var spinner *Spinner
	if stderr := cmd.ErrOrStderr(); isTerminal(stderr) {
		spinner = newSpinner(ctx, stderr, "Computing positions...")
		spinner.Start()
	}

	prog := newProgress(loggerFromContext(ctx))
	laidOut, capacity := c.newConverter(svc).ToBlocks(ctx, d)
	if spinner != nil {
		switch {
		case spinner.Cancelled():
			spinner.Stop()
		case capacity == 0:
			spinner.StopWithError("Could not compute positions")
		default:
			spinner.StopWithSuccess(fmt.Sprintf("Computed positions at capacity %d", capacity))
		}
	}
	if err := ctx.Err(); err != nil {
		return pkgio.BlocksDocument{}, err
	}
	if capacity == 0 {
		return pkgio.BlocksDocument{}, errors.New(errors.ErrCodeLayoutService, "could not lay out the description with the %s layout service", svc.name)
	}
	prog.done(fmt.Sprintf("Laid out %s", plural(laidOut.Len(), "block")))

	return pkgio.BlocksDocument{Capacity: capacity, Blocks: laidOut}, nil
}

// keepLanguages drops every language of t not in langs. Asking for a
// language t does not have is an error.
func keepLanguages[T any](t content.Translated[T], langs []string) (content.Translated[T], error) {
	out := make(content.Translated[T], len(langs))
	for _, lang := range langs {
		if err := errors.ValidateLanguage(lang); err != nil {
			return nil, err
		}
		items, ok := t[lang]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidLanguage, "no blocks in language %q (have %v)", lang, t.Languages())
		}
		out[lang] = slices.Clone(items)
	}
	return out, nil
}

// rebuildCommand creates the rebuild command.
func (c *CLI) rebuildCommand() *cobra.Command {
	var (
		files docFlags
		base  string
	)

	cmd := &cobra.Command{
		Use:   "rebuild [blocks]",
		Short: "Rebuild a description from editor blocks",
		Long: `Rebuild a work description from a block document.

The paragraphs, media embeds and links of every language in the block
document replace those of the base description, and the layout descriptor
is rebuilt from the block placements. Titles, footnotes, other metadata and
languages without blocks are kept from the base.`,
		Example: `  ortfo-layout rebuild blocks.json --base work.yaml -o work.yaml`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fileArg(args)
			doc, err := readBlocks(cmd, path)
			if err != nil {
				return err
			}

			var basis *content.Description
			if base != "" {
				d, err := pkgio.ImportDescription(base)
				if err != nil {
					return err
				}
				basis = &d
			}

			rebuilt, err := blocks.ToDescription(doc.Blocks, doc.Capacity, basis)
			if err != nil {
				return err
			}
			if err := files.writeDescription(cmd, rebuilt); err != nil {
				return err
			}

			if files.output != "" {
				stderr := cmd.ErrOrStderr()
				printSuccess(stderr, "Rebuilt %s from %s", base, displayName(path))
				printFile(stderr, files.output)
			}
			return nil
		},
	}

	files.register(cmd)
	cmd.Flags().StringVarP(&base, "base", "b", "", "description the blocks were laid out from (required)")

	return cmd
}
