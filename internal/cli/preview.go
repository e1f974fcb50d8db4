package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ortfo/gui/pkg/core/blocks"
	"github.com/ortfo/gui/pkg/core/content"
	"github.com/ortfo/gui/pkg/errors"
)

// previewCommand creates the preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		files docFlags
		lang  string
	)

	cmd := &cobra.Command{
		Use:   "preview [description]",
		Short: "Draw the block grid of a description",
		Long: `Lay out a work description and draw the blocks of one language as a grid.

Each cell shows the block covering it as {kind}:{index}. Without --lang the
only language is shown; when there are several and the terminal is
interactive a picker is shown, otherwise the first language is used.`,
		Example: `  ortfo-layout preview work.yaml
  ortfo-layout preview work.yaml --lang fr`,
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

			stdout := cmd.OutOrStdout()
			if lang == "" {
				lang, err = pickLanguage(cmd, doc.Blocks, path != stdinArg)
				if err != nil {
					return err
				}
				if lang == "" {
					printInfo(cmd.ErrOrStderr(), "No language selected")
					return nil
				}
			}
			items, ok := doc.Blocks[lang]
			if !ok {
				return errors.New(errors.ErrCodeInvalidLanguage, "no blocks in language %q (have %v)", lang, doc.Blocks.Languages())
			}

			fmt.Fprintln(stdout, StyleTitle.Render(fmt.Sprintf("%s (%s)", displayName(path), lang)))
			printStats(stdout, 1, len(items), doc.Capacity)
			if len(items) == 0 {
				printWarning(stdout, "no content")
				return nil
			}
			fmt.Fprintln(stdout, renderGrid(items, doc.Capacity))
			return nil
		},
	}

	cmd.Flags().StringVarP(&files.format, "format", "f", "json", "format of standard input (json or yaml)")
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "language to draw")

	return cmd
}

// pickLanguage selects the language to preview. The interactive picker is
// only offered when standard input is free and both ends are terminals.
func pickLanguage(cmd *cobra.Command, t content.Translated[blocks.Block], stdinFree bool) (string, error) {
	langs := t.Languages()
	switch {
	case len(langs) == 0:
		return "", errors.New(errors.ErrCodeInvalidInput, "the description has no content")
	case len(langs) == 1:
		return langs[0], nil
	}

	interactive := stdinFree && isTerminal(cmd.InOrStdin()) && isTerminal(cmd.OutOrStdout())
	if !interactive {
		return langs[0], nil
	}

	p := tea.NewProgram(NewLanguageListModel(t),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}
	fm, ok := finalModel.(LanguageListModel)
	if !ok {
		return "", nil
	}
	return fm.Selected, nil
}
