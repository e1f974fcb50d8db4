package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ortfo/gui/pkg/core/content"
	"github.com/ortfo/gui/pkg/core/layout"
	pkgio "github.com/ortfo/gui/pkg/io"
)

// stdinArg is the file argument naming standard input.
const stdinArg = "-"

// docFlags are the input/output flags shared by commands that read and
// write documents. Files are read and written in the format of their
// extension; --format applies to standard input and output.
type docFlags struct {
	format string
	output string
}

func (f *docFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "json", "format of standard input and output (json or yaml)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default: standard output)")
}

func (f docFlags) streamFormat() (pkgio.Format, error) {
	return pkgio.ParseFormat(f.format)
}

// fileArg returns the file argument, or stdinArg when there is none.
func fileArg(args []string) string {
	if len(args) == 0 {
		return stdinArg
	}
	return args[0]
}

// displayName names a file argument in messages.
func displayName(path string) string {
	if path == stdinArg {
		return "standard input"
	}
	return path
}

func (f docFlags) readLayout(cmd *cobra.Command, path string) (layout.Layout, error) {
	if path != stdinArg {
		return pkgio.ImportLayout(path)
	}
	format, err := f.streamFormat()
	if err != nil {
		return nil, err
	}
	return pkgio.ReadLayout(cmd.InOrStdin(), format)
}

func (f docFlags) writeLayout(cmd *cobra.Command, l layout.Layout) error {
	if f.output != "" {
		return pkgio.ExportLayout(l, f.output)
	}
	format, err := f.streamFormat()
	if err != nil {
		return err
	}
	return pkgio.WriteLayout(cmd.OutOrStdout(), l, format)
}

func (f docFlags) readDescription(cmd *cobra.Command, path string) (content.Description, error) {
	if path != stdinArg {
		return pkgio.ImportDescription(path)
	}
	format, err := f.streamFormat()
	if err != nil {
		return content.Description{}, err
	}
	return pkgio.ReadDescription(cmd.InOrStdin(), format)
}

func (f docFlags) writeDescription(cmd *cobra.Command, d content.Description) error {
	if f.output != "" {
		return pkgio.ExportDescription(d, f.output)
	}
	format, err := f.streamFormat()
	if err != nil {
		return err
	}
	return pkgio.WriteDescription(cmd.OutOrStdout(), d, format)
}

// Block documents are JSON only, --format does not apply to them.

func readBlocks(cmd *cobra.Command, path string) (pkgio.BlocksDocument, error) {
	if path != stdinArg {
		return pkgio.ImportBlocks(path)
	}
	return pkgio.ReadBlocks(cmd.InOrStdin())
}

func (f docFlags) writeBlocks(cmd *cobra.Command, doc pkgio.BlocksDocument) error {
	if f.output != "" {
		return pkgio.ExportBlocks(doc, f.output)
	}
	return pkgio.WriteBlocks(cmd.OutOrStdout(), doc)
}

// isTerminal reports whether stream, a reader or writer, is an interactive
// terminal.
func isTerminal(stream any) bool {
	file, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
