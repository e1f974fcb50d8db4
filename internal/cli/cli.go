package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ortfo/gui/pkg/buildinfo"
	"github.com/ortfo/gui/pkg/config"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "ortfo-layout"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded before any command runs.
	Config config.Config

	configPath string
	service    string
	noCache    bool
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Defaults(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "ortfo-layout converts ortfo layout descriptors and editor blocks",
		Long: `ortfo-layout works with the layout descriptors of ortfo work descriptions.

It normalizes descriptors, turns descriptions into positioned editor blocks,
rebuilds descriptions from edited blocks and serves the layout computation
over HTTP.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "configuration file (default "+config.Path()+")")
	flags.StringVar(&c.service, "service", "", `layout service: "local" or a base URL`)
	flags.BoolVar(&c.noCache, "no-cache", false, "do not cache computed positions")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.normalizeCommand())
	root.AddCommand(c.widthCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.blocksCommand())
	root.AddCommand(c.rebuildCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration, applies the global flags over it and
// attaches the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.service != "" {
		cfg.Layout.Service = c.service
	}
	if c.noCache {
		cfg.Cache.Backend = config.CacheNone
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.Config = cfg

	level, err := cfg.Log.ParseLevel()
	if err != nil {
		return err
	}
	if c.verbose {
		level = LogDebug
		registerLogHooks(c.Logger)
	}
	c.SetLogLevel(level)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}
