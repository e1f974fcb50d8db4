package cli

import (
	"io"

	"github.com/spf13/cobra"
	lj "gopkg.in/natefinch/lumberjack.v2"

	"github.com/ortfo/gui/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout computation over HTTP",
		Long: `Serve the configured layout service over HTTP until interrupted.

Endpoints:
  POST /layout     a description in, positions per language out
  POST /normalize  a layout and optional capacity in, the normal form out
  GET  /healthz    service status and version

Positions are cached with the configured cache backend. When log.file is
set, the log is also written to that file, rotated every 10 MB.`,
		Example: `  ortfo-layout serve --addr :9000
  ORTFO_CACHE_BACKEND=redis ORTFO_CACHE_REDIS_ADDR=localhost:6379 ortfo-layout serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = c.Config.Server.Addr
			}

			logger := c.Logger
			if file := c.Config.Log.File; file != "" {
				rotating := &lj.Logger{Filename: file, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
				defer rotating.Close()
				logger = newLogger(io.MultiWriter(cmd.ErrOrStderr(), rotating), c.Logger.GetLevel())
				c.Logger = logger
			}

			svc, err := c.newService(ctx)
			if err != nil {
				return err
			}
			defer svc.Close()

			logger.Info("starting layout service", "service", svc.name, "cache", c.Config.Cache.Backend)
			return server.New(svc, logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: server.addr, \":8080\")")

	return cmd
}
