package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/passport-scorer/scorer-ui/internal/logging"
	"github.com/passport-scorer/scorer-ui/internal/server"
)

func serveCmd(configPath *string) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the footer over HTTP",
		Long: `Start the HTTP server.

Routes:
  /              demo page with the footer
  /footer        footer fragment (?mode=dark&class=...)
  /footer/live   websocket that re-renders on {"mode": "..."}
  /assets/*      icons
  /healthz       liveness probe
  /metrics       Prometheus metrics

Examples:
  scorer-ui serve
  scorer-ui serve --port=3000
  GIT_COMMIT_HASH=$(git rev-parse HEAD) scorer-ui serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configPath, port, host)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from scorer-ui.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from scorer-ui.json)")

	return cmd
}

func runServe(configPath string, port int, host string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Server.Port = port
	}
	if host != "" {
		cfg.Server.Host = host
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(cfg.Log, os.Stderr)

	srv, err := server.New(server.Options{
		Config: cfg,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	success("Serving on http://%s", cfg.Address())
	if cfg.Footer.CommitHash == "" {
		warn("No commit hash configured; set GIT_COMMIT_HASH to link the build commit")
	}

	return srv.Run(ctx)
}
