// Package cmd provides CLI commands for the lumio tool.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iim-amit/AmitKumar-Lumio/config"
	"github.com/iim-amit/AmitKumar-Lumio/credentials"
	"github.com/iim-amit/AmitKumar-Lumio/pkg/buildinfo"
	"github.com/iim-amit/AmitKumar-Lumio/pkg/logging"
	"github.com/iim-amit/AmitKumar-Lumio/pkg/share"
	"github.com/iim-amit/AmitKumar-Lumio/pkg/summarize"
	"github.com/iim-amit/AmitKumar-Lumio/server"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the lumio HTTP server",
		Long: `Run the HTTP server backing the browser client.

Endpoints:
  POST /summarize   Generate a mock summary from a transcript
  POST /share       Email a summary
  GET  /templates   Model and template catalogs
  GET  /healthz     Liveness check
  GET  /version     Build information
  GET  /metrics     Prometheus metrics

The server shuts down gracefully on SIGINT/SIGTERM.

Examples:
  lumio serve
  lumio serve --listen 0.0.0.0:9090
  LUMIO_SMTP_HOST=smtp.example.com lumio serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			if listenAddr != "" {
				cfg.ListenAddress = listenAddr
			}

			log := newLogger(cfg)
			logging.SetGlobal(log)

			log.Info("starting lumio",
				logging.F("version", buildinfo.String()),
				logging.F("smtp_configured", cfg.SMTP.IsConfigured()),
			)

			generator := summarize.NewGenerator(cfg.GenerateDelay, log)
			mailer := share.NewSMTPMailer(cfg.SMTP, credentials.GetDefaultProvider())
			shares := share.NewService(mailer, cfg.SMTP.GetSender(), log)

			srv := server.New(cfg, generator, shares, log, nil)
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&listenAddr, "listen", "l", "", "override the configured listen address")

	return cmd
}

// newLogger builds the service logger from config flags.
func newLogger(cfg *config.ServiceConfig) logging.Logger {
	logCfg := logging.DefaultConfig()
	logCfg.JSONFormat = cfg.JSONLogs
	if cfg.Debug {
		logCfg.Level = logging.LevelDebug
	}
	return logging.NewLogger(logCfg)
}
