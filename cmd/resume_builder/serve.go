package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/spf13/cobra"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var (
		port  int
		noPDF bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start an HTTP server that renders, prints and exports résumés.

Saved drafts are enabled when DATABASE_URL (or database_url in the config
file) is set. PDF export needs Chrome or Chromium on the host.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("port") {
				p, err := resolvePort(cfg)
				if err != nil {
					return err
				}
				port = p
			}

			var exporter session.PDFExporter
			if !noPDF {
				exporter = export.NewPDFConverter(export.PDFOptions{
					Timeout:  cfg.ExportTimeout(),
					ExecPath: cfg.ChromePath,
					Verbose:  cfg.Verbose,
				})
			}

			srv, err := server.New(server.Config{
				Port:         port,
				DatabaseURL:  databaseURL(cfg.DatabaseURL),
				SummaryLimit: cfg.SummaryLimit,
				Exporter:     exporter,
			})
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}
			return srv.Start()
		},
	}
	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on (default from PORT or the config file)")
	cmd.Flags().BoolVar(&noPDF, "no-pdf", false, "Disable PDF export endpoints")
	return cmd
}

// resolvePort picks PORT from the environment, then the config file, then the default.
func resolvePort(cfg config.Config) (int, error) {
	raw := os.Getenv("PORT")
	if raw == "" {
		raw = cfg.Port
	}
	if raw == "" {
		raw = config.DefaultPort
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("invalid port %q", raw)
	}
	return port, nil
}

// databaseURL prefers DATABASE_URL over the config file value.
func databaseURL(fromConfig string) string {
	if env := os.Getenv("DATABASE_URL"); env != "" {
		return env
	}
	return fromConfig
}
