package main

import (
	"fmt"
	"time"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/spf13/cobra"
)

func newExportPDFCmd(root *rootOptions) *cobra.Command {
	var (
		profile    profileOptions
		out        string
		timeout    time.Duration
		chromePath string
	)
	cmd := &cobra.Command{
		Use:   "export-pdf",
		Short: "Export the résumé as an A4 PDF",
		Long:  "Prints the résumé to an A4 PDF with 1cm margins using a headless Chrome or Chromium browser, which must be installed.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			in, variant, err := profile.resolve(cmd, cfg)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("timeout") {
				timeout = cfg.ExportTimeout()
			}
			if chromePath == "" {
				chromePath = cfg.ChromePath
			}
			converter := export.NewPDFConverter(export.PDFOptions{
				Timeout:  timeout,
				ExecPath: chromePath,
				Verbose:  cfg.Verbose,
			})

			sess := session.New(variant, session.Options{SummaryLimit: cfg.SummaryLimit})
			pdf, err := sess.ExportPDF(cmd.Context(), in, converter)
			if err != nil {
				return err
			}
			if err := writeOutput(cmd, out, pdf); err != nil {
				return err
			}
			if p := printer(cmd, cfg); p != nil {
				p.PrintExport("pdf", out, len(pdf))
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully exported PDF (%s template)\nOutput: %s\n", variant.Label(), out)
			return nil
		},
	}
	profile.bind(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output PDF file (required)")
	cmd.Flags().DurationVar(&timeout, "timeout", export.DefaultTimeout, "Maximum time for the browser to produce the PDF")
	cmd.Flags().StringVar(&chromePath, "chrome", "", "Path to the Chrome/Chromium binary")

	if err := cmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}
	return cmd
}
