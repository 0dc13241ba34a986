package main

import (
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/spf13/cobra"
)

func newExportTextCmd(root *rootOptions) *cobra.Command {
	var (
		profile profileOptions
		out     string
	)
	cmd := &cobra.Command{
		Use:   "export-text",
		Short: "Export the résumé as plain text",
		Long:  "Flattens the rendered résumé into plain text suitable for applicant tracking systems.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			in, variant, err := profile.resolve(cmd, cfg)
			if err != nil {
				return err
			}

			preview, err := session.New(variant, session.Options{SummaryLimit: cfg.SummaryLimit}).Update(in)
			if err != nil {
				return err
			}
			text, err := export.PlainText(preview.HTML)
			if err != nil {
				return err
			}
			if err := writeOutput(cmd, out, []byte(text)); err != nil {
				return err
			}
			if p := printer(cmd, cfg); p != nil {
				p.PrintExport("text", out, len(text))
			}
			reportWritten(cmd.OutOrStdout(), "plain text résumé", out)
			return nil
		},
	}
	profile.bind(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (stdout when empty)")
	return cmd
}
