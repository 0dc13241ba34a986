package main

import (
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/spf13/cobra"
)

func newPrintCmd(root *rootOptions) *cobra.Command {
	var (
		profile profileOptions
		out     string
	)
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Write a print-ready HTML page",
		Long:  "Writes a standalone A4 HTML page for the selected template that opens the browser print dialog as soon as it loads.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			in, variant, err := profile.resolve(cmd, cfg)
			if err != nil {
				return err
			}

			sess := session.New(variant, session.Options{SummaryLimit: cfg.SummaryLimit})
			doc, err := sess.Print(in)
			if err != nil {
				return err
			}
			if err := writeOutput(cmd, out, []byte(doc)); err != nil {
				return err
			}
			reportWritten(cmd.OutOrStdout(), "print page", out)
			return nil
		},
	}
	profile.bind(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (stdout when empty)")
	return cmd
}
