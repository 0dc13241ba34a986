// Package main provides the resume_builder CLI: render the résumé form into
// one of three HTML templates, print or export it, or serve the HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootOptions holds flags shared by every command.
type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "resume_builder",
		Short:         "Resume Builder",
		Long:          "Resume Builder turns a plain résumé form into a styled, print-ready HTML résumé in one of three templates: modern, classic or executive.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a JSON config file with default values")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print detailed summaries to stderr")

	rootCmd.AddCommand(
		newServeCmd(opts),
		newRenderCmd(opts),
		newPrintCmd(opts),
		newExportPDFCmd(opts),
		newExportTextCmd(opts),
		newTemplatesCmd(),
		newValidateInputCmd(),
		newFillCmd(opts),
	)
	return rootCmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
