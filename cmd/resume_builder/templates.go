package main

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/spf13/cobra"
)

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, v := range rendering.NewRenderer(nil).Variants() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", v, v.Label()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
