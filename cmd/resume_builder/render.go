package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-builder/internal/parsing"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type renderOptions struct {
	profile  profileOptions
	out      string
	document bool
	all      bool
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the résumé as HTML",
		Long: `Render the résumé form into an HTML fragment using one template.

With --document the fragment is wrapped in a standalone A4 page. With --all
every template is rendered concurrently; --out is then a directory and each
file is named resume-<template>.html.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, root, opts)
		},
	}
	opts.profile.bind(cmd)
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file (stdout when empty); a directory with --all")
	cmd.Flags().BoolVar(&opts.document, "document", false, "Wrap the fragment in a standalone HTML page")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Render every template")
	return cmd
}

func runRender(cmd *cobra.Command, root *rootOptions, opts *renderOptions) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	in, variant, err := opts.profile.resolve(cmd, cfg)
	if err != nil {
		return err
	}

	data := parsing.ParseProfile(in)
	renderer := rendering.NewRenderer(nil)
	p := printer(cmd, cfg)
	if p != nil {
		p.PrintProfile(&data)
	}

	if opts.all {
		return renderAll(cmd.Context(), cmd, renderer, data, in.Name, opts)
	}

	out, err := renderOne(renderer, variant, data, in.Name, opts.document)
	if err != nil {
		return err
	}
	if p != nil {
		p.PrintRender(variant, out, rendering.MeasureSummary(in.Summary, cfg.SummaryLimit))
	}
	if err := writeOutput(cmd, opts.out, []byte(out)); err != nil {
		return err
	}
	reportWritten(cmd.OutOrStdout(), variant.Label()+" résumé", opts.out)
	return nil
}

func renderOne(renderer *rendering.Renderer, variant types.Variant, data types.ResumeData, name string, document bool) (string, error) {
	html, err := renderer.Render(variant, data)
	if err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", variant, err)
	}
	if !document {
		return html, nil
	}
	return rendering.Document(html, name, rendering.DocumentOptions{})
}

// renderAll renders each template in its own goroutine. Output order on
// stdout follows the template order regardless of completion order.
func renderAll(ctx context.Context, cmd *cobra.Command, renderer *rendering.Renderer, data types.ResumeData, name string, opts *renderOptions) error {
	variants := renderer.Variants()
	results := make([]string, len(variants))

	g, ctx := errgroup.WithContext(ctx)
	for i, v := range variants {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := renderOne(renderer, v, data, name, opts.document)
			if err != nil {
				return err
			}
			results[i] = out
			if opts.out == "" {
				return nil
			}
			return writeOutput(cmd, filepath.Join(opts.out, "resume-"+string(v)+".html"), []byte(out))
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if opts.out != "" {
		for _, v := range variants {
			reportWritten(cmd.OutOrStdout(), v.Label()+" résumé", filepath.Join(opts.out, "resume-"+string(v)+".html"))
		}
		return nil
	}

	var sb strings.Builder
	for i, v := range variants {
		fmt.Fprintf(&sb, "<!-- %s -->\n%s\n", v, results[i])
	}
	return writeOutput(cmd, "", []byte(sb.String()))
}
