package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/interactive"
	"github.com/jonathan/resume-builder/internal/parsing"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/spf13/cobra"
)

type fillOptions struct {
	profile    profileOptions
	out        string
	document   bool
	saveInput  string
	saveDraft  bool
	draftTitle string
}

// newDriver is swapped in tests.
var newDriver = interactive.NewSurveyDriver

func newFillCmd(root *rootOptions) *cobra.Command {
	opts := &fillOptions{}
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill in the résumé form interactively",
		Long: `Prompts for every form field in the terminal, seeded with values from
--input and field flags, then renders the chosen template.

With --save-input the answers are written to a .json or .yaml file that can
be passed back through --input.

With --save-draft the answers are stored as a draft in the database named by
DATABASE_URL or the config file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFill(cmd, root, opts, newDriver())
		},
	}
	opts.profile.bind(cmd)
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file (stdout when empty)")
	cmd.Flags().BoolVar(&opts.document, "document", false, "Wrap the fragment in a standalone HTML page")
	cmd.Flags().StringVar(&opts.saveInput, "save-input", "", "Write the answers to a .json or .yaml input file")
	cmd.Flags().BoolVar(&opts.saveDraft, "save-draft", false, "Store the answers as a draft")
	cmd.Flags().StringVar(&opts.draftTitle, "draft-title", "", "Title for the saved draft (defaults to the name)")
	return cmd
}

func runFill(cmd *cobra.Command, root *rootOptions, opts *fillOptions, driver interactive.PromptDriver) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	defaults, variant, err := opts.profile.resolve(cmd, cfg)
	if err != nil {
		return err
	}

	in, variant, err := interactive.Fill(cmd.Context(), driver, defaults, interactive.Options{
		Variant:      variant,
		SummaryLimit: cfg.SummaryLimit,
	})
	if err != nil {
		return err
	}

	data := parsing.ParseProfile(in)
	if p := printer(cmd, cfg); p != nil {
		p.PrintProfile(&data)
	}

	out, err := renderOne(rendering.NewRenderer(nil), variant, data, in.Name, opts.document)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, opts.out, []byte(out)); err != nil {
		return err
	}
	reportWritten(cmd.OutOrStdout(), variant.Label()+" résumé", opts.out)

	if opts.saveInput != "" {
		if err := ingestion.SaveProfile(opts.saveInput, in); err != nil {
			return err
		}
		reportWritten(cmd.OutOrStdout(), "input file", opts.saveInput)
	}

	if !opts.saveDraft {
		return nil
	}
	dsn := databaseURL(cfg.DatabaseURL)
	if dsn == "" {
		return fmt.Errorf("--save-draft requires DATABASE_URL or database_url in the config file")
	}
	title := opts.draftTitle
	if title == "" {
		title = in.Name
	}
	return saveDraft(cmd, dsn, db.DraftInput{Title: title, Template: variant, Profile: in})
}

func saveDraft(cmd *cobra.Command, databaseURL string, in db.DraftInput) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}
	draft, err := database.CreateDraft(ctx, in)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved draft %s (%s)\n", draft.ID, draft.Template.Label())
	return nil
}
