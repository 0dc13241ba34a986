package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

// loadConfig reads --config when given and applies built-in defaults.
func (o *rootOptions) loadConfig() (config.Config, error) {
	file := &config.Config{}
	if o.configPath != "" {
		loaded, err := config.LoadConfig(o.configPath)
		if err != nil {
			return config.Config{}, err
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		file = loaded
	}

	cfg := file.MergeWithDefaults(config.Config{})
	cfg.Verbose = cfg.Verbose || o.verbose
	return cfg, nil
}

// printer returns a verbose printer on stderr, or nil when verbose is off.
func printer(cmd *cobra.Command, cfg config.Config) *observability.Printer {
	if !cfg.Verbose {
		return nil
	}
	return observability.NewPrinter(cmd.ErrOrStderr())
}

// profileOptions binds the form fields, --input and --template.
type profileOptions struct {
	input    string
	template string
	fields   types.ProfileInput
}

var profileFlagNames = []string{"name", "title", "email", "phone", "location", "summary", "experience", "education", "skills"}

func (o *profileOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.input, "input", "i", "", "Path to a JSON or YAML profile file")
	f.StringVarP(&o.template, "template", "t", "", "Template: modern, classic or executive (default modern)")

	f.StringVar(&o.fields.Name, "name", "", "Full name")
	f.StringVar(&o.fields.Title, "title", "", "Professional title")
	f.StringVar(&o.fields.Email, "email", "", "Email address")
	f.StringVar(&o.fields.Phone, "phone", "", "Phone number")
	f.StringVar(&o.fields.Location, "location", "", "Location, e.g. \"City, State\"")
	f.StringVar(&o.fields.Summary, "summary", "", "Professional summary")
	f.StringVar(&o.fields.Experience, "experience", "", "Experience, one \"Company - Position - Period - Description\" per line")
	f.StringVar(&o.fields.Education, "education", "", "Education, one \"Institution - Degree - Period\" per line")
	f.StringVar(&o.fields.Skills, "skills", "", "Comma-separated skills")
}

// resolve builds the form from the input file, then applies every field flag
// that was set explicitly, even to an empty value.
func (o *profileOptions) resolve(cmd *cobra.Command, cfg config.Config) (types.ProfileInput, types.Variant, error) {
	path := o.input
	if path == "" {
		path = cfg.Input
	}

	var in types.ProfileInput
	if path != "" {
		loaded, err := ingestion.LoadProfile(path)
		if err != nil {
			return types.ProfileInput{}, "", err
		}
		in = loaded
	}

	flags := cmd.Flags()
	targets := []*string{&in.Name, &in.Title, &in.Email, &in.Phone, &in.Location, &in.Summary, &in.Experience, &in.Education, &in.Skills}
	values := []string{o.fields.Name, o.fields.Title, o.fields.Email, o.fields.Phone, o.fields.Location, o.fields.Summary, o.fields.Experience, o.fields.Education, o.fields.Skills}
	for i, name := range profileFlagNames {
		if flags.Changed(name) {
			*targets[i] = values[i]
		}
	}

	template := cfg.Template
	if flags.Changed("template") {
		template = o.template
	}
	variant, err := types.ParseVariant(template)
	if err != nil {
		return types.ProfileInput{}, "", err
	}
	return in, variant, nil
}

// writeOutput writes data to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func reportWritten(w io.Writer, what, path string) {
	if path == "" {
		return
	}
	_, _ = fmt.Fprintf(w, "Successfully wrote %s\n", what)
	_, _ = fmt.Fprintf(w, "Output: %s\n", path)
}
