package interactive

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// Options tunes the Fill flow.
type Options struct {
	// Variant preselected in the template prompt. Invalid values fall back to the default.
	Variant types.Variant
	// SummaryLimit is the soft limit reported after the summary prompt.
	SummaryLimit int
}

// Fill prompts for every form field, seeding each prompt with the matching
// value from defaults, then asks for a template.
func Fill(ctx context.Context, driver PromptDriver, defaults types.ProfileInput, opts Options) (types.ProfileInput, types.Variant, error) {
	var in types.ProfileInput

	scalars := []struct {
		message string
		help    string
		def     string
		dst     *string
	}{
		{"Full name", "", defaults.Name, &in.Name},
		{"Professional title", "", defaults.Title, &in.Title},
		{"Email", "", defaults.Email, &in.Email},
		{"Phone", "", defaults.Phone, &in.Phone},
		{"Location", "City, State", defaults.Location, &in.Location},
	}
	for _, field := range scalars {
		value, err := driver.Input(ctx, InputConfig{Message: field.message, Help: field.help, Default: field.def})
		if err != nil {
			return types.ProfileInput{}, "", fmt.Errorf("prompt %q: %w", field.message, err)
		}
		*field.dst = value
	}

	summary, err := driver.TextArea(ctx, TextAreaConfig{Message: "Professional summary", Default: defaults.Summary})
	if err != nil {
		return types.ProfileInput{}, "", fmt.Errorf("prompt summary: %w", err)
	}
	in.Summary = summary

	meter := rendering.MeasureSummary(summary, opts.SummaryLimit)
	note := fmt.Sprintf("Summary: %d/%d characters", meter.Count, meter.Limit)
	if meter.OverLimit {
		note += " (over limit)"
	}
	if err := driver.Info(ctx, note); err != nil {
		return types.ProfileInput{}, "", err
	}

	multiline := []struct {
		message string
		help    string
		def     string
		dst     *string
	}{
		{"Experience", "One entry per line: Company - Position - Period - Description", defaults.Experience, &in.Experience},
		{"Education", "One entry per line: Institution - Degree - Period", defaults.Education, &in.Education},
	}
	for _, field := range multiline {
		value, err := driver.TextArea(ctx, TextAreaConfig{Message: field.message, Help: field.help, Default: field.def})
		if err != nil {
			return types.ProfileInput{}, "", fmt.Errorf("prompt %q: %w", field.message, err)
		}
		*field.dst = value
	}

	skills, err := driver.Input(ctx, InputConfig{Message: "Skills", Help: "Comma-separated", Default: defaults.Skills})
	if err != nil {
		return types.ProfileInput{}, "", fmt.Errorf("prompt skills: %w", err)
	}
	in.Skills = skills

	variant, err := selectVariant(ctx, driver, opts.Variant)
	if err != nil {
		return types.ProfileInput{}, "", err
	}
	return in, variant, nil
}

func selectVariant(ctx context.Context, driver PromptDriver, preselected types.Variant) (types.Variant, error) {
	variants := types.AllVariants()
	labels := make([]string, len(variants))
	defaultIndex := 0
	for i, v := range variants {
		labels[i] = v.Label()
		if v == preselected {
			defaultIndex = i
		}
	}

	idx, err := driver.Select(ctx, SelectConfig{Message: "Template", Options: labels, DefaultIndex: defaultIndex})
	if err != nil {
		return "", fmt.Errorf("prompt template: %w", err)
	}
	if idx < 0 || idx >= len(variants) {
		return types.DefaultVariant, nil
	}
	return variants[idx], nil
}
