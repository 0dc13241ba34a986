// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, inner), inner))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a summary of the parsed form: header fields and
// record counts.
func (p *Printer) PrintProfile(data *types.ResumeData) {
	if data == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:      %s\n", data.Name))
	sb.WriteString(fmt.Sprintf("Title:     %s\n", data.Title))
	sb.WriteString(fmt.Sprintf("Contact:   %s\n", strings.Join(nonEmpty(data.Email, data.Phone, data.Location), " | ")))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(data.Experience)))
	count := min(len(data.Experience), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := data.Experience[i]
		sb.WriteString(fmt.Sprintf("  • %s", e.Company))
		if e.Position != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", e.Position))
		}
		sb.WriteString("\n")
	}
	if len(data.Experience) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(data.Experience)-maxItemsToShow))
	}

	sb.WriteString(fmt.Sprintf("Education entries:  %d\n", len(data.Education)))
	count = min(len(data.Education), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", data.Education[i].Institution))
	}

	sb.WriteString(fmt.Sprintf("Skills:             %d\n", len(data.Skills)))
	if len(data.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(data.Skills, ", ")))
	}

	p.printBox("PARSED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRender outputs which template was rendered, the output size and the
// summary counter.
func (p *Printer) PrintRender(variant types.Variant, html string, meter types.SummaryMeter) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Template: %s\n", variant.Label()))
	sb.WriteString(fmt.Sprintf("Output:   %d bytes\n", len(html)))
	sb.WriteString(fmt.Sprintf("Summary:  %d/%d characters (%.0f%%)", meter.Count, meter.Limit, meter.Progress))
	if meter.OverLimit {
		sb.WriteString(" over limit")
	}
	p.printBox("RENDERED", sb.String())
}

// PrintExport outputs where an export was written.
func (p *Printer) PrintExport(format, path string, size int) {
	if path == "" {
		path = "(stdout)"
	}
	p.printBox("EXPORTED "+strings.ToUpper(format), fmt.Sprintf("File: %s\nSize: %d bytes", path, size))
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
