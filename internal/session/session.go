// Package session holds the per-editor state of the résumé builder: the
// selected template. Every action re-renders from the form snapshot it is
// given; nothing else is carried between calls.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/parsing"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// PDFExporter converts a standalone HTML document into PDF bytes.
type PDFExporter interface {
	PrintToPDF(ctx context.Context, document string) ([]byte, error)
}

// Preview is the output of update and select-template.
type Preview struct {
	Variant types.Variant
	HTML    string
	Summary types.SummaryMeter
}

// Options configures a session.
type Options struct {
	Renderer     *rendering.Renderer
	SummaryLimit int
}

// Session carries the selected template between renders.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu           sync.Mutex
	variant      types.Variant
	lastUsed     time.Time
	renderer     *rendering.Renderer
	summaryLimit int
}

// New creates a session with the given initial variant. An invalid or empty
// variant starts on types.DefaultVariant.
func New(initial types.Variant, opts Options) *Session {
	if !initial.Valid() {
		initial = types.DefaultVariant
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = rendering.NewRenderer(nil)
	}
	now := time.Now().UTC()
	return &Session{
		ID:           uuid.New(),
		CreatedAt:    now,
		lastUsed:     now,
		variant:      initial,
		renderer:     renderer,
		summaryLimit: opts.SummaryLimit,
	}
}

// Variant returns the selected template.
func (s *Session) Variant() types.Variant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.variant
}

// LastUsed returns when the session last rendered.
func (s *Session) LastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

// SelectTemplate stores variant and immediately re-renders in.
func (s *Session) SelectTemplate(variant types.Variant, in types.ProfileInput) (*Preview, error) {
	if !variant.Valid() {
		return nil, &types.InvalidVariantError{Value: string(variant)}
	}

	s.mu.Lock()
	s.variant = variant
	s.mu.Unlock()

	return s.Update(in)
}

// Update re-renders in with the selected template.
func (s *Session) Update(in types.ProfileInput) (*Preview, error) {
	s.mu.Lock()
	variant := s.variant
	s.lastUsed = time.Now().UTC()
	s.mu.Unlock()

	html, err := s.renderer.Render(variant, parsing.ParseProfile(in))
	if err != nil {
		return nil, fmt.Errorf("failed to render %s template: %w", variant, err)
	}

	return &Preview{
		Variant: variant,
		HTML:    html,
		Summary: rendering.MeasureSummary(in.Summary, s.summaryLimit),
	}, nil
}

// Print returns the standalone document for the browser print dialog. The
// page opens the dialog itself once loaded.
func (s *Session) Print(in types.ProfileInput) (string, error) {
	return s.document(in, rendering.DocumentOptions{AutoPrint: true})
}

// ExportPDF renders the standalone document and converts it with exporter.
func (s *Session) ExportPDF(ctx context.Context, in types.ProfileInput, exporter PDFExporter) ([]byte, error) {
	if exporter == nil {
		return nil, fmt.Errorf("pdf export is not configured")
	}
	doc, err := s.document(in, rendering.DocumentOptions{})
	if err != nil {
		return nil, err
	}
	pdf, err := exporter.PrintToPDF(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to export pdf: %w", err)
	}
	return pdf, nil
}

func (s *Session) document(in types.ProfileInput, opts rendering.DocumentOptions) (string, error) {
	preview, err := s.Update(in)
	if err != nil {
		return "", err
	}
	return rendering.Document(preview.HTML, in.Name, opts)
}
