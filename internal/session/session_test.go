package session

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExporter struct {
	got string
	err error
}

func (f *fakeExporter) PrintToPDF(_ context.Context, document string) ([]byte, error) {
	f.got = document
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

func testInput() types.ProfileInput {
	return types.ProfileInput{
		Name:       "Grace Hopper",
		Experience: "Navy - Rear Admiral - 1943-1986 - Compilers",
		Education:  "Yale - PhD Mathematics - 1934",
		Skills:     "COBOL, Leadership",
		Summary:    "Pioneer.",
	}
}

func TestNew_DefaultsToModern(t *testing.T) {
	assert.Equal(t, types.VariantModern, New("", Options{}).Variant())
	assert.Equal(t, types.VariantModern, New("bogus", Options{}).Variant())
	assert.Equal(t, types.VariantClassic, New(types.VariantClassic, Options{}).Variant())
}

func TestSession_SelectTemplateRerenders(t *testing.T) {
	s := New(types.VariantModern, Options{})
	in := testInput()

	modern, err := s.Update(in)
	require.NoError(t, err)
	assert.Contains(t, modern.HTML, "template-modern")
	assert.Contains(t, modern.HTML, "Work Experience")

	executive, err := s.SelectTemplate(types.VariantExecutive, in)
	require.NoError(t, err)
	assert.Equal(t, types.VariantExecutive, executive.Variant)
	assert.Equal(t, types.VariantExecutive, s.Variant())
	assert.Contains(t, executive.HTML, "template-executive")
	assert.Contains(t, executive.HTML, "Professional Experience")
	assert.Contains(t, executive.HTML, "Core Competencies")

	for _, want := range []string{"Grace Hopper", "Navy", "Rear Admiral", "Yale", "COBOL"} {
		assert.Contains(t, modern.HTML, want)
		assert.Contains(t, executive.HTML, want)
	}
	assert.NotEqual(t, modern.HTML, executive.HTML)
}

func TestSession_SelectInvalidTemplateKeepsSelection(t *testing.T) {
	s := New(types.VariantClassic, Options{})

	_, err := s.SelectTemplate("fancy", testInput())
	require.Error(t, err)

	var invalid *types.InvalidVariantError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, types.VariantClassic, s.Variant())
}

func TestSession_UpdateReadsFreshInput(t *testing.T) {
	s := New(types.VariantModern, Options{})

	first, err := s.Update(testInput())
	require.NoError(t, err)
	assert.Contains(t, first.HTML, "Navy")

	second, err := s.Update(types.ProfileInput{})
	require.NoError(t, err)
	assert.NotContains(t, second.HTML, "Navy")
	assert.Contains(t, second.HTML, "Your Name")
}

func TestSession_SummaryMeter(t *testing.T) {
	s := New(types.VariantModern, Options{SummaryLimit: 10})

	p, err := s.Update(types.ProfileInput{Summary: strings.Repeat("x", 12)})
	require.NoError(t, err)

	assert.Equal(t, 12, p.Summary.Count)
	assert.Equal(t, 10, p.Summary.Limit)
	assert.True(t, p.Summary.OverLimit)
	assert.Equal(t, float64(100), p.Summary.Progress)
}

func TestSession_IndependentState(t *testing.T) {
	a := New(types.VariantModern, Options{})
	b := New(types.VariantModern, Options{})

	_, err := a.SelectTemplate(types.VariantClassic, types.ProfileInput{})
	require.NoError(t, err)

	assert.Equal(t, types.VariantClassic, a.Variant())
	assert.Equal(t, types.VariantModern, b.Variant())
}

func TestSession_Print(t *testing.T) {
	s := New(types.VariantClassic, Options{})

	doc, err := s.Print(testInput())
	require.NoError(t, err)

	assert.Contains(t, doc, "<title>Resume - Grace Hopper</title>")
	assert.Contains(t, doc, "template-classic")
	assert.Contains(t, doc, "window.print()")
}

func TestSession_ExportPDF(t *testing.T) {
	s := New(types.VariantExecutive, Options{})
	exp := &fakeExporter{}

	pdf, err := s.ExportPDF(context.Background(), testInput(), exp)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
	assert.Contains(t, exp.got, "template-executive")
	assert.NotContains(t, exp.got, "window.print()")
}

func TestSession_ExportPDFErrors(t *testing.T) {
	s := New(types.VariantModern, Options{})

	_, err := s.ExportPDF(context.Background(), testInput(), nil)
	assert.Error(t, err)

	boom := errors.New("chrome missing")
	_, err = s.ExportPDF(context.Background(), testInput(), &fakeExporter{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestStore_Lifecycle(t *testing.T) {
	st := NewStore(Options{})

	s := st.Create(types.VariantExecutive)
	require.NotNil(t, s)
	assert.Equal(t, 1, st.Len())
	assert.Same(t, s, st.Get(s.ID))

	assert.True(t, st.Delete(s.ID))
	assert.False(t, st.Delete(s.ID))
	assert.Nil(t, st.Get(s.ID))
}

func TestStore_Prune(t *testing.T) {
	st := NewStore(Options{})
	old := st.Create(types.VariantModern)
	old.lastUsed = time.Now().Add(-2 * time.Hour)
	fresh := st.Create(types.VariantModern)
	fresh.CreatedAt = time.Now().Add(-3 * time.Hour)
	_, err := fresh.Update(types.ProfileInput{})
	require.NoError(t, err)

	removed := st.Prune(time.Now().Add(-time.Hour))

	assert.Equal(t, 1, removed)
	assert.Nil(t, st.Get(old.ID))
	assert.NotNil(t, st.Get(fresh.ID))
}
