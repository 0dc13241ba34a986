package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(&types.ResumeData{
		Name:     "Ada Lovelace",
		Title:    "Analyst",
		Email:    "ada@example.com",
		Location: "London",
		Experience: []types.ExperienceEntry{
			{Company: "Engine Co", Position: "Analyst"},
			{Company: "Royal Society"},
		},
		Education: []types.EducationEntry{{Institution: "Home"}},
		Skills:    []string{"Math", "Poetry"},
	})
	output := buf.String()

	assert.Contains(t, output, "PARSED PROFILE")
	assert.Contains(t, output, "Ada Lovelace")
	assert.Contains(t, output, "ada@example.com | London")
	assert.Contains(t, output, "Experience entries: 2")
	assert.Contains(t, output, "• Engine Co (Analyst)")
	assert.Contains(t, output, "• Royal Society")
	assert.Contains(t, output, "Education entries:  1")
	assert.Contains(t, output, "Math, Poetry")
}

func TestPrintProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfile(nil)
	assert.Empty(t, buf.String())
}

func TestPrintProfile_TruncatesList(t *testing.T) {
	var buf bytes.Buffer
	data := &types.ResumeData{}
	for i := 0; i < 8; i++ {
		data.Experience = append(data.Experience, types.ExperienceEntry{Company: "Co"})
	}

	NewPrinter(&buf).PrintProfile(data)
	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintRender(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRender(types.VariantExecutive, "<div></div>", types.SummaryMeter{Count: 330, Limit: 300, Progress: 100, OverLimit: true})

	output := buf.String()
	assert.Contains(t, output, "RENDERED")
	assert.Contains(t, output, "Template: Executive")
	assert.Contains(t, output, "Output:   11 bytes")
	assert.Contains(t, output, "330/300 characters (100%) over limit")
}

func TestPrintExport(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintExport("pdf", "", 2048)

	output := buf.String()
	assert.Contains(t, output, "EXPORTED PDF")
	assert.Contains(t, output, "(stdout)")
	assert.Contains(t, output, "2048 bytes")
}

func TestPrintBox_LinesHaveEqualWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.printBox("TITLE", "short\n"+strings.Repeat("é", 100)+"\n• bullet")

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), line)
	}
}
