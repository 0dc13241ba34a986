package parsing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestParseMultiline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "single line", input: "one", want: []string{"one"}},
		{name: "lf", input: "one\ntwo", want: []string{"one", "two"}},
		{name: "crlf", input: "one\r\ntwo\r\n", want: []string{"one", "two"}},
		{name: "blank and whitespace lines dropped", input: "one\n\n   \n\t\ntwo", want: []string{"one", "two"}},
		{name: "retained lines keep their spacing", input: "  indented  \n", want: []string{"  indented  "}},
		{name: "only blanks", input: "\n \r\n", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseMultiline(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseMultiline() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitRecord(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "", ""}, SplitRecord("a - b", 4))
	assert.Equal(t, []string{"a", "b", "c"}, SplitRecord("a - b - c - d - e", 3))
	assert.Equal(t, []string{"a-b", "c"}, SplitRecord("a-b - c", 2))
	assert.Equal(t, []string{"", ""}, SplitRecord("", 2))
}

func TestParseExperience_FullRecord(t *testing.T) {
	got := ParseExperience("Acme Corp - Engineer - 2020-2021 - Built things")

	want := []types.ExperienceEntry{{
		Company:     "Acme Corp",
		Position:    "Engineer",
		Period:      "2020-2021",
		Description: "Built things",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseExperience() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseExperience_PartialAndExtraFields(t *testing.T) {
	text := "Acme - Engineer\nGlobex - Lead - 2019 - Led team - ignored tail\n\n"

	got := ParseExperience(text)

	want := []types.ExperienceEntry{
		{Company: "Acme", Position: "Engineer"},
		{Company: "Globex", Position: "Lead", Period: "2019", Description: "Led team"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseExperience() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseExperience_EmbeddedDelimiterShiftsFields(t *testing.T) {
	got := ParseExperience("Smith - Jones LLC - Partner - 2010")

	assert.Len(t, got, 1)
	assert.Equal(t, "Smith", got[0].Company)
	assert.Equal(t, "Jones LLC", got[0].Position)
	assert.Equal(t, "Partner", got[0].Period)
	assert.Equal(t, "2010", got[0].Description)
}

func TestParseEducation(t *testing.T) {
	text := "MIT - BSc Computer Science - 2012-2016\r\nStanford - MSc"

	got := ParseEducation(text)

	want := []types.EducationEntry{
		{Institution: "MIT", Degree: "BSc Computer Science", Period: "2012-2016"},
		{Institution: "Stanford", Degree: "MSc"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseEducation() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEducation_Empty(t *testing.T) {
	assert.Empty(t, ParseEducation(""))
	assert.Empty(t, ParseEducation("\n\n"))
}
