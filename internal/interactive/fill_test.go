package interactive

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDriver answers prompts by message and records what was asked.
type fakeDriver struct {
	answers   map[string]string
	selection int
	failOn    string

	defaults map[string]string
	selected SelectConfig
	infos    []string
}

func newFakeDriver(answers map[string]string, selection int) *fakeDriver {
	return &fakeDriver{answers: answers, selection: selection, defaults: map[string]string{}}
}

func (f *fakeDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	return f.answer(cfg.Message, cfg.Default)
}

func (f *fakeDriver) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	return f.answer(cfg.Message, cfg.Default)
}

func (f *fakeDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	f.selected = cfg
	if f.failOn == cfg.Message {
		return 0, ErrAborted
	}
	return f.selection, nil
}

func (f *fakeDriver) Info(_ context.Context, msg string) error {
	f.infos = append(f.infos, msg)
	return nil
}

func (f *fakeDriver) answer(message, def string) (string, error) {
	f.defaults[message] = def
	if f.failOn == message {
		return "", ErrAborted
	}
	if v, ok := f.answers[message]; ok {
		return v, nil
	}
	return def, nil
}

func TestFill_CollectsAllFields(t *testing.T) {
	driver := newFakeDriver(map[string]string{
		"Full name":            "Ada Lovelace",
		"Professional title":   "Programmer",
		"Email":                "ada@example.com",
		"Phone":                "555-0100",
		"Location":             "London",
		"Professional summary": "First programmer.",
		"Experience":           "Engine Co - Analyst - 1843 - Notes",
		"Education":            "Home - Tutoring - 1830",
		"Skills":               "Math, Poetry",
	}, 2)

	in, variant, err := Fill(context.Background(), driver, types.ProfileInput{}, Options{})
	require.NoError(t, err)

	assert.Equal(t, types.ProfileInput{
		Name:       "Ada Lovelace",
		Title:      "Programmer",
		Email:      "ada@example.com",
		Phone:      "555-0100",
		Location:   "London",
		Summary:    "First programmer.",
		Experience: "Engine Co - Analyst - 1843 - Notes",
		Education:  "Home - Tutoring - 1830",
		Skills:     "Math, Poetry",
	}, in)
	assert.Equal(t, types.VariantExecutive, variant)
	assert.Equal(t, []string{"Modern", "Classic", "Executive"}, driver.selected.Options)
	assert.Equal(t, []string{"Summary: 17/300 characters"}, driver.infos)
}

func TestFill_SeedsDefaults(t *testing.T) {
	driver := newFakeDriver(nil, 1)
	defaults := types.ProfileInput{Name: "Grace", Skills: "COBOL"}

	in, variant, err := Fill(context.Background(), driver, defaults, Options{Variant: types.VariantClassic})
	require.NoError(t, err)

	assert.Equal(t, "Grace", driver.defaults["Full name"])
	assert.Equal(t, "COBOL", driver.defaults["Skills"])
	assert.Equal(t, defaults, in)
	assert.Equal(t, 1, driver.selected.DefaultIndex)
	assert.Equal(t, types.VariantClassic, variant)
}

func TestFill_ReportsOverLimitSummary(t *testing.T) {
	driver := newFakeDriver(map[string]string{"Professional summary": "abcdefghijk"}, 0)

	_, _, err := Fill(context.Background(), driver, types.ProfileInput{}, Options{SummaryLimit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"Summary: 11/10 characters (over limit)"}, driver.infos)
}

func TestFill_OutOfRangeSelectionFallsBack(t *testing.T) {
	driver := newFakeDriver(nil, -1)

	_, variant, err := Fill(context.Background(), driver, types.ProfileInput{}, Options{})
	require.NoError(t, err)
	assert.Equal(t, types.DefaultVariant, variant)
}

func TestFill_AbortPropagates(t *testing.T) {
	for _, message := range []string{"Email", "Experience", "Template"} {
		t.Run(message, func(t *testing.T) {
			driver := newFakeDriver(nil, 0)
			driver.failOn = message

			_, _, err := Fill(context.Background(), driver, types.ProfileInput{}, Options{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrAborted))
		})
	}
}

func TestIndexOf(t *testing.T) {
	options := []string{"Modern", "Classic"}
	assert.Equal(t, 1, indexOf(options, "Classic"))
	assert.Equal(t, -1, indexOf(options, "Executive"))
}
