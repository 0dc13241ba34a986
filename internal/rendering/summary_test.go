package rendering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasureSummary(t *testing.T) {
	tests := []struct {
		name     string
		summary  string
		limit    int
		count    int
		progress float64
		over     bool
	}{
		{name: "empty", summary: "", limit: 300, count: 0, progress: 0},
		{name: "half", summary: strings.Repeat("a", 150), limit: 300, count: 150, progress: 50},
		{name: "at limit", summary: strings.Repeat("a", 300), limit: 300, count: 300, progress: 100},
		{name: "over limit caps progress", summary: strings.Repeat("a", 450), limit: 300, count: 450, progress: 100, over: true},
		{name: "counts runes", summary: "résumé", limit: 10, count: 6, progress: 60},
		{name: "default limit", summary: "abc", limit: 0, count: 3, progress: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MeasureSummary(tt.summary, tt.limit)
			assert.Equal(t, tt.count, m.Count)
			assert.InDelta(t, tt.progress, m.Progress, 0.001)
			assert.Equal(t, tt.over, m.OverLimit)
			if tt.limit > 0 {
				assert.Equal(t, tt.limit, m.Limit)
			} else {
				assert.Equal(t, DefaultSummaryLimit, m.Limit)
			}
		})
	}
}
