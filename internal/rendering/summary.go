package rendering

import (
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultSummaryLimit is the advisory length of the professional summary
const DefaultSummaryLimit = 300

// MeasureSummary reports how much of the advisory summary length is used.
// Going over the limit is flagged, never rejected. A non-positive limit
// falls back to DefaultSummaryLimit.
func MeasureSummary(summary string, limit int) types.SummaryMeter {
	if limit <= 0 {
		limit = DefaultSummaryLimit
	}
	count := utf8.RuneCountInString(summary)
	progress := min(float64(count)/float64(limit)*100, 100)

	return types.SummaryMeter{
		Count:     count,
		Limit:     limit,
		Progress:  progress,
		OverLimit: count > limit,
	}
}
