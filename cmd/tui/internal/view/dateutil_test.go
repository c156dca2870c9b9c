package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/waserda/kasir/internal/period"
)

func TestTimeframeRange(t *testing.T) {
	// Friday.
	now := time.Date(2025, 3, 14, 16, 45, 0, 0, time.UTC)

	d := func(day int) time.Time { return time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		tf   Timeframe
		want period.Range
	}{
		{TimeframeToday, period.Between(d(14), d(14))},
		{TimeframeYesterday, period.Between(d(13), d(13))},
		{TimeframeThisWeek, period.Between(d(10), d(14))},
		{TimeframeLastWeek, period.Between(d(3), d(9))},
		{TimeframeThisMonth, period.Between(d(1), d(14))},
		{TimeframeLastMonth, period.Between(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC))},
		{TimeframeThisYear, period.Between(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), d(14))},
		{TimeframeAll, period.Range{}},
	}

	for _, tt := range tests {
		t.Run(tt.tf.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, TimeframeRange(tt.tf, now))
		})
	}
}

func TestTimeframeRange_SundayClosesWeek(t *testing.T) {
	sunday := time.Date(2025, 3, 16, 9, 0, 0, 0, time.UTC)

	got := TimeframeRange(TimeframeThisWeek, sunday)
	assert.Equal(t, time.Monday, got.From.Weekday())
	assert.Equal(t, 10, got.From.Day())
}
