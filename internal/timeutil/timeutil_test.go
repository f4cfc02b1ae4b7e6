package timeutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/franciscoj/podium/internal/timeutil"
)

func TestSecsToMinsAndSecs(t *testing.T) {
	cases := []struct {
		secs     int
		wantMins int
		wantSecs int
	}{
		{0, 0, 0},
		{59, 0, 59},
		{60, 1, 0},
		{150, 2, 30},
		{-90, 1, 30},
	}

	for _, tc := range cases {
		mins, secs := timeutil.SecsToMinsAndSecs(tc.secs)
		assert.Equal(t, tc.wantMins, mins)
		assert.Equal(t, tc.wantSecs, secs)
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "45m", timeutil.FormatMinutes(45))
	assert.Equal(t, "1h 45m", timeutil.FormatMinutes(105))
	assert.Equal(t, "2h 00m", timeutil.FormatMinutes(120))
}

func TestFormatClock(t *testing.T) {
	moment := time.Date(2024, time.March, 12, 19, 5, 0, 0, time.UTC)

	assert.Equal(t, "19:05", timeutil.FormatClock(moment, true))
	assert.Equal(t, "07:05 PM", timeutil.FormatClock(moment, false))
}

func TestRoundToBounds(t *testing.T) {
	moment := time.Date(2024, time.March, 12, 19, 5, 33, 0, time.UTC)

	start := timeutil.RoundToStart(moment)
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 0, start.Minute())

	end := timeutil.RoundToEnd(moment)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
}

func TestToKeyOrdering(t *testing.T) {
	earlier := time.Date(2024, time.March, 12, 19, 0, 0, 0, time.UTC)
	later := earlier.Add(time.Minute)

	assert.Less(t, string(timeutil.ToKey(earlier)), string(timeutil.ToKey(later)))
}
