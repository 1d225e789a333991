package dates_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/odash/pkg/dates"
)

func TestWindowAt(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+3", 3*60*60)

	tests := []struct {
		name      string
		now       time.Time
		days      int
		wantStart time.Time
	}{
		{
			name:      "thursday",
			now:       time.Date(2024, 3, 7, 15, 4, 5, 0, loc),
			days:      7,
			wantStart: time.Date(2024, 2, 26, 15, 4, 5, 0, loc),
		},
		{
			name:      "monday is its own week start",
			now:       time.Date(2024, 3, 4, 9, 0, 0, 0, loc),
			days:      0,
			wantStart: time.Date(2024, 3, 4, 9, 0, 0, 0, loc),
		},
		{
			name:      "sunday goes back six days",
			now:       time.Date(2024, 3, 10, 23, 30, 0, 0, loc),
			days:      0,
			wantStart: time.Date(2024, 3, 4, 23, 30, 0, 0, loc),
		},
		{
			name:      "crosses month and year",
			now:       time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC),
			days:      3,
			wantStart: time.Date(2024, 12, 27, 8, 0, 0, 0, time.UTC),
		},
		{
			name:      "negative days move forward",
			now:       time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
			days:      -2,
			wantStart: time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := dates.WindowAt(tt.now, tt.days)
			assert.True(t, tt.wantStart.Equal(w.StartDate), "start: want %s, got %s", tt.wantStart, w.StartDate)
			assert.True(t, tt.now.Equal(w.EndDate), "end date must be now")
		})
	}
}

func TestWindowStartIsMondayForWholeWeeks(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := range 14 {
		now := start.AddDate(0, 0, i)
		w := dates.WindowAt(now, 7)
		assert.Equal(t, time.Monday, w.StartDate.Weekday(), "now=%s", now)
		assert.False(t, w.StartDate.After(now))
		assert.LessOrEqual(t, now.Sub(w.StartDate), 13*24*time.Hour+time.Hour)
	}
}

func TestGetDatesWith(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)
	w := dates.GetDatesWith(dates.FixedClock(now), 7)
	assert.Equal(t, now, w.EndDate)
	assert.Equal(t, time.Date(2024, 2, 26, 10, 0, 0, 0, time.UTC), w.StartDate)
}

func TestGetDates(t *testing.T) {
	t.Parallel()

	before := time.Now()
	w := dates.GetDates(7)
	after := time.Now()

	assert.False(t, w.EndDate.Before(before))
	assert.False(t, w.EndDate.After(after))
	assert.Equal(t, time.Monday, w.StartDate.Weekday())
	assert.True(t, w.StartDate.Before(w.EndDate))
}

func TestMostRecentMonday(t *testing.T) {
	t.Parallel()

	sunday := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), dates.MostRecentMonday(sunday))

	saturday := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), dates.MostRecentMonday(saturday))
}

func TestDateStr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-03-05", dates.DateStr(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)))

	// 01:00 at UTC+3 is still the previous day in UTC.
	loc := time.FixedZone("UTC+3", 3*60*60)
	assert.Equal(t, "2024-03-04", dates.DateStr(time.Date(2024, 3, 5, 1, 0, 0, 0, loc)))
}

func TestParseDateStr(t *testing.T) {
	t.Parallel()

	got, err := dates.ParseDateStr("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, "2024-03-05", dates.DateStr(got))

	_, err = dates.ParseDateStr("05/03/2024")
	assert.ErrorIs(t, err, dates.ErrInvalidDate)

	_, err = dates.ParseDateStr("2024-02-30")
	assert.ErrorIs(t, err, dates.ErrInvalidDate)
}

func TestWindowJSON(t *testing.T) {
	t.Parallel()

	w := dates.Window{
		StartDate: time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
	}
	data, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"startDate":"2024-02-26T00:00:00Z","endDate":"2024-03-07T00:00:00Z"}`, string(data))
}
