package dates

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day layout produced by DateStr.
const DateLayout = "2006-01-02"

// Window is a reporting range. EndDate is the moment it was computed.
type Window struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// GetDates returns the window starting noOfDays before the most recent Monday
// and ending now.
func GetDates(noOfDays int) Window {
	return WindowAt(time.Now(), noOfDays)
}

// GetDatesWith is GetDates with an explicit clock.
func GetDatesWith(clock Clock, noOfDays int) Window {
	if clock == nil {
		clock = SystemClock{}
	}
	return WindowAt(clock.Now(), noOfDays)
}

// WindowAt computes the window relative to now. StartDate keeps now's time of
// day and location, moved back to the most recent Monday (today, when now is
// a Monday) and then back noOfDays more days. EndDate is now, unchanged; it is
// not aligned to the week.
func WindowAt(now time.Time, noOfDays int) Window {
	return Window{
		StartDate: MostRecentMonday(now).AddDate(0, 0, -noOfDays),
		EndDate:   now,
	}
}

// MostRecentMonday returns t moved back to the Monday of its week, with weeks
// starting on Monday. Time of day is preserved.
func MostRecentMonday(t time.Time) time.Time {
	back := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		back = 6
	}
	return t.AddDate(0, 0, -back)
}

// DateStr formats t as YYYY-MM-DD in UTC.
func DateStr(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDateStr parses a YYYY-MM-DD string into midnight UTC.
func ParseDateStr(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, s, err)
	}
	return t, nil
}
