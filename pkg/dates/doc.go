// Package dates provides calendar-day formatting and the week-anchored
// reporting window used by dashboards.
//
// GetDates(n) returns a Window whose StartDate is n days before the most
// recent Monday and whose EndDate is the current moment:
//
//	w := dates.GetDates(7)
//	// on Thursday 2024-03-07 15:04 local time:
//	// w.StartDate == 2024-02-26 15:04 (Monday 03-04 minus 7 days)
//	// w.EndDate   == 2024-03-07 15:04
//
// Sunday belongs to the week that started six days earlier. Both dates keep
// the clock time and location of "now"; only the day moves.
//
// DateStr and ParseDateStr convert between time.Time and YYYY-MM-DD strings
// in UTC.
//
// Use GetDatesWith or WindowAt when the current time must be injected, for
// example in tests.
package dates
