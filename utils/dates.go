// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DayRange returns the half-open [start, end) window covering the local
// calendar day of t. A record at exactly end belongs to the next day.
func DayRange(t time.Time) (start, end time.Time) {
	start = BeginningOfDay(t)
	return start, start.AddDate(0, 0, 1)
}

