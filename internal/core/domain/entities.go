package domain

import "time"

// Role represents user role in the system
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// PolicyPeriod computes the end date for a policy starting at start:
// the same calendar date one year later, with Feb 29 normalized to Feb 28
// when the following year is not a leap year.
func PolicyPeriod(start time.Time) (time.Time, time.Time) {
	end := time.Date(start.Year()+1, start.Month(), start.Day(),
		start.Hour(), start.Minute(), start.Second(), start.Nanosecond(), start.Location())
	if end.Month() != start.Month() {
		end = end.AddDate(0, 0, -end.Day())
	}
	return start, end
}
