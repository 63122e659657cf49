package model

import "time"

// DateOnly is the wire format for calendar dates (appointment dates,
// attendance filter bounds).
const DateOnly = "2006-01-02"

// TimeOfDay is the wire format for clock times on appointments.
const TimeOfDay = "15:04"

// MaxPageSize caps every list query. Views never paginate past the first
// page; the store is asked for at most this many rows.
const MaxPageSize = 100

// DateRange is an inclusive calendar-date window. Empty bounds mean
// unconstrained.
type DateRange struct {
	From string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
}

// FormatTimestamp renders a store timestamp the way the consoles display
// them.
func FormatTimestamp(t time.Time) string {
	return t.Format("2006/01/02 15:04:05")
}
