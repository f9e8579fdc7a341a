package domain

import (
	"fmt"
	"time"
)

// DailyCronSpec returns a standard 5-field cron spec firing once a day at c.
func DailyCronSpec(c Clock) string {
	return fmt.Sprintf("%d %d * * *", c.Minute(), c.Hour())
}

// ZoneOrUTC returns loc, or UTC when loc is nil.
func ZoneOrUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}

// DateIn returns the calendar date of t in loc, formatted with DateLayout.
// A nil loc means UTC.
func DateIn(t time.Time, loc *time.Location) string {
	return t.In(ZoneOrUTC(loc)).Format(DateLayout)
}
