package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrEmptyClock   = errors.New("empty clock")
	ErrInvalidClock = errors.New("invalid clock")
)

// DateLayout is the storage format of DailyTask and ProgressLog dates.
const DateLayout = "2006-01-02"

// Clock is a time of day in minutes since midnight (0..1439).
type Clock int

// Hour returns the hour component.
func (c Clock) Hour() int { return int(c) / 60 }

// Minute returns the minute component.
func (c Clock) Minute() int { return int(c) % 60 }

// String returns HH:MM.
func (c Clock) String() string {
	return FormatMinutes(int(c))
}

// ParseClock parses "HH:MM" (also "H:MM") into a Clock.
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyClock
	}
	m, err := parseHHMM(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidClock, s, err)
	}
	return Clock(m), nil
}

func parseHHMM(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, errors.New("expected HH:MM")
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, errors.New("invalid hour")
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, errors.New("invalid minute")
	}
	return h*60 + m, nil
}

// LoadZone resolves an IANA zone name. Empty means UTC.
func LoadZone(tz string) (*time.Location, error) {
	if strings.TrimSpace(tz) == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(tz)
}

// FormatMinutes returns HH:MM for minutes since midnight (00:00..23:59).
func FormatMinutes(mins int) string {
	if mins < 0 {
		mins = 0
	}
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}
