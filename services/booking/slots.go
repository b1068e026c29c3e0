package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock converts an "HH:MM" wall-clock string to minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return hours*60 + minutes, nil
}

// FormatClock converts minutes since midnight back to "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// GenerateHourlySlots produces the bookable start times for a daily working
// window: one slot per hour from start up to and including end. start > end
// yields no slots (overnight shifts are not supported); start == end yields
// exactly one.
func GenerateHourlySlots(start, end string) []string {
	startMin, err := ParseClock(start)
	if err != nil {
		return nil
	}
	endMin, err := ParseClock(end)
	if err != nil {
		return nil
	}

	var slots []string
	for current := startMin; current <= endMin; current += 60 {
		slots = append(slots, FormatClock(current))
	}
	return slots
}

// weekdayNames maps working-day labels to weekdays. Stylists store their days
// in their display language, so both English and Swedish names resolve.
var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"söndag":    time.Sunday,
	"monday":    time.Monday,
	"måndag":    time.Monday,
	"tuesday":   time.Tuesday,
	"tisdag":    time.Tuesday,
	"wednesday": time.Wednesday,
	"onsdag":    time.Wednesday,
	"thursday":  time.Thursday,
	"torsdag":   time.Thursday,
	"friday":    time.Friday,
	"fredag":    time.Friday,
	"saturday":  time.Saturday,
	"lördag":    time.Saturday,
}

// IsDateSelectable reports whether a calendar date can be offered for booking
// given the stylist's working weekdays. Same-day booking is disallowed: the
// earliest selectable date is the day after now. Unknown weekday labels are
// skipped, so a date whose weekday cannot be matched is not selectable.
func IsDateSelectable(date time.Time, workingDays []string, now time.Time) bool {
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
	tomorrow := day(now).AddDate(0, 0, 1)
	if day(date).Before(tomorrow) {
		return false
	}

	for _, name := range workingDays {
		weekday, ok := weekdayNames[strings.ToLower(name)]
		if !ok {
			continue
		}
		if weekday == date.Weekday() {
			return true
		}
	}
	return false
}

// KnownWeekday reports whether a working-day label names one of the seven
// weekdays in a supported language.
func KnownWeekday(name string) bool {
	_, ok := weekdayNames[strings.ToLower(name)]
	return ok
}
