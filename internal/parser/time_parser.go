package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseDateTime parses the date/time inputs accepted by the session
// form.
// Supported formats:
// - "now"
// - HH:MM (today at that time, e.g. "19:30")
// - dd/mm/yyyy (start of day, e.g. "15/12/2025")
// - dd/mm/yyyy HH:MM (e.g. "15/12/2025 19:30")
func ParseDateTime(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "now") {
		return now, nil
	}

	if t, err := parseClock(input, now); err == nil {
		return t, nil
	}
	if t, err := parseDate(input, now.Location()); err == nil {
		return t, nil
	}
	if t, err := parseDateClock(input, now.Location()); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid time format. Use: now, HH:MM, dd/mm/yyyy, or dd/mm/yyyy HH:MM")
}

var (
	clockRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	dateRegex  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
)

// parseClock parses HH:MM on today's date.
func parseClock(input string, now time.Time) (time.Time, error) {
	matches := clockRegex.FindStringSubmatch(input)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid clock format")
	}

	hour, _ := strconv.Atoi(matches[1])
	minute, _ := strconv.Atoi(matches[2])
	if hour > 23 {
		return time.Time{}, fmt.Errorf("hour must be between 0 and 23")
	}
	if minute > 59 {
		return time.Time{}, fmt.Errorf("minute must be between 0 and 59")
	}

	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()), nil
}

// parseDate parses dd/mm/yyyy at midnight.
func parseDate(input string, loc *time.Location) (time.Time, error) {
	matches := dateRegex.FindStringSubmatch(input)
	if len(matches) != 4 {
		return time.Time{}, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)

	// Reject dates that rolled over (handles short months, leap years)
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date")
	}

	return t, nil
}

// parseDateClock parses "dd/mm/yyyy HH:MM".
func parseDateClock(input string, loc *time.Location) (time.Time, error) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return time.Time{}, fmt.Errorf("invalid date-time format")
	}

	day, err := parseDate(fields[0], loc)
	if err != nil {
		return time.Time{}, err
	}
	clock, err := parseClock(fields[1], day)
	if err != nil {
		return time.Time{}, err
	}
	return clock, nil
}
