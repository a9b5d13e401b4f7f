package helpers

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock12 is the 12-hour display representation of a time of day.
// Storage and transport always use the canonical 24-hour "HH:MM" string.
type Clock12 struct {
	Hour   int
	Minute int
	Period string // "AM" or "PM"
}

// To24Hour converts a 12-hour tuple to the canonical "HH:MM" string.
// PM with hour != 12 adds 12; AM with hour == 12 becomes 0.
func To24Hour(hour, minute int, period string) (string, error) {
	if hour < 1 || hour > 12 {
		return "", fmt.Errorf("hour must be between 1 and 12, got %d", hour)
	}
	if minute < 0 || minute > 59 {
		return "", fmt.Errorf("minute must be between 0 and 59, got %d", minute)
	}
	if period != "AM" && period != "PM" {
		return "", fmt.Errorf("period must be AM or PM, got %q", period)
	}

	hour24 := hour
	if period == "PM" && hour != 12 {
		hour24 = hour + 12
	} else if period == "AM" && hour == 12 {
		hour24 = 0
	}

	return fmt.Sprintf("%02d:%02d", hour24, minute), nil
}

// To12Hour converts a canonical "HH:MM" string to its 12-hour display tuple.
// Exact inverse of To24Hour for every valid 24-hour input.
func To12Hour(time24 string) (Clock12, error) {
	hour24, minute, err := splitTime(time24)
	if err != nil {
		return Clock12{}, err
	}

	period := "AM"
	if hour24 >= 12 {
		period = "PM"
	}

	hour12 := hour24
	switch {
	case hour24 == 0:
		hour12 = 12
	case hour24 > 12:
		hour12 = hour24 - 12
	}

	return Clock12{Hour: hour12, Minute: minute, Period: period}, nil
}

// Format12Hour renders "HH:MM" as "h:MM AM|PM" for display in emails.
// Unparseable input is returned unchanged.
func Format12Hour(time24 string) string {
	c, err := To12Hour(time24)
	if err != nil {
		return time24
	}
	return fmt.Sprintf("%d:%02d %s", c.Hour, c.Minute, c.Period)
}

func splitTime(time24 string) (hour, minute int, err error) {
	parts := strings.SplitN(time24, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q, want HH:MM", time24)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", time24)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", time24)
	}
	return hour, minute, nil
}
