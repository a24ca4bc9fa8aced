package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// InputDateLayout is the only format accepted on data entry: MM-DD-YYYY.
const InputDateLayout = "01-02-2006"

// cellDateLayouts are the formats a date cell may come back in. The sheet is
// formatted mm-dd-yyyy, but externally edited rows show up in a handful of
// common renderings.
var cellDateLayouts = []string{
	"01-02-2006",
	"1-2-2006",
	"01/02/2006",
	"1/2/2006",
	"2006-01-02",
	"02-Jan-2006",
	"January 2, 2006",
}

// ParseCellDate parses a date cell read from the register. ok is false for
// empty or unparsable values.
func ParseCellDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range cellDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ValidateInputDate checks a submission date field. Empty is allowed; any
// non-empty value must parse strictly as MM-DD-YYYY.
func ValidateInputDate(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if _, err := time.Parse(InputDateLayout, strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("not a valid MM-DD-YYYY date: %q", value)
	}
	return nil
}

// DateFormula renders a parsed date as a sheet-native formula so the cell is
// typed as a date at the destination instead of a plain string.
func DateFormula(t time.Time) string {
	return fmt.Sprintf("=DATE(%d,%d,%d)", t.Year(), int(t.Month()), t.Day())
}

// DaysUntil returns the signed whole-day difference between a calendar date
// and today, ignoring time-of-day on both sides.
func DaysUntil(date, today time.Time) int {
	d := civil(date)
	t := civil(today)
	return int(d.Sub(t).Hours() / 24)
}

func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CoerceNumeric converts a numeric-looking string (digits with at most one
// dot) to int64 or float64 so the register types the cell numerically.
// Everything else passes through unchanged.
func CoerceNumeric(value string) any {
	if value == "" || strings.Count(value, ".") > 1 {
		return value
	}
	digitsOnly := strings.ReplaceAll(value, ".", "")
	if digitsOnly == "" {
		return value
	}
	for _, r := range digitsOnly {
		if r < '0' || r > '9' {
			return value
		}
	}
	if strings.Contains(value, ".") {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		return value
	}
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n
	}
	return value
}

// FormatDays renders a day count with thousands separators, the way the
// reminders view shows it.
func FormatDays(days int) string {
	neg := days < 0
	if neg {
		days = -days
	}
	s := strconv.Itoa(days)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
