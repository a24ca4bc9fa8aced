package domain

import (
	"testing"
	"time"
)

func TestParseCellDate(t *testing.T) {
	tests := []struct {
		raw  string
		ok   bool
		want string // 2006-01-02 when ok
	}{
		{"12-31-2025", true, "2025-12-31"},
		{"1-5-2025", true, "2025-01-05"},
		{"01/05/2025", true, "2025-01-05"},
		{"2025-01-05", true, "2025-01-05"},
		{"05-Mar-2025", true, "2025-03-05"},
		{"", false, ""},
		{"   ", false, ""},
		{"not a date", false, ""},
		{"13-45-2024", false, ""},
	}
	for _, tt := range tests {
		got, ok := ParseCellDate(tt.raw)
		if ok != tt.ok {
			t.Errorf("ParseCellDate(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			continue
		}
		if ok && got.Format("2006-01-02") != tt.want {
			t.Errorf("ParseCellDate(%q) = %s, want %s", tt.raw, got.Format("2006-01-02"), tt.want)
		}
	}
}

func TestValidateInputDate(t *testing.T) {
	if err := ValidateInputDate(""); err != nil {
		t.Errorf("empty date should be valid: %v", err)
	}
	if err := ValidateInputDate("12-31-2025"); err != nil {
		t.Errorf("12-31-2025 should be valid: %v", err)
	}
	for _, bad := range []string{"13-45-2024", "2025-12-31", "31-12-2025", "tomorrow"} {
		if err := ValidateInputDate(bad); err == nil {
			t.Errorf("ValidateInputDate(%q) = nil, want error", bad)
		}
	}
}

func TestDateFormula(t *testing.T) {
	d := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)
	if got := DateFormula(d); got != "=DATE(2025,3,7)" {
		t.Errorf("DateFormula = %q, want =DATE(2025,3,7)", got)
	}
}

func TestDaysUntil(t *testing.T) {
	today := time.Date(2025, time.June, 15, 9, 30, 0, 0, time.UTC)
	tests := []struct {
		date string
		want int
	}{
		{"2025-06-15", 0},
		{"2025-06-16", 1},
		{"2025-06-14", -1},
		{"2025-07-15", 30},
		{"2024-06-15", -365},
	}
	for _, tt := range tests {
		d, _ := time.Parse("2006-01-02", tt.date)
		if got := DaysUntil(d, today); got != tt.want {
			t.Errorf("DaysUntil(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestCoerceNumeric(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"1200", int64(1200)},
		{"0", int64(0)},
		{"12.5", 12.5},
		{"", ""},
		{"12a", "12a"},
		{"1.2.3", "1.2.3"},
		{".", "."},
		{"-5", "-5"}, // sign is not part of the numeric-looking rule
		{"Tower A", "Tower A"},
	}
	for _, tt := range tests {
		if got := CoerceNumeric(tt.in); got != tt.want {
			t.Errorf("CoerceNumeric(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestFormatDays(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{5, "5"},
		{1500, "1,500"},
		{1234567, "1,234,567"},
		{-42, "-42"},
		{-1500, "-1,500"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := FormatDays(tt.in); got != tt.want {
			t.Errorf("FormatDays(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
