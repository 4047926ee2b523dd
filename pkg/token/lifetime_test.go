package token

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseLifetime_Apply(t *testing.T) {
	base := time.Date(2017, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		lifetime string
		want     time.Time
	}{
		{"+3 days", base.AddDate(0, 0, 3)},
		{"+1 day", base.AddDate(0, 0, 1)},
		{"3 days", base.AddDate(0, 0, 3)},
		{"+3days", base.AddDate(0, 0, 3)},
		{"-2 days", base.AddDate(0, 0, -2)},
		{"+1 year", base.AddDate(1, 0, 0)},
		{"+2 years", base.AddDate(2, 0, 0)},
		{"+6 months", base.AddDate(0, 6, 0)},
		{"+2 weeks", base.AddDate(0, 0, 14)},
		{"+1 fortnight", base.AddDate(0, 0, 14)},
		{"+90 minutes", base.Add(90 * time.Minute)},
		{"+30 mins", base.Add(30 * time.Minute)},
		{"+12 hours", base.Add(12 * time.Hour)},
		{"+45 seconds", base.Add(45 * time.Second)},
		{"+10 sec", base.Add(10 * time.Second)},
		{"+1 day +2 hours", base.AddDate(0, 0, 1).Add(2 * time.Hour)},
		{"+1 Year -1 Day", base.AddDate(1, 0, -1)},
		{"  +3   DAYS  ", base.AddDate(0, 0, 3)},
		{"+ 3 days", base.AddDate(0, 0, 3)},
		{"- 2 hours", base.Add(-2 * time.Hour)},
		{"3 days ago", base.AddDate(0, 0, -3)},
		{"+1 day +2 hours ago", base.AddDate(0, 0, -1).Add(-2 * time.Hour)},
		{"-1 week ago", base.AddDate(0, 0, 7)},
		{"next month", base.AddDate(0, 1, 0)},
		{"last year", base.AddDate(-1, 0, 0)},
		{"2 hours ago +1 day", base.AddDate(0, 0, 1).Add(-2 * time.Hour)},
		{"+2562047 hours", base.Add(2562047 * time.Hour)},
		{"+10000 years", base.AddDate(10000, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.lifetime, func(t *testing.T) {
			l, err := ParseLifetime(tt.lifetime)
			if err != nil {
				t.Fatalf("ParseLifetime(%q) error = %v", tt.lifetime, err)
			}
			if got := l.Apply(base); !got.Equal(tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
			if l.String() != tt.lifetime {
				t.Errorf("String() = %q, want %q", l.String(), tt.lifetime)
			}
		})
	}
}

func TestParseLifetime_MonthOverflow(t *testing.T) {
	base := time.Date(2017, 1, 31, 0, 0, 0, 0, time.UTC)
	l, err := ParseLifetime("+1 month")
	if err != nil {
		t.Fatalf("ParseLifetime() error = %v", err)
	}

	want := time.Date(2017, 3, 3, 0, 0, 0, 0, time.UTC)
	if got := l.Apply(base); !got.Equal(want) {
		t.Errorf("Apply() = %v, want %v", got, want)
	}
}

func TestParseLifetime_KeepsLocation(t *testing.T) {
	zone := time.FixedZone("", 2*60*60)
	base := time.Date(2017, 6, 1, 12, 0, 0, 0, zone)
	l, _ := ParseLifetime("+3 days")

	if got := l.Apply(base).Format(TimestampLayout); got != "2017-06-04T12:00:00+02:00" {
		t.Errorf("Apply() = %s, want 2017-06-04T12:00:00+02:00", got)
	}
}

func TestParseLifetime_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		lifetime string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"no number", "days"},
		{"missing unit", "+3"},
		{"unknown unit", "+3 parsecs"},
		{"double sign", "+ +3 days"},
		{"lone sign", "+"},
		{"garbage", "tomorrow"},
		{"weekday", "next monday"},
		{"ago only", "ago"},
		{"next without unit", "next"},
		{"overflow", "+99999999999999999999 days"},
		{"hours overflow", "+9999999999 hours"},
		{"negative hours overflow", "-9999999999 hours"},
		{"clock sum overflow", "+9000000000 seconds +9000000000 seconds"},
		{"minutes overflow", "+200000000000 minutes"},
		{"years out of range", "+10001 years"},
		{"months out of range", "+120001 months"},
		{"weeks out of range", "+1000000000 weeks"},
		{"days sum out of range", "+3000000 days +3000000 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLifetime(tt.lifetime)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("ParseLifetime(%q) error = %v, want ErrInvalidInput", tt.lifetime, err)
			}
		})
	}
}

func TestParseLifetime_OutOfRangeDetails(t *testing.T) {
	_, err := ParseLifetime("+9999999999 hours")

	var te *Error
	if !errors.As(err, &te) {
		t.Fatalf("error = %v, want *Error", err)
	}
	if !strings.Contains(te.Details, "offset out of range") {
		t.Errorf("Details = %q, want offset out of range", te.Details)
	}
}
