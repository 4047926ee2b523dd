package token

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// DefaultLifetime is applied when no lifetime is given.
const DefaultLifetime = "+3 days"

// Lifetime is a parsed relative time offset such as "+3 days" or
// "+1 year -2 hours".
//
// Calendar units are applied with time.AddDate, so months and years
// overflow the way calendar arithmetic does (Jan 31 + 1 month lands in
// March). Clock units are applied as an exact duration afterwards.
type Lifetime struct {
	text   string
	years  int
	months int
	days   int
	clock  time.Duration
}

type unit int

const (
	unitSecond unit = iota
	unitMinute
	unitHour
	unitDay
	unitWeek
	unitFortnight
	unitMonth
	unitYear
)

var lifetimeUnits = map[string]unit{
	"sec": unitSecond, "secs": unitSecond, "second": unitSecond, "seconds": unitSecond,
	"min": unitMinute, "mins": unitMinute, "minute": unitMinute, "minutes": unitMinute,
	"hour": unitHour, "hours": unitHour,
	"day": unitDay, "days": unitDay,
	"week": unitWeek, "weeks": unitWeek,
	"fortnight": unitFortnight, "fortnights": unitFortnight,
	"month": unitMonth, "months": unitMonth,
	"year": unitYear, "years": unitYear,
}

// Limits on the summed calendar terms of a lifetime.
const (
	maxOffsetYears  = 10000
	maxOffsetMonths = 12 * maxOffsetYears
	maxOffsetDays   = 366 * maxOffsetYears
)

var clockUnits = map[unit]time.Duration{
	unitSecond: time.Second,
	unitMinute: time.Minute,
	unitHour:   time.Hour,
}

var dayUnits = map[unit]int{
	unitDay:       1,
	unitWeek:      7,
	unitFortnight: 14,
}

// ParseLifetime parses a relative offset.
//
// The grammar is one or more whitespace separated terms:
//
//	[+|-]N unit    the sign may be detached ("+ 3 days") and the unit
//	               attached ("+3days")
//	next unit      same as "+1 unit"
//	last unit      same as "-1 unit"
//	ago            negates every term before it ("2 hours ago")
//
// Units are case-insensitive. Absolute forms such as "tomorrow", weekday
// names or dates are not accepted.
func ParseLifetime(s string) (Lifetime, error) {
	l := Lifetime{text: s}

	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return Lifetime{}, ErrInvalidInput.WithDetails("lifetime cannot be empty")
	}

	terms := 0
	for i := 0; i < len(fields); i++ {
		f := fields[i]

		var n int
		var rest string
		switch f {
		case "ago":
			if terms == 0 {
				return Lifetime{}, ErrInvalidInput.WithDetailsf("lifetime %q: %q without an offset", s, f)
			}
			if err := l.negate(); err != nil {
				return Lifetime{}, ErrInvalidInput.WithDetailsf("lifetime %q: %v", s, err)
			}
			continue
		case "next", "last":
			if i+1 >= len(fields) {
				return Lifetime{}, ErrInvalidInput.WithDetailsf("lifetime %q: missing unit after %q", s, f)
			}
			n = 1
			if f == "last" {
				n = -1
			}
			i++
			rest = fields[i]
		default:
			if (f == "+" || f == "-") && i+1 < len(fields) {
				i++
				f += fields[i]
			}
			num, r := splitNumber(f)
			if num == "" {
				return Lifetime{}, ErrInvalidInput.WithDetailsf("lifetime %q: expected a number at %q", s, f)
			}
			if r == "" {
				if i+1 >= len(fields) {
					return Lifetime{}, ErrInvalidInput.WithDetailsf("lifetime %q: missing unit after %q", s, f)
				}
				i++
				r = fields[i]
			}
			v, err := strconv.Atoi(num)
			if err != nil {
				return Lifetime{}, ErrInvalidInput.WithDetailsf("lifetime %q: invalid number %q", s, num).WithCause(err)
			}
			n, rest = v, r
		}

		u, ok := lifetimeUnits[rest]
		if !ok {
			return Lifetime{}, ErrInvalidInput.WithDetailsf("lifetime %q: unknown unit %q", s, rest)
		}
		if err := l.add(n, u); err != nil {
			return Lifetime{}, ErrInvalidInput.WithDetailsf("lifetime %q: %v", s, err)
		}
		terms++
	}

	return l, nil
}

// splitNumber splits a leading signed integer from the rest of a field.
func splitNumber(field string) (num, rest string) {
	i := 0
	if i < len(field) && (field[i] == '+' || field[i] == '-') {
		i++
	}
	start := i
	for i < len(field) && field[i] >= '0' && field[i] <= '9' {
		i++
	}
	if i == start {
		return "", field
	}
	return strings.TrimPrefix(field[:i], "+"), field[i:]
}

var errOffsetRange = errors.New("offset out of range")

func (l *Lifetime) add(n int, u unit) error {
	if d, ok := clockUnits[u]; ok {
		limit := int64(math.MaxInt64 / d)
		if int64(n) > limit || int64(n) < -limit {
			return errOffsetRange
		}
		step := time.Duration(n) * d
		if (step > 0 && l.clock > math.MaxInt64-step) || (step < 0 && l.clock < math.MinInt64-step) {
			return errOffsetRange
		}
		l.clock += step
		return nil
	}

	switch u {
	case unitMonth:
		return addBounded(&l.months, n, 1, maxOffsetMonths)
	case unitYear:
		return addBounded(&l.years, n, 1, maxOffsetYears)
	default:
		return addBounded(&l.days, n, dayUnits[u], maxOffsetDays)
	}
}

// addBounded adds n*factor to *total, keeping |*total| <= limit.
func addBounded(total *int, n, factor, limit int) error {
	if n > limit/factor || n < -limit/factor {
		return errOffsetRange
	}
	sum := *total + n*factor
	if sum > limit || sum < -limit {
		return errOffsetRange
	}
	*total = sum
	return nil
}

func (l *Lifetime) negate() error {
	if l.clock == math.MinInt64 {
		return errOffsetRange
	}
	l.years, l.months, l.days, l.clock = -l.years, -l.months, -l.days, -l.clock
	return nil
}

// Apply returns t advanced by the lifetime.
func (l Lifetime) Apply(t time.Time) time.Time {
	return t.AddDate(l.years, l.months, l.days).Add(l.clock)
}

// expiry applies the lifetime to created and rejects results outside the
// years 0 to 9999, which TimestampLayout cannot render.
func (l Lifetime) expiry(created time.Time) (time.Time, error) {
	t := l.Apply(created)
	if y := t.Year(); y < 0 || y > 9999 {
		return time.Time{}, ErrInvalidInput.WithDetailsf("lifetime %q: offset out of range", l.text)
	}
	return t, nil
}

// String returns the lifetime as originally written.
func (l Lifetime) String() string {
	return l.text
}
