package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Period is a point in a work history, either a year, a year and month, or
// the open-ended "Present"
type Period struct {
	Year    int
	Month   time.Month // zero when only the year is known
	Present bool
}

// Present is the open-ended period
var Present = Period{Present: true}

// Year returns a period covering a whole year
func Year(y int) Period {
	return Period{Year: y}
}

// YearMonth returns a period for a specific month
func YearMonth(y int, m time.Month) Period {
	return Period{Year: y, Month: m}
}

// ParsePeriod accepts "2024", "2022 - Jan" and "Present"
func ParsePeriod(s string) (Period, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "present") {
		return Present, nil
	}

	yearPart, monthPart, hasMonth := strings.Cut(s, "-")
	year, err := strconv.Atoi(strings.TrimSpace(yearPart))
	if err != nil || year <= 0 {
		return Period{}, fmt.Errorf("invalid period %q: bad year", s)
	}
	if !hasMonth {
		return Year(year), nil
	}

	m, err := time.Parse("Jan", strings.TrimSpace(monthPart))
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q: bad month", s)
	}
	return YearMonth(year, m.Month()), nil
}

// MustPeriod is ParsePeriod for literals
func MustPeriod(s string) Period {
	p, err := ParsePeriod(s)
	if err != nil {
		panic(err)
	}
	return p
}

// IsZero reports whether the period was never set
func (p Period) IsZero() bool {
	return !p.Present && p.Year == 0
}

// String formats the period the way it is displayed
func (p Period) String() string {
	switch {
	case p.Present:
		return "Present"
	case p.IsZero():
		return ""
	case p.Month != 0:
		return fmt.Sprintf("%d - %s", p.Year, p.Month.String()[:3])
	default:
		return strconv.Itoa(p.Year)
	}
}

// key orders periods chronologically; a bare year sorts before its months
func (p Period) key() int {
	if p.Present {
		return math.MaxInt
	}
	return p.Year*100 + int(p.Month)
}

// After reports whether p is strictly later than o
func (p Period) After(o Period) bool {
	return p.key() > o.key()
}

// MarshalText implements encoding.TextMarshaler
func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Period) UnmarshalText(text []byte) error {
	parsed, err := ParsePeriod(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
