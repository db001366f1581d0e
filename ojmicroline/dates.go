package ojmicroline

import (
	"fmt"
	"strings"
	"time"
)

// FormatOffset renders a UTC offset in seconds as ±HH:MM
func FormatOffset(offset int) string {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	offset %= 24 * 3600

	return fmt.Sprintf("%s%02d:%02d", sign, offset/3600, offset%3600/60)
}

// ParseWD5Date parses a naive WD5 timestamp with the thermostat's offset in seconds.
// The api stores these values as UTC labelled with the local offset, the offset
// is therefore removed from the parsed instant once more.
func ParseWD5Date(value string, offset int) (time.Time, error) {
	ts, err := time.Parse(WD5_DATETIME_FORMAT+"-07:00", value+FormatOffset(offset))
	if err != nil {
		return time.Time{}, err
	}

	delta := time.Duration(offset) * time.Second
	if offset >= 0 {
		return ts.Add(-delta), nil
	}
	return ts.Add(delta.Abs()), nil
}

// ParseWG4Date parses a WG4 timestamp into the local zone. Some values carry the
// offset suffix twice, e.g. "24/01/2024 05:00:00 +00:00 +00:00".
func ParseWG4Date(value string) (time.Time, error) {
	parts := strings.Split(value, "+")
	if len(parts) > 2 {
		parts = parts[:2]
	}

	ts, err := time.Parse(WG4_DATETIME_FORMAT, strings.TrimSpace(strings.Join(parts, "+")))
	if err != nil {
		return time.Time{}, err
	}

	return ts.Local(), nil
}

// ParseWG4VacationDate parses a WG4 vacation timestamp which comes without offset
func ParseWG4VacationDate(value, zone string) (time.Time, error) {
	return ParseWG4Date(strings.TrimSpace(value) + " " + zone)
}

func formatWD5Date(ts *time.Time) *string {
	if ts == nil {
		return nil
	}
	s := ts.Format(WD5_DATETIME_FORMAT)
	return &s
}

func formatWG4Date(ts time.Time) string {
	return ts.UTC().Format("02/01/2006 15:04") + ":00 +00:00"
}
