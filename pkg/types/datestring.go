package types

import (
	"fmt"
	"time"
)

// DateFormat формат даты YYYY-MM-DD
const DateFormat = "2006-01-02"

// DateString represents a local calendar date as a canonical "YYYY-MM-DD" string.
// Dates are kept as strings rather than timestamps to avoid timezone drift;
// the format is zero-padded and fixed-width, so lexicographic comparison is
// equivalent to chronological comparison.
//
// The zero value ("") means "no date".
type DateString string

// NewDateString creates a DateString from a time.Time, dropping the time of day
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateFormat))
}

// NewDateStringFromString parses and validates a "YYYY-MM-DD" string
func NewDateStringFromString(s string) (DateString, error) {
	if _, err := time.Parse(DateFormat, s); err != nil {
		return "", fmt.Errorf("invalid date %q: expected format YYYY-MM-DD: %w", s, err)
	}
	return DateString(s), nil
}

// String returns the underlying "YYYY-MM-DD" representation
func (d DateString) String() string {
	return string(d)
}

// IsZero reports whether the date is unset
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate checks that the value is a well-formed "YYYY-MM-DD" date
func (d DateString) Validate() error {
	_, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return fmt.Errorf("invalid date %q: expected format YYYY-MM-DD: %w", string(d), err)
	}
	return nil
}

// Time converts the date to a time.Time at midnight local time
func (d DateString) Time() (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, string(d), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", string(d), err)
	}
	return t, nil
}

// IsBefore reports whether d is strictly earlier than other
func (d DateString) IsBefore(other DateString) bool {
	return string(d) < string(other)
}

// IsAfter reports whether d is strictly later than other
func (d DateString) IsAfter(other DateString) bool {
	return string(d) > string(other)
}

// AddDays returns the date shifted by the given number of days (may be negative)
func (d DateString) AddDays(days int) (DateString, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}
	return NewDateString(t.AddDate(0, 0, days)), nil
}
