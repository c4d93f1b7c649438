package models

import (
	"database/sql/driver"
	"fmt"
	"regexp"

	apperrors "turnos-backend/internal/errors"
)

const minutesPerDay = 24 * 60

var timeRangePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)-([01]\d|2[0-3]):([0-5]\d)$`)

// TimeRange is a shift window in the form "HH:MM-HH:MM", kept as
// minutes-since-midnight. An end at or before the start is interpreted as
// crossing midnight into the next day.
type TimeRange struct {
	start int
	end   int
}

// ParseTimeRange validates and parses a "HH:MM-HH:MM" string (24-hour, zero-padded)
func ParseTimeRange(s string) (TimeRange, error) {
	m := timeRangePattern.FindStringSubmatch(s)
	if m == nil {
		return TimeRange{}, apperrors.NewValidationError("time_range", fmt.Sprintf("%q does not match HH:MM-HH:MM", s))
	}
	// Pattern guarantees two-digit numerics; atoi cannot fail here.
	toMin := func(hh, mm string) int {
		return int(hh[0]-'0')*600 + int(hh[1]-'0')*60 + int(mm[0]-'0')*10 + int(mm[1]-'0')
	}
	return TimeRange{
		start: toMin(m[1], m[2]),
		end:   toMin(m[3], m[4]),
	}, nil
}

// StartMinutes returns the start as minutes since midnight
func (t TimeRange) StartMinutes() int {
	return t.start
}

// EndMinutes returns the end as minutes since midnight
func (t TimeRange) EndMinutes() int {
	return t.end
}

// DurationMinutes returns the window length, wrapping past midnight when end <= start
func (t TimeRange) DurationMinutes() int {
	if t.end > t.start {
		return t.end - t.start
	}
	return (minutesPerDay - t.start) + t.end
}

// Overlaps reports whether two windows on the same date intersect.
// Intervals are half-open, so back-to-back slots do not overlap.
func (t TimeRange) Overlaps(other TimeRange) bool {
	for _, a := range t.segments() {
		for _, b := range other.segments() {
			if a[0] < b[1] && b[0] < a[1] {
				return true
			}
		}
	}
	return false
}

// segments expands a midnight-crossing window into its two same-day intervals
func (t TimeRange) segments() [][2]int {
	if t.end > t.start {
		return [][2]int{{t.start, t.end}}
	}
	return [][2]int{{t.start, minutesPerDay}, {0, t.end}}
}

// String reproduces the exact input form
func (t TimeRange) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", t.start/60, t.start%60, t.end/60, t.end%60)
}

// IsZero reports whether the range is unset
func (t TimeRange) IsZero() bool {
	return t.start == 0 && t.end == 0
}

// Value implements driver.Valuer so GORM stores the canonical string
func (t TimeRange) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan implements sql.Scanner
func (t *TimeRange) Scan(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeRange", value)
	}
	parsed, err := ParseTimeRange(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// GormDataType tells GORM the column type for TimeRange fields
func (TimeRange) GormDataType() string {
	return "varchar(11)"
}

// MarshalJSON serializes the range as its string form
func (t TimeRange) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

// UnmarshalJSON parses the string form, rejecting malformed input
func (t *TimeRange) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return apperrors.NewValidationError("time_range", "expected a JSON string")
	}
	parsed, err := ParseTimeRange(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
