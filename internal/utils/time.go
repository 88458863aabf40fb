package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/models"
)

// TodayInTimezone returns today's DayKey (YYYY-MM-DD) in the specified
// timezone. Callers must re-evaluate this at every point where real time may
// have crossed a day boundary; a DayKey is never valid to cache across an
// indeterminate span, because the process can stay resident over midnight.
func TodayInTimezone(timezone string) (string, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return "", err
	}
	return now.Format(constants.DateFormat), nil
}

// TodayFromSettings returns today's DayKey using the timezone from settings.
func TodayFromSettings(settings models.Settings) (string, error) {
	return TodayInTimezone(settings.Timezone)
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// ParseDayKey parses a DayKey string (YYYY-MM-DD).
func ParseDayKey(day string) (time.Time, error) {
	return time.Parse(constants.DateFormat, day)
}

// DayKeyOffset returns the DayKey n calendar days before the given one.
func DayKeyOffset(day string, n int) (string, error) {
	t, err := ParseDayKey(day)
	if err != nil {
		return "", fmt.Errorf("invalid day key %q: %w", day, err)
	}
	return t.AddDate(0, 0, -n).Format(constants.DateFormat), nil
}

// ValidateDayKey checks if the string is a well-formed DayKey.
func ValidateDayKey(day string) bool {
	_, err := ParseDayKey(day)
	return err == nil
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
