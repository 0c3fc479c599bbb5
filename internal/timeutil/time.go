package timeutil

import (
	"fmt"
	"time"

	"github.com/studyflow/studyflow/internal/constants"
	"github.com/studyflow/studyflow/internal/models"
)

// TimeToMinutes parses an HH:MM string into minutes since midnight.
func TimeToMinutes(timeStr string) (int, error) {
	t, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", timeStr, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// MinutesToTime renders minutes since midnight as a zero-padded HH:MM string.
func MinutesToTime(totalMinutes int) string {
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}

// ValidTime reports whether the string matches the standard HH:MM format.
func ValidTime(timeStr string) bool {
	_, err := time.Parse(constants.TimeFormat, timeStr)
	return err == nil
}

// FormatTimeDisplay converts an HH:MM string to 12-hour "h:mm AM/PM" form.
// Invalid input is returned unchanged.
func FormatTimeDisplay(timeStr string) string {
	t, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return timeStr
	}
	hour := t.Hour()
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, t.Minute(), period)
}

// FormatDuration renders a minute count as "Xh", "Ym", or "Xh Ym".
// Zero renders as "0m".
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// SessionDuration returns a session's length in minutes, or 0 when either
// time is malformed.
func SessionDuration(s models.StudySession) int {
	start, err := TimeToMinutes(s.StartTime)
	if err != nil {
		return 0
	}
	end, err := TimeToMinutes(s.EndTime)
	if err != nil {
		return 0
	}
	return end - start
}

// Clock supplies the current weekday and wall-clock time so that everything
// depending on "now" stays deterministic under test.
type Clock interface {
	Now() (models.Day, string)
}

// SystemClock reads the local system clock.
type SystemClock struct{}

func (SystemClock) Now() (models.Day, string) {
	now := time.Now()
	return WeekdayToDay(now.Weekday()), now.Format(constants.TimeFormat)
}

// FixedClock always reports the same weekday and time.
type FixedClock struct {
	Day  models.Day
	Time string
}

func (c FixedClock) Now() (models.Day, string) {
	return c.Day, c.Time
}

// WeekdayToDay maps a time.Weekday onto the weekly template's day value.
func WeekdayToDay(wd time.Weekday) models.Day {
	switch wd {
	case time.Monday:
		return models.Monday
	case time.Tuesday:
		return models.Tuesday
	case time.Wednesday:
		return models.Wednesday
	case time.Thursday:
		return models.Thursday
	case time.Friday:
		return models.Friday
	case time.Saturday:
		return models.Saturday
	default:
		return models.Sunday
	}
}
