package models

type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

// DaysOfWeek is the canonical Monday-first iteration order. Statistics
// tie-breaking depends on this order.
var DaysOfWeek = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

type SessionType string

const (
	TypeLecture  SessionType = "lecture"
	TypePersonal SessionType = "personal"
	TypeRevision SessionType = "revision"
)

type Intensity string

const (
	IntensityLight  Intensity = "light"
	IntensityMedium Intensity = "medium"
	IntensityHeavy  Intensity = "heavy"
)

// StudySession is a single time-boxed block on the weekly template. Times are
// wall-clock HH:MM strings; the model carries no calendar dates.
type StudySession struct {
	ID         string      `json:"id"`
	CourseName string      `json:"course_name"`
	Day        Day         `json:"day"`
	StartTime  string      `json:"start_time"` // HH:MM format
	EndTime    string      `json:"end_time"`   // HH:MM format
	Type       SessionType `json:"type"`
	Intensity  Intensity   `json:"intensity"`
	Notes      string      `json:"notes,omitempty"`
	CreatedAt  int64       `json:"created_at"` // Unix milliseconds
	UpdatedAt  int64       `json:"updated_at"` // Unix milliseconds
}

var dayLabels = map[Day]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// Label returns the capitalized display name for the day.
func (d Day) Label() string {
	if l, ok := dayLabels[d]; ok {
		return l
	}
	return string(d)
}

// Short returns the three-letter display name for the day.
func (d Day) Short() string {
	l := d.Label()
	if len(l) >= 3 {
		return l[:3]
	}
	return l
}

// Valid reports whether d is one of the seven weekday values.
func (d Day) Valid() bool {
	_, ok := dayLabels[d]
	return ok
}

var typeLabels = map[SessionType]string{
	TypeLecture:  "Lecture",
	TypePersonal: "Personal Study",
	TypeRevision: "Revision",
}

func (t SessionType) Label() string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return string(t)
}

var intensityLabels = map[Intensity]string{
	IntensityLight:  "Light",
	IntensityMedium: "Medium",
	IntensityHeavy:  "Heavy",
}

func (i Intensity) Label() string {
	if l, ok := intensityLabels[i]; ok {
		return l
	}
	return string(i)
}
