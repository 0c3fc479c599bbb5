package models

// DayStatus classifies a day's total scheduled minutes into a workload band.
type DayStatus string

const (
	DayFree       DayStatus = "free"
	DayLight      DayStatus = "light"
	DayBalanced   DayStatus = "balanced"
	DayHeavy      DayStatus = "heavy"
	DayOverloaded DayStatus = "overloaded"
)

// WeekStatus classifies a week's total scheduled minutes. The week bands are
// independent of the day bands; there is no "free" week status.
type WeekStatus string

const (
	WeekLight      WeekStatus = "light"
	WeekBalanced   WeekStatus = "balanced"
	WeekHeavy      WeekStatus = "heavy"
	WeekOverloaded WeekStatus = "overloaded"
)

// DayStats is recomputed on demand, never stored.
type DayStats struct {
	TotalMinutes int       `json:"total_minutes"`
	SessionCount int       `json:"session_count"`
	Status       DayStatus `json:"status"`
}

// WeekStats aggregates the seven DayStats. BusiestDay and LightestDay are nil
// when no day qualifies (all-free week).
type WeekStats struct {
	TotalMinutes  int        `json:"total_minutes"`
	TotalSessions int        `json:"total_sessions"`
	AveragePerDay float64    `json:"average_per_day"`
	BusiestDay    *Day       `json:"busiest_day"`
	LightestDay   *Day       `json:"lightest_day"`
	Status        WeekStatus `json:"status"`
}

// TimeConflict records a positive-duration same-day overlap between an
// existing session and a candidate write. Returned from failed write
// attempts; never persisted.
type TimeConflict struct {
	Existing       StudySession `json:"existing"`
	Candidate      StudySession `json:"candidate"`
	OverlapMinutes int          `json:"overlap_minutes"`
}

// FreeTimeSlot describes an unscheduled gap within the daily window.
type FreeTimeSlot struct {
	Day       Day    `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Duration  int    `json:"duration"` // minutes
}
