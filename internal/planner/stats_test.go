package planner

import (
	"math"
	"testing"

	"github.com/studyflow/studyflow/internal/models"
	"github.com/studyflow/studyflow/internal/timeutil"
)

func TestDayStatus_Boundaries(t *testing.T) {
	tests := []struct {
		minutes int
		want    models.DayStatus
	}{
		{0, models.DayFree},
		{1, models.DayLight},
		{119, models.DayLight},
		{120, models.DayBalanced},
		{300, models.DayBalanced},
		{301, models.DayHeavy},
		{420, models.DayHeavy},
		{421, models.DayOverloaded},
		{1000, models.DayOverloaded},
	}
	for _, tt := range tests {
		if got := dayStatus(tt.minutes); got != tt.want {
			t.Errorf("dayStatus(%d) = %s, want %s", tt.minutes, got, tt.want)
		}
	}
}

func TestWeekStatus_Boundaries(t *testing.T) {
	tests := []struct {
		minutes int
		want    models.WeekStatus
	}{
		{0, models.WeekLight},
		{599, models.WeekLight},
		{600, models.WeekBalanced},
		{1500, models.WeekBalanced},
		{1501, models.WeekHeavy},
		{2100, models.WeekHeavy},
		{2101, models.WeekOverloaded},
	}
	for _, tt := range tests {
		if got := weekStatus(tt.minutes); got != tt.want {
			t.Errorf("weekStatus(%d) = %s, want %s", tt.minutes, got, tt.want)
		}
	}
}

func TestDayStats_SumsDurations(t *testing.T) {
	p, _ := newTestPlanner(t)
	mustAdd(t, p, input("A", models.Monday, "09:00", "10:00"))  // 60
	mustAdd(t, p, input("B", models.Monday, "11:00", "12:30"))  // 90
	mustAdd(t, p, input("C", models.Tuesday, "09:00", "17:00")) // other day

	stats := p.DayStats(models.Monday)
	if stats.TotalMinutes != 150 {
		t.Errorf("TotalMinutes = %d, want 150", stats.TotalMinutes)
	}
	if stats.SessionCount != 2 {
		t.Errorf("SessionCount = %d, want 2", stats.SessionCount)
	}
	if stats.Status != models.DayBalanced {
		t.Errorf("Status = %s, want balanced", stats.Status)
	}
}

func TestDayStats_EmptyDayIsFree(t *testing.T) {
	p, _ := newTestPlanner(t)
	stats := p.DayStats(models.Sunday)
	if stats.TotalMinutes != 0 || stats.SessionCount != 0 || stats.Status != models.DayFree {
		t.Errorf("empty day stats = %+v", stats)
	}
}

func TestWeekStats_AverageDividesBySeven(t *testing.T) {
	p, _ := newTestPlanner(t)
	mustAdd(t, p, input("A", models.Monday, "09:00", "12:30")) // 210 min, only day used

	stats := p.WeekStats()
	if stats.TotalMinutes != 210 {
		t.Errorf("TotalMinutes = %d, want 210", stats.TotalMinutes)
	}
	if stats.TotalSessions != 1 {
		t.Errorf("TotalSessions = %d, want 1", stats.TotalSessions)
	}
	if want := 30.0; math.Abs(stats.AveragePerDay-want) > 1e-9 {
		t.Errorf("AveragePerDay = %f, want %f", stats.AveragePerDay, want)
	}
}

func TestWeekStats_BusiestAndLightest(t *testing.T) {
	p, _ := newTestPlanner(t)
	mustAdd(t, p, input("A", models.Monday, "09:00", "11:00"))    // 120
	mustAdd(t, p, input("B", models.Wednesday, "09:00", "13:00")) // 240

	stats := p.WeekStats()
	if stats.BusiestDay == nil || *stats.BusiestDay != models.Wednesday {
		t.Errorf("BusiestDay = %v, want wednesday", stats.BusiestDay)
	}
	// Several days are at zero minutes, so no lightest day is reported.
	if stats.LightestDay != nil {
		t.Errorf("LightestDay = %v, want nil while free days exist", *stats.LightestDay)
	}
}

func TestWeekStats_LightestRequiresAllDaysScheduled(t *testing.T) {
	p, _ := newTestPlanner(t)
	for i, day := range models.DaysOfWeek {
		end := "10:00"
		if i == 3 { // Thursday gets the shortest block
			end = "09:30"
		}
		mustAdd(t, p, input("Daily", day, "09:00", end))
	}

	stats := p.WeekStats()
	if stats.LightestDay == nil || *stats.LightestDay != models.Thursday {
		t.Errorf("LightestDay = %v, want thursday", stats.LightestDay)
	}
}

func TestWeekStats_TiesGoToEarlierDay(t *testing.T) {
	p, _ := newTestPlanner(t)
	mustAdd(t, p, input("A", models.Tuesday, "09:00", "11:00"))
	mustAdd(t, p, input("B", models.Friday, "13:00", "15:00"))

	stats := p.WeekStats()
	if stats.BusiestDay == nil || *stats.BusiestDay != models.Tuesday {
		t.Errorf("BusiestDay = %v, want tuesday on tie", stats.BusiestDay)
	}
}

func TestWeekStats_EmptyWeek(t *testing.T) {
	store := &memStore{}
	p, err := New(store, timeutil.FixedClock{Day: models.Monday, Time: "12:00"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	stats := p.WeekStats()
	if stats.TotalMinutes != 0 || stats.TotalSessions != 0 {
		t.Errorf("empty week totals = %d min / %d sessions", stats.TotalMinutes, stats.TotalSessions)
	}
	if stats.AveragePerDay != 0 {
		t.Errorf("AveragePerDay = %f, want 0", stats.AveragePerDay)
	}
	if stats.BusiestDay != nil || stats.LightestDay != nil {
		t.Error("empty week must report no busiest or lightest day")
	}
	if stats.Status != models.WeekLight {
		t.Errorf("Status = %s, want light", stats.Status)
	}
}
