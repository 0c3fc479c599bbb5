package planner

import (
	"github.com/studyflow/studyflow/internal/models"
	"github.com/studyflow/studyflow/internal/timeutil"
)

// Day-level status thresholds, in total scheduled minutes. Fixed policy, not
// user-configurable.
const (
	dayLightMax    = 119
	dayBalancedMax = 300
	dayHeavyMax    = 420
)

// Week-level thresholds, independent of the day table.
const (
	weekLightMax    = 599
	weekBalancedMax = 1500
	weekHeavyMax    = 2100
)

func dayStatus(totalMinutes int) models.DayStatus {
	switch {
	case totalMinutes == 0:
		return models.DayFree
	case totalMinutes <= dayLightMax:
		return models.DayLight
	case totalMinutes <= dayBalancedMax:
		return models.DayBalanced
	case totalMinutes <= dayHeavyMax:
		return models.DayHeavy
	default:
		return models.DayOverloaded
	}
}

func weekStatus(totalMinutes int) models.WeekStatus {
	switch {
	case totalMinutes <= weekLightMax:
		return models.WeekLight
	case totalMinutes <= weekBalancedMax:
		return models.WeekBalanced
	case totalMinutes <= weekHeavyMax:
		return models.WeekHeavy
	default:
		return models.WeekOverloaded
	}
}

// DayStats sums the day's session durations and classifies the total.
// Recomputed from the live collection on every call.
func (p *Planner) DayStats(day models.Day) models.DayStats {
	sessions := p.sessionsOn(day)
	total := 0
	for _, sess := range sessions {
		total += timeutil.SessionDuration(sess)
	}
	return models.DayStats{
		TotalMinutes: total,
		SessionCount: len(sessions),
		Status:       dayStatus(total),
	}
}

// WeekStats aggregates all seven days. AveragePerDay always divides by seven.
// Busiest and lightest day use strict comparisons in Monday-to-Sunday order,
// so the first day at the extreme wins ties; an all-free week yields nil for
// both, and lightest is nil unless its minimum is above zero.
func (p *Planner) WeekStats() models.WeekStats {
	totalMinutes := 0
	totalSessions := 0
	maxMinutes := 0
	minMinutes := -1
	var busiest, lightest *models.Day

	for _, day := range models.DaysOfWeek {
		stats := p.DayStats(day)
		totalMinutes += stats.TotalMinutes
		totalSessions += stats.SessionCount

		if stats.TotalMinutes > maxMinutes {
			maxMinutes = stats.TotalMinutes
			d := day
			busiest = &d
		}
		if minMinutes == -1 || stats.TotalMinutes < minMinutes {
			minMinutes = stats.TotalMinutes
			d := day
			lightest = &d
		}
	}

	if maxMinutes == 0 {
		busiest = nil
	}
	if minMinutes <= 0 {
		lightest = nil
	}

	return models.WeekStats{
		TotalMinutes:  totalMinutes,
		TotalSessions: totalSessions,
		AveragePerDay: float64(totalMinutes) / 7,
		BusiestDay:    busiest,
		LightestDay:   lightest,
		Status:        weekStatus(totalMinutes),
	}
}
