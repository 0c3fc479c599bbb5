package cli

import (
	"fmt"

	"github.com/studyflow/studyflow/internal/models"
	"github.com/studyflow/studyflow/internal/timeutil"
)

type WeekCmd struct{}

func (c *WeekCmd) Run(ctx *Context) error {
	p, err := ctx.Planner()
	if err != nil {
		return err
	}

	stats := p.WeekStats()

	fmt.Printf("Week: %s — %d session(s), %s total, %s/day average\n\n",
		stats.Status,
		stats.TotalSessions,
		timeutil.FormatDuration(stats.TotalMinutes),
		timeutil.FormatDuration(int(stats.AveragePerDay)),
	)

	for _, day := range models.DaysOfWeek {
		ds := p.DayStats(day)
		marker := " "
		if stats.BusiestDay != nil && *stats.BusiestDay == day {
			marker = "▲"
		} else if stats.LightestDay != nil && *stats.LightestDay == day {
			marker = "▽"
		}
		fmt.Printf("  %s %-10s %-10s %2d session(s)  %s\n",
			marker, day.Label(), ds.Status, ds.SessionCount, timeutil.FormatDuration(ds.TotalMinutes))
	}

	return nil
}
