package cli

import (
	"fmt"

	"github.com/studyflow/studyflow/internal/timeutil"
)

type DayCmd struct {
	Day string `arg:"" help:"Day to show (monday..sunday or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	p, err := ctx.Planner()
	if err != nil {
		return err
	}

	day := p.CurrentDay()
	if c.Day != "today" {
		day, err = parseDay(c.Day)
		if err != nil {
			return err
		}
	}

	sessions := p.SessionsByDay(day)
	stats := p.DayStats(day)

	fmt.Printf("%s — %s, %d session(s), %s\n\n",
		day.Label(), stats.Status, stats.SessionCount, timeutil.FormatDuration(stats.TotalMinutes))

	if len(sessions) == 0 {
		fmt.Println("  No sessions scheduled")
		return nil
	}

	for _, sess := range sessions {
		printSession(sess)
	}

	return nil
}
