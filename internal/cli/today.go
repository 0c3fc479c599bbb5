package cli

import (
	"fmt"

	"github.com/studyflow/studyflow/internal/timeutil"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	p, err := ctx.Planner()
	if err != nil {
		return err
	}

	day := p.CurrentDay()
	_, now := ctx.Clock.Now()
	sessions := p.TodaysSessions()

	fmt.Printf("Today is %s (%s)\n\n", day.Label(), timeutil.FormatTimeDisplay(now))

	if len(sessions) == 0 {
		fmt.Println("  Nothing scheduled today")
		return nil
	}

	nowMin, _ := timeutil.TimeToMinutes(now)
	for _, sess := range sessions {
		endMin, err := timeutil.TimeToMinutes(sess.EndTime)
		if err == nil && endMin <= nowMin {
			fmt.Print("  done ")
		} else {
			startMin, err := timeutil.TimeToMinutes(sess.StartTime)
			if err == nil && startMin <= nowMin {
				fmt.Print("  now  ")
			} else {
				fmt.Print("  next ")
			}
		}
		fmt.Printf("%s–%s  %s\n",
			timeutil.FormatTimeDisplay(sess.StartTime),
			timeutil.FormatTimeDisplay(sess.EndTime),
			sess.CourseName,
		)
	}

	return nil
}
