package cli

import (
	"fmt"

	"github.com/studyflow/studyflow/internal/timeutil"
)

type FreeCmd struct{}

func (c *FreeCmd) Run(ctx *Context) error {
	p, err := ctx.Planner()
	if err != nil {
		return err
	}

	slots := p.FreeSlots()
	if len(slots) == 0 {
		fmt.Println("No free slots of an hour or more this week")
		return nil
	}

	fmt.Println("Largest free slots this week:")
	for _, slot := range slots {
		fmt.Printf("  %s: %s – %s (%s)\n",
			slot.Day.Label(),
			timeutil.FormatTimeDisplay(slot.StartTime),
			timeutil.FormatTimeDisplay(slot.EndTime),
			timeutil.FormatDuration(slot.Duration),
		)
	}

	return nil
}
