package cli

import (
	"fmt"
	"strings"

	"github.com/studyflow/studyflow/internal/models"
	"github.com/studyflow/studyflow/internal/planner"
	"github.com/studyflow/studyflow/internal/validate"
)

type AddCmd struct {
	Course    string `arg:"" help:"Course name."`
	Day       string `short:"d" help:"Day of week (monday..sunday)." required:""`
	Start     string `short:"s" help:"Start time (HH:MM)." required:""`
	End       string `short:"e" help:"End time (HH:MM)." required:""`
	Type      string `short:"t" help:"Session type (lecture|personal|revision)." default:"personal"`
	Intensity string `short:"i" help:"Intensity (light|medium|heavy)." default:"medium"`
	Notes     string `short:"n" help:"Optional notes."`
}

func (c *AddCmd) Run(ctx *Context) error {
	input := validate.SessionInput{
		CourseName: c.Course,
		Day:        strings.ToLower(c.Day),
		StartTime:  c.Start,
		EndTime:    c.End,
		Type:       strings.ToLower(c.Type),
		Intensity:  strings.ToLower(c.Intensity),
		Notes:      c.Notes,
	}
	if msgs := validate.Session(input); len(msgs) > 0 {
		return fmt.Errorf("invalid session: %s", strings.Join(msgs, "; "))
	}

	p, err := ctx.Planner()
	if err != nil {
		return err
	}

	sess, conflicts, err := p.Add(planner.SessionInput{
		CourseName: input.CourseName,
		Day:        models.Day(input.Day),
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Type:       models.SessionType(input.Type),
		Intensity:  models.Intensity(input.Intensity),
		Notes:      input.Notes,
	})
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		printConflicts(conflicts)
		return fmt.Errorf("session not added")
	}

	fmt.Printf("Added session: %s on %s %s–%s (ID: %s)\n",
		sess.CourseName, sess.Day.Label(), sess.StartTime, sess.EndTime, sess.ID)
	return nil
}
