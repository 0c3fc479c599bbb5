package cli

import (
	"fmt"
	"strings"

	"github.com/studyflow/studyflow/internal/models"
	"github.com/studyflow/studyflow/internal/planner"
	"github.com/studyflow/studyflow/internal/validate"
)

type EditCmd struct {
	ID        string  `arg:"" help:"Session ID."`
	Course    *string `help:"New course name."`
	Day       *string `short:"d" help:"New day of week."`
	Start     *string `short:"s" help:"New start time (HH:MM)."`
	End       *string `short:"e" help:"New end time (HH:MM)."`
	Type      *string `short:"t" help:"New session type."`
	Intensity *string `short:"i" help:"New intensity."`
	Notes     *string `short:"n" help:"New notes."`
}

func (c *EditCmd) Run(ctx *Context) error {
	p, err := ctx.Planner()
	if err != nil {
		return err
	}

	existing, err := p.Get(c.ID)
	if err != nil {
		return err
	}

	// Validate the fully merged session so partial edits catch cross-field
	// problems before hitting the store.
	merged := validate.SessionInput{
		CourseName: pick(c.Course, existing.CourseName),
		Day:        strings.ToLower(pick(c.Day, string(existing.Day))),
		StartTime:  pick(c.Start, existing.StartTime),
		EndTime:    pick(c.End, existing.EndTime),
		Type:       strings.ToLower(pick(c.Type, string(existing.Type))),
		Intensity:  strings.ToLower(pick(c.Intensity, string(existing.Intensity))),
		Notes:      pick(c.Notes, existing.Notes),
	}
	if msgs := validate.Session(merged); len(msgs) > 0 {
		return fmt.Errorf("invalid session: %s", strings.Join(msgs, "; "))
	}

	patch := planner.SessionPatch{
		CourseName: c.Course,
		StartTime:  c.Start,
		EndTime:    c.End,
		Notes:      c.Notes,
	}
	if c.Day != nil {
		d := models.Day(strings.ToLower(*c.Day))
		patch.Day = &d
	}
	if c.Type != nil {
		t := models.SessionType(strings.ToLower(*c.Type))
		patch.Type = &t
	}
	if c.Intensity != nil {
		i := models.Intensity(strings.ToLower(*c.Intensity))
		patch.Intensity = &i
	}

	sess, conflicts, err := p.Update(c.ID, patch)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		printConflicts(conflicts)
		return fmt.Errorf("session not updated")
	}

	fmt.Printf("Updated session: %s on %s %s–%s\n",
		sess.CourseName, sess.Day.Label(), sess.StartTime, sess.EndTime)
	return nil
}

func pick(override *string, fallback string) string {
	if override != nil {
		return *override
	}
	return fallback
}
