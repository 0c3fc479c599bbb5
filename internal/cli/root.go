package cli

import (
	"fmt"
	"strings"

	"github.com/studyflow/studyflow/internal/models"
	"github.com/studyflow/studyflow/internal/planner"
	"github.com/studyflow/studyflow/internal/storage"
	"github.com/studyflow/studyflow/internal/timeutil"
)

type Context struct {
	Store storage.Provider
	Clock timeutil.Clock
}

// Planner loads the session collection and returns the engine. Each command
// runs to completion within one invocation, so a fresh load per command is
// the whole lifecycle.
func (c *Context) Planner() (*planner.Planner, error) {
	return planner.New(c.Store, c.Clock)
}

func parseDay(s string) (models.Day, error) {
	day := models.Day(strings.ToLower(strings.TrimSpace(s)))
	if !day.Valid() {
		return "", fmt.Errorf("invalid day: %q (expected monday..sunday)", s)
	}
	return day, nil
}

func printSession(sess models.StudySession) {
	fmt.Printf("  %s–%s  %-24s %s/%s\n",
		timeutil.FormatTimeDisplay(sess.StartTime),
		timeutil.FormatTimeDisplay(sess.EndTime),
		sess.CourseName,
		sess.Type.Label(),
		sess.Intensity.Label(),
	)
	if sess.Notes != "" {
		fmt.Printf("             Note: %s\n", sess.Notes)
	}
}

func printConflicts(conflicts []models.TimeConflict) {
	fmt.Println("Time conflict with existing sessions:")
	for _, c := range conflicts {
		fmt.Printf("  %s %s–%s %s (overlaps %s)\n",
			c.Existing.Day.Label(),
			timeutil.FormatTimeDisplay(c.Existing.StartTime),
			timeutil.FormatTimeDisplay(c.Existing.EndTime),
			c.Existing.CourseName,
			timeutil.FormatDuration(c.OverlapMinutes),
		)
	}
}
