package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/studyflow/studyflow/internal/models"
	"github.com/studyflow/studyflow/internal/timeutil"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateWeek:
		content = docStyle.Render(m.viewWeek())
	case StateDay:
		content = docStyle.Render(m.viewDay())
	case StateFree:
		content = docStyle.Render(m.viewFree())
	case StateEditing:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirm(dangerStyle.Render("Delete this session?"))
	case StateConfirmClear:
		content = m.viewConfirm(dangerStyle.Render("Remove ALL sessions? This cannot be undone."))
	}

	sections := []string{m.viewTabs(), content}
	if m.statusMsg != "" {
		sections = append(sections, docStyle.Render(m.statusMsg))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Week", "Day", "Free Time"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewWeek() string {
	stats := m.planner.WeekStats()

	var b strings.Builder
	fmt.Fprintf(&b, "This week: %s — %d session(s), %s total, %s/day\n\n",
		stats.Status,
		stats.TotalSessions,
		timeutil.FormatDuration(stats.TotalMinutes),
		timeutil.FormatDuration(int(stats.AveragePerDay)),
	)

	today := m.planner.CurrentDay()
	for _, day := range models.DaysOfWeek {
		ds := m.planner.DayStats(day)

		label := day.Short()
		if day == today {
			label = selectedStyle.Render(label)
		}

		marker := " "
		if stats.BusiestDay != nil && *stats.BusiestDay == day {
			marker = "▲"
		} else if stats.LightestDay != nil && *stats.LightestDay == day {
			marker = "▽"
		}

		fmt.Fprintf(&b, "%s %s  %-12s %2d session(s)  %s\n",
			marker, label, renderDayStatus(ds.Status), ds.SessionCount,
			timeutil.FormatDuration(ds.TotalMinutes))
	}

	return b.String()
}

func (m Model) viewDay() string {
	sessions := m.planner.SessionsByDay(m.day)
	stats := m.planner.DayStats(m.day)

	var b strings.Builder
	fmt.Fprintf(&b, "%s — %s, %s\n\n",
		m.day.Label(), renderDayStatus(stats.Status), timeutil.FormatDuration(stats.TotalMinutes))

	if len(sessions) == 0 {
		b.WriteString(dimStyle.Render("No sessions scheduled") + "\n")
		return b.String()
	}

	for i, sess := range sessions {
		line := fmt.Sprintf("%s–%s  %-24s %s/%s",
			timeutil.FormatTimeDisplay(sess.StartTime),
			timeutil.FormatTimeDisplay(sess.EndTime),
			sess.CourseName,
			sess.Type.Label(),
			sess.Intensity.Label(),
		)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
		if sess.Notes != "" {
			b.WriteString(dimStyle.Render("      "+sess.Notes) + "\n")
		}
	}

	return b.String()
}

func (m Model) viewFree() string {
	slots := m.planner.FreeSlots()

	var b strings.Builder
	b.WriteString("Largest free slots this week:\n\n")

	if len(slots) == 0 {
		b.WriteString(dimStyle.Render("No free slots of an hour or more") + "\n")
		return b.String()
	}

	for _, slot := range slots {
		fmt.Fprintf(&b, "  %s: %s – %s (%s)\n",
			slot.Day.Label(),
			timeutil.FormatTimeDisplay(slot.StartTime),
			timeutil.FormatTimeDisplay(slot.EndTime),
			timeutil.FormatDuration(slot.Duration),
		)
	}

	return b.String()
}

func (m Model) viewConfirm(prompt string) string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			prompt,
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
