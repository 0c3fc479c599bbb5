package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/studyflow/studyflow/internal/models"
	"github.com/studyflow/studyflow/internal/planner"
	"github.com/studyflow/studyflow/internal/timeutil"
)

type SessionState int

const (
	StateWeek SessionState = iota
	StateDay
	StateFree
	StateEditing
	StateConfirmDelete
	StateConfirmClear
)

// tabCount is the number of cycleable top-level tabs (Week/Day/Free).
const tabCount = 3

// SessionFormModel backs the huh add/edit form. Everything is a string; the
// values are validated and converted on submit.
type SessionFormModel struct {
	Course    string
	Day       string
	Start     string
	End       string
	Type      string
	Intensity string
	Notes     string
}

type Model struct {
	planner *planner.Planner
	clock   timeutil.Clock

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	day    models.Day // day shown in the Day tab
	cursor int        // selected session within the day

	form      *huh.Form
	formData  *SessionFormModel
	editingID string // empty while adding

	deleteID  string
	statusMsg string

	quitting bool
	width    int
	height   int
}

func NewModel(p *planner.Planner, clock timeutil.Clock) Model {
	day, _ := clock.Now()
	return Model{
		planner: p,
		clock:   clock,
		state:   StateWeek,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		day:     day,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func newSessionForm(data *SessionFormModel) *huh.Form {
	dayOptions := make([]huh.Option[string], 0, len(models.DaysOfWeek))
	for _, d := range models.DaysOfWeek {
		dayOptions = append(dayOptions, huh.NewOption(d.Label(), string(d)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Course").
				Value(&data.Course),
			huh.NewSelect[string]().
				Title("Day").
				Options(dayOptions...).
				Value(&data.Day),
			huh.NewInput().
				Title("Start (HH:MM)").
				Value(&data.Start),
			huh.NewInput().
				Title("End (HH:MM)").
				Value(&data.End),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Lecture", string(models.TypeLecture)),
					huh.NewOption("Personal Study", string(models.TypePersonal)),
					huh.NewOption("Revision", string(models.TypeRevision)),
				).
				Value(&data.Type),
			huh.NewSelect[string]().
				Title("Intensity").
				Options(
					huh.NewOption("Light", string(models.IntensityLight)),
					huh.NewOption("Medium", string(models.IntensityMedium)),
					huh.NewOption("Heavy", string(models.IntensityHeavy)),
				).
				Value(&data.Intensity),
			huh.NewText().
				Title("Notes").
				Value(&data.Notes),
		),
	)
}

// selectedSession returns the session under the cursor in the Day tab.
func (m Model) selectedSession() (models.StudySession, bool) {
	sessions := m.planner.SessionsByDay(m.day)
	if m.cursor < 0 || m.cursor >= len(sessions) {
		return models.StudySession{}, false
	}
	return sessions[m.cursor], true
}

func prevDay(day models.Day) models.Day {
	for i, d := range models.DaysOfWeek {
		if d == day {
			return models.DaysOfWeek[(i+len(models.DaysOfWeek)-1)%len(models.DaysOfWeek)]
		}
	}
	return day
}

func nextDay(day models.Day) models.Day {
	for i, d := range models.DaysOfWeek {
		if d == day {
			return models.DaysOfWeek[(i+1)%len(models.DaysOfWeek)]
		}
	}
	return day
}
