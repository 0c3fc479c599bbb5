package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/studyflow/studyflow/internal/models"
	"github.com/studyflow/studyflow/internal/planner"
	"github.com/studyflow/studyflow/internal/timeutil"
	"github.com/studyflow/studyflow/internal/validate"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateEditing:
			return m.updateForm(msg)
		case StateConfirmDelete:
			return m.updateConfirmDelete(msg)
		case StateConfirmClear:
			return m.updateConfirmClear(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	if m.state == StateEditing && m.form != nil {
		return m.updateForm(msg)
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Tab):
		m.state = (m.state + 1) % tabCount
		m.statusMsg = ""

	case key.Matches(msg, m.keys.ShiftTab):
		m.state = (m.state + tabCount - 1) % tabCount
		m.statusMsg = ""

	case key.Matches(msg, m.keys.Left):
		if m.state == StateDay {
			m.day = prevDay(m.day)
			m.cursor = 0
		}

	case key.Matches(msg, m.keys.Right):
		if m.state == StateDay {
			m.day = nextDay(m.day)
			m.cursor = 0
		}

	case key.Matches(msg, m.keys.Up):
		if m.state == StateDay && m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.state == StateDay {
			if m.cursor < len(m.planner.SessionsByDay(m.day))-1 {
				m.cursor++
			}
		}

	case key.Matches(msg, m.keys.Add):
		m.previousState = m.state
		m.editingID = ""
		m.formData = &SessionFormModel{
			Day:       string(m.day),
			Type:      string(models.TypePersonal),
			Intensity: string(models.IntensityMedium),
		}
		m.form = newSessionForm(m.formData)
		m.state = StateEditing
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Edit):
		if m.state != StateDay {
			break
		}
		sess, ok := m.selectedSession()
		if !ok {
			break
		}
		m.previousState = m.state
		m.editingID = sess.ID
		m.formData = &SessionFormModel{
			Course:    sess.CourseName,
			Day:       string(sess.Day),
			Start:     sess.StartTime,
			End:       sess.EndTime,
			Type:      string(sess.Type),
			Intensity: string(sess.Intensity),
			Notes:     sess.Notes,
		}
		m.form = newSessionForm(m.formData)
		m.state = StateEditing
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Delete):
		if m.state != StateDay {
			break
		}
		if sess, ok := m.selectedSession(); ok {
			m.deleteID = sess.ID
			m.previousState = m.state
			m.state = StateConfirmDelete
		}

	case key.Matches(msg, m.keys.Clear):
		m.previousState = m.state
		m.state = StateConfirmClear
	}

	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.state = m.previousState
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m.submitForm()
	}

	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	data := m.formData
	m.state = m.previousState
	m.form = nil

	input := validate.SessionInput{
		CourseName: strings.TrimSpace(data.Course),
		Day:        data.Day,
		StartTime:  strings.TrimSpace(data.Start),
		EndTime:    strings.TrimSpace(data.End),
		Type:       data.Type,
		Intensity:  data.Intensity,
		Notes:      strings.TrimSpace(data.Notes),
	}
	if msgs := validate.Session(input); len(msgs) > 0 {
		m.statusMsg = warningStyle.Render("Invalid session: " + strings.Join(msgs, "; "))
		return m, nil
	}

	if m.editingID == "" {
		_, conflicts, err := m.planner.Add(planner.SessionInput{
			CourseName: input.CourseName,
			Day:        models.Day(input.Day),
			StartTime:  input.StartTime,
			EndTime:    input.EndTime,
			Type:       models.SessionType(input.Type),
			Intensity:  models.Intensity(input.Intensity),
			Notes:      input.Notes,
		})
		m.setWriteStatus("Session added", conflicts, err)
	} else {
		day := models.Day(input.Day)
		sessType := models.SessionType(input.Type)
		intensity := models.Intensity(input.Intensity)
		_, conflicts, err := m.planner.Update(m.editingID, planner.SessionPatch{
			CourseName: &input.CourseName,
			Day:        &day,
			StartTime:  &input.StartTime,
			EndTime:    &input.EndTime,
			Type:       &sessType,
			Intensity:  &intensity,
			Notes:      &input.Notes,
		})
		m.setWriteStatus("Session updated", conflicts, err)
	}

	return m, nil
}

func (m *Model) setWriteStatus(okMsg string, conflicts []models.TimeConflict, err error) {
	switch {
	case err != nil:
		m.statusMsg = dangerStyle.Render("Error: " + err.Error())
	case len(conflicts) > 0:
		parts := make([]string, 0, len(conflicts))
		for _, c := range conflicts {
			parts = append(parts, c.Existing.CourseName+" "+
				timeutil.FormatTimeDisplay(c.Existing.StartTime)+"–"+
				timeutil.FormatTimeDisplay(c.Existing.EndTime)+
				" (overlaps "+timeutil.FormatDuration(c.OverlapMinutes)+")")
		}
		m.statusMsg = warningStyle.Render("Conflict: " + strings.Join(parts, ", "))
	default:
		m.statusMsg = okMsg
	}
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		removed, err := m.planner.Delete(m.deleteID)
		if err != nil {
			m.statusMsg = dangerStyle.Render("Error: " + err.Error())
		} else if removed {
			m.statusMsg = "Session deleted"
			if m.cursor > 0 {
				m.cursor--
			}
		}
		m.deleteID = ""
		m.state = m.previousState
	case "n", "N", "esc", "q":
		m.deleteID = ""
		m.state = m.previousState
	}
	return m, nil
}

func (m Model) updateConfirmClear(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if err := m.planner.Clear(); err != nil {
			m.statusMsg = dangerStyle.Render("Error: " + err.Error())
		} else {
			m.statusMsg = "All sessions cleared"
			m.cursor = 0
		}
		m.state = m.previousState
	case "n", "N", "esc", "q":
		m.state = m.previousState
	}
	return m, nil
}
