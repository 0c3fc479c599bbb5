package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studyflow/studyflow/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	p, err := ctx.Planner()
	if err != nil {
		return err
	}

	model := tui.NewModel(p, ctx.Clock)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
