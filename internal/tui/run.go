package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jekabolt/helpdesk/internal/dashboard"
	"github.com/jekabolt/helpdesk/internal/dependency"
)

// Run starts the terminal dashboard against api and blocks until the user quits.
func Run(ctx context.Context, c *dashboard.Config, api dependency.Tickets) error {
	view := NewProgramView()
	ctrl := dashboard.New(c, api, view)

	program := tea.NewProgram(NewModel(ctx, ctrl), tea.WithAltScreen(), tea.WithContext(ctx))
	view.SetProgram(program)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("terminal dashboard: %w", err)
	}
	return nil
}
