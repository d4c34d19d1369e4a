package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/apigraveyard/apigraveyard/internal/store"
)

// Run starts the dashboard over the given store.
func Run(db *store.Store, testFn TestFunc) error {
	m := NewModel(db, testFn)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
