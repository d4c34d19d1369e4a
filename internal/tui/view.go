package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.helpView()
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")

	if m.mode == viewProjects && len(m.projects) == 0 {
		empty := emptyTextStyle.Width(m.width).Render(
			"\nNo projects yet.\n\nRun `apigraveyard scan <path> --save` to bury your first keys.\n")
		b.WriteString(empty)
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
		b.WriteString(detailBorderStyle.Render(m.viewport.View()))
	}

	b.WriteString("\n")
	b.WriteString(m.statusView())
	return b.String()
}

func (m Model) headerView() string {
	title := "apigraveyard"
	switch m.mode {
	case viewProjects:
		title = fmt.Sprintf("apigraveyard · %d projects", len(m.projects))
	case viewKeys:
		if p := m.currentProject(); p != nil {
			title = fmt.Sprintf("apigraveyard · %s (%d keys)", p.Name, len(p.Keys))
		}
	}
	return titleStyle.Render(title)
}

func (m Model) statusView() string {
	msg := m.statusMessage
	if m.testing {
		msg = m.spinner.View() + " " + msg
	}
	return statusBarStyle.Render(msg)
}

func (m Model) helpView() string {
	help := strings.Join([]string{
		"Keyboard shortcuts",
		"",
		"  j/k, up/down   navigate",
		"  enter, o       open project",
		"  esc            back to projects",
		"  t              test keys against their services",
		"  b / B          ban / unban highlighted key",
		"  y              copy masked key to clipboard",
		"  d              delete project (projects view)",
		"  r              reload from database",
		"  q              quit",
		"",
		"Press any key to close",
	}, "\n")
	popup := popupStyle.Render(help)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, popup)
}
