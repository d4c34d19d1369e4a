package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// banCurrentKey adds the highlighted key's raw value to the banned set.
func (m *Model) banCurrentKey() tea.Cmd {
	k := m.currentKey()
	if k == nil {
		return nil
	}
	raw := k.FullKey
	masked := k.Key
	db := m.db
	return func() tea.Msg {
		added, err := db.BanKey(raw)
		if err != nil {
			return statusMsg(fmt.Sprintf("Ban failed: %v", err))
		}
		if !added {
			return statusMsg(fmt.Sprintf("%s already banned", masked))
		}
		return statusMsg(fmt.Sprintf("Banned %s", masked))
	}
}

func (m *Model) unbanCurrentKey() tea.Cmd {
	k := m.currentKey()
	if k == nil {
		return nil
	}
	raw := k.FullKey
	masked := k.Key
	db := m.db
	return func() tea.Msg {
		removed, err := db.UnbanKey(raw)
		if err != nil {
			return statusMsg(fmt.Sprintf("Unban failed: %v", err))
		}
		if !removed {
			return statusMsg(fmt.Sprintf("%s was not banned", masked))
		}
		return statusMsg(fmt.Sprintf("Unbanned %s", masked))
	}
}

// copyMaskedKey copies the masked key value to the clipboard. The raw
// value never leaves the store.
func (m *Model) copyMaskedKey() tea.Cmd {
	k := m.currentKey()
	if k == nil {
		return nil
	}
	masked := k.Key
	return func() tea.Msg {
		if err := clipboard.WriteAll(masked); err != nil {
			return statusMsg(fmt.Sprintf("Clipboard error: %v", err))
		}
		return statusMsg(fmt.Sprintf("Copied %s", masked))
	}
}

func (m *Model) testCurrentProject() tea.Cmd {
	if m.testFn == nil {
		return func() tea.Msg { return statusMsg("Testing not available") }
	}
	p := m.currentProject()
	if p == nil {
		return nil
	}
	if len(p.Keys) == 0 {
		return func() tea.Msg { return statusMsg("No keys to test") }
	}
	m.testing = true
	m.setStatus(fmt.Sprintf("Testing %d keys...", len(p.Keys)), 0)
	project := *p
	fn := m.testFn
	return func() tea.Msg {
		results, err := fn(project)
		return resultsMsg{path: project.Path, results: results, err: err}
	}
}

func (m *Model) deleteCurrentProject() tea.Cmd {
	p := m.currentProject()
	if p == nil {
		return nil
	}
	path := p.Path
	name := p.Name
	db := m.db
	return func() tea.Msg {
		removed, err := db.DeleteProject(path)
		if err != nil {
			return statusMsg(fmt.Sprintf("Delete failed: %v", err))
		}
		if !removed {
			return statusMsg("Project already gone")
		}
		return statusMsg(fmt.Sprintf("Deleted %s", name))
	}
}
