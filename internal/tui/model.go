package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/apigraveyard/apigraveyard/internal/store"
	"github.com/apigraveyard/apigraveyard/internal/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	detailBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))

	emptyTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Align(lipgloss.Center)

	popupStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(1, 4)

	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// statusLabel returns plain text for a key status (ANSI codes break table
// truncation).
func statusLabel(s *types.Status) string {
	if s == nil {
		return "UNTESTED"
	}
	return string(*s)
}

type viewMode int

const (
	viewProjects viewMode = iota
	viewKeys
)

// TestFunc validates every key of a project and returns the results.
type TestFunc func(project types.Project) ([]types.KeyResult, error)

// Model is the interactive dashboard state: a project index drilling down
// into per-project key tables.
type Model struct {
	db       *store.Store
	testFn   TestFunc
	mode     viewMode
	table    table.Model
	viewport viewport.Model
	spinner  spinner.Model

	projects []types.Project
	current  int // index into projects when mode == viewKeys

	testing       bool
	quitting      bool
	ready         bool
	showHelp      bool
	statusMessage string
	statusTimeout *time.Time
	width         int
	height        int
}

type statusMsg string

type resultsMsg struct {
	path    string
	results []types.KeyResult
	err     error
}

// NewModel builds the dashboard over the given store. testFn may be nil,
// in which case the test action is disabled.
func NewModel(db *store.Store, testFn TestFunc) Model {
	t := table.New(
		table.WithColumns(projectColumns()),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("15")).
		Bold(true).
		Padding(0, 1).
		Align(lipgloss.Left)
	s.Selected = lipgloss.NewStyle().
		Foreground(lipgloss.Color("232")).
		Background(lipgloss.Color("208")).
		Bold(true).
		Padding(0, 1)
	s.Cell = lipgloss.NewStyle().Padding(0, 1)
	t.SetStyles(s)

	// Line spinner avoids Braille characters that render poorly on some terminals
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	m := Model{
		db:      db,
		testFn:  testFn,
		mode:    viewProjects,
		table:   t,
		spinner: sp,
	}
	m.reload()
	m.statusMessage = "q: quit | ?: help | enter: open project | t: test keys"
	return m
}

func projectColumns() []table.Column {
	return []table.Column{
		{Title: "Name", Width: 20},
		{Title: "Path", Width: 45},
		{Title: "Keys", Width: 6},
		{Title: "Scanned", Width: 17},
	}
}

func keyColumns() []table.Column {
	return []table.Column{
		{Title: "Service", Width: 16},
		{Title: "Key", Width: 22},
		{Title: "Status", Width: 14},
		{Title: "Location", Width: 35},
	}
}

func (m *Model) reload() {
	m.projects = m.db.Projects()
	if m.mode == viewProjects {
		m.rebuildProjectRows()
		return
	}
	if m.current >= len(m.projects) {
		m.mode = viewProjects
		m.rebuildProjectRows()
		return
	}
	m.rebuildKeyRows()
}

func (m *Model) rebuildProjectRows() {
	rows := make([]table.Row, len(m.projects))
	for i, p := range m.projects {
		rows[i] = table.Row{
			p.Name,
			p.Path,
			fmt.Sprintf("%d", len(p.Keys)),
			p.ScannedAt.Local().Format("2006-01-02 15:04"),
		}
	}
	m.table.SetColumns(projectColumns())
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
	m.updateViewportContent()
}

func (m *Model) rebuildKeyRows() {
	p := m.projects[m.current]
	rows := make([]table.Row, len(p.Keys))
	for i, k := range p.Keys {
		status := statusLabel(k.Status)
		if m.db.IsBanned(k.FullKey) {
			status = "BANNED"
		}
		rows[i] = table.Row{
			string(k.Service),
			k.Key,
			status,
			fmt.Sprintf("%s:%d", k.FilePath, k.LineNumber),
		}
	}
	m.table.SetColumns(keyColumns())
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
	m.updateViewportContent()
}

func (m *Model) currentProject() *types.Project {
	idx := m.table.Cursor()
	if m.mode == viewKeys {
		idx = m.current
	}
	if idx < 0 || idx >= len(m.projects) {
		return nil
	}
	return &m.projects[idx]
}

func (m *Model) currentKey() *types.StoredKey {
	if m.mode != viewKeys {
		return nil
	}
	p := m.currentProject()
	if p == nil {
		return nil
	}
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(p.Keys) {
		return nil
	}
	return &p.Keys[idx]
}

func (m *Model) setStatus(msg string, d time.Duration) {
	timeout := time.Now().Add(d)
	m.statusTimeout = &timeout
	m.statusMessage = msg
}

func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	switch m.mode {
	case viewProjects:
		p := m.currentProject()
		if p == nil {
			m.viewport.SetContent("")
			return
		}
		m.viewport.SetContent(m.renderProjectDetail(*p))
	case viewKeys:
		k := m.currentKey()
		if k == nil {
			m.viewport.SetContent("")
			return
		}
		m.viewport.SetContent(m.renderKeyDetail(*k))
	}
}

func (m *Model) renderProjectDetail(p types.Project) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Project Details"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render("Name:"), p.Name))
	b.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render("Path:"), p.Path))
	b.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render("Scanned:"), p.ScannedAt.Local().Format(time.RFC1123)))
	b.WriteString(fmt.Sprintf("%s %d\n", keyStyle.Render("Files:"), p.TotalFiles))
	b.WriteString(fmt.Sprintf("%s %d\n", keyStyle.Render("Keys:"), len(p.Keys)))
	if p.Repo != nil {
		b.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render("Remote:"), p.Repo.Remote))
		if p.Repo.Branch != "" {
			b.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render("Branch:"), p.Repo.Branch))
		}
		if len(p.Repo.Commit) >= 8 {
			b.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render("Commit:"), p.Repo.Commit[:8]))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press Enter to browse this project's keys"))
	return b.String()
}

func (m *Model) renderKeyDetail(k types.StoredKey) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Key Details"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render("Service:"), k.Service))
	b.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render("Key:"), k.Key))

	status := statusLabel(k.Status)
	styled := status
	switch {
	case k.Status == nil:
		styled = dimStyle.Render(status)
	case *k.Status == types.StatusValid:
		styled = validStyle.Render(status)
	case *k.Status == types.StatusInvalid:
		styled = invalidStyle.Render(status)
	}
	b.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render("Status:"), styled))

	if m.db.IsBanned(k.FullKey) {
		b.WriteString(invalidStyle.Render("BANNED: this key is in the banned set"))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("%s %s:%d:%d\n", keyStyle.Render("Location:"), k.FilePath, k.LineNumber, k.Column))
	if k.LastTested != nil {
		b.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render("Last tested:"), k.LastTested.Local().Format(time.RFC1123)))
	}
	if k.LastError != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render("Error:"), k.LastError))
	}
	if len(k.QuotaInfo) > 0 {
		b.WriteString(fmt.Sprintf("%s\n", keyStyle.Render("Details:")))
		for key, v := range k.QuotaInfo {
			b.WriteString(fmt.Sprintf("  %s: %v\n", dimStyle.Render(key), v))
		}
	}
	return b.String()
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "?", "h":
			m.showHelp = true
			return m, nil
		case "enter", "o":
			if m.mode == viewProjects && len(m.projects) > 0 {
				m.current = m.table.Cursor()
				m.mode = viewKeys
				m.table.SetCursor(0)
				m.rebuildKeyRows()
				return m, nil
			}
		case "esc", "backspace":
			if m.mode == viewKeys {
				m.mode = viewProjects
				m.rebuildProjectRows()
				m.table.SetCursor(m.current)
				m.updateViewportContent()
				return m, nil
			}
		case "b":
			if m.mode == viewKeys {
				return m, m.banCurrentKey()
			}
		case "B":
			if m.mode == viewKeys {
				return m, m.unbanCurrentKey()
			}
		case "y":
			if m.mode == viewKeys {
				return m, m.copyMaskedKey()
			}
		case "t":
			if !m.testing {
				cmd = m.testCurrentProject()
				return m, cmd
			}
		case "r":
			m.reload()
			m.setStatus("Reloaded from database", 3*time.Second)
			return m, nil
		case "d":
			if m.mode == viewProjects {
				return m, m.deleteCurrentProject()
			}
		case "down", "j", "up", "k", "pgdown", "pgup", "home", "end":
			m.table, cmd = m.table.Update(msg)
			m.updateViewportContent()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		available := m.height - lipgloss.Height(statusBarStyle.Render("")) - 2
		tableHeight := available / 2
		if tableHeight < 5 {
			tableHeight = 5
		}
		viewportHeight := available - tableHeight - detailBorderStyle.GetVerticalFrameSize()
		if viewportHeight < 3 {
			viewportHeight = 3
		}

		m.table.SetWidth(m.width)
		m.table.SetHeight(tableHeight)
		if m.viewport.Height == 0 {
			m.viewport = viewport.New(m.width-detailBorderStyle.GetHorizontalFrameSize(), viewportHeight)
		} else {
			m.viewport.Width = m.width - detailBorderStyle.GetHorizontalFrameSize()
			m.viewport.Height = viewportHeight
		}
		statusBarStyle = statusBarStyle.Width(m.width)
		m.updateViewportContent()

	case resultsMsg:
		m.testing = false
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Test error: %v", msg.err), 5*time.Second)
			return m, nil
		}
		if _, err := m.db.MergeResults(msg.path, msg.results); err != nil {
			m.setStatus(fmt.Sprintf("Save error: %v", err), 5*time.Second)
			return m, nil
		}
		m.reload()
		valid := 0
		for _, r := range msg.results {
			if r.Status == types.StatusValid {
				valid++
			}
		}
		m.setStatus(fmt.Sprintf("Tested %d keys, %d valid", len(msg.results), valid), 5*time.Second)
		return m, nil

	case statusMsg:
		m.reload()
		m.setStatus(string(msg), 3*time.Second)
		return m, nil

	case spinner.TickMsg:
		var spinCmd tea.Cmd
		m.spinner, spinCmd = m.spinner.Update(msg)
		if m.statusTimeout != nil && time.Now().After(*m.statusTimeout) {
			m.statusTimeout = nil
			if m.mode == viewProjects {
				m.statusMessage = "q: quit | ?: help | enter: open project | t: test keys"
			} else {
				m.statusMessage = "q: quit | ?: help | esc: back | b: ban | y: copy | t: test"
			}
		}
		return m, spinCmd
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}
