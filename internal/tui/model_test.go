package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/apigraveyard/apigraveyard/internal/store"
	"github.com/apigraveyard/apigraveyard/internal/types"
)

func seededStore(t *testing.T) (*store.Store, string) {
	t.Helper()
	db, err := store.OpenAt(filepath.Join(t.TempDir(), ".apigraveyard.json"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	dir := t.TempDir()
	raw := "sk-" + strings.Repeat("a", 48)
	_, err = db.UpsertProject(dir, 3, []types.KeyMatch{{
		Service:     types.ServiceOpenAI,
		RawValue:    raw,
		MaskedValue: types.Mask(raw),
		FilePath:    ".env",
		Line:        1,
		Column:      1,
	}}, nil)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	return db, dir
}

func TestNewModelLoadsProjects(t *testing.T) {
	db, _ := seededStore(t)
	m := NewModel(db, nil)
	if len(m.projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(m.projects))
	}
	if m.mode != viewProjects {
		t.Fatal("expected projects view on start")
	}
	if len(m.table.Rows()) != 1 {
		t.Fatalf("expected 1 table row, got %d", len(m.table.Rows()))
	}
}

func TestEnterOpensKeysView(t *testing.T) {
	db, _ := seededStore(t)
	m := NewModel(db, nil)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if m.mode != viewKeys {
		t.Fatal("expected keys view after enter")
	}
	if len(m.table.Rows()) != 1 {
		t.Fatalf("expected 1 key row, got %d", len(m.table.Rows()))
	}
	if got := m.table.Rows()[0][0]; got != string(types.ServiceOpenAI) {
		t.Fatalf("expected service column, got %q", got)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.mode != viewProjects {
		t.Fatal("expected projects view after esc")
	}
}

func TestKeyRowsNeverShowRawValue(t *testing.T) {
	db, _ := seededStore(t)
	m := NewModel(db, nil)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	raw := "sk-" + strings.Repeat("a", 48)
	for _, row := range m.table.Rows() {
		for _, cell := range row {
			if strings.Contains(cell, raw) {
				t.Fatal("raw key leaked into table row")
			}
		}
	}
}

func TestBanCurrentKey(t *testing.T) {
	db, _ := seededStore(t)
	m := NewModel(db, nil)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	cmd := m.banCurrentKey()
	if cmd == nil {
		t.Fatal("expected ban command")
	}
	msg := cmd()
	if _, ok := msg.(statusMsg); !ok {
		t.Fatalf("expected statusMsg, got %T", msg)
	}

	raw := "sk-" + strings.Repeat("a", 48)
	if !db.IsBanned(raw) {
		t.Fatal("expected key to be banned")
	}

	// second ban reports already banned
	msg = m.banCurrentKey()()
	if !strings.Contains(string(msg.(statusMsg)), "already banned") {
		t.Fatalf("expected already-banned message, got %q", msg)
	}
}

func TestResultsMsgMergesIntoStore(t *testing.T) {
	db, dir := seededStore(t)
	m := NewModel(db, nil)

	raw := "sk-" + strings.Repeat("a", 48)
	updated, _ := m.Update(resultsMsg{
		path: dir,
		results: []types.KeyResult{{
			KeyMatch:         types.KeyMatch{Service: types.ServiceOpenAI, RawValue: raw},
			ValidationResult: types.ValidationResult{Status: types.StatusValid},
		}},
	})
	m = updated.(Model)

	p, ok := db.Project(dir)
	if !ok {
		t.Fatal("project missing after merge")
	}
	if p.Keys[0].Status == nil || *p.Keys[0].Status != types.StatusValid {
		t.Fatalf("expected merged VALID status, got %#v", p.Keys[0].Status)
	}
	if !strings.Contains(m.statusMessage, "1 valid") {
		t.Fatalf("expected summary status, got %q", m.statusMessage)
	}
}

func TestStatusLabel(t *testing.T) {
	if got := statusLabel(nil); got != "UNTESTED" {
		t.Fatalf("expected UNTESTED, got %q", got)
	}
	v := types.StatusValid
	if got := statusLabel(&v); got != "VALID" {
		t.Fatalf("expected VALID, got %q", got)
	}
}
