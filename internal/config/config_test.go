package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return p
}

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "apigraveyard.yaml", "include: \"**/*.env\"\nrecursive: false\nauto_save: true\n")
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Include == nil || *cfg.Include != "**/*.env" {
		t.Fatalf("expected include=**/*.env, got %#v", cfg.Include)
	}
	if cfg.Recursive == nil || *cfg.Recursive != false {
		t.Fatalf("expected recursive=false, got %#v", cfg.Recursive)
	}
	if cfg.AutoSave == nil || *cfg.AutoSave != true {
		t.Fatalf("expected auto_save=true")
	}
	if cfg.Database != nil {
		t.Fatalf("expected database unset, got %#v", cfg.Database)
	}
}

func TestLoadLocal_PrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	// place both, expect the dotfile to be picked first by search order
	writeTemp(t, dir, "apigraveyard.yaml", "ignore: vendor\n")
	writeTemp(t, dir, ".apigraveyard.yaml", "ignore: tmp\n")
	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("LoadLocal: %v", err)
	}
	if cfg.Ignore == nil || *cfg.Ignore != "tmp" {
		t.Fatalf("expected ignore=tmp from .apigraveyard.yaml, got %#v", cfg.Ignore)
	}
}

func TestLoadLocal_NoConfig(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadLocal(dir); err == nil {
		t.Fatal("expected error when no local config exists")
	}
}

func TestLoadGlobal_XDG_Config(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "apigraveyard")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	p := filepath.Join(cfgDir, "config.yml")
	if err := os.WriteFile(p, []byte("no_color: true\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal: %v", err)
	}
	if cfg.NoColor == nil || *cfg.NoColor != true {
		t.Fatalf("expected no_color=true from global config, got %#v", cfg.NoColor)
	}
}

func TestLoadGlobal_NoConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "")
	if _, err := LoadGlobal(); err == nil {
		t.Fatal("expected error when no global config dir exists")
	}
}

func TestLayered_LocalWins(t *testing.T) {
	inc, loc := "a", "b"
	rec := true
	global := FileConfig{Include: &inc, Recursive: &rec}
	local := FileConfig{Include: &loc}
	got := Layered(global, local)
	if got.Include == nil || *got.Include != "b" {
		t.Fatalf("expected local include to win, got %#v", got.Include)
	}
	if got.Recursive == nil || *got.Recursive != true {
		t.Fatalf("expected global recursive to survive, got %#v", got.Recursive)
	}
}

func TestPickPrecedence(t *testing.T) {
	file := "from-file"
	if got := PickString("cli", &file, "def"); got != "cli" {
		t.Fatalf("expected cli to win, got %q", got)
	}
	if got := PickString("", &file, "def"); got != "from-file" {
		t.Fatalf("expected file to win, got %q", got)
	}
	if got := PickString("", nil, "def"); got != "def" {
		t.Fatalf("expected default, got %q", got)
	}

	fb := false
	if got := PickBool(true, true, &fb, false); got != true {
		t.Fatal("expected explicitly set cli flag to win")
	}
	if got := PickBool(false, false, &fb, true); got != false {
		t.Fatal("expected file value to win over default")
	}
	if got := PickBool(false, false, nil, true); got != true {
		t.Fatal("expected default")
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" a, b ,,c ")
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected split: %#v", got)
	}
	if SplitList("") != nil {
		t.Fatal("expected nil for empty input")
	}
}
