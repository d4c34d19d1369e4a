package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScan_Smoke(t *testing.T) {
	res := Scan(Options{Root: t.TempDir()})
	if res.Err != nil {
		t.Fatalf("Scan error: %v", res.Err)
	}
	if len(res.Keys) != 0 {
		t.Fatalf("expected no keys in empty dir, got %d", len(res.Keys))
	}
	if len(Services()) == 0 {
		t.Fatal("expected non-empty service list")
	}
}

func TestScan_FindsKey(t *testing.T) {
	dir := t.TempDir()
	raw := "sk-" + strings.Repeat("a", 48)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("OPENAI_API_KEY="+raw+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	res := Scan(Options{Root: dir, Recursive: true})
	if res.Err != nil {
		t.Fatalf("Scan error: %v", res.Err)
	}
	if len(res.Keys) != 1 {
		t.Fatalf("expected 1 key, got %d", len(res.Keys))
	}
	if res.Keys[0].RawValue != raw {
		t.Fatalf("unexpected raw value %q", res.Keys[0].RawValue)
	}
}

func TestMatchesServiceAndMask(t *testing.T) {
	raw := "AKIA" + strings.Repeat("A", 16)
	if !MatchesService("AWS", raw) {
		t.Fatal("expected AWS key format to match")
	}
	if MatchesService("AWS", "AKIA-short") {
		t.Fatal("expected malformed key to not match")
	}
	if got := Mask(raw); !strings.Contains(got, "...") {
		t.Fatalf("expected masked form, got %q", got)
	}
}
