package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/apigraveyard/apigraveyard/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func openaiKey() string { return "sk-" + strings.Repeat("a", 48) }

func TestScanFindsKeyWithPosition(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "app/config.js", "// header\nconst k = \""+openaiKey()+"\";\n")

	res := Scan(Options{Root: root, Recursive: true})
	require.NoError(t, res.Err)
	require.Len(t, res.Keys, 1)
	m := res.Keys[0]
	assert.Equal(t, types.ServiceOpenAI, m.Service)
	assert.Equal(t, "app/config.js", m.FilePath)
	assert.Equal(t, 2, m.Line)
	assert.Equal(t, 12, m.Column)
	assert.Equal(t, "sk-a...aaaa", m.MaskedValue)
}

func TestScanCountsCleanFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "clean.py", "print('nothing here')\n")
	writeFile(t, root, "also_clean.go", "package main\n")

	res := Scan(Options{Root: root, Recursive: true})
	require.NoError(t, res.Err)
	assert.Equal(t, 2, res.TotalFiles)
	assert.Empty(t, res.Keys)
}

func TestScanDedupesByRawValue(t *testing.T) {
	root := t.TempDir()
	key := openaiKey()
	writeFile(t, root, "a.env", key+"\n")
	writeFile(t, root, "b.env", key+"\n")

	res := Scan(Options{Root: root, Recursive: true})
	require.Len(t, res.Keys, 1)
	assert.Equal(t, "a.env", res.Keys[0].FilePath)
}

func TestScanDefaultIgnores(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "node_modules/pkg/index.js", openaiKey())
	writeFile(t, root, "yarn.lock", openaiKey())
	writeFile(t, root, "src/ok.js", openaiKey())

	res := Scan(Options{Root: root, Recursive: true})
	require.Len(t, res.Keys, 1)
	assert.Equal(t, "src/ok.js", res.Keys[0].FilePath)
	assert.Equal(t, 1, res.TotalFiles)
}

func TestScanMinifiedEntriesDoNotMatch(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "static/app.min.js", openaiKey())

	res := Scan(Options{Root: root, Recursive: true})
	require.Len(t, res.Keys, 1)
	assert.Equal(t, "static/app.min.js", res.Keys[0].FilePath)
}

func TestScanExtraIgnorePatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "generated/out.js", openaiKey())
	writeFile(t, root, "src/ok.js", "gsk_"+strings.Repeat("b", 52))

	res := Scan(Options{Root: root, Recursive: true, IgnorePatterns: []string{"generated"}})
	require.Len(t, res.Keys, 1)
	assert.Equal(t, types.ServiceGroq, res.Keys[0].Service)
}

func TestScanNonRecursive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "top.env", openaiKey())
	writeFile(t, root, "sub/nested.env", "gsk_"+strings.Repeat("c", 52))

	res := Scan(Options{Root: root, Recursive: false})
	require.Len(t, res.Keys, 1)
	assert.Equal(t, "top.env", res.Keys[0].FilePath)
}

func TestScanSkipsBinaryWithWarning(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "blob.txt", "abc\x00def")
	writeFile(t, root, "ok.txt", "hello\n")

	res := Scan(Options{Root: root, Recursive: true})
	assert.Equal(t, 2, res.TotalFiles)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "blob.txt")
}

func TestScanUnreadableRootReturnsError(t *testing.T) {
	res := Scan(Options{Root: filepath.Join(t.TempDir(), "missing"), Recursive: true})
	assert.Error(t, res.Err)
	assert.Zero(t, res.TotalFiles)
}

func TestScanSkipsUnknownExtensions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "keys.dat", openaiKey())
	writeFile(t, root, ".npmrc", "hf_"+strings.Repeat("d", 34))

	res := Scan(Options{Root: root, Recursive: true})
	require.Len(t, res.Keys, 1)
	assert.Equal(t, types.ServiceHuggingFace, res.Keys[0].Service)
	assert.Equal(t, 1, res.TotalFiles)
}

func TestScanIncludeExcludeGlobs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/a.js", openaiKey())
	writeFile(t, root, "src/b.py", "gsk_"+strings.Repeat("e", 52))

	res := Scan(Options{Root: root, Recursive: true, IncludeGlobs: "**/*.js"})
	require.Len(t, res.Keys, 1)
	assert.Equal(t, "src/a.js", res.Keys[0].FilePath)

	res = Scan(Options{Root: root, Recursive: true, ExcludeGlobs: "**/*.js"})
	require.Len(t, res.Keys, 1)
	assert.Equal(t, "src/b.py", res.Keys[0].FilePath)
}

func TestScanProgressCallback(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "x\n")
	writeFile(t, root, "b.txt", "y\n")

	var calls int
	Scan(Options{Root: root, Recursive: true, Progress: func(done int, path string) {
		calls++
		assert.Equal(t, calls, done)
	}})
	assert.Equal(t, 2, calls)
}
