package engine

import (
	"path"
	"strings"
)

// Default ignore set. Matching is by exact filename equality or by
// substring containment in the relative path (directory-style patterns),
// not glob semantics.
var defaultIgnorePatterns = []string{
	"node_modules",
	".git",
	"__pycache__",
	".venv",
	"venv",
	".env.example",
	".env.template",
	// The *.min entries predate the exact-name/substring matcher and
	// cannot match anything under it. Kept so user configs listing them
	// keep round-tripping.
	"*.min.js",
	"*.min.css",
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"Cargo.lock",
	"poetry.lock",
	".next",
	"dist",
	"build",
	"target",
	".idea",
	".vscode",
}

// Extensions considered scannable text. Files outside this set are
// enumerated but not read.
var scanExtensions = map[string]bool{
	".py": true, ".js": true, ".ts": true, ".jsx": true, ".tsx": true,
	".mjs": true, ".cjs": true,
	".json": true, ".yaml": true, ".yml": true, ".toml": true,
	".ini": true, ".cfg": true,
	".env": true, ".sh": true, ".bash": true, ".zsh": true, ".fish": true,
	".go": true, ".rs": true, ".rb": true, ".php": true, ".java": true,
	".kt": true, ".scala": true,
	".cs": true, ".fs": true, ".vb": true, ".swift": true, ".m": true,
	".h": true,
	".c": true, ".cpp": true, ".cc": true, ".cxx": true, ".hpp": true,
	".html": true, ".htm": true, ".xml": true, ".md": true, ".txt": true,
	".dockerfile": true, ".conf": true, ".properties": true,
}

func ignored(relPath string, extra []string) bool {
	base := path.Base(relPath)
	for _, p := range defaultIgnorePatterns {
		if p == base || strings.Contains(relPath, p) {
			return true
		}
	}
	for _, p := range extra {
		if p == base || strings.Contains(relPath, p) {
			return true
		}
	}
	return false
}

// scannable reports whether a file name looks like text worth reading:
// a known extension, or a dot-file without one (.env, .npmrc, ...).
func scannable(name string) bool {
	if strings.HasPrefix(name, ".") && !strings.Contains(name[1:], ".") {
		return true
	}
	ext := strings.ToLower(path.Ext(name))
	return scanExtensions[ext]
}

func looksBinary(b []byte) bool {
	n := len(b)
	if n > 800 {
		n = 800
	}
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	return false
}
