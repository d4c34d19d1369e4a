package engine

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// enumerate lists the relative (forward-slash) paths of files eligible
// for scanning under opts.Root. Unreadable subtrees are skipped; only a
// failure at the root itself is returned as an error, together with
// whatever was gathered before it.
func enumerate(opts Options) ([]string, error) {
	if !opts.Recursive {
		entries, err := os.ReadDir(opts.Root)
		if err != nil {
			return nil, err
		}
		var out []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := e.Name()
			if ignored(name, opts.IgnorePatterns) || !scannable(name) {
				continue
			}
			if !allowedByGlobs(name, opts) {
				continue
			}
			out = append(out, name)
		}
		return out, nil
	}

	var out []string
	err := filepath.WalkDir(opts.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == opts.Root {
				return err
			}
			return nil
		}
		rel, _ := filepath.Rel(opts.Root, p)
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if rel != "." && ignored(rel, opts.IgnorePatterns) {
				return filepath.SkipDir
			}
			return nil
		}
		if ignored(rel, opts.IgnorePatterns) || !scannable(d.Name()) {
			return nil
		}
		if !allowedByGlobs(rel, opts) {
			return nil
		}
		out = append(out, rel)
		return nil
	})
	return out, err
}

// allowedByGlobs applies the optional include/exclude glob filters.
// Includes act as a positive filter when present; excludes are
// subtracted last. Matching uses forward-slash semantics.
func allowedByGlobs(relPath string, opts Options) bool {
	includes := parseGlobs(opts.IncludeGlobs)
	excludes := parseGlobs(opts.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(relPath, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(relPath, excludes) {
		return false
	}
	return true
}

func parseGlobs(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func matchAnyGlob(p string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, p); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(p)); ok {
			return true
		}
	}
	return false
}
