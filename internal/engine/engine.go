package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/apigraveyard/apigraveyard/internal/detectors"
	"github.com/apigraveyard/apigraveyard/internal/types"
)

// DefaultBatchSize bounds how many files are read concurrently.
const DefaultBatchSize = 50

// Options controls a single scan.
type Options struct {
	Root           string
	Recursive      bool
	IgnorePatterns []string // extra patterns, same semantics as defaults
	IncludeGlobs   string   // comma-separated, optional
	ExcludeGlobs   string   // comma-separated, optional
	BatchSize      int      // 0 = DefaultBatchSize
	Progress       func(done int, path string)
}

// Result is the outcome of a scan. Err is set on a catastrophic
// enumeration failure; Keys and TotalFiles then hold whatever was
// gathered before it.
type Result struct {
	TotalFiles int
	Keys       []types.KeyMatch
	Warnings   []string
	Duration   time.Duration
	Err        error
}

type fileScan struct {
	path    string
	keys    []types.KeyMatch
	warning string
}

// Scan enumerates files under opts.Root, runs every detector over each
// eligible file and returns the deduplicated matches. Files are read in
// bounded batches: all reads in a batch are issued concurrently and the
// batch completes before the next begins. Unreadable or binary files are
// skipped with a warning. Never panics or errors past this boundary.
func Scan(opts Options) Result {
	var res Result
	started := time.Now()

	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	paths, err := enumerate(opts)
	if err != nil {
		res.Err = fmt.Errorf("enumerating %s: %w", opts.Root, err)
	}

	seen := make(map[string]bool)
	for start := 0; start < len(paths); start += batchSize {
		end := start + batchSize
		if end > len(paths) {
			end = len(paths)
		}
		batch := scanBatch(opts.Root, paths[start:end])
		for _, fs := range batch {
			res.TotalFiles++
			if fs.warning != "" {
				res.Warnings = append(res.Warnings, fs.warning)
			}
			for _, m := range fs.keys {
				if seen[m.RawValue] {
					continue
				}
				seen[m.RawValue] = true
				res.Keys = append(res.Keys, m)
			}
			if opts.Progress != nil {
				opts.Progress(res.TotalFiles, fs.path)
			}
		}
	}

	res.Duration = time.Since(started)
	return res
}

// scanBatch reads and scans one batch of files concurrently, preserving
// input order in the returned slice.
func scanBatch(root string, paths []string) []fileScan {
	out := make([]fileScan, len(paths))
	var wg sync.WaitGroup
	for i, rel := range paths {
		wg.Add(1)
		go func(i int, rel string) {
			defer wg.Done()
			out[i] = scanFile(root, rel)
		}(i, rel)
	}
	wg.Wait()
	return out
}

func scanFile(root, rel string) fileScan {
	fs := fileScan{path: rel}
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		fs.warning = fmt.Sprintf("%s: %v", rel, err)
		return fs
	}
	if looksBinary(data) {
		fs.warning = fmt.Sprintf("%s: skipped binary content", rel)
		return fs
	}
	fs.keys = detectors.RunAll(rel, data)
	return fs
}
