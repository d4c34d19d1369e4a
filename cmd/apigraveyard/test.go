package apigraveyard

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/apigraveyard/apigraveyard/internal/audit"
	"github.com/apigraveyard/apigraveyard/internal/report"
	"github.com/apigraveyard/apigraveyard/internal/store"
	"github.com/apigraveyard/apigraveyard/internal/tester"
	"github.com/apigraveyard/apigraveyard/internal/types"
)

func init() {
	cmd := &cobra.Command{
		Use:   "test [path]",
		Short: "Test a project's stored keys against their services",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTest,
	}
	rootCmd.AddCommand(cmd)
}

func runTest(_ *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}
	cfg := loadConfig(abs)

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	return testProjectKeys(st, abs, noColor(cfg))
}

// testProjectKeys validates every non-banned key of the stored project at
// path, merges the results back and prints them. A SIGINT stops the run
// after the in-flight key; partial results are still saved.
func testProjectKeys(st *store.Store, path string, noColor bool) error {
	p, ok := st.Project(path)
	if !ok {
		return fmt.Errorf("no stored project for %s (run scan --save first)", path)
	}

	keys := make([]types.KeyMatch, 0, len(p.Keys))
	skipped := 0
	for _, k := range p.Keys {
		if st.IsBanned(k.FullKey) {
			skipped++
			continue
		}
		keys = append(keys, types.KeyMatch{
			Service:     k.Service,
			RawValue:    k.FullKey,
			MaskedValue: k.Key,
			FilePath:    k.FilePath,
			Line:        k.LineNumber,
			Column:      k.Column,
		})
	}
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "Skipping %d banned keys\n", skipped)
	}
	if len(keys) == 0 {
		fmt.Fprintln(os.Stdout, "No keys to test")
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	t := tester.New()
	started := time.Now()
	results := t.Run(ctx, keys, tester.RunOptions{
		Progress: func(done, total int, svc types.Service) {
			fmt.Fprintf(os.Stderr, "\rTesting %d/%d (%s)        ", done, total, svc)
		},
	})
	fmt.Fprint(os.Stderr, "\r\033[K")
	duration := time.Since(started)

	if ctx.Err() != nil {
		// brief drain so the last response is settled before saving
		time.Sleep(200 * time.Millisecond)
		fmt.Fprintf(os.Stderr, "Interrupted after %d of %d keys, saving partial results\n", len(results), len(keys))
	}

	if _, err := st.MergeResults(path, results); err != nil {
		return fmt.Errorf("saving results: %w", err)
	}
	if log, err := audit.New(); err == nil {
		_ = log.Append(audit.TestRecord(path, results, duration))
	}

	report.PrintResults(os.Stdout, results, report.PrintOptions{
		NoColor:  noColor,
		Duration: duration,
	})
	return nil
}
