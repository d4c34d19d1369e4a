package apigraveyard

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/apigraveyard/apigraveyard/internal/audit"
	"github.com/apigraveyard/apigraveyard/internal/config"
	"github.com/apigraveyard/apigraveyard/internal/engine"
	"github.com/apigraveyard/apigraveyard/internal/gitmeta"
	"github.com/apigraveyard/apigraveyard/internal/report"
)

var (
	flagScanSave    bool
	flagScanTest    bool
	flagNoRecursive bool
	flagIgnore      string
	flagInclude     string
	flagExclude     string
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a directory for API keys",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().BoolVar(&flagScanSave, "save", false, "save the project and its keys to the graveyard")
	cmd.Flags().BoolVar(&flagScanTest, "test", false, "test discovered keys against their services (implies --save)")
	cmd.Flags().BoolVar(&flagNoRecursive, "no-recursive", false, "scan only the top-level directory")
	cmd.Flags().StringVar(&flagIgnore, "ignore", "", "extra ignore patterns (comma-separated)")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
}

func runScan(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}
	cfg := loadConfig(abs)

	recursive := config.PickBool(!flagNoRecursive, cmd.Flags().Changed("no-recursive"), cfg.Recursive, true)
	opts := engine.Options{
		Root:           abs,
		Recursive:      recursive,
		IgnorePatterns: config.SplitList(config.PickString(flagIgnore, cfg.Ignore, "")),
		IncludeGlobs:   config.PickString(flagInclude, cfg.Include, ""),
		ExcludeGlobs:   config.PickString(flagExclude, cfg.Exclude, ""),
	}
	if !flagJSON {
		opts.Progress = func(done int, _ string) {
			fmt.Fprintf(os.Stderr, "\rScanning... %d files", done)
		}
	}

	res := engine.Scan(opts)
	if opts.Progress != nil {
		fmt.Fprint(os.Stderr, "\r\033[K")
	}
	if res.Err != nil {
		return res.Err
	}
	for _, w := range res.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res.Keys); err != nil {
			return err
		}
	} else {
		report.PrintMatches(os.Stdout, res.Keys, report.PrintOptions{
			NoColor:      noColor(cfg),
			Duration:     res.Duration,
			FilesScanned: res.TotalFiles,
		})
	}

	if log, err := audit.New(); err == nil {
		_ = log.Append(audit.ScanRecord(abs, res.TotalFiles, res.Keys, res.Duration))
	}

	save := config.PickBool(flagScanSave, cmd.Flags().Changed("save"), cfg.AutoSave, false)
	test := config.PickBool(flagScanTest, cmd.Flags().Changed("test"), cfg.AutoTest, false)
	if !save && !test {
		return nil
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	repo := gitmeta.Lookup(abs)
	if _, err := st.UpsertProject(abs, res.TotalFiles, res.Keys, repo); err != nil {
		return fmt.Errorf("saving project: %w", err)
	}
	if !flagJSON {
		fmt.Fprintf(os.Stderr, "Saved %d keys for %s\n", len(res.Keys), abs)
	}

	if test {
		return testProjectKeys(st, abs, noColor(cfg))
	}
	return nil
}

func noColor(cfg config.FileConfig) bool {
	return config.PickBool(flagNoColor, flagNoColor, cfg.NoColor, false)
}
