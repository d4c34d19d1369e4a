package apigraveyard

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apigraveyard/apigraveyard/internal/config"
	"github.com/apigraveyard/apigraveyard/internal/store"
)

var (
	flagJSON          bool
	flagNoColor       bool
	flagDB            string
	flagNoUpdateCheck bool
	flagSelfUpdate    bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the apigraveyard CLI.
var rootCmd = &cobra.Command{
	Use:           "apigraveyard",
	Short:         "Find and bury dead API keys",
	Long:          "apigraveyard scans directories for leaked API keys, tests them against their issuing services and keeps a local graveyard of what it found.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if flagSelfUpdate {
			return selfUpdate()
		}
		return cmd.Help()
	},
}

// Execute runs the apigraveyard CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "database file (default ~/.apigraveyard.json)")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
	rootCmd.PersistentFlags().BoolVar(&flagSelfUpdate, "self-update", false, "update apigraveyard to the latest release")
}

// openStore resolves the database location: --db, then config, then the
// default home-directory file.
func openStore(cfg config.FileConfig) (*store.Store, error) {
	if path := config.PickString(flagDB, cfg.Database, ""); path != "" {
		return store.OpenAt(path)
	}
	return store.Open()
}

// loadConfig layers the global and project-local config files for root.
func loadConfig(root string) config.FileConfig {
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(root); err == nil {
		lcfg = c
	}
	return config.Layered(gcfg, lcfg)
}
