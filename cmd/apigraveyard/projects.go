package apigraveyard

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/apigraveyard/apigraveyard/internal/config"
	"github.com/apigraveyard/apigraveyard/internal/report"
)

func init() {
	projects := &cobra.Command{
		Use:   "projects",
		Short: "List scanned projects",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := loadConfig(".")
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			if flagJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(st.Projects())
			}
			report.PrintProjects(os.Stdout, st.Projects(), report.PrintOptions{NoColor: noColor(cfg)})
			return nil
		},
	}
	rootCmd.AddCommand(projects)

	rm := &cobra.Command{
		Use:   "rm <path>",
		Short: "Remove a project from the graveyard",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			abs, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			st, err := openStore(config.FileConfig{})
			if err != nil {
				return err
			}
			removed, err := st.DeleteProject(abs)
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("no stored project for %s", abs)
			}
			fmt.Printf("Removed %s\n", abs)
			return nil
		},
	}
	projects.AddCommand(rm)

	keys := &cobra.Command{
		Use:   "keys [path]",
		Short: "Show a project's stored keys",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}
			cfg := loadConfig(abs)
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			p, ok := st.Project(abs)
			if !ok {
				return fmt.Errorf("no stored project for %s", abs)
			}
			if flagJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(p.Keys)
			}
			report.PrintStoredKeys(os.Stdout, p.Keys, report.PrintOptions{NoColor: noColor(cfg)})
			return nil
		},
	}
	projects.AddCommand(keys)
}
