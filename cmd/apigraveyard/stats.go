package apigraveyard

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/apigraveyard/apigraveyard/internal/report"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate graveyard statistics",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := loadConfig(".")
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			stats := st.ComputeStats()
			if flagJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			}
			report.PrintStats(os.Stdout, stats, report.PrintOptions{NoColor: noColor(cfg)})
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
