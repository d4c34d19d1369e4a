package apigraveyard

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apigraveyard/apigraveyard/internal/audit"
	"github.com/apigraveyard/apigraveyard/internal/report"
)

func init() {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past scan and test runs",
		RunE: func(_ *cobra.Command, _ []string) error {
			log, err := audit.New()
			if err != nil {
				return err
			}
			records, err := log.LoadHistory()
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					fmt.Println("No runs recorded yet")
					return nil
				}
				return err
			}
			if limit > 0 && len(records) > limit {
				records = records[:limit]
			}
			if flagJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}
			report.PrintHistory(os.Stdout, records, report.PrintOptions{NoColor: noColor(loadConfig("."))})
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum runs to show (0 = all)")
	rootCmd.AddCommand(cmd)
}
