package apigraveyard

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	var yes bool
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Wipe the entire graveyard (DANGEROUS)",
		RunE: func(_ *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to wipe the database without --yes")
			}
			cfg := loadConfig(".")
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			if err := st.Wipe(); err != nil {
				return err
			}
			fmt.Println("Graveyard wiped. A backup of the previous database was kept next to it.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm wiping all projects and banned keys")
	rootCmd.AddCommand(cmd)
}
