package apigraveyard

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apigraveyard/apigraveyard/internal/update"
)

func init() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version and check for updates",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("apigraveyard %s\n", version)
			if latest, newer, err := update.Check(version, flagNoUpdateCheck); err == nil && newer {
				fmt.Fprintf(os.Stderr, "A newer release is available: %s (run with --self-update)\n", latest)
			}
		},
	}
	rootCmd.AddCommand(cmd)
}
