package apigraveyard

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apigraveyard/apigraveyard/internal/types"
)

func init() {
	ban := &cobra.Command{
		Use:   "ban <key>",
		Short: "Ban a key so it is never tested again",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg := loadConfig(".")
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			added, err := st.BanKey(args[0])
			if err != nil {
				return err
			}
			if !added {
				fmt.Printf("%s is already banned\n", types.Mask(args[0]))
				return nil
			}
			fmt.Printf("Banned %s\n", types.Mask(args[0]))
			return nil
		},
	}
	rootCmd.AddCommand(ban)

	unban := &cobra.Command{
		Use:   "unban <key>",
		Short: "Remove a key from the banned set",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg := loadConfig(".")
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			removed, err := st.UnbanKey(args[0])
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("%s was not banned", types.Mask(args[0]))
			}
			fmt.Printf("Unbanned %s\n", types.Mask(args[0]))
			return nil
		},
	}
	rootCmd.AddCommand(unban)

	banned := &cobra.Command{
		Use:   "banned",
		Short: "List banned keys (masked)",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := loadConfig(".")
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			keys := st.BannedKeys()
			if len(keys) == 0 {
				fmt.Println("No banned keys")
				return nil
			}
			for _, k := range keys {
				fmt.Println(types.Mask(k))
			}
			return nil
		},
	}
	rootCmd.AddCommand(banned)
}
