package apigraveyard

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/apigraveyard/apigraveyard/internal/tester"
	"github.com/apigraveyard/apigraveyard/internal/tui"
	"github.com/apigraveyard/apigraveyard/internal/types"
)

func init() {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse the graveyard interactively",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := loadConfig(".")
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			testFn := func(p types.Project) ([]types.KeyResult, error) {
				keys := make([]types.KeyMatch, 0, len(p.Keys))
				for _, k := range p.Keys {
					if st.IsBanned(k.FullKey) {
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
				return tester.New().Run(context.Background(), keys, tester.RunOptions{}), nil
			}
			return tui.Run(st, testFn)
		},
	}
	rootCmd.AddCommand(cmd)
}
