package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func addressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Print the wallet public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := appCtx.Key()
			if err != nil {
				return err
			}
			pterm.Println(key.PublicKey().String())
			return nil
		},
	}
	return cmd
}
