package commands

import (
	"github.com/spf13/cobra"

	"jupbuy/internal/domain"
	"jupbuy/internal/units"
)

// quote <amount>: show the route quote without building a transaction.
func quoteCmd() *cobra.Command {
	var slippageBps uint16
	cmd := &cobra.Command{
		Use:   "quote <amount>",
		Short: "Show the route quote for <amount> SOL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Config.Require("output_mint"); err != nil {
				return err
			}
			lamports, err := units.ToLamports(args[0])
			if err != nil {
				return err
			}
			order := domain.Order{
				AmountLamports: lamports,
				OutputMint:     appCtx.OutputMint(),
				SlippageBps:    slippageBps,
			}
			q, err := appCtx.Swap(nil).Quote(cmd.Context(), order)
			if err != nil {
				return err
			}
			return printQuote(order, q)
		},
	}
	cmd.Flags().Uint16Var(&slippageBps, "slippage-bps", 100, "slippage tolerance in basis points")
	return cmd
}
