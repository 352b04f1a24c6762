package commands

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"jupbuy/internal/domain"
	"jupbuy/internal/units"
)

const (
	defaultPriorityFee = "50000"
	confirmPrompt      = "Proceed to send the transaction?"
	dryRunHint         = "Dry-run complete. Use --no-dry-run or --yes to broadcast."
)

var (
	errNoTTY   = errors.New("cannot ask for confirmation: stdin is not a terminal (pass --yes)")
	errAborted = errors.New("aborted: transaction not sent")
)

// buy <amount>: quote, build, sign, then simulate or send.
func buyCmd() *cobra.Command {
	var (
		slippageBps uint16
		priorityFee string
		yes         bool
		dryRun      bool
		noDryRun    bool
	)
	cmd := &cobra.Command{
		Use:   "buy <amount>",
		Short: "Swap <amount> SOL for the configured token",
		Long: "Swap <amount> SOL for the configured token.\n\n" +
			"By default the signed transaction is only simulated. With --no-dry-run\n" +
			"it is sent after an interactive confirmation; --yes sends without asking.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noDryRun {
				dryRun = false
			}
			if err := appCtx.Config.Require("rpc_url", "output_mint"); err != nil {
				return err
			}
			lamports, err := units.ToLamports(args[0])
			if err != nil {
				return err
			}
			fee, err := parsePriorityFee(priorityFee)
			if err != nil {
				return err
			}
			key, err := appCtx.Key()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			svc := appCtx.Swap(key)
			order := domain.Order{
				AmountLamports: lamports,
				OutputMint:     appCtx.OutputMint(),
				SlippageBps:    slippageBps,
				PriorityFee:    fee,
			}

			p, err := svc.Prepare(ctx, order)
			if err != nil {
				return err
			}
			if err := printPrepared(svc.Wallet(), p); err != nil {
				return err
			}

			send, err := shouldSend(dryRun, yes, confirm)
			if err != nil {
				return err
			}
			if !send {
				printSimulation(svc.DryRun(ctx, p))
				pterm.Info.Println(dryRunHint)
				return nil
			}

			res, err := svc.Execute(ctx, p)
			if err != nil {
				if res != nil {
					printDiagnostics(res.SimulatedError, res.SimulatedLogs)
				}
				return err
			}
			return printResult(res)
		},
	}
	cmd.Flags().Uint16Var(&slippageBps, "slippage-bps", 100, "slippage tolerance in basis points")
	cmd.Flags().StringVar(&priorityFee, "priority-fee", defaultPriorityFee, `priority fee in lamports, or "auto" to let Jupiter decide`)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "send without asking for confirmation")
	cmd.Flags().BoolVar(&dryRun, "dry-run", true, "simulate only")
	cmd.Flags().BoolVar(&noDryRun, "no-dry-run", false, "send after confirmation")
	cmd.MarkFlagsMutuallyExclusive("dry-run", "no-dry-run")
	return cmd
}

// shouldSend reports whether to broadcast rather than only simulate. --yes
// sends without asking; otherwise a dry run stops here and a live run needs
// ask to confirm. Declining is errAborted.
func shouldSend(dryRun, yes bool, ask func(prompt string) (bool, error)) (bool, error) {
	if yes {
		return true, nil
	}
	if dryRun {
		return false, nil
	}
	ok, err := ask(confirmPrompt)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, errAborted
	}
	return true, nil
}

// parsePriorityFee returns nil for "auto" or an empty value.
func parsePriorityFee(s string) (*uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "auto") {
		return nil, nil
	}
	fee, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, domain.NewError(domain.KindInvalidOrder, "priority-fee",
			fmt.Sprintf("priority fee must be a lamport amount or \"auto\", got %q", s), err)
	}
	return &fee, nil
}

func confirm(prompt string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, errNoTTY
	}
	ok, err := pterm.DefaultInteractiveConfirm.
		WithDefaultText(prompt).
		WithDefaultValue(false).
		Show()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	return ok, nil
}
