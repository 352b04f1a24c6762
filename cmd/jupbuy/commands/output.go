package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"jupbuy/internal/domain"
	"jupbuy/internal/services/swap"
	"jupbuy/internal/units"
)

// maxLogLines caps how many program log lines are printed.
const maxLogLines = 50

func printQuote(order domain.Order, q domain.Quote) error {
	s, err := q.Summary()
	if err != nil {
		return fmt.Errorf("reading quote: %w", err)
	}
	pterm.DefaultSection.Println("Quote")
	return pterm.DefaultTable.WithData(pterm.TableData{
		{"Spend", units.FromLamports(order.AmountLamports) + " SOL (" + strconv.FormatUint(order.AmountLamports, 10) + " lamports)"},
		{"Output mint", order.OutputMint.String()},
		{"Expected out", s.OutAmount},
		{"Minimum out", s.MinOutAmount},
		{"Price impact %", s.PriceImpactPct},
		{"Slippage bps", strconv.Itoa(s.SlippageBps)},
		{"Route hops", strconv.Itoa(s.RouteHops)},
	}).Render()
}

func printPrepared(wallet string, p *swap.Prepared) error {
	pterm.Printf("Wallet: %s\n", wallet)
	if err := printQuote(p.Order, p.Quote); err != nil {
		return err
	}
	pterm.Info.Printfln("Signed transaction %s", p.Signed.Signature())
	return nil
}

func printSimulation(sim *domain.SimulationResult) {
	pterm.DefaultSection.Println("Simulation")
	if sim == nil {
		pterm.Warning.Println("Simulation unavailable.")
		return
	}
	if sim.Err == nil {
		pterm.Success.Println("Simulation succeeded.")
	}
	printDiagnostics(sim.Err, sim.Logs)
}

// printDiagnostics prints a simulation error and the head of its logs.
func printDiagnostics(simErr any, logs []string) {
	if simErr != nil {
		pterm.Error.Printfln("Simulation error: %s", formatValue(simErr))
	}
	head, rest := headLogs(logs, maxLogLines)
	for _, line := range head {
		pterm.Println(pterm.Gray(line))
	}
	if rest > 0 {
		pterm.Println(pterm.Gray(fmt.Sprintf("... %d more lines", rest)))
	}
}

func printResult(res *domain.SwapResult) error {
	pterm.DefaultSection.Println("Submitted")
	rows := pterm.TableData{
		{"Signature", res.Signature},
		{"Explorer", res.ExplorerURL},
		{"State", res.State.String()},
	}
	if res.ExecutionError != nil {
		rows = append(rows, []string{"Execution error", formatValue(res.ExecutionError)})
	}
	if err := pterm.DefaultTable.WithData(rows).Render(); err != nil {
		return err
	}

	switch {
	case res.Landed():
		pterm.Success.Println("Transaction confirmed.")
	case res.ExecutionError != nil:
		pterm.Error.Println("Transaction failed on chain.")
	default:
		pterm.Warning.Println("Status not yet available; check the explorer link.")
	}
	printDiagnostics(res.SimulatedError, res.SimulatedLogs)
	return nil
}

// formatValue renders an RPC error value as compact JSON.
func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// headLogs returns at most n lines and the count of lines left out.
func headLogs(logs []string, n int) ([]string, int) {
	if len(logs) <= n {
		return logs, 0
	}
	return logs[:n], len(logs) - n
}
